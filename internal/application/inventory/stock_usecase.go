package inventory

import (
	"context"

	"github.com/kardexcloud/kardex-api/internal/application/dto"
	"github.com/kardexcloud/kardex-api/internal/domain/inventory"
	"github.com/kardexcloud/kardex-api/internal/domain/repository"
)

// StockUseCase consultas derivadas del libro de inventario: stock actual y
// kardex. Nunca lee un contador almacenado; siempre repliega los renglones
// confirmados (modelo event-sourced).
type StockUseCase struct {
	ledgerRepo repository.LedgerRepository
	pdfGen     KardexPDFGenerator
}

// NewStockUseCase construye el caso de uso. pdfGen puede ser nil si no se
// expone la exportación PDF.
func NewStockUseCase(ledgerRepo repository.LedgerRepository, pdfGen KardexPDFGenerator) *StockUseCase {
	return &StockUseCase{ledgerRepo: ledgerRepo, pdfGen: pdfGen}
}

// GetStock repliega el stock actual por (producto, almacén), con filtros
// opcionales de producto y almacén. Los movimientos en borrador o los pares
// nunca observados no aparecen.
func (uc *StockUseCase) GetStock(companyID string, in dto.StockFilterRequest) ([]dto.StockRowResponse, error) {
	entries, err := uc.ledgerRepo.ListForStock(companyID, repository.LedgerFilter{
		ProductID:   in.ProductID,
		WarehouseID: in.WarehouseID,
	})
	if err != nil {
		return nil, err
	}
	aggs := inventory.FoldStock(entries)
	out := make([]dto.StockRowResponse, 0, len(aggs))
	for _, a := range aggs {
		out = append(out, dto.StockRowResponse{
			ProductID:   a.ProductID,
			ProductCode: a.ProductCode,
			ProductName: a.ProductName,
			WarehouseID: a.WarehouseID,
			Stock:       a.Stock,
		})
	}
	return out, nil
}

// GetKardex genera el kardex de un producto en un almacén: filas ordenadas
// por fecha ascendente con saldo acumulado y saldo final.
func (uc *StockUseCase) GetKardex(companyID string, in dto.KardexFilterRequest) (*dto.KardexResponse, error) {
	entries, err := uc.ledgerRepo.ListForKardex(companyID, repository.LedgerFilter{
		ProductID:   in.ProductID,
		WarehouseID: in.WarehouseID,
		From:        in.From,
		To:          in.To,
	})
	if err != nil {
		return nil, err
	}
	rows, saldoFinal := inventory.BuildKardex(entries)

	resp := &dto.KardexResponse{
		ProductID:   in.ProductID,
		WarehouseID: in.WarehouseID,
		Rows:        make([]dto.KardexRowResponse, 0, len(rows)),
		SaldoFinal:  saldoFinal,
	}
	if len(entries) > 0 {
		resp.ProductCode = entries[0].ProductCode
		resp.ProductName = entries[0].ProductName
	}
	for _, r := range rows {
		resp.Rows = append(resp.Rows, dto.KardexRowResponse{
			Date:     r.Date,
			TypeName: r.TypeName,
			Entrada:  r.Entrada,
			Salida:   r.Salida,
			Saldo:    r.Saldo,
			Lot:      r.Lot,
			Serial:   r.Serial,
			UserName: r.UserName,
			Note:     r.Note,
		})
	}
	return resp, nil
}

// GetKardexPDF genera el kardex y lo renderiza como PDF.
func (uc *StockUseCase) GetKardexPDF(ctx context.Context, companyID string, in dto.KardexFilterRequest) ([]byte, error) {
	kardex, err := uc.GetKardex(companyID, in)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateKardexPDF(ctx, kardex)
}
