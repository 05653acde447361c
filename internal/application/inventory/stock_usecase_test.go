package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kardexcloud/kardex-api/internal/application/dto"
	appinv "github.com/kardexcloud/kardex-api/internal/application/inventory"
	"github.com/kardexcloud/kardex-api/internal/domain/entity"
)

// fakePDFGen captura el kardex recibido y devuelve bytes fijos.
type fakePDFGen struct {
	received *dto.KardexResponse
}

func (g *fakePDFGen) GenerateKardexPDF(_ context.Context, kardex *dto.KardexResponse) ([]byte, error) {
	g.received = kardex
	return []byte("%PDF-1.7 fake"), nil
}

func newStockUC(f *fixture, pdfGen appinv.KardexPDFGenerator) *appinv.StockUseCase {
	return appinv.NewStockUseCase(movementStub{f.store}, pdfGen)
}

func TestStock_GetStock_RepliegaPorParProductoAlmacen(t *testing.T) {
	f := newFixture(t)
	f.seedStock(t, "30")

	// salida de 5 y transferencia de 10 a w2
	salida := f.newDraft(t, f.typeSalida.ID, nil)
	f.addLine(t, salida.ID, f.prod.ID, f.puBase.ID, "5", "")
	require.NoError(t, f.uc.Confirm(context.Background(), testCompanyID, salida.ID, testUserID))

	tra := f.newDraft(t, f.typeTransfer.ID, &f.w2.ID)
	f.addLine(t, tra.ID, f.prod.ID, f.puBase.ID, "10", "")
	require.NoError(t, f.uc.Confirm(context.Background(), testCompanyID, tra.ID, testUserID))

	rows, err := newStockUC(f, nil).GetStock(testCompanyID, dto.StockFilterRequest{})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byWarehouse := map[string]dto.StockRowResponse{}
	for _, r := range rows {
		byWarehouse[r.WarehouseID] = r
	}
	assert.True(t, byWarehouse[f.w1.ID].Stock.Equal(dec("15")), "30 - 5 - 10 = 15")
	assert.True(t, byWarehouse[f.w2.ID].Stock.Equal(dec("10")))
	assert.Equal(t, "PROD-001", byWarehouse[f.w1.ID].ProductCode)
}

func TestStock_GetStock_BorradoresInvisibles(t *testing.T) {
	f := newFixture(t)

	mov := f.newDraft(t, f.typeEntrada.ID, nil)
	f.addLine(t, mov.ID, f.prod.ID, f.puBase.ID, "99", "")

	rows, err := newStockUC(f, nil).GetStock(testCompanyID, dto.StockFilterRequest{})
	require.NoError(t, err)
	assert.Empty(t, rows, "un borrador con renglones no aparece en el stock")
}

func TestStock_GetStock_FiltroPorAlmacen(t *testing.T) {
	f := newFixture(t)
	f.seedStock(t, "30")

	tra := f.newDraft(t, f.typeTransfer.ID, &f.w2.ID)
	f.addLine(t, tra.ID, f.prod.ID, f.puBase.ID, "10", "")
	require.NoError(t, f.uc.Confirm(context.Background(), testCompanyID, tra.ID, testUserID))

	rows, err := newStockUC(f, nil).GetStock(testCompanyID, dto.StockFilterRequest{WarehouseID: f.w2.ID})
	require.NoError(t, err)

	// el filtro empareja origen o destino: la transferencia entra por destino
	require.NotEmpty(t, rows)
	var w2row *dto.StockRowResponse
	for i := range rows {
		if rows[i].WarehouseID == f.w2.ID {
			w2row = &rows[i]
		}
	}
	require.NotNil(t, w2row)
	assert.True(t, w2row.Stock.Equal(dec("10")))
}

func TestStock_GetKardex_FilasYSaldoFinal(t *testing.T) {
	f := newFixture(t)
	f.seedStock(t, "30")

	salida := f.newDraft(t, f.typeSalida.ID, nil)
	f.addLine(t, salida.ID, f.prod.ID, f.puBase.ID, "5", "")
	require.NoError(t, f.uc.Confirm(context.Background(), testCompanyID, salida.ID, testUserID))

	kardex, err := newStockUC(f, nil).GetKardex(testCompanyID, dto.KardexFilterRequest{
		ProductID:   f.prod.ID,
		WarehouseID: f.w1.ID,
	})
	require.NoError(t, err)
	require.Len(t, kardex.Rows, 2)

	assert.Equal(t, "PROD-001", kardex.ProductCode)
	assert.Equal(t, "Cemento", kardex.ProductName)

	assert.True(t, kardex.Rows[0].Entrada.Equal(dec("30")))
	assert.True(t, kardex.Rows[0].Saldo.Equal(dec("30")))
	assert.Equal(t, "Entrada", kardex.Rows[0].TypeName)

	assert.True(t, kardex.Rows[1].Salida.Equal(dec("5")))
	assert.True(t, kardex.Rows[1].Saldo.Equal(dec("25")))

	assert.True(t, kardex.SaldoFinal.Equal(dec("25")))
}

func TestStock_GetKardex_ProductoSinHistoria(t *testing.T) {
	f := newFixture(t)

	kardex, err := newStockUC(f, nil).GetKardex(testCompanyID, dto.KardexFilterRequest{
		ProductID:   f.prod.ID,
		WarehouseID: f.w1.ID,
	})
	require.NoError(t, err)
	assert.Empty(t, kardex.Rows)
	assert.True(t, kardex.SaldoFinal.IsZero())
}

func TestStock_GetKardexPDF_DelegaEnElGenerador(t *testing.T) {
	f := newFixture(t)
	f.seedStock(t, "30")

	gen := &fakePDFGen{}
	pdf, err := newStockUC(f, gen).GetKardexPDF(context.Background(), testCompanyID, dto.KardexFilterRequest{
		ProductID:   f.prod.ID,
		WarehouseID: f.w1.ID,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	require.NotNil(t, gen.received)
	assert.True(t, gen.received.SaldoFinal.Equal(dec("30")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Reporte de reposición
// ──────────────────────────────────────────────────────────────────────────────

func TestReorder_ProductoEnPuntoDeReorden(t *testing.T) {
	f := newFixture(t)
	f.seedStock(t, "15")

	reorderPoint := dec("15")
	require.NoError(t, configStub{f.store}.Upsert(&entity.ProductWarehouseConfig{
		ID: "cfg1", ProductID: f.prod.ID, WarehouseID: f.w1.ID,
		MinStock: dec("10"), ReorderPoint: &reorderPoint,
	}))

	uc := appinv.NewReorderUseCase(configStub{f.store}, movementStub{f.store}, productStub{f.store})

	// stock 15 == punto de reorden 15: entra al reporte (en o por debajo)
	rows, err := uc.GenerateReport(testCompanyID, "")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, f.prod.ID, rows[0].ProductID)
	assert.True(t, rows[0].Stock.Equal(dec("15")))
	assert.True(t, rows[0].ReorderPoint.Equal(dec("15")))
}

func TestReorder_StockPorEncimaNoAparece(t *testing.T) {
	f := newFixture(t)
	f.seedStock(t, "40")

	reorderPoint := dec("15")
	require.NoError(t, configStub{f.store}.Upsert(&entity.ProductWarehouseConfig{
		ID: "cfg1", ProductID: f.prod.ID, WarehouseID: f.w1.ID,
		MinStock: dec("10"), ReorderPoint: &reorderPoint,
	}))

	uc := appinv.NewReorderUseCase(configStub{f.store}, movementStub{f.store}, productStub{f.store})
	rows, err := uc.GenerateReport(testCompanyID, "")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReorder_SinPuntoDeReordenSeOmite(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, configStub{f.store}.Upsert(&entity.ProductWarehouseConfig{
		ID: "cfg1", ProductID: f.prod.ID, WarehouseID: f.w1.ID, MinStock: dec("10"),
	}))

	uc := appinv.NewReorderUseCase(configStub{f.store}, movementStub{f.store}, productStub{f.store})
	rows, err := uc.GenerateReport(testCompanyID, "")
	require.NoError(t, err)
	assert.Empty(t, rows, "sin punto de reorden la configuración no participa")
}

func TestReorder_FiltraPorAlmacen(t *testing.T) {
	f := newFixture(t)
	f.seedStock(t, "5")

	reorderPoint := dec("15")
	require.NoError(t, configStub{f.store}.Upsert(&entity.ProductWarehouseConfig{
		ID: "cfg1", ProductID: f.prod.ID, WarehouseID: f.w1.ID,
		MinStock: dec("10"), ReorderPoint: &reorderPoint,
	}))

	uc := appinv.NewReorderUseCase(configStub{f.store}, movementStub{f.store}, productStub{f.store})

	rows, err := uc.GenerateReport(testCompanyID, f.w2.ID)
	require.NoError(t, err)
	assert.Empty(t, rows, "la configuración pertenece a otro almacén")

	rows, err = uc.GenerateReport(testCompanyID, f.w1.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
