package inventory

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry es un renglón confirmado proyectado para el replay de stock:
// la unión de detalle + movimiento + tipo, con lo mínimo que necesita la
// contabilidad. El repositorio de movimientos los entrega ya filtrados por
// empresa, sin borradores.
type LedgerEntry struct {
	ProductID         string
	ProductCode       string
	ProductName       string
	OriginWarehouseID string
	DestWarehouseID   *string
	Quantity          decimal.Decimal
	ConversionFactor  decimal.Decimal
	AffectsStock      int
	RequiresDest      bool
	Date              time.Time
	TypeName          string
	Lot               string
	Serial            string
	UserName          string
	Note              string
}

// StockAggregate es el stock acumulado de un par (producto, almacén).
type StockAggregate struct {
	ProductID   string
	ProductCode string
	ProductName string
	WarehouseID string
	Stock       decimal.Decimal
}

// FoldStock repliega los renglones confirmados en agregados por
// (producto, almacén). Una transferencia resta en el almacén de origen y suma
// en el de destino; los demás tipos suman cantidad base × afecta_stock en el
// origen. Pares nunca observados no aparecen en el resultado.
// El orden de los agregados sigue el orden de primera aparición.
func FoldStock(entries []LedgerEntry) []StockAggregate {
	type key struct{ productID, warehouseID string }
	index := make(map[key]int)
	var aggs []StockAggregate

	bucket := func(e LedgerEntry, warehouseID string) *StockAggregate {
		k := key{e.ProductID, warehouseID}
		if i, ok := index[k]; ok {
			return &aggs[i]
		}
		index[k] = len(aggs)
		aggs = append(aggs, StockAggregate{
			ProductID:   e.ProductID,
			ProductCode: e.ProductCode,
			ProductName: e.ProductName,
			WarehouseID: warehouseID,
			Stock:       decimal.Zero,
		})
		return &aggs[len(aggs)-1]
	}

	for _, e := range entries {
		base := BaseQuantity(e.Quantity, e.ConversionFactor)
		origin := bucket(e, e.OriginWarehouseID)
		if e.RequiresDest {
			origin.Stock = origin.Stock.Sub(base)
			continue
		}
		origin.Stock = origin.Stock.Add(base.Mul(decimal.NewFromInt(int64(e.AffectsStock))))
	}
	// segundo pase: lado destino de las transferencias
	for _, e := range entries {
		if !e.RequiresDest || e.DestWarehouseID == nil {
			continue
		}
		base := BaseQuantity(e.Quantity, e.ConversionFactor)
		dest := bucket(e, *e.DestWarehouseID)
		dest.Stock = dest.Stock.Add(base)
	}
	return aggs
}

// StockFor devuelve el stock replegado de un producto en un almacén,
// mirando solo el lado origen de los renglones (semántica de la verificación
// de disponibilidad: las transferencias cuentan íntegras como salida del
// origen).
func StockFor(entries []LedgerEntry) decimal.Decimal {
	stock := decimal.Zero
	for _, e := range entries {
		base := BaseQuantity(e.Quantity, e.ConversionFactor)
		if e.RequiresDest {
			stock = stock.Sub(base)
			continue
		}
		stock = stock.Add(base.Mul(decimal.NewFromInt(int64(e.AffectsStock))))
	}
	return stock
}

// KardexRow es una fila del kardex: entrada/salida del renglón y saldo
// acumulado hasta esa fila.
type KardexRow struct {
	Date     time.Time
	TypeName string
	Entrada  decimal.Decimal
	Salida   decimal.Decimal
	Saldo    decimal.Decimal
	Lot      string
	Serial   string
	UserName string
	Note     string
}

// BuildKardex recorre los renglones ya ordenados por fecha ascendente y
// acumula el saldo fila a fila. Transferencias cuentan como salida del lado
// origen; tipos con afecta_stock 0 no transferencia no mueven el saldo.
// Devuelve las filas y el saldo final (cero si no hay filas).
func BuildKardex(entries []LedgerEntry) ([]KardexRow, decimal.Decimal) {
	rows := make([]KardexRow, 0, len(entries))
	saldo := decimal.Zero
	for _, e := range entries {
		base := BaseQuantity(e.Quantity, e.ConversionFactor)
		entrada, salida := decimal.Zero, decimal.Zero
		switch {
		case e.RequiresDest:
			salida = base
		case e.AffectsStock == 1:
			entrada = base
		case e.AffectsStock == -1:
			salida = base
		}
		saldo = saldo.Add(entrada).Sub(salida)
		rows = append(rows, KardexRow{
			Date:     e.Date,
			TypeName: e.TypeName,
			Entrada:  entrada,
			Salida:   salida,
			Saldo:    saldo,
			Lot:      e.Lot,
			Serial:   e.Serial,
			UserName: e.UserName,
			Note:     e.Note,
		})
	}
	return rows, saldo
}
