// Package pdf implementa la generación del reporte kardex en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: KARDEX DE PRODUCTO │ código + nombre               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Tipo | Entrada | Salida | Saldo | Lote      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SALDO FINAL                                                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/kardexcloud/kardex-api/internal/application/dto"
	"github.com/kardexcloud/kardex-api/internal/application/inventory"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ inventory.KardexPDFGenerator = (*KardexPDFGenerator)(nil)

// KardexPDFGenerator implementa inventory.KardexPDFGenerator usando Maroto v2.
type KardexPDFGenerator struct{}

// NewKardexPDFGenerator construye el generador.
func NewKardexPDFGenerator() *KardexPDFGenerator { return &KardexPDFGenerator{} }

// GenerateKardexPDF genera el PDF del kardex y devuelve sus bytes.
func (g *KardexPDFGenerator) GenerateKardexPDF(_ context.Context, kardex *dto.KardexResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Kardex de producto", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(kardex))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range kardex.Rows {
		m.AddRows(detailRow(r))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(saldoFinalRow(kardex))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y código + nombre del producto (der).
func headerRow(kardex *dto.KardexResponse) core.Row {
	return row.New(14).Add(
		col.New(6).Add(
			text.New("KARDEX DE PRODUCTO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(6).Add(
			text.New(kardex.ProductCode, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1,
			}),
			text.New(kardex.ProductName, props.Text{
				Size: 9, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de movimientos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Tipo", 3, align.Left),
		h("Entrada", 2, align.Right),
		h("Salida", 2, align.Right),
		h("Saldo", 2, align.Right),
		h("Lote", 1, align.Left),
	)
}

func detailRow(r dto.KardexRowResponse) core.Row {
	c := func(value string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(value, props.Text{
			Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		c(r.Date.Format("02/01/2006"), 2, align.Left),
		c(r.TypeName, 3, align.Left),
		c(r.Entrada.String(), 2, align.Right),
		c(r.Salida.String(), 2, align.Right),
		c(r.Saldo.String(), 2, align.Right),
		c(r.Lot, 1, align.Left),
	)
}

// saldoFinalRow: saldo acumulado al cierre del rango consultado.
func saldoFinalRow(kardex *dto.KardexResponse) core.Row {
	return row.New(10).Add(
		col.New(9).Add(
			text.New("SALDO FINAL", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 2,
			}),
		),
		col.New(3).Add(
			text.New(kardex.SaldoFinal.String(), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2,
			}),
		),
	)
}
