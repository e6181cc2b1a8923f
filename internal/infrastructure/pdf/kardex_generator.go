// Package pdf implementa la generación del reporte Kardex de un producto:
// encabezado con los datos del producto y stock actual, y una tabla con el
// historial de movimientos (tipo, delta, stock antes/después, motivo, actor).
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

	"github.com/jhoicas/comercial-api/internal/application/reports"
	"github.com/jhoicas/comercial-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoKardexGenerator implementa reports.KardexPDFGenerator usando Maroto v2.
type MarotoKardexGenerator struct{}

// NewMarotoKardexGenerator construye el generador.
func NewMarotoKardexGenerator() *MarotoKardexGenerator { return &MarotoKardexGenerator{} }

var _ reports.KardexPDFGenerator = (*MarotoKardexGenerator)(nil)

// GenerateKardexPDF genera el PDF y devuelve sus bytes.
func (g *MarotoKardexGenerator) GenerateKardexPDF(
	_ context.Context,
	product *entity.Product,
	movements []*entity.Movement,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Kardex "+product.SKU, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(product))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, mov := range movements {
		m.AddRows(movementRow(mov))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(product, len(movements)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre + SKU (izq) y stock actual con umbrales (der).
func headerRow(product *entity.Product) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(product.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("SKU: "+product.SKU+"  ·  "+product.Category, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("KARDEX DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Stock actual: %d %s", product.StockActual, product.UnitMeasure), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
			text.New(fmt.Sprintf("Mín %d / Máx %d", product.StockMinimo, product.StockMaximo), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}
	headerRight := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1, Align: align.Right}
	return row.New(7).Add(
		col.New(2).Add(text.New("Fecha", header)),
		col.New(2).Add(text.New("Tipo", header)),
		col.New(1).Add(text.New("Delta", headerRight)),
		col.New(1).Add(text.New("Antes", headerRight)),
		col.New(1).Add(text.New("Después", headerRight)),
		col.New(3).Add(text.New("Motivo", header)),
		col.New(2).Add(text.New("Responsable", header)),
	)
}

func movementRow(mov *entity.Movement) core.Row {
	cell := props.Text{Size: 8, Top: 1}
	cellRight := props.Text{Size: 8, Top: 1, Align: align.Right}
	return row.New(6).Add(
		col.New(2).Add(text.New(mov.CreatedAt.Format("02/01/2006 15:04"), cell)),
		col.New(2).Add(text.New(mov.Type, cell)),
		col.New(1).Add(text.New(fmt.Sprintf("%+d", mov.Quantity), cellRight)),
		col.New(1).Add(text.New(fmt.Sprintf("%d", mov.StockBefore), cellRight)),
		col.New(1).Add(text.New(fmt.Sprintf("%d", mov.StockAfter), cellRight)),
		col.New(3).Add(text.New(mov.Reason, cell)),
		col.New(2).Add(text.New(mov.CreatedBy, cell)),
	)
}

func footerRow(product *entity.Product, count int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("%d movimientos · el stock actual es la suma de todos los deltas del libro", count), props.Text{
				Size: 7, Color: colorGray, Top: 2,
			}),
		),
	)
}
