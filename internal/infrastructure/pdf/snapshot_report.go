// Package pdf renderiza el informe diario de stock de una planta con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Planta + fecha de corte                             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Prod. hoy | Desp. hoy | Disp. | % | Salud │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: total producido hoy / merma / aprobaciones         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"sort"

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

	"github.com/jcardenas/Produccion-api/internal/application/dto"
	"github.com/jcardenas/Produccion-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 27, Green: 94, Blue: 32}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoSnapshotGenerator implementa report.SnapshotPDFGenerator usando Maroto v2.
type MarotoSnapshotGenerator struct{}

// NewMarotoSnapshotGenerator construye el generador.
func NewMarotoSnapshotGenerator() *MarotoSnapshotGenerator { return &MarotoSnapshotGenerator{} }

// GenerateSnapshotPDF genera el informe y devuelve sus bytes.
func (g *MarotoSnapshotGenerator) GenerateSnapshotPDF(
	_ context.Context,
	facility *entity.Facility,
	snap dto.StockSnapshotDTO,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Informe de stock", true).
		WithAuthor(facility.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(facility, snap))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range productRows(snap) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRows(snap)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la planta (izq) y fecha de corte (der).
func headerRow(facility *entity.Facility, snap dto.StockSnapshotDTO) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(facility.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Conciliación de stock", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Corte: "+snap.AsOfDate, props.Text{
				Size: 10, Align: align.Right, Top: 3,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}
	headerRight := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Align: align.Right}
	return row.New(7).Add(
		text.NewCol(3, "Producto", header),
		text.NewCol(2, "Prod. hoy", headerRight),
		text.NewCol(2, "Desp. hoy", headerRight),
		text.NewCol(2, "Disponible", headerRight),
		text.NewCol(1, "%", headerRight),
		text.NewCol(2, "Salud", headerRight),
	)
}

// productRows: una fila por producto, ordenadas por clave para que el informe
// sea estable entre generaciones.
func productRows(snap dto.StockSnapshotDTO) []core.Row {
	keys := make([]string, 0, len(snap.Products))
	for key := range snap.Products {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	cell := props.Text{Size: 8}
	cellRight := props.Text{Size: 8, Align: align.Right}
	rows := make([]core.Row, 0, len(keys))
	for _, key := range keys {
		p := snap.Products[key]
		rows = append(rows, row.New(6).Add(
			text.NewCol(3, key, cell),
			text.NewCol(2, p.ProducedToday.String(), cellRight),
			text.NewCol(2, p.DispatchedToday.String(), cellRight),
			text.NewCol(2, p.AvailableCumulative.String(), cellRight),
			text.NewCol(1, p.PercentRemaining.String(), cellRight),
			text.NewCol(2, p.Health, cellRight),
		))
	}
	return rows
}

func summaryRows(snap dto.StockSnapshotDTO) []core.Row {
	label := props.Text{Size: 9, Color: colorGray}
	value := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}
	return []core.Row{
		row.New(6).Add(
			text.NewCol(8, "Total producido hoy", label),
			text.NewCol(4, snap.TotalProducedToday.String(), value),
		),
		row.New(6).Add(
			text.NewCol(8, "Merma total hoy", label),
			text.NewCol(4, snap.TotalWastageToday.String(), value),
		),
		row.New(6).Add(
			text.NewCol(8, "Registros aprobados / pendientes", label),
			text.NewCol(4, fmt.Sprintf("%d / %d", snap.ApprovedCount, snap.PendingCount), value),
		),
	}
}
