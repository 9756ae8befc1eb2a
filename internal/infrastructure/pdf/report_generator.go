// Package pdf genera la versión imprimible de los listados del panel.
//
// Layout de la página A4 apaisada:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del listado          │  Fecha de emisión    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: una columna por campo exportado                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de registros                                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/gestao-fornecedores/internal/domain"
	"github.com/jhoicas/gestao-fornecedores/internal/domain/export"
)

// gridColumns ancho de la grilla de maroto.
const gridColumns = 12

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 3, Green: 105, Blue: 161}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// ReportGenerator renderiza una export.Sheet como PDF usando Maroto v2.
type ReportGenerator struct {
	author string
	now    func() time.Time
}

// NewReportGenerator construye el generador; author se guarda en los metadatos del PDF.
func NewReportGenerator(author string) *ReportGenerator {
	return &ReportGenerator{author: author, now: time.Now}
}

// ContentType tipo MIME del archivo generado.
func (g *ReportGenerator) ContentType() string { return "application/pdf" }

// Extension extensión del archivo generado.
func (g *ReportGenerator) Extension() string { return "pdf" }

// Render genera el PDF del listado y devuelve sus bytes.
func (g *ReportGenerator) Render(_ context.Context, title string, sheet export.Sheet) ([]byte, error) {
	if len(sheet.Rows) == 0 {
		return nil, domain.ErrNoData
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(title, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(title, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	size := columnSize(len(sheet.Headers))
	m.AddRows(tableHeaderRow(sheet.Headers, size))
	for _, r := range tableRows(sheet.Rows, size) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(footerRow(len(sheet.Rows)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha de emisión (der).
func headerRow(title string, now time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Emitido em "+now.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: nombres de columna en negrita.
func tableHeaderRow(headers []string, size int) core.Row {
	cols := make([]core.Col, 0, len(headers))
	for _, h := range headers {
		cols = append(cols, col.New(size).Add(text.New(h, props.Text{
			Style: fontstyle.Bold, Size: 7, Color: colorPrimary, Top: 2, Left: 0.5, Right: 0.5,
		})))
	}
	return row.New(8).Add(cols...)
}

// tableRows: una fila por registro.
func tableRows(rows [][]string, size int) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, cells := range rows {
		cols := make([]core.Col, 0, len(cells))
		for _, cell := range cells {
			cols = append(cols, col.New(size).Add(text.New(cell, props.Text{
				Size: 7, Top: 1, Left: 0.5, Right: 0.5,
			})))
		}
		result = append(result, row.New(10).Add(cols...))
	}
	return result
}

// footerRow: total de registros exportados.
func footerRow(count int) core.Row {
	return row.New(8).Add(col.New(gridColumns).Add(
		text.New(fmt.Sprintf("Total de registros: %d", count), props.Text{
			Size: 8, Align: align.Right, Top: 2, Color: colorGray,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// columnSize reparte la grilla de 12 entre n columnas (mínimo 1 por columna).
func columnSize(n int) int {
	if n <= 0 {
		return gridColumns
	}
	size := gridColumns / n
	if size < 1 {
		return 1
	}
	return size
}
