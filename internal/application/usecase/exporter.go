package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/gestao-fornecedores/internal/application/dto"
	"github.com/jhoicas/gestao-fornecedores/internal/application/ports"
	"github.com/jhoicas/gestao-fornecedores/internal/domain"
	"github.com/jhoicas/gestao-fornecedores/internal/domain/export"
)

// DefaultExportFormat formato usado cuando la petición no indica ninguno.
const DefaultExportFormat = "csv"

// Exporter resuelve el renderizador por formato y arma el archivo de descarga.
type Exporter struct {
	renderers map[string]ports.SheetRenderer
}

// NewExporter registra los renderizadores por su extensión.
func NewExporter(renderers ...ports.SheetRenderer) *Exporter {
	m := make(map[string]ports.SheetRenderer, len(renderers))
	for _, r := range renderers {
		m[r.Extension()] = r
	}
	return &Exporter{renderers: m}
}

// Formats formatos disponibles, ordenados.
func (e *Exporter) Formats() []string {
	out := make([]string, 0, len(e.renderers))
	for f := range e.renderers {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

func (e *Exporter) renderer(format string) (ports.SheetRenderer, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = DefaultExportFormat
	}
	r, ok := e.renderers[format]
	if !ok {
		return nil, fmt.Errorf("%w: formato de exportação %q não suportado", domain.ErrInvalidInput, format)
	}
	return r, nil
}

// exportRecords proyecta los registros con las columnas de la entidad y los serializa
// en el formato pedido. Sin registros devuelve domain.ErrNoData y no genera archivo.
func exportRecords[T any](
	ctx context.Context,
	e *Exporter,
	format, basename, title string,
	columns []export.Column[T],
	records []T,
) (*dto.ExportFile, error) {
	r, err := e.renderer(format)
	if err != nil {
		return nil, err
	}
	sheet, err := export.Project(columns, records)
	if err != nil {
		return nil, err
	}
	content, err := r.Render(ctx, title, sheet)
	if err != nil {
		return nil, fmt.Errorf("exportar %s: %w", basename, err)
	}
	return &dto.ExportFile{
		Filename:    basename + "." + r.Extension(),
		ContentType: r.ContentType(),
		Content:     content,
	}, nil
}
