package ports

import (
	"context"

	"github.com/jhoicas/gestao-fornecedores/internal/domain/export"
)

// SheetRenderer define el puerto de salida para serializar un listado proyectado.
// Cada adaptador (CSV, PDF) se registra por su extensión.
type SheetRenderer interface {
	// Render serializa la tabla; title lo usan los formatos con encabezado (PDF).
	Render(ctx context.Context, title string, sheet export.Sheet) ([]byte, error)
	// ContentType tipo MIME para la descarga.
	ContentType() string
	// Extension extensión sin punto, también usada como nombre del formato ("csv", "pdf").
	Extension() string
}
