// Package csv serializa una export.Sheet al formato CSV que importan las planillas:
// separador coma, filas unidas por "\n", UTF-8.
package csv

import (
	"bytes"
	"context"
	"strings"

	"github.com/jhoicas/gestao-fornecedores/internal/domain"
	"github.com/jhoicas/gestao-fornecedores/internal/domain/export"
)

const (
	delimiter = ','
	newline   = '\n'
)

// Writer implementa el renderizador de exportación para CSV.
type Writer struct{}

// NewWriter construye el writer.
func NewWriter() *Writer { return &Writer{} }

// ContentType tipo MIME del archivo generado.
func (w *Writer) ContentType() string { return "text/csv; charset=utf-8" }

// Extension extensión del archivo generado.
func (w *Writer) Extension() string { return "csv" }

// Render serializa la tabla. El título no se usa en CSV.
func (w *Writer) Render(_ context.Context, _ string, sheet export.Sheet) ([]byte, error) {
	return Encode(sheet)
}

// Encode arma el CSV: cabecera y una línea por fila, unidas con "\n" (sin salto final).
// Una Sheet sin filas devuelve domain.ErrNoData.
func Encode(sheet export.Sheet) ([]byte, error) {
	if len(sheet.Rows) == 0 {
		return nil, domain.ErrNoData
	}
	var buf bytes.Buffer
	writeLine(&buf, sheet.Headers)
	for _, row := range sheet.Rows {
		buf.WriteByte(newline)
		writeLine(&buf, row)
	}
	return buf.Bytes(), nil
}

func writeLine(buf *bytes.Buffer, fields []string) {
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(delimiter)
		}
		buf.WriteString(EscapeField(f))
	}
}

// EscapeField aplica la regla de escape: si el texto contiene coma, comillas dobles
// o salto de línea, se envuelve entre comillas y cada comilla interna se duplica.
// En cualquier otro caso se emite sin cambios (incluidos espacios iniciales y "\r").
func EscapeField(s string) string {
	if !strings.ContainsAny(s, `,"`+"\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
