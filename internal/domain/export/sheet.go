// Package export proyecta colecciones homogéneas a una tabla de texto (Sheet)
// que luego serializa un adaptador (CSV, PDF).
//
// El orden de columnas lo fija quien llama con una especificación explícita por
// entidad; no depende del orden de construcción de los registros.
package export

import (
	"fmt"

	"github.com/jhoicas/gestao-fornecedores/internal/domain"
)

// Column define una columna: su nombre en la cabecera y cómo obtener el valor de un registro.
type Column[T any] struct {
	Header string
	Value  func(T) any
}

// Sheet tabla ya proyectada a texto. Todas las filas tienen len(Headers) celdas.
type Sheet struct {
	Headers []string
	Rows    [][]string
}

// Project convierte los registros en una Sheet usando las columnas dadas.
// Devuelve domain.ErrNoData si no hay registros: no se genera un archivo vacío ni sin cabecera.
func Project[T any](columns []Column[T], records []T) (Sheet, error) {
	if len(records) == 0 {
		return Sheet{}, domain.ErrNoData
	}
	if len(columns) == 0 {
		return Sheet{}, fmt.Errorf("%w: exportación sin columnas", domain.ErrInvalidInput)
	}
	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.Header
	}
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		row := make([]string, len(columns))
		for i, col := range columns {
			row[i] = Text(col.Value(rec))
		}
		rows = append(rows, row)
	}
	return Sheet{Headers: headers, Rows: rows}, nil
}

// Text forma textual de un valor de celda: nil → "", Stringer → String(), resto con fmt.
// Fechas y montos implementan Stringer ("2024-07-01", "5000", "12.5").
func Text(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
