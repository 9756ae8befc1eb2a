// Package filter es el motor de filtros del panel: predicados puros sobre las colecciones
// del store. Todos los criterios activos se combinan con AND; un criterio vacío o "all"
// no filtra. El resultado preserva el orden de entrada y nunca es nil.
package filter

import "github.com/jhoicas/gestao-fornecedores/internal/domain/entity"

// All es el valor centinela de los selectores del panel que significa "sin filtro".
const All = "all"

// Where devuelve, en el mismo orden, los registros para los que pred es verdadero.
func Where[T any](records []T, pred func(T) bool) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// matchEnum compara un valor de enumeración contra el criterio ("" o "all" = pasa).
func matchEnum[E ~string](want, got E) bool {
	return want == "" || string(want) == All || want == got
}

// matchID compara IDs exactos; un criterio vacío pasa.
func matchID(want, got string) bool {
	return want == "" || want == got
}

// DateRange rango de consulta en días calendario. Un extremo cero es abierto (−∞ / +∞).
// No se valida que From <= To: un rango invertido simplemente no encuentra nada.
type DateRange struct {
	From entity.Date
	To   entity.Date
}

// IsOpen indica que ninguno de los extremos fue informado.
func (r DateRange) IsOpen() bool {
	return r.From.IsZero() && r.To.IsZero()
}

// Overlaps indica si el intervalo [start, end] comparte al menos un instante con el rango.
// El inicio de la consulta se normaliza a 00:00:00.000 y el fin a 23:59:59.999 (días inclusivos),
// así un intervalo que termina el mismo día en que empieza la consulta se considera solapado.
func (r DateRange) Overlaps(start, end entity.Date) bool {
	if !r.From.IsZero() && end.StartOfDay().Before(r.From.StartOfDay()) {
		return false
	}
	if !r.To.IsZero() && start.StartOfDay().After(r.To.EndOfDay()) {
		return false
	}
	return true
}

// Contains indica si el día d cae dentro del rango (días inclusivos).
func (r DateRange) Contains(d entity.Date) bool {
	return r.Overlaps(d, d)
}
