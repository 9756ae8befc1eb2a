package filter

import "github.com/jhoicas/gestao-fornecedores/internal/domain/entity"

// BonusCriteria criterios de la lista de bonificaciones.
type BonusCriteria struct {
	Status     entity.BonusStatus
	Type       entity.BonusType
	SupplierID string
}

// Bonuses filtra bonificaciones por estado, tipo y proveedor.
func Bonuses(records []entity.Bonus, c BonusCriteria) []entity.Bonus {
	return Where(records, func(b entity.Bonus) bool {
		return matchEnum(c.Status, b.Status) &&
			matchEnum(c.Type, b.Type) &&
			matchID(c.SupplierID, b.SupplierID)
	})
}

// LossCriteria criterios de la lista de pérdidas.
type LossCriteria struct {
	Category         entity.Category
	Reason           entity.LossReason
	ResponsibleParty entity.ResponsibleParty
	Occurred         DateRange // la fecha de ocurrencia debe caer dentro del rango
}

// Losses filtra pérdidas por categoría, motivo, responsable y fecha de ocurrencia.
func Losses(records []entity.Loss, c LossCriteria) []entity.Loss {
	return Where(records, func(l entity.Loss) bool {
		return matchEnum(c.Category, l.Category) &&
			matchEnum(c.Reason, l.Reason) &&
			matchEnum(c.ResponsibleParty, l.ResponsibleParty) &&
			c.Occurred.Contains(l.OccurrenceDate)
	})
}

// NegotiationCriteria criterios del historial de negociaciones.
type NegotiationCriteria struct {
	SupplierID string
	Period     DateRange
}

// Negotiations filtra negociaciones por proveedor y fecha.
func Negotiations(records []entity.Negotiation, c NegotiationCriteria) []entity.Negotiation {
	return Where(records, func(n entity.Negotiation) bool {
		return matchID(c.SupplierID, n.SupplierID) && c.Period.Contains(n.NegotiationDate)
	})
}
