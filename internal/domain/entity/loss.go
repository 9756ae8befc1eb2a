package entity

import "github.com/shopspring/decimal"

// LossReason motivo de la pérdida.
type LossReason string

const (
	LossReasonExpiration          LossReason = "Vencimento"
	LossReasonDamage              LossReason = "Avaria"
	LossReasonTheft               LossReason = "Furto"
	LossReasonOperationalBreakage LossReason = "Quebra Operacional"
)

// IsValid indica si r es un motivo conocido.
func (r LossReason) IsValid() bool {
	switch r {
	case LossReasonExpiration, LossReasonDamage, LossReasonTheft, LossReasonOperationalBreakage:
		return true
	}
	return false
}

// ResponsibleParty responsable de la pérdida.
type ResponsibleParty string

const (
	ResponsibleStore     ResponsibleParty = "Loja"
	ResponsibleSupplier  ResponsibleParty = "Fornecedor"
	ResponsibleTransport ResponsibleParty = "Transporte"
)

// IsValid indica si p es un responsable conocido.
func (p ResponsibleParty) IsValid() bool {
	switch p {
	case ResponsibleStore, ResponsibleSupplier, ResponsibleTransport:
		return true
	}
	return false
}

// Loss registro de pérdida de mercadería.
// SupplierID solo es obligatorio cuando ResponsibleParty es ResponsibleSupplier.
type Loss struct {
	ID               string
	Product          string
	Category         Category
	Reason           LossReason
	Quantity         decimal.Decimal // > 0
	TotalValue       decimal.Decimal // > 0
	ResponsibleParty ResponsibleParty
	SupplierID       string
	OccurrenceDate   Date
}

// RecordID implementa Record.
func (l Loss) RecordID() string { return l.ID }
