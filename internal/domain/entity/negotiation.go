package entity

import "github.com/shopspring/decimal"

// Negotiation registro de una negociación comercial con un proveedor.
type Negotiation struct {
	ID              string
	SupplierID      string
	NegotiationDate Date
	NegotiatedItems string
	CommercialTerms string
	Outcome         string
	TotalGain       decimal.Decimal // puede ser cero
}

// RecordID implementa Record.
func (n Negotiation) RecordID() string { return n.ID }
