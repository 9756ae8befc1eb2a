package entity

import "github.com/shopspring/decimal"

// BonusType forma en que el proveedor entrega la bonificación.
type BonusType string

const (
	BonusTypeProduct         BonusType = "Produto"
	BonusTypeInvoiceDiscount BonusType = "Desconto em Nota"
	BonusTypeCredit          BonusType = "Crédito"
)

// IsValid indica si t es un tipo de bonificación conocido.
func (t BonusType) IsValid() bool {
	switch t {
	case BonusTypeProduct, BonusTypeInvoiceDiscount, BonusTypeCredit:
		return true
	}
	return false
}

// BonusStatus estado de recepción de la bonificación.
type BonusStatus string

const (
	BonusStatusPending  BonusStatus = "Pendente"
	BonusStatusReceived BonusStatus = "Recebido"
)

// IsValid indica si s es un estado conocido.
func (s BonusStatus) IsValid() bool {
	return s == BonusStatusPending || s == BonusStatusReceived
}

// Bonus bonificación negociada con un proveedor.
// SupplierID no se valida contra la colección de proveedores.
type Bonus struct {
	ID              string
	SupplierID      string
	Type            BonusType
	TotalValue      decimal.Decimal // >= 0
	NegotiationDate Date
	Status          BonusStatus
	Notes           string
}

// RecordID implementa Record.
func (b Bonus) RecordID() string { return b.ID }
