package entity

import "github.com/shopspring/decimal"

// PlacementType tipo de punto de exposición contratado.
type PlacementType string

const (
	PlacementEndCap   PlacementType = "Ponta de gôndola"
	PlacementIsland   PlacementType = "Ilha"
	PlacementCheckout PlacementType = "Checkout"
	PlacementDisplay  PlacementType = "Display"
)

// IsValid indica si p es un tipo de punto conocido.
func (p PlacementType) IsValid() bool {
	switch p {
	case PlacementEndCap, PlacementIsland, PlacementCheckout, PlacementDisplay:
		return true
	}
	return false
}

// ContractStatus estado del contrato de góndola. Lo asigna quien registra el contrato;
// no se recalcula a partir de la vigencia.
type ContractStatus string

const (
	ContractActive  ContractStatus = "Ativo"
	ContractExpired ContractStatus = "Expirado"
)

// IsValid indica si s es un estado conocido.
func (s ContractStatus) IsValid() bool {
	return s == ContractActive || s == ContractExpired
}

// GondolaContract contrato de punto de góndola con un proveedor.
// La vigencia es el intervalo cerrado [ValidityStart, ValidityEnd] en días.
type GondolaContract struct {
	ID            string
	SupplierID    string
	PlacementType PlacementType
	AgreedValue   decimal.Decimal
	Counterpart   string // contrapartida no monetaria
	ValidityStart Date
	ValidityEnd   Date
	Status        ContractStatus
}

// RecordID implementa Record.
func (g GondolaContract) RecordID() string { return g.ID }
