package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestao-fornecedores/internal/domain/entity"
)

// GondolaContractRequest cuerpo de alta y edición de contrato de góndola.
// ValidityEnd no puede ser anterior a ValidityStart.
type GondolaContractRequest struct {
	SupplierID    string                `json:"supplier_id" validate:"required"`
	PlacementType entity.PlacementType  `json:"placement_type" validate:"required,enum"`
	AgreedValue   decimal.Decimal       `json:"agreed_value" validate:"gte=0"`
	Counterpart   string                `json:"counterpart"`
	ValidityStart entity.Date           `json:"validity_start" validate:"required"`
	ValidityEnd   entity.Date           `json:"validity_end" validate:"required"`
	Status        entity.ContractStatus `json:"status" validate:"required,enum"`
}

// GondolaContractResponse contrato de góndola en respuestas.
type GondolaContractResponse struct {
	ID            string                `json:"id"`
	SupplierID    string                `json:"supplier_id"`
	PlacementType entity.PlacementType  `json:"placement_type"`
	AgreedValue   decimal.Decimal       `json:"agreed_value"`
	Counterpart   string                `json:"counterpart"`
	ValidityStart entity.Date           `json:"validity_start"`
	ValidityEnd   entity.Date           `json:"validity_end"`
	Status        entity.ContractStatus `json:"status"`
}

// GondolaContractListResponse lista filtrada de contratos de góndola.
type GondolaContractListResponse struct {
	Items []GondolaContractResponse `json:"items"`
	Total int                       `json:"total"`
}
