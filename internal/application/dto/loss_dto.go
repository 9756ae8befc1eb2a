package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestao-fornecedores/internal/domain/entity"
)

// LossRequest cuerpo de alta y edición de pérdida.
// SupplierID es obligatorio solo cuando el responsable es el proveedor.
type LossRequest struct {
	Product          string                  `json:"product" validate:"required,notblank"`
	Category         entity.Category         `json:"category" validate:"required,enum"`
	Reason           entity.LossReason       `json:"reason" validate:"required,enum"`
	Quantity         decimal.Decimal         `json:"quantity" validate:"gt=0"`
	TotalValue       decimal.Decimal         `json:"total_value" validate:"gt=0"`
	ResponsibleParty entity.ResponsibleParty `json:"responsible_party" validate:"required,enum"`
	SupplierID       string                  `json:"supplier_id" validate:"required_if=ResponsibleParty Fornecedor"`
	OccurrenceDate   entity.Date             `json:"occurrence_date" validate:"required,notfuture"`
}

// LossResponse pérdida en respuestas.
type LossResponse struct {
	ID               string                  `json:"id"`
	Product          string                  `json:"product"`
	Category         entity.Category         `json:"category"`
	Reason           entity.LossReason       `json:"reason"`
	Quantity         decimal.Decimal         `json:"quantity"`
	TotalValue       decimal.Decimal         `json:"total_value"`
	ResponsibleParty entity.ResponsibleParty `json:"responsible_party"`
	SupplierID       string                  `json:"supplier_id,omitempty"`
	OccurrenceDate   entity.Date             `json:"occurrence_date"`
}

// LossListResponse lista filtrada de pérdidas.
type LossListResponse struct {
	Items []LossResponse `json:"items"`
	Total int            `json:"total"`
}
