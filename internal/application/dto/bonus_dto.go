package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestao-fornecedores/internal/domain/entity"
)

// BonusRequest cuerpo de alta y edición de bonificación.
type BonusRequest struct {
	SupplierID      string             `json:"supplier_id" validate:"required"`
	Type            entity.BonusType   `json:"type" validate:"required,enum"`
	TotalValue      decimal.Decimal    `json:"total_value" validate:"gte=0"`
	NegotiationDate entity.Date        `json:"negotiation_date" validate:"required"`
	Status          entity.BonusStatus `json:"status" validate:"required,enum"`
	Notes           string             `json:"notes"`
}

// BonusResponse bonificación en respuestas.
type BonusResponse struct {
	ID              string             `json:"id"`
	SupplierID      string             `json:"supplier_id"`
	Type            entity.BonusType   `json:"type"`
	TotalValue      decimal.Decimal    `json:"total_value"`
	NegotiationDate entity.Date        `json:"negotiation_date"`
	Status          entity.BonusStatus `json:"status"`
	Notes           string             `json:"notes"`
}

// BonusListResponse lista filtrada de bonificaciones.
type BonusListResponse struct {
	Items []BonusResponse `json:"items"`
	Total int             `json:"total"`
}
