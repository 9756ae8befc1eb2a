package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestao-fornecedores/internal/domain/entity"
)

// NegotiationRequest cuerpo de alta y edición de negociación.
type NegotiationRequest struct {
	SupplierID      string          `json:"supplier_id" validate:"required"`
	NegotiationDate entity.Date     `json:"negotiation_date" validate:"required"`
	NegotiatedItems string          `json:"negotiated_items" validate:"required,notblank"`
	CommercialTerms string          `json:"commercial_terms"`
	Outcome         string          `json:"outcome"`
	TotalGain       decimal.Decimal `json:"total_gain" validate:"gte=0"`
}

// NegotiationResponse negociación en respuestas.
type NegotiationResponse struct {
	ID              string          `json:"id"`
	SupplierID      string          `json:"supplier_id"`
	NegotiationDate entity.Date     `json:"negotiation_date"`
	NegotiatedItems string          `json:"negotiated_items"`
	CommercialTerms string          `json:"commercial_terms"`
	Outcome         string          `json:"outcome"`
	TotalGain       decimal.Decimal `json:"total_gain"`
}

// NegotiationListResponse historial filtrado de negociaciones.
type NegotiationListResponse struct {
	Items []NegotiationResponse `json:"items"`
	Total int                   `json:"total"`
}
