package dto

import "github.com/jhoicas/gestao-fornecedores/internal/domain/entity"

// SupplierRequest cuerpo de alta y edición de proveedor.
type SupplierRequest struct {
	Name                 string              `json:"name" validate:"required,notblank"`
	TaxID                string              `json:"tax_id" validate:"required,cnpj"`
	ContactName          string              `json:"contact_name" validate:"required,notblank"`
	Phone                string              `json:"phone" validate:"required,notblank"`
	Category             entity.Category     `json:"category" validate:"required,enum"`
	Type                 entity.SupplierType `json:"type" validate:"required,enum"`
	PartnershipStartDate entity.Date         `json:"partnership_start_date" validate:"required,notfuture"`
	Active               bool                `json:"active"`
	Rating               int                 `json:"rating" validate:"min=1,max=5"`
}

// SupplierResponse proveedor en respuestas.
type SupplierResponse struct {
	ID                   string              `json:"id"`
	Name                 string              `json:"name"`
	TaxID                string              `json:"tax_id"`
	ContactName          string              `json:"contact_name"`
	Phone                string              `json:"phone"`
	Category             entity.Category     `json:"category"`
	Type                 entity.SupplierType `json:"type"`
	PartnershipStartDate entity.Date         `json:"partnership_start_date"`
	Active               bool                `json:"active"`
	Rating               int                 `json:"rating"`
}

// SupplierListResponse lista filtrada de proveedores.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Total int                `json:"total"`
}
