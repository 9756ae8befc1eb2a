package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jhoicas/gestao-fornecedores/internal/application/dto"
	"github.com/jhoicas/gestao-fornecedores/internal/domain/entity"
	"github.com/jhoicas/gestao-fornecedores/internal/domain/export"
	"github.com/jhoicas/gestao-fornecedores/internal/domain/filter"
	"github.com/jhoicas/gestao-fornecedores/internal/domain/repository"
)

// supplierColumns columnas de fornecedores.csv / fornecedores.pdf.
var supplierColumns = []export.Column[entity.Supplier]{
	{Header: "id", Value: func(s entity.Supplier) any { return s.ID }},
	{Header: "name", Value: func(s entity.Supplier) any { return s.Name }},
	{Header: "tax_id", Value: func(s entity.Supplier) any { return s.TaxID }},
	{Header: "contact_name", Value: func(s entity.Supplier) any { return s.ContactName }},
	{Header: "phone", Value: func(s entity.Supplier) any { return s.Phone }},
	{Header: "category", Value: func(s entity.Supplier) any { return string(s.Category) }},
	{Header: "type", Value: func(s entity.Supplier) any { return string(s.Type) }},
	{Header: "partnership_start_date", Value: func(s entity.Supplier) any { return s.PartnershipStartDate }},
	{Header: "active", Value: func(s entity.Supplier) any { return s.Active }},
	{Header: "rating", Value: func(s entity.Supplier) any { return s.Rating }},
}

// SupplierUseCase casos de uso CRUD, filtro y exportación de proveedores.
type SupplierUseCase struct {
	repo     repository.SupplierRepository
	exporter *Exporter
	log      zerolog.Logger
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository, exporter *Exporter, log zerolog.Logger) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, exporter: exporter, log: log.With().Str("collection", "suppliers").Logger()}
}

// List devuelve los proveedores que cumplen los criterios, en el orden de la colección.
func (uc *SupplierUseCase) List(ctx context.Context, c filter.SupplierCriteria) (*dto.SupplierListResponse, error) {
	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	list := filter.Suppliers(all, c)
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, toSupplierResponse(s))
	}
	return &dto.SupplierListResponse{Items: items, Total: len(items)}, nil
}

// GetByID obtiene un proveedor; (nil, nil) si no existe.
func (uc *SupplierUseCase) GetByID(ctx context.Context, id string) (*dto.SupplierResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil || s == nil {
		return nil, err
	}
	out := toSupplierResponse(*s)
	return &out, nil
}

// Create da de alta un proveedor con ID nuevo; queda primero en la lista.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	id, err := newRecordID()
	if err != nil {
		return nil, err
	}
	s := fromSupplierRequest(id, in)
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	uc.log.Info().Str("id", id).Str("name", s.Name).Msg("fornecedor cadastrado")
	out := toSupplierResponse(s)
	return &out, nil
}

// Update reemplaza el proveedor conservando su posición.
// Si el ID no existe no hace nada y devuelve (nil, nil).
func (uc *SupplierUseCase) Update(ctx context.Context, id string, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	s := fromSupplierRequest(id, in)
	found, err := uc.repo.Update(ctx, s)
	if err != nil {
		return nil, err
	}
	if !found {
		uc.log.Debug().Str("id", id).Msg("update ignorado: id inexistente")
		return nil, nil
	}
	uc.log.Info().Str("id", id).Msg("fornecedor atualizado")
	out := toSupplierResponse(s)
	return &out, nil
}

// Delete elimina el proveedor; un ID inexistente no es error.
func (uc *SupplierUseCase) Delete(ctx context.Context, id string) error {
	removed, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	uc.log.Info().Str("id", id).Bool("removed", removed).Msg("fornecedor excluído")
	return nil
}

// Export serializa la lista filtrada como fornecedores.<formato>.
func (uc *SupplierUseCase) Export(ctx context.Context, c filter.SupplierCriteria, format string) (*dto.ExportFile, error) {
	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return exportRecords(ctx, uc.exporter, format, "fornecedores", "Fornecedores", supplierColumns, filter.Suppliers(all, c))
}

func fromSupplierRequest(id string, in dto.SupplierRequest) entity.Supplier {
	return entity.Supplier{
		ID:                   id,
		Name:                 in.Name,
		TaxID:                in.TaxID,
		ContactName:          in.ContactName,
		Phone:                in.Phone,
		Category:             in.Category,
		Type:                 in.Type,
		PartnershipStartDate: in.PartnershipStartDate,
		Active:               in.Active,
		Rating:               in.Rating,
	}
}

func toSupplierResponse(s entity.Supplier) dto.SupplierResponse {
	return dto.SupplierResponse{
		ID:                   s.ID,
		Name:                 s.Name,
		TaxID:                s.TaxID,
		ContactName:          s.ContactName,
		Phone:                s.Phone,
		Category:             s.Category,
		Type:                 s.Type,
		PartnershipStartDate: s.PartnershipStartDate,
		Active:               s.Active,
		Rating:               s.Rating,
	}
}
