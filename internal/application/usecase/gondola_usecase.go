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

var gondolaColumns = []export.Column[entity.GondolaContract]{
	{Header: "id", Value: func(g entity.GondolaContract) any { return g.ID }},
	{Header: "supplier_id", Value: func(g entity.GondolaContract) any { return g.SupplierID }},
	{Header: "placement_type", Value: func(g entity.GondolaContract) any { return string(g.PlacementType) }},
	{Header: "agreed_value", Value: func(g entity.GondolaContract) any { return g.AgreedValue }},
	{Header: "counterpart", Value: func(g entity.GondolaContract) any { return g.Counterpart }},
	{Header: "validity_start", Value: func(g entity.GondolaContract) any { return g.ValidityStart }},
	{Header: "validity_end", Value: func(g entity.GondolaContract) any { return g.ValidityEnd }},
	{Header: "status", Value: func(g entity.GondolaContract) any { return string(g.Status) }},
}

// GondolaContractUseCase casos de uso de los contratos de punto de góndola.
type GondolaContractUseCase struct {
	repo     repository.GondolaContractRepository
	exporter *Exporter
	log      zerolog.Logger
}

// NewGondolaContractUseCase construye el caso de uso.
func NewGondolaContractUseCase(repo repository.GondolaContractRepository, exporter *Exporter, log zerolog.Logger) *GondolaContractUseCase {
	return &GondolaContractUseCase{repo: repo, exporter: exporter, log: log.With().Str("collection", "gondolas").Logger()}
}

// List devuelve los contratos con el estado pedido cuya vigencia se solapa con el rango.
func (uc *GondolaContractUseCase) List(ctx context.Context, c filter.GondolaCriteria) (*dto.GondolaContractListResponse, error) {
	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	list := filter.GondolaContracts(all, c)
	items := make([]dto.GondolaContractResponse, 0, len(list))
	for _, g := range list {
		items = append(items, toGondolaContractResponse(g))
	}
	return &dto.GondolaContractListResponse{Items: items, Total: len(items)}, nil
}

// GetByID obtiene un contrato; (nil, nil) si no existe.
func (uc *GondolaContractUseCase) GetByID(ctx context.Context, id string) (*dto.GondolaContractResponse, error) {
	g, err := uc.repo.GetByID(ctx, id)
	if err != nil || g == nil {
		return nil, err
	}
	out := toGondolaContractResponse(*g)
	return &out, nil
}

// Create registra un contrato nuevo al inicio de la lista. El estado lo indica quien llama.
func (uc *GondolaContractUseCase) Create(ctx context.Context, in dto.GondolaContractRequest) (*dto.GondolaContractResponse, error) {
	id, err := newRecordID()
	if err != nil {
		return nil, err
	}
	g := fromGondolaContractRequest(id, in)
	if err := uc.repo.Create(ctx, g); err != nil {
		return nil, err
	}
	uc.log.Info().Str("id", id).Str("placement_type", string(g.PlacementType)).Msg("contrato de gôndola registrado")
	out := toGondolaContractResponse(g)
	return &out, nil
}

// Update reemplaza el contrato; ID inexistente → (nil, nil) sin cambios.
func (uc *GondolaContractUseCase) Update(ctx context.Context, id string, in dto.GondolaContractRequest) (*dto.GondolaContractResponse, error) {
	g := fromGondolaContractRequest(id, in)
	found, err := uc.repo.Update(ctx, g)
	if err != nil {
		return nil, err
	}
	if !found {
		uc.log.Debug().Str("id", id).Msg("update ignorado: id inexistente")
		return nil, nil
	}
	out := toGondolaContractResponse(g)
	return &out, nil
}

// Delete elimina el contrato; un ID inexistente no es error.
func (uc *GondolaContractUseCase) Delete(ctx context.Context, id string) error {
	removed, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	uc.log.Info().Str("id", id).Bool("removed", removed).Msg("contrato de gôndola excluído")
	return nil
}

// Export serializa la lista filtrada como pontos_de_gondola.<formato>.
func (uc *GondolaContractUseCase) Export(ctx context.Context, c filter.GondolaCriteria, format string) (*dto.ExportFile, error) {
	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return exportRecords(ctx, uc.exporter, format, "pontos_de_gondola", "Pontos de Gôndola", gondolaColumns, filter.GondolaContracts(all, c))
}

func fromGondolaContractRequest(id string, in dto.GondolaContractRequest) entity.GondolaContract {
	return entity.GondolaContract{
		ID:            id,
		SupplierID:    in.SupplierID,
		PlacementType: in.PlacementType,
		AgreedValue:   in.AgreedValue,
		Counterpart:   in.Counterpart,
		ValidityStart: in.ValidityStart,
		ValidityEnd:   in.ValidityEnd,
		Status:        in.Status,
	}
}

func toGondolaContractResponse(g entity.GondolaContract) dto.GondolaContractResponse {
	return dto.GondolaContractResponse{
		ID:            g.ID,
		SupplierID:    g.SupplierID,
		PlacementType: g.PlacementType,
		AgreedValue:   g.AgreedValue,
		Counterpart:   g.Counterpart,
		ValidityStart: g.ValidityStart,
		ValidityEnd:   g.ValidityEnd,
		Status:        g.Status,
	}
}
