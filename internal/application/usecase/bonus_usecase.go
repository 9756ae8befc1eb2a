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

var bonusColumns = []export.Column[entity.Bonus]{
	{Header: "id", Value: func(b entity.Bonus) any { return b.ID }},
	{Header: "supplier_id", Value: func(b entity.Bonus) any { return b.SupplierID }},
	{Header: "type", Value: func(b entity.Bonus) any { return string(b.Type) }},
	{Header: "total_value", Value: func(b entity.Bonus) any { return b.TotalValue }},
	{Header: "negotiation_date", Value: func(b entity.Bonus) any { return b.NegotiationDate }},
	{Header: "status", Value: func(b entity.Bonus) any { return string(b.Status) }},
	{Header: "notes", Value: func(b entity.Bonus) any { return b.Notes }},
}

// BonusUseCase casos de uso del registro de bonificaciones.
type BonusUseCase struct {
	repo     repository.BonusRepository
	exporter *Exporter
	log      zerolog.Logger
}

// NewBonusUseCase construye el caso de uso.
func NewBonusUseCase(repo repository.BonusRepository, exporter *Exporter, log zerolog.Logger) *BonusUseCase {
	return &BonusUseCase{repo: repo, exporter: exporter, log: log.With().Str("collection", "bonuses").Logger()}
}

// List devuelve las bonificaciones filtradas.
func (uc *BonusUseCase) List(ctx context.Context, c filter.BonusCriteria) (*dto.BonusListResponse, error) {
	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	list := filter.Bonuses(all, c)
	items := make([]dto.BonusResponse, 0, len(list))
	for _, b := range list {
		items = append(items, toBonusResponse(b))
	}
	return &dto.BonusListResponse{Items: items, Total: len(items)}, nil
}

// GetByID obtiene una bonificación; (nil, nil) si no existe.
func (uc *BonusUseCase) GetByID(ctx context.Context, id string) (*dto.BonusResponse, error) {
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil || b == nil {
		return nil, err
	}
	out := toBonusResponse(*b)
	return &out, nil
}

// Create registra una bonificación nueva al inicio de la lista.
func (uc *BonusUseCase) Create(ctx context.Context, in dto.BonusRequest) (*dto.BonusResponse, error) {
	id, err := newRecordID()
	if err != nil {
		return nil, err
	}
	b := fromBonusRequest(id, in)
	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	uc.log.Info().Str("id", id).Str("supplier_id", b.SupplierID).Msg("bonificação registrada")
	out := toBonusResponse(b)
	return &out, nil
}

// Update reemplaza la bonificación; ID inexistente → (nil, nil) sin cambios.
func (uc *BonusUseCase) Update(ctx context.Context, id string, in dto.BonusRequest) (*dto.BonusResponse, error) {
	b := fromBonusRequest(id, in)
	found, err := uc.repo.Update(ctx, b)
	if err != nil {
		return nil, err
	}
	if !found {
		uc.log.Debug().Str("id", id).Msg("update ignorado: id inexistente")
		return nil, nil
	}
	out := toBonusResponse(b)
	return &out, nil
}

// Delete elimina la bonificación; un ID inexistente no es error.
func (uc *BonusUseCase) Delete(ctx context.Context, id string) error {
	removed, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	uc.log.Info().Str("id", id).Bool("removed", removed).Msg("bonificação excluída")
	return nil
}

// Export serializa la lista filtrada como bonificacoes.<formato>.
func (uc *BonusUseCase) Export(ctx context.Context, c filter.BonusCriteria, format string) (*dto.ExportFile, error) {
	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return exportRecords(ctx, uc.exporter, format, "bonificacoes", "Bonificações", bonusColumns, filter.Bonuses(all, c))
}

func fromBonusRequest(id string, in dto.BonusRequest) entity.Bonus {
	return entity.Bonus{
		ID:              id,
		SupplierID:      in.SupplierID,
		Type:            in.Type,
		TotalValue:      in.TotalValue,
		NegotiationDate: in.NegotiationDate,
		Status:          in.Status,
		Notes:           in.Notes,
	}
}

func toBonusResponse(b entity.Bonus) dto.BonusResponse {
	return dto.BonusResponse{
		ID:              b.ID,
		SupplierID:      b.SupplierID,
		Type:            b.Type,
		TotalValue:      b.TotalValue,
		NegotiationDate: b.NegotiationDate,
		Status:          b.Status,
		Notes:           b.Notes,
	}
}
