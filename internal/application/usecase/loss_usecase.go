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

var lossColumns = []export.Column[entity.Loss]{
	{Header: "id", Value: func(l entity.Loss) any { return l.ID }},
	{Header: "product", Value: func(l entity.Loss) any { return l.Product }},
	{Header: "category", Value: func(l entity.Loss) any { return string(l.Category) }},
	{Header: "reason", Value: func(l entity.Loss) any { return string(l.Reason) }},
	{Header: "quantity", Value: func(l entity.Loss) any { return l.Quantity }},
	{Header: "total_value", Value: func(l entity.Loss) any { return l.TotalValue }},
	{Header: "responsible_party", Value: func(l entity.Loss) any { return string(l.ResponsibleParty) }},
	{Header: "supplier_id", Value: func(l entity.Loss) any { return l.SupplierID }},
	{Header: "occurrence_date", Value: func(l entity.Loss) any { return l.OccurrenceDate }},
}

// LossUseCase casos de uso del registro de pérdidas.
type LossUseCase struct {
	repo     repository.LossRepository
	exporter *Exporter
	log      zerolog.Logger
}

// NewLossUseCase construye el caso de uso.
func NewLossUseCase(repo repository.LossRepository, exporter *Exporter, log zerolog.Logger) *LossUseCase {
	return &LossUseCase{repo: repo, exporter: exporter, log: log.With().Str("collection", "losses").Logger()}
}

// List devuelve las pérdidas filtradas.
func (uc *LossUseCase) List(ctx context.Context, c filter.LossCriteria) (*dto.LossListResponse, error) {
	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	list := filter.Losses(all, c)
	items := make([]dto.LossResponse, 0, len(list))
	for _, l := range list {
		items = append(items, toLossResponse(l))
	}
	return &dto.LossListResponse{Items: items, Total: len(items)}, nil
}

// GetByID obtiene el detalle de una pérdida; (nil, nil) si no existe.
func (uc *LossUseCase) GetByID(ctx context.Context, id string) (*dto.LossResponse, error) {
	l, err := uc.repo.GetByID(ctx, id)
	if err != nil || l == nil {
		return nil, err
	}
	out := toLossResponse(*l)
	return &out, nil
}

// Create registra una pérdida nueva al inicio de la lista.
func (uc *LossUseCase) Create(ctx context.Context, in dto.LossRequest) (*dto.LossResponse, error) {
	id, err := newRecordID()
	if err != nil {
		return nil, err
	}
	l := fromLossRequest(id, in)
	if err := uc.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	uc.log.Info().Str("id", id).Str("product", l.Product).Str("total_value", l.TotalValue.String()).Msg("perda registrada")
	out := toLossResponse(l)
	return &out, nil
}

// Update reemplaza la pérdida; ID inexistente → (nil, nil) sin cambios.
func (uc *LossUseCase) Update(ctx context.Context, id string, in dto.LossRequest) (*dto.LossResponse, error) {
	l := fromLossRequest(id, in)
	found, err := uc.repo.Update(ctx, l)
	if err != nil {
		return nil, err
	}
	if !found {
		uc.log.Debug().Str("id", id).Msg("update ignorado: id inexistente")
		return nil, nil
	}
	uc.log.Info().Str("id", id).Msg("perda atualizada")
	out := toLossResponse(l)
	return &out, nil
}

// Delete elimina la pérdida; un ID inexistente no es error.
func (uc *LossUseCase) Delete(ctx context.Context, id string) error {
	removed, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	uc.log.Info().Str("id", id).Bool("removed", removed).Msg("perda excluída")
	return nil
}

// Export serializa la lista filtrada como perdas.<formato>.
func (uc *LossUseCase) Export(ctx context.Context, c filter.LossCriteria, format string) (*dto.ExportFile, error) {
	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return exportRecords(ctx, uc.exporter, format, "perdas", "Perdas", lossColumns, filter.Losses(all, c))
}

func fromLossRequest(id string, in dto.LossRequest) entity.Loss {
	return entity.Loss{
		ID:               id,
		Product:          in.Product,
		Category:         in.Category,
		Reason:           in.Reason,
		Quantity:         in.Quantity,
		TotalValue:       in.TotalValue,
		ResponsibleParty: in.ResponsibleParty,
		SupplierID:       in.SupplierID,
		OccurrenceDate:   in.OccurrenceDate,
	}
}

func toLossResponse(l entity.Loss) dto.LossResponse {
	return dto.LossResponse{
		ID:               l.ID,
		Product:          l.Product,
		Category:         l.Category,
		Reason:           l.Reason,
		Quantity:         l.Quantity,
		TotalValue:       l.TotalValue,
		ResponsibleParty: l.ResponsibleParty,
		SupplierID:       l.SupplierID,
		OccurrenceDate:   l.OccurrenceDate,
	}
}
