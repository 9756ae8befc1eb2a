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

var negotiationColumns = []export.Column[entity.Negotiation]{
	{Header: "id", Value: func(n entity.Negotiation) any { return n.ID }},
	{Header: "supplier_id", Value: func(n entity.Negotiation) any { return n.SupplierID }},
	{Header: "negotiation_date", Value: func(n entity.Negotiation) any { return n.NegotiationDate }},
	{Header: "negotiated_items", Value: func(n entity.Negotiation) any { return n.NegotiatedItems }},
	{Header: "commercial_terms", Value: func(n entity.Negotiation) any { return n.CommercialTerms }},
	{Header: "outcome", Value: func(n entity.Negotiation) any { return n.Outcome }},
	{Header: "total_gain", Value: func(n entity.Negotiation) any { return n.TotalGain }},
}

// NegotiationUseCase casos de uso del historial de negociaciones.
type NegotiationUseCase struct {
	repo     repository.NegotiationRepository
	exporter *Exporter
	log      zerolog.Logger
}

// NewNegotiationUseCase construye el caso de uso.
func NewNegotiationUseCase(repo repository.NegotiationRepository, exporter *Exporter, log zerolog.Logger) *NegotiationUseCase {
	return &NegotiationUseCase{repo: repo, exporter: exporter, log: log.With().Str("collection", "negotiations").Logger()}
}

// List devuelve las negociaciones filtradas.
func (uc *NegotiationUseCase) List(ctx context.Context, c filter.NegotiationCriteria) (*dto.NegotiationListResponse, error) {
	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	list := filter.Negotiations(all, c)
	items := make([]dto.NegotiationResponse, 0, len(list))
	for _, n := range list {
		items = append(items, toNegotiationResponse(n))
	}
	return &dto.NegotiationListResponse{Items: items, Total: len(items)}, nil
}

// GetByID obtiene una negociación; (nil, nil) si no existe.
func (uc *NegotiationUseCase) GetByID(ctx context.Context, id string) (*dto.NegotiationResponse, error) {
	n, err := uc.repo.GetByID(ctx, id)
	if err != nil || n == nil {
		return nil, err
	}
	out := toNegotiationResponse(*n)
	return &out, nil
}

// Create registra una negociación nueva al inicio del historial.
func (uc *NegotiationUseCase) Create(ctx context.Context, in dto.NegotiationRequest) (*dto.NegotiationResponse, error) {
	id, err := newRecordID()
	if err != nil {
		return nil, err
	}
	n := fromNegotiationRequest(id, in)
	if err := uc.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	uc.log.Info().Str("id", id).Str("total_gain", n.TotalGain.String()).Msg("negociação registrada")
	out := toNegotiationResponse(n)
	return &out, nil
}

// Update reemplaza la negociación; ID inexistente → (nil, nil) sin cambios.
func (uc *NegotiationUseCase) Update(ctx context.Context, id string, in dto.NegotiationRequest) (*dto.NegotiationResponse, error) {
	n := fromNegotiationRequest(id, in)
	found, err := uc.repo.Update(ctx, n)
	if err != nil {
		return nil, err
	}
	if !found {
		uc.log.Debug().Str("id", id).Msg("update ignorado: id inexistente")
		return nil, nil
	}
	out := toNegotiationResponse(n)
	return &out, nil
}

// Delete elimina la negociación; un ID inexistente no es error.
func (uc *NegotiationUseCase) Delete(ctx context.Context, id string) error {
	removed, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	uc.log.Info().Str("id", id).Bool("removed", removed).Msg("negociação excluída")
	return nil
}

// Export serializa el historial filtrado como negociacoes.<formato>.
func (uc *NegotiationUseCase) Export(ctx context.Context, c filter.NegotiationCriteria, format string) (*dto.ExportFile, error) {
	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return exportRecords(ctx, uc.exporter, format, "negociacoes", "Negociações", negotiationColumns, filter.Negotiations(all, c))
}

func fromNegotiationRequest(id string, in dto.NegotiationRequest) entity.Negotiation {
	return entity.Negotiation{
		ID:              id,
		SupplierID:      in.SupplierID,
		NegotiationDate: in.NegotiationDate,
		NegotiatedItems: in.NegotiatedItems,
		CommercialTerms: in.CommercialTerms,
		Outcome:         in.Outcome,
		TotalGain:       in.TotalGain,
	}
}

func toNegotiationResponse(n entity.Negotiation) dto.NegotiationResponse {
	return dto.NegotiationResponse{
		ID:              n.ID,
		SupplierID:      n.SupplierID,
		NegotiationDate: n.NegotiationDate,
		NegotiatedItems: n.NegotiatedItems,
		CommercialTerms: n.CommercialTerms,
		Outcome:         n.Outcome,
		TotalGain:       n.TotalGain,
	}
}
