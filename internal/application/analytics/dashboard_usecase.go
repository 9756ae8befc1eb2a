// Package analytics contiene los casos de uso del panel de indicadores.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestao-fornecedores/internal/application/dto"
	"github.com/jhoicas/gestao-fornecedores/internal/domain/entity"
	"github.com/jhoicas/gestao-fornecedores/internal/domain/filter"
	"github.com/jhoicas/gestao-fornecedores/internal/domain/repository"
	"github.com/jhoicas/gestao-fornecedores/pkg/money"
)

var hundred = decimal.NewFromInt(100)

// DashboardUseCase calcula los KPIs del panel a partir de las colecciones.
//
// Fuente de datos: los repositorios de registros (solo lectura).
type DashboardUseCase struct {
	suppliers    repository.SupplierRepository
	bonuses      repository.BonusRepository
	losses       repository.LossRepository
	gondolas     repository.GondolaContractRepository
	negotiations repository.NegotiationRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	suppliers repository.SupplierRepository,
	bonuses repository.BonusRepository,
	losses repository.LossRepository,
	gondolas repository.GondolaContractRepository,
	negotiations repository.NegotiationRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		suppliers:    suppliers,
		bonuses:      bonuses,
		losses:       losses,
		gondolas:     gondolas,
		negotiations: negotiations,
	}
}

type listResult[T any] struct {
	items []T
	err   error
}

func load[T entity.Record](ctx context.Context, repo repository.RecordRepository[T]) <-chan listResult[T] {
	ch := make(chan listResult[T], 1)
	go func() {
		items, err := repo.List(ctx)
		ch <- listResult[T]{items, err}
	}()
	return ch
}

// GetSummary construye el DashboardSummaryDTO del mes que contiene ref.
//
// Las cinco colecciones se leen en paralelo; los cálculos son en memoria.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, ref time.Time) (*dto.DashboardSummaryDTO, error) {
	// ── Rango del mes: día 1 – último día, ambos inclusive ────────────────────
	first := entity.NewDate(ref.Year(), ref.Month(), 1)
	last := entity.NewDate(ref.Year(), ref.Month()+1, 0)
	month := filter.DateRange{From: first, To: last}

	suppliersCh := load(ctx, uc.suppliers)
	bonusesCh := load(ctx, uc.bonuses)
	lossesCh := load(ctx, uc.losses)
	gondolasCh := load(ctx, uc.gondolas)
	negotiationsCh := load(ctx, uc.negotiations)

	suppliers := <-suppliersCh
	bonuses := <-bonusesCh
	losses := <-lossesCh
	gondolas := <-gondolasCh
	negotiations := <-negotiationsCh

	if suppliers.err != nil {
		return nil, fmt.Errorf("dashboard: fornecedores: %w", suppliers.err)
	}
	if bonuses.err != nil {
		return nil, fmt.Errorf("dashboard: bonificações: %w", bonuses.err)
	}
	if losses.err != nil {
		return nil, fmt.Errorf("dashboard: perdas: %w", losses.err)
	}
	if gondolas.err != nil {
		return nil, fmt.Errorf("dashboard: gôndolas: %w", gondolas.err)
	}
	if negotiations.err != nil {
		return nil, fmt.Errorf("dashboard: negociações: %w", negotiations.err)
	}

	received := receivedBonuses(bonuses.items, month)
	monthLosses := lossesTotal(losses.items, month)
	active, ending := activeGondolas(gondolas.items, month)

	return &dto.DashboardSummaryDTO{
		Month:                 fmt.Sprintf("%04d-%02d", ref.Year(), ref.Month()),
		DateLabel:             monthLabel(ref),
		ReceivedBonuses:       received,
		ReceivedBonusesLabel:  money.FormatBRL(received),
		MonthLosses:           monthLosses,
		MonthLossesLabel:      money.FormatBRL(monthLosses),
		ActiveGondolas:        active,
		GondolasEndingInMonth: ending,
		BestSupplier:          bestSupplier(suppliers.items),
		LossesByCategory:      lossesByCategory(losses.items),
		NegotiationsPerMonth:  negotiationsPerMonth(negotiations.items),
		NegotiationGainBars:   gainBars(negotiations.items),
	}, nil
}

// receivedBonuses suma las bonificaciones recibidas negociadas dentro del mes.
func receivedBonuses(bonuses []entity.Bonus, month filter.DateRange) decimal.Decimal {
	total := decimal.Zero
	for _, b := range filter.Bonuses(bonuses, filter.BonusCriteria{Status: entity.BonusStatusReceived}) {
		if month.Contains(b.NegotiationDate) {
			total = total.Add(b.TotalValue)
		}
	}
	return total.Round(2)
}

func lossesTotal(losses []entity.Loss, month filter.DateRange) decimal.Decimal {
	total := decimal.Zero
	for _, l := range filter.Losses(losses, filter.LossCriteria{Occurred: month}) {
		total = total.Add(l.TotalValue)
	}
	return total.Round(2)
}

// activeGondolas cuenta los contratos activos y cuántos de ellos vencen dentro del mes.
func activeGondolas(contracts []entity.GondolaContract, month filter.DateRange) (active, ending int) {
	for _, g := range filter.GondolaContracts(contracts, filter.GondolaCriteria{Status: entity.ContractActive}) {
		active++
		if month.Contains(g.ValidityEnd) {
			ending++
		}
	}
	return active, ending
}

// bestSupplier mayor evaluación; ante empate gana el primero de la colección.
func bestSupplier(suppliers []entity.Supplier) *dto.BestSupplierDTO {
	var best *entity.Supplier
	for i := range suppliers {
		if best == nil || suppliers[i].Rating > best.Rating {
			best = &suppliers[i]
		}
	}
	if best == nil {
		return nil
	}
	return &dto.BestSupplierDTO{ID: best.ID, Name: best.Name, Rating: best.Rating}
}

// lossesByCategory suma de pérdidas por categoría, en el orden del panel.
// Las categorías sin pérdidas se omiten.
func lossesByCategory(losses []entity.Loss) []dto.CategoryAmountDTO {
	totals := make(map[entity.Category]decimal.Decimal)
	for _, l := range losses {
		totals[l.Category] = totals[l.Category].Add(l.TotalValue)
	}
	out := make([]dto.CategoryAmountDTO, 0, len(totals))
	for _, c := range entity.Categories() {
		total, ok := totals[c]
		if !ok {
			continue
		}
		rounded := total.Round(2)
		out = append(out, dto.CategoryAmountDTO{
			Category: string(c),
			Total:    rounded,
			Label:    money.FormatBRL(rounded),
		})
	}
	return out
}

// negotiationsPerMonth cantidad y ganancia por mes, en orden cronológico.
func negotiationsPerMonth(negotiations []entity.Negotiation) []dto.MonthlyCountDTO {
	byMonth := make(map[string]*dto.MonthlyCountDTO)
	for _, n := range negotiations {
		if n.NegotiationDate.IsZero() {
			continue
		}
		key := fmt.Sprintf("%04d-%02d", n.NegotiationDate.Year(), n.NegotiationDate.Month())
		m, ok := byMonth[key]
		if !ok {
			m = &dto.MonthlyCountDTO{Month: key, Gain: decimal.Zero}
			byMonth[key] = m
		}
		m.Count++
		m.Gain = m.Gain.Add(n.TotalGain)
	}
	out := make([]dto.MonthlyCountDTO, 0, len(byMonth))
	for _, m := range byMonth {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// gainBars ancho relativo de cada negociación: gain / max(mayor ganancia, 1) × 100.
func gainBars(negotiations []entity.Negotiation) []dto.GainBarDTO {
	maxGain := decimal.NewFromInt(1)
	for _, n := range negotiations {
		if n.TotalGain.GreaterThan(maxGain) {
			maxGain = n.TotalGain
		}
	}
	out := make([]dto.GainBarDTO, 0, len(negotiations))
	for _, n := range negotiations {
		out = append(out, dto.GainBarDTO{
			NegotiationID: n.ID,
			SupplierID:    n.SupplierID,
			Gain:          n.TotalGain,
			Percent:       n.TotalGain.Div(maxGain).Mul(hundred).Round(2),
		})
	}
	return out
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Julho 2024".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
		"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
