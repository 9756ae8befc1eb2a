package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Los KPIs se calculan sobre el mes de referencia (por defecto el mes en curso).
type DashboardSummaryDTO struct {
	Month     string `json:"month"`      // YYYY-MM
	DateLabel string `json:"date_label"` // ej: "Julho 2024"

	// Bonificaciones recibidas y pérdidas ocurridas dentro del mes.
	ReceivedBonuses      decimal.Decimal `json:"received_bonuses"`
	ReceivedBonusesLabel string          `json:"received_bonuses_label"`
	MonthLosses          decimal.Decimal `json:"month_losses"`
	MonthLossesLabel     string          `json:"month_losses_label"`

	// Contratos activos y cuántos de ellos vencen dentro del mes.
	ActiveGondolas        int `json:"active_gondolas"`
	GondolasEndingInMonth int `json:"gondolas_ending_in_month"`

	BestSupplier *BestSupplierDTO `json:"best_supplier,omitempty"`

	LossesByCategory     []CategoryAmountDTO `json:"losses_by_category"`
	NegotiationsPerMonth []MonthlyCountDTO   `json:"negotiations_per_month"`
	NegotiationGainBars  []GainBarDTO        `json:"negotiation_gain_bars"`
}

// BestSupplierDTO proveedor con la mejor evaluación.
type BestSupplierDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Rating int    `json:"rating"`
}

// CategoryAmountDTO suma de valores por categoría.
type CategoryAmountDTO struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Label    string          `json:"label"` // "R$ 1.234,56"
}

// MonthlyCountDTO cantidad de negociaciones y ganancia total por mes (YYYY-MM).
type MonthlyCountDTO struct {
	Month string          `json:"month"`
	Count int             `json:"count"`
	Gain  decimal.Decimal `json:"gain"`
}

// GainBarDTO barra del gráfico de ganancias: Percent = gain / max(ganancias, 1) × 100.
type GainBarDTO struct {
	NegotiationID string          `json:"negotiation_id"`
	SupplierID    string          `json:"supplier_id"`
	Gain          decimal.Decimal `json:"gain"`
	Percent       decimal.Decimal `json:"percent"`
}
