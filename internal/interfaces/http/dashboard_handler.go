package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/gestao-fornecedores/internal/application/analytics"
	"github.com/jhoicas/gestao-fornecedores/internal/application/dto"
)

// DashboardHandler maneja los endpoints del panel de indicadores.
type DashboardHandler struct {
	uc  *appanalytics.DashboardUseCase
	now func() time.Time
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc, now: time.Now}
}

// GetSummary devuelve los KPIs del mes de referencia.
// GET /api/dashboard/summary?month=YYYY-MM
//
// Respuesta: DashboardSummaryDTO (received_bonuses, month_losses, active_gondolas,
// best_supplier, losses_by_category, negotiations_per_month, negotiation_gain_bars).
// Sin month se usa el mes en curso (UTC).
//
// @Summary      Resumo do painel
// @Tags         dashboard
// @Produce      json
// @Param        month  query  string  false  "Mês de referência (YYYY-MM)"
// @Success      200    {object}  dto.DashboardSummaryDTO
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	ref := h.now().UTC()
	if raw := strings.TrimSpace(c.Query("month")); raw != "" {
		t, err := time.Parse("2006-01", raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "INVALID_QUERY", Message: "month deve estar no formato YYYY-MM",
			})
		}
		ref = t
	}

	summary, err := h.uc.GetSummary(c.Context(), ref)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
