package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestao-fornecedores/internal/application/dto"
	"github.com/jhoicas/gestao-fornecedores/internal/application/usecase"
)

// NegotiationHandler maneja las peticiones HTTP del historial de negociaciones.
type NegotiationHandler struct {
	uc *usecase.NegotiationUseCase
}

// NewNegotiationHandler construye el handler.
func NewNegotiationHandler(uc *usecase.NegotiationUseCase) *NegotiationHandler {
	return &NegotiationHandler{uc: uc}
}

// List godoc
// @Summary      Histórico de negociações
// @Tags         negotiations
// @Produce      json
// @Param        supplier_id  query  string  false  "ID do fornecedor"
// @Param        from         query  string  false  "Data inicial (YYYY-MM-DD)"
// @Param        to           query  string  false  "Data final (YYYY-MM-DD)"
// @Success      200  {object}  dto.NegotiationListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/negotiations [get]
func (h *NegotiationHandler) List(c *fiber.Ctx) error {
	criteria, err := negotiationCriteria(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.List(c.Context(), criteria)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obter negociação por ID
// @Tags         negotiations
// @Produce      json
// @Param        id   path  string  true  "ID da negociação"
// @Success      200  {object}  dto.NegotiationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/negotiations/{id} [get]
func (h *NegotiationHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), paramID(c))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "Negociação não encontrada.")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar negociação
// @Tags         negotiations
// @Accept       json
// @Produce      json
// @Param        body  body  dto.NegotiationRequest  true  "Dados da negociação"
// @Success      201   {object}  dto.NegotiationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/negotiations [post]
func (h *NegotiationHandler) Create(c *fiber.Ctx) error {
	var in dto.NegotiationRequest
	if ok, err := bindAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar negociação
// @Description  Substitui o registro mantendo sua posição. ID inexistente não altera nada (204).
// @Tags         negotiations
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID da negociação"
// @Param        body  body  dto.NegotiationRequest  true  "Dados da negociação"
// @Success      200   {object}  dto.NegotiationResponse
// @Success      204
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/negotiations/{id} [put]
func (h *NegotiationHandler) Update(c *fiber.Ctx) error {
	var in dto.NegotiationRequest
	if ok, err := bindAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.Update(c.Context(), paramID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir negociação
// @Tags         negotiations
// @Param        id       path   string  true  "ID da negociação"
// @Param        confirm  query  bool    true  "Confirmação (true)"
// @Success      204
// @Failure      428  {object}  dto.ErrorResponse
// @Router       /api/negotiations/{id} [delete]
func (h *NegotiationHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), paramID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Export godoc
// @Summary      Exportar negociações
// @Description  Exporta a lista filtrada como negociacoes.csv ou negociacoes.pdf.
// @Tags         negotiations
// @Produce      text/csv,application/pdf
// @Param        format  query  string  false  "csv | pdf"  default(csv)
// @Param        supplier_id  query  string  false  "ID do fornecedor"
// @Param        from         query  string  false  "Data inicial (YYYY-MM-DD)"
// @Param        to           query  string  false  "Data final (YYYY-MM-DD)"
// @Success      200
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/negotiations/export [get]
func (h *NegotiationHandler) Export(c *fiber.Ctx) error {
	criteria, err := negotiationCriteria(c)
	if err != nil {
		return respondError(c, err)
	}
	file, err := h.uc.Export(c.Context(), criteria, c.Query("format"))
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, file)
}
