package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestao-fornecedores/internal/application/dto"
	"github.com/jhoicas/gestao-fornecedores/internal/application/usecase"
)

// LossHandler maneja las peticiones HTTP del registro de pérdidas.
type LossHandler struct {
	uc *usecase.LossUseCase
}

// NewLossHandler construye el handler.
func NewLossHandler(uc *usecase.LossUseCase) *LossHandler {
	return &LossHandler{uc: uc}
}

// List godoc
// @Summary      Listar perdas
// @Tags         losses
// @Produce      json
// @Param        category           query  string  false  "Categoria ou all"
// @Param        reason             query  string  false  "Motivo ou all"
// @Param        responsible_party  query  string  false  "Responsável ou all"
// @Param        from               query  string  false  "Data inicial (YYYY-MM-DD)"
// @Param        to                 query  string  false  "Data final (YYYY-MM-DD)"
// @Success      200  {object}  dto.LossListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/losses [get]
func (h *LossHandler) List(c *fiber.Ctx) error {
	criteria, err := lossCriteria(c)
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
// @Summary      Detalhe da perda
// @Tags         losses
// @Produce      json
// @Param        id   path  string  true  "ID da perda"
// @Success      200  {object}  dto.LossResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/losses/{id} [get]
func (h *LossHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), paramID(c))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "Perda não encontrada.")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar perda
// @Tags         losses
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LossRequest  true  "Dados da perda"
// @Success      201   {object}  dto.LossResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/losses [post]
func (h *LossHandler) Create(c *fiber.Ctx) error {
	var in dto.LossRequest
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
// @Summary      Editar perda
// @Description  Substitui o registro mantendo sua posição. ID inexistente não altera nada (204).
// @Tags         losses
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID da perda"
// @Param        body  body  dto.LossRequest  true  "Dados da perda"
// @Success      200   {object}  dto.LossResponse
// @Success      204
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/losses/{id} [put]
func (h *LossHandler) Update(c *fiber.Ctx) error {
	var in dto.LossRequest
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
// @Summary      Excluir perda
// @Tags         losses
// @Param        id       path   string  true  "ID da perda"
// @Param        confirm  query  bool    true  "Confirmação (true)"
// @Success      204
// @Failure      428  {object}  dto.ErrorResponse
// @Router       /api/losses/{id} [delete]
func (h *LossHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), paramID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Export godoc
// @Summary      Exportar perdas
// @Description  Exporta a lista filtrada como perdas.csv ou perdas.pdf.
// @Tags         losses
// @Produce      text/csv,application/pdf
// @Param        format  query  string  false  "csv | pdf"  default(csv)
// @Param        category           query  string  false  "Categoria ou all"
// @Param        reason             query  string  false  "Motivo ou all"
// @Param        responsible_party  query  string  false  "Responsável ou all"
// @Param        from               query  string  false  "Data inicial (YYYY-MM-DD)"
// @Param        to                 query  string  false  "Data final (YYYY-MM-DD)"
// @Success      200
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/losses/export [get]
func (h *LossHandler) Export(c *fiber.Ctx) error {
	criteria, err := lossCriteria(c)
	if err != nil {
		return respondError(c, err)
	}
	file, err := h.uc.Export(c.Context(), criteria, c.Query("format"))
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, file)
}
