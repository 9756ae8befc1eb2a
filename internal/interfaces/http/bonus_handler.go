package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestao-fornecedores/internal/application/dto"
	"github.com/jhoicas/gestao-fornecedores/internal/application/usecase"
)

// BonusHandler maneja las peticiones HTTP del registro de bonificaciones.
type BonusHandler struct {
	uc *usecase.BonusUseCase
}

// NewBonusHandler construye el handler.
func NewBonusHandler(uc *usecase.BonusUseCase) *BonusHandler {
	return &BonusHandler{uc: uc}
}

// List godoc
// @Summary      Listar bonificações
// @Tags         bonuses
// @Produce      json
// @Param        status       query  string  false  "Pendente | Recebido | all"
// @Param        type         query  string  false  "Tipo ou all"
// @Param        supplier_id  query  string  false  "ID do fornecedor"
// @Success      200  {object}  dto.BonusListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/bonuses [get]
func (h *BonusHandler) List(c *fiber.Ctx) error {
	criteria, err := bonusCriteria(c)
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
// @Summary      Obter bonificação por ID
// @Tags         bonuses
// @Produce      json
// @Param        id   path  string  true  "ID da bonificação"
// @Success      200  {object}  dto.BonusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bonuses/{id} [get]
func (h *BonusHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), paramID(c))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "Bonificação não encontrada.")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar bonificação
// @Tags         bonuses
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BonusRequest  true  "Dados da bonificação"
// @Success      201   {object}  dto.BonusResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/bonuses [post]
func (h *BonusHandler) Create(c *fiber.Ctx) error {
	var in dto.BonusRequest
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
// @Summary      Editar bonificação
// @Description  Substitui o registro mantendo sua posição. ID inexistente não altera nada (204).
// @Tags         bonuses
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID da bonificação"
// @Param        body  body  dto.BonusRequest  true  "Dados da bonificação"
// @Success      200   {object}  dto.BonusResponse
// @Success      204
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/bonuses/{id} [put]
func (h *BonusHandler) Update(c *fiber.Ctx) error {
	var in dto.BonusRequest
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
// @Summary      Excluir bonificação
// @Tags         bonuses
// @Param        id       path   string  true  "ID da bonificação"
// @Param        confirm  query  bool    true  "Confirmação (true)"
// @Success      204
// @Failure      428  {object}  dto.ErrorResponse
// @Router       /api/bonuses/{id} [delete]
func (h *BonusHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), paramID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Export godoc
// @Summary      Exportar bonificações
// @Description  Exporta a lista filtrada como bonificacoes.csv ou bonificacoes.pdf.
// @Tags         bonuses
// @Produce      text/csv,application/pdf
// @Param        format  query  string  false  "csv | pdf"  default(csv)
// @Param        status       query  string  false  "Pendente | Recebido | all"
// @Param        type         query  string  false  "Tipo ou all"
// @Param        supplier_id  query  string  false  "ID do fornecedor"
// @Success      200
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/bonuses/export [get]
func (h *BonusHandler) Export(c *fiber.Ctx) error {
	criteria, err := bonusCriteria(c)
	if err != nil {
		return respondError(c, err)
	}
	file, err := h.uc.Export(c.Context(), criteria, c.Query("format"))
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, file)
}
