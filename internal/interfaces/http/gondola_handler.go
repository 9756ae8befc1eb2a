package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestao-fornecedores/internal/application/dto"
	"github.com/jhoicas/gestao-fornecedores/internal/application/usecase"
)

// GondolaContractHandler maneja las peticiones HTTP de los contratos de punto de góndola.
type GondolaContractHandler struct {
	uc *usecase.GondolaContractUseCase
}

// NewGondolaContractHandler construye el handler.
func NewGondolaContractHandler(uc *usecase.GondolaContractUseCase) *GondolaContractHandler {
	return &GondolaContractHandler{uc: uc}
}

// List godoc
// @Summary      Listar contratos de gôndola
// @Tags         gondolas
// @Produce      json
// @Param        status  query  string  false  "Ativo | Expirado | all"
// @Param        from    query  string  false  "Início do período (YYYY-MM-DD)"
// @Param        to      query  string  false  "Fim do período (YYYY-MM-DD)"
// @Success      200  {object}  dto.GondolaContractListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/gondolas [get]
func (h *GondolaContractHandler) List(c *fiber.Ctx) error {
	criteria, err := gondolaCriteria(c)
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
// @Summary      Obter contrato por ID
// @Tags         gondolas
// @Produce      json
// @Param        id   path  string  true  "ID do contrato"
// @Success      200  {object}  dto.GondolaContractResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/gondolas/{id} [get]
func (h *GondolaContractHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), paramID(c))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "Contrato não encontrado.")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar contrato de gôndola
// @Tags         gondolas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GondolaContractRequest  true  "Dados do contrato"
// @Success      201   {object}  dto.GondolaContractResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/gondolas [post]
func (h *GondolaContractHandler) Create(c *fiber.Ctx) error {
	var in dto.GondolaContractRequest
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
// @Summary      Editar contrato de gôndola
// @Description  Substitui o registro mantendo sua posição. ID inexistente não altera nada (204).
// @Tags         gondolas
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID do contrato"
// @Param        body  body  dto.GondolaContractRequest  true  "Dados do contrato"
// @Success      200   {object}  dto.GondolaContractResponse
// @Success      204
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/gondolas/{id} [put]
func (h *GondolaContractHandler) Update(c *fiber.Ctx) error {
	var in dto.GondolaContractRequest
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
// @Summary      Excluir contrato de gôndola
// @Tags         gondolas
// @Param        id       path   string  true  "ID do contrato"
// @Param        confirm  query  bool    true  "Confirmação (true)"
// @Success      204
// @Failure      428  {object}  dto.ErrorResponse
// @Router       /api/gondolas/{id} [delete]
func (h *GondolaContractHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), paramID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Export godoc
// @Summary      Exportar contratos de gôndola
// @Description  Exporta a lista filtrada como pontos_de_gondola.csv ou pontos_de_gondola.pdf.
// @Tags         gondolas
// @Produce      text/csv,application/pdf
// @Param        format  query  string  false  "csv | pdf"  default(csv)
// @Param        status  query  string  false  "Ativo | Expirado | all"
// @Param        from    query  string  false  "Início do período (YYYY-MM-DD)"
// @Param        to      query  string  false  "Fim do período (YYYY-MM-DD)"
// @Success      200
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/gondolas/export [get]
func (h *GondolaContractHandler) Export(c *fiber.Ctx) error {
	criteria, err := gondolaCriteria(c)
	if err != nil {
		return respondError(c, err)
	}
	file, err := h.uc.Export(c.Context(), criteria, c.Query("format"))
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, file)
}
