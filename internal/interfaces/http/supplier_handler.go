package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestao-fornecedores/internal/application/dto"
	"github.com/jhoicas/gestao-fornecedores/internal/application/usecase"
)

// SupplierHandler maneja las peticiones HTTP del registro de proveedores.
type SupplierHandler struct {
	uc *usecase.SupplierUseCase
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(uc *usecase.SupplierUseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

// List godoc
// @Summary      Listar fornecedores
// @Tags         suppliers
// @Produce      json
// @Param        name      query  string  false  "Contém (sem distinguir maiúsculas)"
// @Param        category  query  string  false  "Categoria ou all"
// @Param        status    query  string  false  "all | true | false"
// @Success      200  {object}  dto.SupplierListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/suppliers [get]
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	criteria, err := supplierCriteria(c)
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
// @Summary      Obter fornecedor por ID
// @Tags         suppliers
// @Produce      json
// @Param        id   path  string  true  "ID do fornecedor"
// @Success      200  {object}  dto.SupplierResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [get]
func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), paramID(c))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "Fornecedor não encontrado.")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Cadastrar fornecedor
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SupplierRequest  true  "Dados do fornecedor"
// @Success      201   {object}  dto.SupplierResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/suppliers [post]
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.SupplierRequest
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
// @Summary      Editar fornecedor
// @Description  Substitui o registro mantendo sua posição. ID inexistente não altera nada (204).
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID do fornecedor"
// @Param        body  body  dto.SupplierRequest  true  "Dados do fornecedor"
// @Success      200   {object}  dto.SupplierResponse
// @Success      204
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [put]
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	var in dto.SupplierRequest
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
// @Summary      Excluir fornecedor
// @Tags         suppliers
// @Param        id       path   string  true  "ID do fornecedor"
// @Param        confirm  query  bool    true  "Confirmação (true)"
// @Success      204
// @Failure      428  {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [delete]
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), paramID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Export godoc
// @Summary      Exportar fornecedores
// @Description  Exporta a lista filtrada como fornecedores.csv ou fornecedores.pdf.
// @Tags         suppliers
// @Produce      text/csv,application/pdf
// @Param        format    query  string  false  "csv | pdf"  default(csv)
// @Param        name      query  string  false  "Contém"
// @Param        category  query  string  false  "Categoria ou all"
// @Param        status    query  string  false  "all | true | false"
// @Success      200
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/suppliers/export [get]
func (h *SupplierHandler) Export(c *fiber.Ctx) error {
	criteria, err := supplierCriteria(c)
	if err != nil {
		return respondError(c, err)
	}
	file, err := h.uc.Export(c.Context(), criteria, c.Query("format"))
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, file)
}
