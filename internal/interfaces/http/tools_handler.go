package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestao-fornecedores/internal/application/dto"
	"github.com/jhoicas/gestao-fornecedores/pkg/cnpj"
)

// FormatCNPJ godoc
// @Summary      Formatar CNPJ
// @Description  Mantém só os dígitos e aplica a máscara XX.XXX.XXX/XXXX-XX progressivamente.
// @Tags         tools
// @Produce      json
// @Param        value  query  string  true  "CNPJ digitado"
// @Success      200    {object}  dto.CNPJResponse
// @Router       /api/tools/cnpj [get]
func FormatCNPJ(c *fiber.Ctx) error {
	in := c.Query("value")
	formatted := cnpj.Format(in)
	return c.JSON(dto.CNPJResponse{Input: in, Formatted: formatted, Valid: cnpj.Valid(formatted)})
}
