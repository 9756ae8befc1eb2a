package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestao-fornecedores/internal/application/dto"
)

// ConfirmParam parámetro de consulta que confirma una operación destructiva.
const ConfirmParam = "confirm"

// RequireConfirmation devuelve un middleware Fiber que exige ?confirm=true antes de
// llegar al handler. Sin confirmación responde 428 y no se modifica nada.
func RequireConfirmation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Query(ConfirmParam) != "true" {
			return c.Status(fiber.StatusPreconditionRequired).JSON(dto.ErrorResponse{
				Code:    "CONFIRMATION_REQUIRED",
				Message: "Tem certeza que deseja excluir? Repita a requisição com ?confirm=true.",
			})
		}
		return c.Next()
	}
}
