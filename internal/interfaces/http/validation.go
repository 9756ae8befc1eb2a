package http

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestao-fornecedores/internal/application/dto"
	"github.com/jhoicas/gestao-fornecedores/internal/domain/entity"
	"github.com/jhoicas/gestao-fornecedores/pkg/cnpj"
)

var validate = newValidator()

// enumValue lo implementan los tipos enumerados de entity.
type enumValue interface {
	IsValid() bool
}

func newValidator() *validator.Validate {
	v := validator.New()

	// Los errores se reportan con el nombre JSON del campo.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// decimal.Decimal se valida como número (gt, gte) y entity.Date como "YYYY-MM-DD" ("" si falta).
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(entity.Date); ok {
			return d.String()
		}
		return nil
	}, entity.Date{})

	mustRegister(v, "enum", func(fl validator.FieldLevel) bool {
		e, ok := fl.Field().Interface().(enumValue)
		return ok && e.IsValid()
	})
	mustRegister(v, "cnpj", func(fl validator.FieldLevel) bool {
		return cnpj.Valid(fl.Field().String())
	})
	mustRegister(v, "notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	mustRegister(v, "notfuture", func(fl validator.FieldLevel) bool {
		d, err := entity.ParseDate(fl.Field().String())
		if err != nil {
			return false
		}
		return !d.After(entity.Today())
	})

	v.RegisterStructValidation(func(sl validator.StructLevel) {
		in := sl.Current().Interface().(dto.GondolaContractRequest)
		if !in.ValidityStart.IsZero() && !in.ValidityEnd.IsZero() && in.ValidityEnd.Before(in.ValidityStart) {
			sl.ReportError(in.ValidityEnd, "validity_end", "ValidityEnd", "dateorder", "")
		}
	}, dto.GondolaContractRequest{})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validator: registrar %q: %v", tag, err))
	}
}

// fieldMessage mensaje pt-BR para un error de validación.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "Campo obrigatório."
	case "required_if":
		return "Obrigatório quando o fornecedor é o responsável."
	case "cnpj":
		return "Formato de CNPJ inválido (XX.XXX.XXX/XXXX-XX)."
	case "enum":
		return "Valor inválido."
	case "notfuture":
		return "A data não pode ser no futuro."
	case "dateorder":
		return "A data final não pode ser anterior à data inicial."
	case "gt":
		return "Deve ser um número positivo."
	case "gte":
		return "Não pode ser negativo."
	case "min", "max":
		if fe.Field() == "rating" {
			return "A avaliação deve ser entre 1 e 5."
		}
		return fmt.Sprintf("Valor fora do limite (%s=%s).", fe.Tag(), fe.Param())
	}
	return "Valor inválido."
}

// bindAndValidate parsea el cuerpo JSON y ejecuta las reglas validate.
// Si falla escribe la respuesta (400 o 422) y devuelve false; el handler debe
// retornar el error devuelto sin escribir otra respuesta.
func bindAndValidate(c *fiber.Ctx, req interface{}) (bool, error) {
	if err := c.BodyParser(req); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "Corpo da requisição inválido: " + err.Error(),
		})
	}
	if err := validate.Struct(req); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "INVALID_BODY", Message: err.Error(),
			})
		}
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fieldMessage(fe)
		}
		return false, c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "Verifique os campos destacados.", Fields: fields,
		})
	}
	return true, nil
}
