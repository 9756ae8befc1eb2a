package http

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestao-fornecedores/internal/domain/entity"
	"github.com/jhoicas/gestao-fornecedores/internal/domain/filter"
)

// queryError parámetro de consulta inválido (→ 400).
type queryError struct {
	param string
	value string
}

func (e *queryError) Error() string {
	return fmt.Sprintf("parâmetro %q inválido: %q", e.param, e.value)
}

// queryDate lee un parámetro YYYY-MM-DD; ausente → fecha cero.
func queryDate(c *fiber.Ctx, param string) (entity.Date, error) {
	raw := strings.TrimSpace(c.Query(param))
	d, err := entity.ParseDate(raw)
	if err != nil {
		return entity.Date{}, &queryError{param: param, value: raw}
	}
	return d, nil
}

// queryRange lee el par from/to; un rango contradictorio no se rechaza.
func queryRange(c *fiber.Ctx) (filter.DateRange, error) {
	from, err := queryDate(c, "from")
	if err != nil {
		return filter.DateRange{}, err
	}
	to, err := queryDate(c, "to")
	if err != nil {
		return filter.DateRange{}, err
	}
	return filter.DateRange{From: from, To: to}, nil
}

// queryEnum lee un valor enumerado; "" y "all" significan sin filtro.
func queryEnum[E interface {
	~string
	IsValid() bool
}](c *fiber.Ctx, param string) (E, error) {
	raw := strings.TrimSpace(c.Query(param))
	if raw == "" || raw == filter.All {
		return E(raw), nil
	}
	v := E(raw)
	if !v.IsValid() {
		return "", &queryError{param: param, value: raw}
	}
	return v, nil
}

func supplierCriteria(c *fiber.Ctx) (filter.SupplierCriteria, error) {
	category, err := queryEnum[entity.Category](c, "category")
	if err != nil {
		return filter.SupplierCriteria{}, err
	}
	status, err := filter.ParseActiveStatus(c.Query("status"))
	if err != nil {
		return filter.SupplierCriteria{}, &queryError{param: "status", value: c.Query("status")}
	}
	return filter.SupplierCriteria{Name: c.Query("name"), Category: category, Status: status}, nil
}

func bonusCriteria(c *fiber.Ctx) (filter.BonusCriteria, error) {
	status, err := queryEnum[entity.BonusStatus](c, "status")
	if err != nil {
		return filter.BonusCriteria{}, err
	}
	typ, err := queryEnum[entity.BonusType](c, "type")
	if err != nil {
		return filter.BonusCriteria{}, err
	}
	return filter.BonusCriteria{Status: status, Type: typ, SupplierID: c.Query("supplier_id")}, nil
}

func lossCriteria(c *fiber.Ctx) (filter.LossCriteria, error) {
	var out filter.LossCriteria
	var err error
	if out.Category, err = queryEnum[entity.Category](c, "category"); err != nil {
		return out, err
	}
	if out.Reason, err = queryEnum[entity.LossReason](c, "reason"); err != nil {
		return out, err
	}
	if out.ResponsibleParty, err = queryEnum[entity.ResponsibleParty](c, "responsible_party"); err != nil {
		return out, err
	}
	if out.Occurred, err = queryRange(c); err != nil {
		return out, err
	}
	return out, nil
}

func gondolaCriteria(c *fiber.Ctx) (filter.GondolaCriteria, error) {
	status, err := queryEnum[entity.ContractStatus](c, "status")
	if err != nil {
		return filter.GondolaCriteria{}, err
	}
	validity, err := queryRange(c)
	if err != nil {
		return filter.GondolaCriteria{}, err
	}
	return filter.GondolaCriteria{Status: status, Validity: validity}, nil
}

func negotiationCriteria(c *fiber.Ctx) (filter.NegotiationCriteria, error) {
	period, err := queryRange(c)
	if err != nil {
		return filter.NegotiationCriteria{}, err
	}
	return filter.NegotiationCriteria{SupplierID: c.Query("supplier_id"), Period: period}, nil
}
