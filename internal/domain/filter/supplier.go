package filter

import (
	"fmt"
	"strings"

	"github.com/jhoicas/gestao-fornecedores/internal/domain/entity"
)

// ActiveStatus filtro tri-estado sobre Supplier.Active. Los valores son los del selector del panel.
type ActiveStatus string

const (
	ActiveAll    ActiveStatus = All
	ActiveOnly   ActiveStatus = "true"
	InactiveOnly ActiveStatus = "false"
)

// ParseActiveStatus interpreta el parámetro de estado; vacío equivale a "all".
func ParseActiveStatus(s string) (ActiveStatus, error) {
	switch ActiveStatus(strings.ToLower(strings.TrimSpace(s))) {
	case "", ActiveAll:
		return ActiveAll, nil
	case ActiveOnly:
		return ActiveOnly, nil
	case InactiveOnly:
		return InactiveOnly, nil
	}
	return "", fmt.Errorf("estado de proveedor inválido: %q", s)
}

func (s ActiveStatus) match(active bool) bool {
	switch s {
	case ActiveOnly:
		return active
	case InactiveOnly:
		return !active
	default:
		return true
	}
}

// SupplierCriteria criterios de la lista de proveedores.
type SupplierCriteria struct {
	Name     string          // contiene, sin distinguir mayúsculas
	Category entity.Category // "" o "all" = todas
	Status   ActiveStatus    // "" o "all" = todos
}

// Suppliers aplica los criterios sobre la colección de proveedores.
func Suppliers(records []entity.Supplier, c SupplierCriteria) []entity.Supplier {
	name := strings.ToLower(c.Name)
	return Where(records, func(s entity.Supplier) bool {
		return strings.Contains(strings.ToLower(s.Name), name) &&
			matchEnum(c.Category, s.Category) &&
			c.Status.match(s.Active)
	})
}
