package filter

import "github.com/jhoicas/gestao-fornecedores/internal/domain/entity"

// GondolaCriteria criterios de la lista de contratos de góndola.
type GondolaCriteria struct {
	Status   entity.ContractStatus // "" o "all" = todos
	Validity DateRange             // solapamiento con la vigencia del contrato
}

// GondolaContracts devuelve los contratos con el estado pedido cuya vigencia
// [ValidityStart, ValidityEnd] se solapa con el rango de la consulta.
func GondolaContracts(records []entity.GondolaContract, c GondolaCriteria) []entity.GondolaContract {
	return Where(records, func(g entity.GondolaContract) bool {
		if !matchEnum(c.Status, g.Status) {
			return false
		}
		return c.Validity.Overlaps(g.ValidityStart, g.ValidityEnd)
	})
}
