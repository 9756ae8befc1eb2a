package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestao-fornecedores/internal/domain/entity"
	"github.com/jhoicas/gestao-fornecedores/internal/domain/filter"
)

func d(s string) entity.Date { return entity.MustParseDate(s) }

func suppliersFixture() []entity.Supplier {
	return []entity.Supplier{
		{ID: "1", Name: "Indústria Alimentícia ABC", Category: entity.CategoryFood, Active: true, Rating: 5},
		{ID: "2", Name: "Distribuidora de Bebidas XYZ", Category: entity.CategoryBeverage, Active: true, Rating: 4},
		{ID: "3", Name: "Limpeza Total Ltda", Category: entity.CategoryCleaning, Active: false, Rating: 3},
		{ID: "4", Name: "Hortifruti Frescor da Terra", Category: entity.CategoryProduce, Active: true, Rating: 4},
		{ID: "5", Name: "Açougue Nobre Carnes", Category: entity.CategoryButchery, Active: false, Rating: 2},
	}
}

func ids[T entity.Record](records []T) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.RecordID())
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Proveedores
// ──────────────────────────────────────────────────────────────────────────────

func TestSuppliers_SinCriteriosDevuelveTodoEnOrden(t *testing.T) {
	out := filter.Suppliers(suppliersFixture(), filter.SupplierCriteria{})
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(out))
}

func TestSuppliers_NombreSinDistinguirMayusculas(t *testing.T) {
	out := filter.Suppliers(suppliersFixture(), filter.SupplierCriteria{Name: "DISTRIBUIDORA"})
	assert.Equal(t, []string{"2"}, ids(out))

	out = filter.Suppliers(suppliersFixture(), filter.SupplierCriteria{Name: "ltda"})
	assert.Equal(t, []string{"3"}, ids(out))
}

func TestSuppliers_CategoriaYCentinelaAll(t *testing.T) {
	out := filter.Suppliers(suppliersFixture(), filter.SupplierCriteria{Category: entity.CategoryBeverage})
	assert.Equal(t, []string{"2"}, ids(out))

	out = filter.Suppliers(suppliersFixture(), filter.SupplierCriteria{Category: filter.All})
	assert.Len(t, out, 5)
}

func TestSuppliers_EstadoTriEstado(t *testing.T) {
	cases := []struct {
		status filter.ActiveStatus
		want   []string
	}{
		{filter.ActiveAll, []string{"1", "2", "3", "4", "5"}},
		{filter.ActiveOnly, []string{"1", "2", "4"}},
		{filter.InactiveOnly, []string{"3", "5"}},
	}
	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			out := filter.Suppliers(suppliersFixture(), filter.SupplierCriteria{Status: tc.status})
			assert.Equal(t, tc.want, ids(out))
		})
	}
}

func TestSuppliers_CriteriosCombinadosConAND(t *testing.T) {
	out := filter.Suppliers(suppliersFixture(), filter.SupplierCriteria{
		Name:   "a",
		Status: filter.InactiveOnly,
	})
	assert.Equal(t, []string{"3", "5"}, ids(out))

	out = filter.Suppliers(suppliersFixture(), filter.SupplierCriteria{
		Category: entity.CategoryCleaning,
		Status:   filter.ActiveOnly,
	})
	assert.Empty(t, out)
}

func TestSuppliers_ResultadoEsSubconjuntoQueCumpleLosPredicados(t *testing.T) {
	in := suppliersFixture()
	c := filter.SupplierCriteria{Name: "o", Status: filter.ActiveOnly}
	out := filter.Suppliers(in, c)

	// cada registro devuelto cumple; cada registro omitido falla al menos un predicado
	kept := map[string]bool{}
	for _, s := range out {
		kept[s.ID] = true
		assert.True(t, s.Active)
		assert.Contains(t, s.Name, "o")
	}
	for _, s := range in {
		if !kept[s.ID] {
			assert.False(t, s.Active && containsFold(s.Name, "o"), "proveedor %s debió incluirse", s.ID)
		}
	}
}

func TestSuppliers_ColeccionVaciaNoEsNil(t *testing.T) {
	out := filter.Suppliers(nil, filter.SupplierCriteria{Name: "x"})
	require.NotNil(t, out)
	assert.Empty(t, out)
}

func TestParseActiveStatus(t *testing.T) {
	s, err := filter.ParseActiveStatus("")
	require.NoError(t, err)
	assert.Equal(t, filter.ActiveAll, s)

	s, err = filter.ParseActiveStatus("TRUE")
	require.NoError(t, err)
	assert.Equal(t, filter.ActiveOnly, s)

	s, err = filter.ParseActiveStatus("false")
	require.NoError(t, err)
	assert.Equal(t, filter.InactiveOnly, s)

	_, err = filter.ParseActiveStatus("quizas")
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Contratos de góndola: solapamiento de intervalos con días inclusivos
// ──────────────────────────────────────────────────────────────────────────────

func gondolasFixture() []entity.GondolaContract {
	return []entity.GondolaContract{
		{ID: "1", ValidityStart: d("2024-07-01"), ValidityEnd: d("2024-07-31"), Status: entity.ContractActive},
		{ID: "2", ValidityStart: d("2024-06-15"), ValidityEnd: d("2024-07-15"), Status: entity.ContractActive},
		{ID: "3", ValidityStart: d("2024-05-01"), ValidityEnd: d("2024-05-31"), Status: entity.ContractExpired},
		{ID: "4", ValidityStart: d("2024-08-01"), ValidityEnd: d("2024-08-31"), Status: entity.ContractActive},
	}
}

func TestGondolaContracts_InicioAbiertoAlFinal(t *testing.T) {
	out := filter.GondolaContracts(gondolasFixture(), filter.GondolaCriteria{
		Validity: filter.DateRange{From: d("2024-07-01")},
	})
	// [06-15, 07-15] termina después del 07-01 → incluido; [05-01, 05-31] no
	assert.Equal(t, []string{"1", "2", "4"}, ids(out))
}

func TestGondolaContracts_ExcluyeVigenciaAnterior(t *testing.T) {
	out := filter.GondolaContracts(gondolasFixture()[2:3], filter.GondolaCriteria{
		Validity: filter.DateRange{From: d("2024-06-01")},
	})
	assert.Empty(t, out)
}

func TestGondolaContracts_FinDeContratoIgualAInicioDeConsulta(t *testing.T) {
	out := filter.GondolaContracts(gondolasFixture(), filter.GondolaCriteria{
		Validity: filter.DateRange{From: d("2024-05-31"), To: d("2024-05-31")},
	})
	assert.Equal(t, []string{"3"}, ids(out))
}

func TestGondolaContracts_InicioDeContratoIgualAFinDeConsulta(t *testing.T) {
	out := filter.GondolaContracts(gondolasFixture(), filter.GondolaCriteria{
		Validity: filter.DateRange{To: d("2024-08-01")},
	})
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(out))
}

func TestGondolaContracts_ContratoDeUnDia(t *testing.T) {
	one := []entity.GondolaContract{{ID: "x", ValidityStart: d("2024-09-10"), ValidityEnd: d("2024-09-10")}}
	out := filter.GondolaContracts(one, filter.GondolaCriteria{
		Validity: filter.DateRange{From: d("2024-09-10"), To: d("2024-09-10")},
	})
	assert.Equal(t, []string{"x"}, ids(out))
}

func TestGondolaContracts_EstadoYRango(t *testing.T) {
	out := filter.GondolaContracts(gondolasFixture(), filter.GondolaCriteria{
		Status:   entity.ContractActive,
		Validity: filter.DateRange{From: d("2024-07-20"), To: d("2024-08-05")},
	})
	assert.Equal(t, []string{"1", "4"}, ids(out))

	out = filter.GondolaContracts(gondolasFixture(), filter.GondolaCriteria{Status: entity.ContractExpired})
	assert.Equal(t, []string{"3"}, ids(out))
}

func TestGondolaContracts_RangoInvertidoNoFallaYNoEncuentraNada(t *testing.T) {
	out := filter.GondolaContracts(gondolasFixture(), filter.GondolaCriteria{
		Validity: filter.DateRange{From: d("2024-12-31"), To: d("2024-01-01")},
	})
	require.NotNil(t, out)
	assert.Empty(t, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// Bitácoras
// ──────────────────────────────────────────────────────────────────────────────

func TestLosses_CategoriaResponsableYFecha(t *testing.T) {
	losses := []entity.Loss{
		{ID: "1", Category: entity.CategoryProduce, ResponsibleParty: entity.ResponsibleStore, OccurrenceDate: d("2024-07-18")},
		{ID: "2", Category: entity.CategoryFood, ResponsibleParty: entity.ResponsibleStore, OccurrenceDate: d("2024-07-18")},
		{ID: "3", Category: entity.CategoryFood, ResponsibleParty: entity.ResponsibleTransport, OccurrenceDate: d("2024-07-17")},
	}
	out := filter.Losses(losses, filter.LossCriteria{Category: entity.CategoryFood})
	assert.Equal(t, []string{"2", "3"}, ids(out))

	out = filter.Losses(losses, filter.LossCriteria{ResponsibleParty: entity.ResponsibleStore})
	assert.Equal(t, []string{"1", "2"}, ids(out))

	out = filter.Losses(losses, filter.LossCriteria{Occurred: filter.DateRange{From: d("2024-07-17"), To: d("2024-07-17")}})
	assert.Equal(t, []string{"3"}, ids(out))
}

func TestBonuses_EstadoTipoProveedor(t *testing.T) {
	bonuses := []entity.Bonus{
		{ID: "1", SupplierID: "1", Type: entity.BonusTypeProduct, Status: entity.BonusStatusReceived},
		{ID: "2", SupplierID: "2", Type: entity.BonusTypeInvoiceDiscount, Status: entity.BonusStatusReceived},
		{ID: "3", SupplierID: "1", Type: entity.BonusTypeCredit, Status: entity.BonusStatusPending},
	}
	assert.Equal(t, []string{"1", "3"}, ids(filter.Bonuses(bonuses, filter.BonusCriteria{SupplierID: "1"})))
	assert.Equal(t, []string{"3"}, ids(filter.Bonuses(bonuses, filter.BonusCriteria{Status: entity.BonusStatusPending})))
	assert.Equal(t, []string{"2"}, ids(filter.Bonuses(bonuses, filter.BonusCriteria{Type: entity.BonusTypeInvoiceDiscount})))
	assert.Len(t, filter.Bonuses(bonuses, filter.BonusCriteria{Status: filter.All, Type: filter.All}), 3)
}

func TestNegotiations_ProveedorYPeriodo(t *testing.T) {
	negs := []entity.Negotiation{
		{ID: "1", SupplierID: "1", NegotiationDate: d("2024-07-15")},
		{ID: "2", SupplierID: "2", NegotiationDate: d("2024-07-12")},
		{ID: "3", SupplierID: "1", NegotiationDate: d("2024-06-30")},
	}
	out := filter.Negotiations(negs, filter.NegotiationCriteria{
		SupplierID: "1",
		Period:     filter.DateRange{From: d("2024-07-01")},
	})
	assert.Equal(t, []string{"1"}, ids(out))
}

func containsFold(s, sub string) bool {
	return len(filter.Suppliers([]entity.Supplier{{Name: s}}, filter.SupplierCriteria{Name: sub})) == 1
}
