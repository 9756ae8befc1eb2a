package export_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestao-fornecedores/internal/domain"
	"github.com/jhoicas/gestao-fornecedores/internal/domain/entity"
	"github.com/jhoicas/gestao-fornecedores/internal/domain/export"
)

type item struct {
	id    string
	name  string
	value decimal.Decimal
	day   entity.Date
	ok    bool
	note  any
}

var itemColumns = []export.Column[item]{
	{Header: "id", Value: func(i item) any { return i.id }},
	{Header: "name", Value: func(i item) any { return i.name }},
	{Header: "value", Value: func(i item) any { return i.value }},
	{Header: "day", Value: func(i item) any { return i.day }},
	{Header: "ok", Value: func(i item) any { return i.ok }},
	{Header: "note", Value: func(i item) any { return i.note }},
}

func TestProject_CabeceraYFormaTextual(t *testing.T) {
	sheet, err := export.Project(itemColumns, []item{
		{id: "1", name: "A", value: decimal.RequireFromString("12.5"), day: entity.MustParseDate("2024-07-01"), ok: true, note: 3},
		{id: "2", name: "B", value: decimal.NewFromInt(5000), ok: false},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "name", "value", "day", "ok", "note"}, sheet.Headers)
	assert.Equal(t, []string{"1", "A", "12.5", "2024-07-01", "true", "3"}, sheet.Rows[0])
	// fecha cero y valor nil quedan vacíos
	assert.Equal(t, []string{"2", "B", "5000", "", "false", ""}, sheet.Rows[1])
}

func TestProject_ColeccionVacia(t *testing.T) {
	_, err := export.Project(itemColumns, nil)
	assert.ErrorIs(t, err, domain.ErrNoData)
}

func TestProject_SinColumnas(t *testing.T) {
	_, err := export.Project[item](nil, []item{{id: "1"}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestText_EnumsComoSuEtiqueta(t *testing.T) {
	assert.Equal(t, "Desconto em Nota", export.Text(entity.BonusTypeInvoiceDiscount))
	assert.Equal(t, "Açougue", export.Text(entity.CategoryButchery))
	assert.Equal(t, "", export.Text(nil))
}
