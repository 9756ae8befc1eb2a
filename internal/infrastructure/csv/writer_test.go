package csv_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestao-fornecedores/internal/domain"
	"github.com/jhoicas/gestao-fornecedores/internal/domain/export"
	"github.com/jhoicas/gestao-fornecedores/internal/infrastructure/csv"
)

func TestEscapeField(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"simple", "simple"},
		{"", ""},
		{"A, B", `"A, B"`},
		{`He said "hi"`, `"He said ""hi"""`},
		{"linea1\nlinea2", "\"linea1\nlinea2\""},
		{" espacio inicial", " espacio inicial"},
		{"retorno\r", "retorno\r"},
		{"Açougue", "Açougue"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, csv.EscapeField(tc.in), "entrada %q", tc.in)
	}
}

func TestEncode_FilaConEscapes(t *testing.T) {
	sheet := export.Sheet{
		Headers: []string{"id", "name", "note"},
		Rows:    [][]string{{"1", "A, B", `He said "hi"`}},
	}
	out, err := csv.Encode(sheet)
	require.NoError(t, err)
	assert.Equal(t, "id,name,note\n1,\"A, B\",\"He said \"\"hi\"\"\"", string(out))
}

func TestEncode_VariasFilasSinSaltoFinal(t *testing.T) {
	sheet := export.Sheet{
		Headers: []string{"a", "b"},
		Rows:    [][]string{{"1", "x"}, {"2", ""}},
	}
	out, err := csv.Encode(sheet)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,x\n2,", string(out))
}

func TestEncode_SinFilas(t *testing.T) {
	out, err := csv.Encode(export.Sheet{Headers: []string{"a"}})
	assert.ErrorIs(t, err, domain.ErrNoData)
	assert.Nil(t, out)
}

func TestWriter_Render(t *testing.T) {
	w := csv.NewWriter()
	out, err := w.Render(context.Background(), "ignorado", export.Sheet{
		Headers: []string{"id"},
		Rows:    [][]string{{"1"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "id\n1", string(out))
	assert.Equal(t, "csv", w.Extension())
	assert.Contains(t, w.ContentType(), "text/csv")
}
