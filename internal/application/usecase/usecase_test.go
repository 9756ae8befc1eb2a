package usecase_test

import (
	"github.com/rs/zerolog"

	"github.com/jhoicas/gestao-fornecedores/internal/application/usecase"
	"github.com/jhoicas/gestao-fornecedores/internal/infrastructure/csv"
	"github.com/jhoicas/gestao-fornecedores/internal/infrastructure/pdf"
)

func newTestExporter() *usecase.Exporter {
	return usecase.NewExporter(csv.NewWriter(), pdf.NewReportGenerator("test"))
}

var nopLog = zerolog.Nop()
