package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestao-fornecedores/internal/application/dto"
	"github.com/jhoicas/gestao-fornecedores/internal/application/usecase"
	"github.com/jhoicas/gestao-fornecedores/internal/domain"
	"github.com/jhoicas/gestao-fornecedores/internal/domain/entity"
	"github.com/jhoicas/gestao-fornecedores/internal/domain/filter"
	"github.com/jhoicas/gestao-fornecedores/internal/infrastructure/memory"
)

func supplierRequest(name string) dto.SupplierRequest {
	return dto.SupplierRequest{
		Name:                 name,
		TaxID:                "12.345.678/0001-90",
		ContactName:          "Paula",
		Phone:                "(11) 90000-0000",
		Category:             entity.CategoryFood,
		Type:                 entity.SupplierTypeIndustry,
		PartnershipStartDate: entity.MustParseDate("2023-03-01"),
		Active:               true,
		Rating:               4,
	}
}

func TestSupplierUseCase_CicloCompleto(t *testing.T) {
	ctx := context.Background()
	store := memory.NewDemoStore()
	uc := usecase.NewSupplierUseCase(store.Suppliers, newTestExporter(), nopLog)

	created, err := uc.Create(ctx, supplierRequest("Padaria Central"))
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	list, err := uc.List(ctx, filter.SupplierCriteria{})
	require.NoError(t, err)
	require.Equal(t, 6, list.Total)
	assert.Equal(t, created.ID, list.Items[0].ID, "el alta queda primera")

	in := supplierRequest("Padaria Central Ltda")
	in.Rating = 5
	updated, err := uc.Update(ctx, created.ID, in)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Padaria Central Ltda", updated.Name)

	list, err = uc.List(ctx, filter.SupplierCriteria{})
	require.NoError(t, err)
	assert.Equal(t, created.ID, list.Items[0].ID, "la edición conserva la posición")
	assert.Equal(t, 5, list.Items[0].Rating)

	require.NoError(t, uc.Delete(ctx, created.ID))
	got, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, 5, store.Suppliers.Len())
}

func TestSupplierUseCase_IDsUnicos(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewSupplierUseCase(memory.NewStore().Suppliers, newTestExporter(), nopLog)

	a, err := uc.Create(ctx, supplierRequest("A"))
	require.NoError(t, err)
	b, err := uc.Create(ctx, supplierRequest("B"))
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestSupplierUseCase_UpdateInexistente(t *testing.T) {
	ctx := context.Background()
	store := memory.NewDemoStore()
	uc := usecase.NewSupplierUseCase(store.Suppliers, newTestExporter(), nopLog)

	before, err := uc.List(ctx, filter.SupplierCriteria{})
	require.NoError(t, err)

	out, err := uc.Update(ctx, "no-existe", supplierRequest("X"))
	require.NoError(t, err)
	assert.Nil(t, out)

	after, err := uc.List(ctx, filter.SupplierCriteria{})
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestSupplierUseCase_DeleteInexistente(t *testing.T) {
	store := memory.NewDemoStore()
	uc := usecase.NewSupplierUseCase(store.Suppliers, newTestExporter(), nopLog)

	require.NoError(t, uc.Delete(context.Background(), "no-existe"))
	assert.Equal(t, 5, store.Suppliers.Len())
}

func TestSupplierUseCase_ListFiltrado(t *testing.T) {
	uc := usecase.NewSupplierUseCase(memory.NewDemoStore().Suppliers, newTestExporter(), nopLog)

	out, err := uc.List(context.Background(), filter.SupplierCriteria{Name: "limpeza", Category: "all", Status: filter.ActiveAll})
	require.NoError(t, err)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "3", out.Items[0].ID)

	out, err = uc.List(context.Background(), filter.SupplierCriteria{Status: filter.InactiveOnly})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Total)
}

func TestSupplierUseCase_ExportCSV(t *testing.T) {
	uc := usecase.NewSupplierUseCase(memory.NewDemoStore().Suppliers, newTestExporter(), nopLog)

	file, err := uc.Export(context.Background(), filter.SupplierCriteria{Category: entity.CategoryBeverage}, "")
	require.NoError(t, err)
	assert.Equal(t, "fornecedores.csv", file.Filename)
	assert.Equal(t, "text/csv; charset=utf-8", file.ContentType)

	lines := strings.Split(string(file.Content), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "id,name,tax_id,contact_name,phone,category,type,partnership_start_date,active,rating", lines[0])
	assert.Equal(t, "2,Distribuidora de Bebidas XYZ,22.333.444/0001-55,Ana Pereira,(21) 91234-5678,Bebida,Distribuidor,2019-05-20,true,4", lines[1])
}

func TestSupplierUseCase_ExportPDF(t *testing.T) {
	uc := usecase.NewSupplierUseCase(memory.NewDemoStore().Suppliers, newTestExporter(), nopLog)

	file, err := uc.Export(context.Background(), filter.SupplierCriteria{}, "pdf")
	require.NoError(t, err)
	assert.Equal(t, "fornecedores.pdf", file.Filename)
	assert.True(t, strings.HasPrefix(string(file.Content), "%PDF"))
}

func TestSupplierUseCase_ExportSinDatos(t *testing.T) {
	uc := usecase.NewSupplierUseCase(memory.NewDemoStore().Suppliers, newTestExporter(), nopLog)

	file, err := uc.Export(context.Background(), filter.SupplierCriteria{Name: "nada coincide"}, "csv")
	assert.ErrorIs(t, err, domain.ErrNoData)
	assert.Nil(t, file)
}

func TestSupplierUseCase_ExportFormatoDesconocido(t *testing.T) {
	uc := usecase.NewSupplierUseCase(memory.NewDemoStore().Suppliers, newTestExporter(), nopLog)

	_, err := uc.Export(context.Background(), filter.SupplierCriteria{}, "xlsx")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
