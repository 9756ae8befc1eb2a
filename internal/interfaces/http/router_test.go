package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/gestao-fornecedores/internal/application/analytics"
	"github.com/jhoicas/gestao-fornecedores/internal/application/dto"
	"github.com/jhoicas/gestao-fornecedores/internal/application/usecase"
	"github.com/jhoicas/gestao-fornecedores/internal/infrastructure/csv"
	"github.com/jhoicas/gestao-fornecedores/internal/infrastructure/memory"
	"github.com/jhoicas/gestao-fornecedores/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/gestao-fornecedores/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp arma la API completa sobre un store con los datos de demostración.
func buildTestApp(t *testing.T) (*fiber.App, *memory.Store) {
	t.Helper()
	store := memory.NewDemoStore()
	log := zerolog.Nop()
	exporter := usecase.NewExporter(csv.NewWriter(), pdf.NewReportGenerator("test"))

	app := fiber.New()
	app.Use(apphttp.RequestLogger(log))
	apphttp.Router(app, apphttp.RouterDeps{
		SupplierUC:    usecase.NewSupplierUseCase(store.Suppliers, exporter, log),
		BonusUC:       usecase.NewBonusUseCase(store.Bonuses, exporter, log),
		LossUC:        usecase.NewLossUseCase(store.Losses, exporter, log),
		GondolaUC:     usecase.NewGondolaContractUseCase(store.Gondolas, exporter, log),
		NegotiationUC: usecase.NewNegotiationUseCase(store.Negotiations, exporter, log),
		DashboardUC: appanalytics.NewDashboardUseCase(
			store.Suppliers, store.Bonuses, store.Losses, store.Gondolas, store.Negotiations,
		),
	})
	return app, store
}

func doRequest(t *testing.T, app *fiber.App, method, target, body string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

const validSupplier = `{
	"name": "Padaria Central",
	"tax_id": "12.345.678/0001-90",
	"contact_name": "Paula",
	"phone": "(11) 90000-0000",
	"category": "Alimento",
	"type": "Indústria",
	"partnership_start_date": "2023-03-01",
	"active": true,
	"rating": 4
}`

// ──────────────────────────────────────────────────────────────────────────────
// Listados y filtros
// ──────────────────────────────────────────────────────────────────────────────

func TestSuppliers_ListFiltraInactivos(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/suppliers?status=false", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decode[dto.SupplierListResponse](t, resp)
	assert.Equal(t, 2, out.Total)
}

func TestSuppliers_ListEstadoInvalido(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/suppliers?status=talvez", "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_QUERY", decode[dto.ErrorResponse](t, resp).Code)
}

func TestGondolas_FechaMalformada(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/gondolas?from=20-07-2024", "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGondolas_FiltroPorRango(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/gondolas?status=Ativo&from=2024-07-20&to=2024-08-05", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decode[dto.GondolaContractListResponse](t, resp)
	require.Equal(t, 2, out.Total)
	assert.Equal(t, "1", out.Items[0].ID)
	assert.Equal(t, "4", out.Items[1].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Altas, validación y edición
// ──────────────────────────────────────────────────────────────────────────────

func TestSuppliers_CreateQuedaPrimero(t *testing.T) {
	app, store := buildTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/suppliers", validSupplier)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	created := decode[dto.SupplierResponse](t, resp)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 6, store.Suppliers.Len())

	resp = doRequest(t, app, http.MethodGet, "/api/suppliers", "")
	list := decode[dto.SupplierListResponse](t, resp)
	assert.Equal(t, created.ID, list.Items[0].ID)
}

func TestSuppliers_CreateValidacionPorCampo(t *testing.T) {
	app, store := buildTestApp(t)

	body := `{"name":"  ","tax_id":"12345678000190","category":"Padaria","type":"Indústria",
		"contact_name":"x","phone":"1","partnership_start_date":"2999-01-01","rating":7}`
	resp := doRequest(t, app, http.MethodPost, "/api/suppliers", body)
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	out := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", out.Code)
	assert.Contains(t, out.Fields, "name")
	assert.Equal(t, "Formato de CNPJ inválido (XX.XXX.XXX/XXXX-XX).", out.Fields["tax_id"])
	assert.Contains(t, out.Fields, "category")
	assert.Equal(t, "A data não pode ser no futuro.", out.Fields["partnership_start_date"])
	assert.Equal(t, "A avaliação deve ser entre 1 e 5.", out.Fields["rating"])
	assert.Equal(t, 5, store.Suppliers.Len(), "un formulario inválido no modifica el store")
}

func TestSuppliers_CuerpoInvalido(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/suppliers", `{"name":`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLosses_ProveedorObligatorioSiEsResponsable(t *testing.T) {
	app, _ := buildTestApp(t)

	body := `{"product":"Iogurte","category":"Alimento","reason":"Avaria","quantity":2,
		"total_value":9.8,"responsible_party":"Fornecedor","occurrence_date":"2024-07-18"}`
	resp := doRequest(t, app, http.MethodPost, "/api/losses", body)
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	out := decode[dto.ErrorResponse](t, resp)
	assert.Contains(t, out.Fields, "supplier_id")

	body = strings.Replace(body, `"Fornecedor"`, `"Loja"`, 1)
	resp = doRequest(t, app, http.MethodPost, "/api/losses", body)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestLosses_ValoresPositivos(t *testing.T) {
	app, _ := buildTestApp(t)

	body := `{"product":"Iogurte","category":"Alimento","reason":"Avaria","quantity":0,
		"total_value":-1,"responsible_party":"Loja","occurrence_date":"2024-07-18"}`
	resp := doRequest(t, app, http.MethodPost, "/api/losses", body)
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	out := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "Deve ser um número positivo.", out.Fields["quantity"])
	assert.Equal(t, "Deve ser um número positivo.", out.Fields["total_value"])
}

func TestGondolas_VigenciaInvertida(t *testing.T) {
	app, _ := buildTestApp(t)

	body := `{"supplier_id":"1","placement_type":"Ilha","agreed_value":100,
		"validity_start":"2024-08-10","validity_end":"2024-08-01","status":"Ativo"}`
	resp := doRequest(t, app, http.MethodPost, "/api/gondolas", body)
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	out := decode[dto.ErrorResponse](t, resp)
	assert.Contains(t, out.Fields, "validity_end")
}

func TestSuppliers_UpdateInexistenteSinCambios(t *testing.T) {
	app, store := buildTestApp(t)

	resp := doRequest(t, app, http.MethodPut, "/api/suppliers/no-existe", validSupplier)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, 5, store.Suppliers.Len())
}

func TestRecords_IDInexistenteEsNoOp(t *testing.T) {
	tests := []struct {
		path string
		body string
		size func(*memory.Store) int
	}{
		{"/api/suppliers", validSupplier, func(s *memory.Store) int { return s.Suppliers.Len() }},
		{"/api/bonuses", `{"supplier_id":"1","type":"Produto","total_value":150,
			"negotiation_date":"2024-07-02","status":"Recebido"}`,
			func(s *memory.Store) int { return s.Bonuses.Len() }},
		{"/api/losses", `{"product":"Iogurte","category":"Alimento","reason":"Avaria","quantity":2,
			"total_value":9.8,"responsible_party":"Loja","occurrence_date":"2024-07-18"}`,
			func(s *memory.Store) int { return s.Losses.Len() }},
		{"/api/gondolas", `{"supplier_id":"1","placement_type":"Ilha","agreed_value":100,
			"validity_start":"2024-08-01","validity_end":"2024-08-31","status":"Ativo"}`,
			func(s *memory.Store) int { return s.Gondolas.Len() }},
		{"/api/negotiations", `{"supplier_id":"1","negotiation_date":"2024-07-05",
			"negotiated_items":"Linha de sucos","total_gain":300}`,
			func(s *memory.Store) int { return s.Negotiations.Len() }},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			app, store := buildTestApp(t)
			before := tt.size(store)

			resp := doRequest(t, app, http.MethodPut, tt.path+"/no-existe", tt.body)
			assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
			assert.Equal(t, before, tt.size(store))

			resp = doRequest(t, app, http.MethodDelete, tt.path+"/no-existe?confirm=true", "")
			assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
			assert.Equal(t, before, tt.size(store))
		})
	}
}

func TestSuppliers_UpdateConservaPosicion(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doRequest(t, app, http.MethodPut, "/api/suppliers/3", validSupplier)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, http.MethodGet, "/api/suppliers", "")
	list := decode[dto.SupplierListResponse](t, resp)
	assert.Equal(t, "3", list.Items[2].ID)
	assert.Equal(t, "Padaria Central", list.Items[2].Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Borrado con confirmación
// ──────────────────────────────────────────────────────────────────────────────

func TestBonuses_DeleteRequiereConfirmacion(t *testing.T) {
	app, store := buildTestApp(t)

	resp := doRequest(t, app, http.MethodDelete, "/api/bonuses/1", "")
	require.Equal(t, fiber.StatusPreconditionRequired, resp.StatusCode)
	assert.Equal(t, "CONFIRMATION_REQUIRED", decode[dto.ErrorResponse](t, resp).Code)
	assert.Equal(t, 3, store.Bonuses.Len())

	resp = doRequest(t, app, http.MethodDelete, "/api/bonuses/1?confirm=true", "")
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, 2, store.Bonuses.Len())

	resp = doRequest(t, app, http.MethodDelete, "/api/bonuses/1?confirm=true", "")
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode, "un id inexistente no es error")
}

func TestLosses_GetByIDNoEncontrado(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/losses/99", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Exportación
// ──────────────────────────────────────────────────────────────────────────────

func TestBonuses_ExportCSV(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/bonuses/export?status=Pendente", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), `bonificacoes.csv`)
	assert.Equal(t, "text/csv; charset=utf-8", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t,
		"id,supplier_id,type,total_value,negotiation_date,status,notes\n"+
			"3,1,Crédito,800,2024-07-10,Pendente,Crédito para próxima compra.",
		string(body))
}

func TestNegotiations_ExportPDF(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/negotiations/export?format=pdf", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), `negociacoes.pdf`)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
}

func TestSuppliers_ExportSinDatos(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/suppliers/export?name=inexistente", "")
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	out := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "NO_DATA", out.Code)
	assert.Equal(t, "Não há dados para exportar.", out.Message)
}

func TestSuppliers_ExportFormatoDesconocido(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/suppliers/export?format=xlsx", "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard y utilidades
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboard_Summary(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/dashboard/summary?month=2024-07", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decode[dto.DashboardSummaryDTO](t, resp)
	assert.Equal(t, "2024-07", out.Month)
	assert.Equal(t, "R$ 6.200,00", out.ReceivedBonusesLabel)
	assert.Equal(t, 3, out.ActiveGondolas)

	resp = doRequest(t, app, http.MethodGet, "/api/dashboard/summary?month=julho", "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestTools_FormatCNPJ(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/tools/cnpj?value=12345678000190", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decode[dto.CNPJResponse](t, resp)
	assert.Equal(t, "12.345.678/0001-90", out.Formatted)
	assert.True(t, out.Valid)
}

func TestHealth(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/health", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
