package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/services"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/handlers"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/middleware"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/platform/config"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/platform/filestore"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/platform/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// apiClient drives the full stack (routes, services, SQLite, file store)
// with the session cookie obtained from /api/login.
type apiClient struct {
	t       *testing.T
	router  *gin.Engine
	cookies []*http.Cookie
	logs    *bytes.Buffer
}

func newSQLiteAPI(t *testing.T) (*apiClient, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	cfg := testConfig(dir)
	cfg.IsProduction = false
	cfg.SQLitePath = filepath.Join(dir, "database", "app.db")
	cfg.UploadDir = filepath.Join(dir, "uploads", "contratos")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, storage.Migrate(cfg, logger))
	repos, closeDB, err := storage.Open(context.Background(), cfg, logger)
	require.NoError(t, err)
	t.Cleanup(closeDB)

	logs := new(bytes.Buffer)
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(slog.New(slog.NewJSONHandler(logs, nil))))
	container := services.NewServiceContainer(cfg, repos, filestore.NewPDFStore(cfg.UploadDir, cfg.MaxUploadBytes))
	require.NoError(t, handlers.RegisterRoutes(r, cfg, container))

	return &apiClient{t: t, router: r, logs: logs}, cfg
}

func (a *apiClient) send(method, url string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for _, c := range a.cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *apiClient) call(method, url, body string) (int, map[string]any) {
	w := a.send(method, url, strings.NewReader(body), "application/json")
	var out map[string]any
	require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return w.Code, out
}

func (a *apiClient) login() {
	w := a.send(http.MethodPost, "/api/login", strings.NewReader(`{"usuario":"eighmen","senha":"Eighmen8"}`), "application/json")
	require.Equal(a.t, http.StatusOK, w.Code, w.Body.String())
	a.cookies = w.Result().Cookies()
	require.NotEmpty(a.t, a.cookies)
}

func TestSQLiteAPI_EntryThenSummary(t *testing.T) {
	api, _ := newSQLiteAPI(t)

	code, _ := api.call(http.MethodGet, "/api/lancamentos/resumo", "")
	require.Equal(t, http.StatusUnauthorized, code)

	api.login()

	code, body := api.call(http.MethodPost, "/api/lancamentos", `{"tipo":"entrada","valor":100,"data":"2025-01-01","categoria":"X"}`)
	require.Equal(t, http.StatusCreated, code, body)
	assert.Equal(t, float64(100), body["lancamento"].(map[string]any)["valor"])

	code, body = api.call(http.MethodGet, "/api/lancamentos/resumo", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(100), body["total_entradas"])
	assert.Equal(t, float64(0), body["total_saidas"])
	assert.Equal(t, float64(100), body["total_caixa"])
	categories := body["categorias"].(map[string]any)
	assert.Equal(t, float64(100), categories["X"].(map[string]any)["entrada"])

	code, body = api.call(http.MethodGet, "/api/lancamentos?data_inicio=2025-02-01", "")
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, body["lancamentos"])
}

func TestSQLiteAPI_BudgetLifecycle(t *testing.T) {
	api, _ := newSQLiteAPI(t)
	api.login()

	code, body := api.call(http.MethodPost, "/api/orcamentos", `{
		"titulo": "Site institucional",
		"cliente": "ACME",
		"servicos": [
			{"nome": "Design", "quantidade": 2, "preco_unitario": 150},
			{"nome": "Hospedagem", "preco_unitario": 49.90}
		]
	}`)
	require.Equal(t, http.StatusCreated, code, body)
	budget := body["orcamento"].(map[string]any)
	assert.Equal(t, "pendente", budget["status"])
	assert.Equal(t, 349.9, budget["valor_total"])
	id := strconv.Itoa(int(budget["id"].(float64)))

	code, body = api.call(http.MethodPut, "/api/orcamentos/"+id+"/status", `{"status":"aceito"}`)
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, "aceito", body["orcamento"].(map[string]any)["status"])

	code, body = api.call(http.MethodGet, "/api/orcamentos/clientes", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []any{"ACME"}, body["clientes"])

	code, _ = api.call(http.MethodDelete, "/api/orcamentos/"+id, "")
	require.Equal(t, http.StatusOK, code)
	code, body = api.call(http.MethodGet, "/api/orcamentos/"+id, "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Orçamento não encontrado", body["error"])
}

func TestSQLiteAPI_ContractUploadAndDownload(t *testing.T) {
	api, _ := newSQLiteAPI(t)
	api.login()

	fields := map[string]string{
		"titulo":      "Contrato Anual",
		"cliente":     "ACME",
		"valor":       "1500.50",
		"data_inicio": "2025-01-01",
		"data_fim":    "2025-12-31",
	}
	body, ct := multipartBody(t, fields, "arquivo", "Contrato Final.pdf", []byte("%PDF-1.4 e2e"))

	w := api.send(http.MethodPost, "/api/contratos", body, ct)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	contract := created["contrato"].(map[string]any)
	assert.Equal(t, "Contrato_Final.pdf", contract["nome_arquivo"])
	id := strconv.Itoa(int(contract["id"].(float64)))

	w = api.send(http.MethodGet, "/api/contratos/"+id+"/download", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "%PDF-1.4 e2e", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Disposition"), "Contrato_Final.pdf")

	code, list := api.call(http.MethodGet, "/api/contratos?cliente=acm", "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, list["contratos"], 1)

	body, ct = multipartBody(t, map[string]string{"titulo": "X", "cliente": "Y", "valor": "1", "data_inicio": "2025-02-01", "data_fim": "2025-01-01"}, "arquivo", "b.pdf", []byte("%PDF"))
	w = api.send(http.MethodPost, "/api/contratos", body, ct)
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
}

func TestSQLiteAPI_TaskCalendar(t *testing.T) {
	api, _ := newSQLiteAPI(t)
	api.login()

	code, body := api.call(http.MethodPost, "/api/tarefas", `{"titulo":"Gravação","tipo":"captacao","data":"2025-12-31","horario":"14:00"}`)
	require.Equal(t, http.StatusCreated, code, body)
	code, body = api.call(http.MethodPost, "/api/tarefas", `{"titulo":"Reunião","tipo":"reuniao","data":"2026-01-01"}`)
	require.Equal(t, http.StatusCreated, code, body)

	code, body = api.call(http.MethodGet, "/api/tarefas/calendario/2025/12", "")
	require.Equal(t, http.StatusOK, code, body)
	days := body["calendario"].(map[string]any)
	require.Len(t, days, 1)
	assert.Len(t, days["31"], 1)

	code, body = api.call(http.MethodGet, "/api/tarefas/calendario/2025/13", "")
	assert.Equal(t, http.StatusBadRequest, code, body)
}

func TestSQLiteAPI_TaskStatisticsUseDateRangeOnly(t *testing.T) {
	api, _ := newSQLiteAPI(t)
	api.login()

	code, body := api.call(http.MethodPost, "/api/tarefas", `{"titulo":"a","tipo":"captacao","data":"2025-03-05","horario":"15:00"}`)
	require.Equal(t, http.StatusCreated, code, body)
	doneID := int64(body["tarefa"].(map[string]any)["id"].(float64))
	code, body = api.call(http.MethodPost, "/api/tarefas", `{"titulo":"b","tipo":"edicao","data":"2025-03-05","horario":"09:00"}`)
	require.Equal(t, http.StatusCreated, code, body)
	code, body = api.call(http.MethodPut, "/api/tarefas/"+strconv.FormatInt(doneID, 10)+"/concluir", `{"concluida":true}`)
	require.Equal(t, http.StatusOK, code, body)

	for _, query := range []string{"", "?concluida=false", "?tipo=edicao", "?data_inicio=2025-03-01&data_fim=2025-03-31&tipo=reuniao&concluida=true"} {
		code, body = api.call(http.MethodGet, "/api/tarefas/estatisticas"+query, "")
		require.Equal(t, http.StatusOK, code, body)
		assert.Equal(t, float64(2), body["total_tarefas"], query)
		assert.Equal(t, float64(50), body["taxa_conclusao"], query)
		assert.Equal(t, map[string]any{"captacao": float64(1), "edicao": float64(1), "reuniao": float64(0)}, body["por_categoria"], query)
	}

	code, body = api.call(http.MethodGet, "/api/tarefas/estatisticas?data_inicio=2025-04-01", "")
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, float64(0), body["total_tarefas"])

	code, body = api.call(http.MethodGet, "/api/tarefas/calendario/2025/3", "")
	require.Equal(t, http.StatusOK, code, body)
	day := body["calendario"].(map[string]any)["5"].([]any)
	require.Len(t, day, 2)
	assert.Equal(t, "a", day[0].(map[string]any)["titulo"])
	assert.Equal(t, "b", day[1].(map[string]any)["titulo"])
}

func TestSQLiteAPI_CreatesAreLoggedOnce(t *testing.T) {
	api, _ := newSQLiteAPI(t)
	api.login()

	code, body := api.call(http.MethodPost, "/api/tarefas", `{"titulo":"a","tipo":"reuniao","data":"2025-03-05"}`)
	require.Equal(t, http.StatusCreated, code, body)
	code, body = api.call(http.MethodPost, "/api/lancamentos", `{"tipo":"saida","valor":5,"data":"2025-03-05","categoria":"X"}`)
	require.Equal(t, http.StatusCreated, code, body)

	logs := api.logs.String()
	assert.Equal(t, 1, strings.Count(logs, `"msg":"Task created"`), logs)
	assert.Equal(t, 1, strings.Count(logs, `"msg":"Entry created"`), logs)
	assert.Equal(t, 1, strings.Count(logs, `"msg":"Login succeeded"`), logs)
}
