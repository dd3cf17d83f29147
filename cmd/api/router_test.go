package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/crm-api/internal/config"
	"github.com/xavierca1/crm-api/internal/infra/database"
)

func newTestServer(t *testing.T, env map[string]string) *httptest.Server {
	t.Helper()

	cfg, err := config.FromEnv(func(k string) string { return env[k] })
	require.NoError(t, err)

	db, err := database.NewDBConnection(database.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	dialect, err := database.DialectFor(database.DriverSQLite)
	require.NoError(t, err)
	require.NoError(t, database.EnsureSchema(context.Background(), db, dialect))

	router, err := newRouter(routerDeps{Config: cfg, DB: db, Dialect: dialect})
	require.NoError(t, err)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, body string) (*http.Response, map[string]any) {
	t.Helper()

	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	if resp.StatusCode != http.StatusNoContent {
		_ = json.NewDecoder(resp.Body).Decode(&out)
	}
	return resp, out
}

func TestRouter_DealLifecycle(t *testing.T) {
	srv := newTestServer(t, nil)
	api := srv.URL + "/api/v1"

	resp, contato := doJSON(t, http.MethodPost, api+"/contatos", `{"nome":"João","email":"joao@x.com"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "lead", contato["situacao"])
	contatoID := int(contato["id"].(float64))

	resp, body := doJSON(t, http.MethodPost, api+"/contatos", `{"nome":"Outro","email":"joao@x.com"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "DUPLICATE_KEY", body["error"])

	resp, func1 := doJSON(t, http.MethodPost, api+"/funcionarios", `{"nome":"Ana","email":"ana@x.com"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, func1["ativo"])

	deal := `{"titulo":"Projeto","valor_previsto":1000.456,"contato_id":` + itoa(contatoID) + `,"responsavel_id":` + itoa(int(func1["id"].(float64))) + `}`
	resp, negocio := doJSON(t, http.MethodPost, api+"/negocios", deal)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "novo", negocio["fase"])
	assert.Equal(t, 1000.46, negocio["valor_previsto"])
	negocioURL := api + "/negocios/" + itoa(int(negocio["id"].(float64)))

	resp, negocio = doJSON(t, http.MethodPut, negocioURL, `{"fase":"fechado_ganho","data_fechamento":"2025-03-09"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "fechado_ganho", negocio["fase"])
	assert.Equal(t, "Projeto", negocio["titulo"])
	assert.NotNil(t, negocio["atualizado_em"])

	resp, _ = doJSON(t, http.MethodDelete, api+"/contatos/"+itoa(contatoID), "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, body = doJSON(t, http.MethodGet, negocioURL, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", body["error"])
}

func TestRouter_Validation(t *testing.T) {
	srv := newTestServer(t, nil)
	api := srv.URL + "/api/v1"

	resp, body := doJSON(t, http.MethodPost, api+"/negocios", `{"titulo":"Sem contato","contato_id":999}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", body["error"])

	resp, body = doJSON(t, http.MethodPost, api+"/contatos", `{"nome":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_JSON", body["error"])

	resp, _ = doJSON(t, http.MethodGet, api+"/contatos?limite=0", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouter_StatusAndPages(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/health/ready", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "healthy", body["status"])

	for _, page := range []string{"/painel", "/funil", "/indicadores?inicio=2025-03-31&fim=2025-03-01"} {
		resp, err := http.Get(srv.URL + page)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, page)
		assert.Contains(t, resp.Header.Get("Content-Type"), "text/html", page)
	}

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/docs/doc.json")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_SeedOnlyInDevelopment(t *testing.T) {
	prod := newTestServer(t, map[string]string{"APP_ENV": "production"})
	resp, err := http.Post(prod.URL+"/dev/seed", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	dev := newTestServer(t, nil)
	resp, body := doJSON(t, http.MethodPost, dev.URL+"/dev/seed?qtd_funcionarios=2&qtd_contatos=5&qtd_negocios=10", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resumo := body["resumo"].(map[string]any)
	assert.Equal(t, float64(10), resumo["negocios_criados"])

	resp, err = http.Get(dev.URL + "/api/v1/negocios")
	require.NoError(t, err)
	defer resp.Body.Close()
	var deals []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&deals))
	assert.Len(t, deals, 10)
}

func itoa(i int) string {
	b, _ := json.Marshal(i)
	return string(b)
}
