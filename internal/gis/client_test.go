package gis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestion_forestal/config"
	"gestion_forestal/internal/common"
)

// newTestClient crea un cliente GIS apuntando al test server dado.
func newTestClient(serverURL string) *Client {
	return NewClient(&config.Configuration{
		GIS_BaseURL:        serverURL,
		GIS_APIKey:         "clave-de-prueba",
		GIS_TimeoutSeconds: 5,
	})
}

func TestFetch_EnviaAPIKey(t *testing.T) {
	var recibida string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recibida = r.Header.Get("x-api-key")
		fmt.Fprint(w, `{"data": []}`)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.Fetch(context.Background(), "/api/tablas-admin", nil)

	require.NoError(t, err)
	assert.Equal(t, "clave-de-prueba", recibida)
}

func TestFetch_StatusNoExitoso(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.Fetch(context.Background(), "/api/ordenes-trabajo", nil)

	require.Error(t, err)
	var appErr *common.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, common.ErrCodeGISFetch.Code, appErr.Code.Code)
	assert.Equal(t, common.StatusBadGateway, appErr.StatusCode)
}

func TestFetch_BodyNoJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html>mantenimiento</html>`)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.Fetch(context.Background(), "/api/ordenes-trabajo", nil)

	require.Error(t, err)
	var appErr *common.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, common.ErrCodeGISEnvelope.Code, appErr.Code.Code)
}

func TestFetch_ServerCaido(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // cerrado a propósito

	client := newTestClient(srv.URL)
	_, err := client.Fetch(context.Background(), "/api/ordenes-trabajo", nil)

	require.Error(t, err)
	var appErr *common.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, common.ErrCodeGISFetch.Code, appErr.Code.Code)
}

func TestFetchTablasAdmin_ObjetoPorDominio(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, EndpointTablasAdmin, r.URL.Path)
		fmt.Fprint(w, `{
			"zonas": [{"id": 1, "nombre": "Norte"}],
			"empresas": {"data": [{"idempresa": 10, "empresa": "Acme"}]},
			"campos": "no-es-una-lista"
		}`)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	tablas, err := client.FetchTablasAdmin(context.Background())

	require.NoError(t, err)
	require.Len(t, tablas["zonas"], 1)
	assert.Equal(t, "Norte", tablas["zonas"][0]["nombre"])
	require.Len(t, tablas["empresas"], 1)
	assert.Equal(t, "Acme", tablas["empresas"][0]["empresa"])
	// Un dominio con forma rota se toma vacío, no aborta el fetch
	assert.Empty(t, tablas["campos"])
}

func TestFetchTablasAdmin_PayloadNoObjeto(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[1, 2, 3]`)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.FetchTablasAdmin(context.Background())

	require.Error(t, err)
	var appErr *common.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, common.ErrCodeGISEnvelope.Code, appErr.Code.Code)
}

// pagina arma el payload de una página de órdenes con metadata de paginado.
func pagina(ordenes []map[string]interface{}, actual, paginas int) string {
	payload := map[string]interface{}{
		"ordenes": ordenes,
		"paginacion": map[string]int{
			"total":   len(ordenes) * paginas,
			"pagina":  actual,
			"limite":  len(ordenes),
			"paginas": paginas,
		},
	}
	b, _ := json.Marshal(payload)
	return string(b)
}

func TestFetchAllOrdenes_MultiplesPaginas(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2024-01-01", r.URL.Query().Get("from"))
		assert.Equal(t, "2", r.URL.Query().Get("limit"))
		switch r.URL.Query().Get("page") {
		case "1":
			fmt.Fprint(w, pagina([]map[string]interface{}{{"id": 1}, {"id": 2}}, 1, 3))
		case "2":
			fmt.Fprint(w, pagina([]map[string]interface{}{{"id": 3}, {"id": 4}}, 2, 3))
		case "3":
			fmt.Fprint(w, pagina([]map[string]interface{}{{"id": 5}}, 3, 3))
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	ordenes, err := client.FetchAllOrdenes(context.Background(), "2024-01-01", 2)

	require.NoError(t, err)
	require.Len(t, ordenes, 5)
	// El orden de páginas se preserva en la concatenación
	assert.Equal(t, float64(1), ordenes[0]["id"])
	assert.Equal(t, float64(5), ordenes[4]["id"])
}

func TestFetchAllOrdenes_SinMetadataEsCorpusCompleto(t *testing.T) {
	llamadas := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		llamadas++
		fmt.Fprint(w, `{"ordenes": [{"id": 1}, {"id": 2}]}`)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	ordenes, err := client.FetchAllOrdenes(context.Background(), "", 100)

	require.NoError(t, err)
	assert.Len(t, ordenes, 2)
	assert.Equal(t, 1, llamadas)
}

func TestFetchAllOrdenes_PaginaIntermediaFallida(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("page") {
		case "1":
			fmt.Fprint(w, pagina([]map[string]interface{}{{"id": 1}}, 1, 3))
		case "2":
			w.WriteHeader(http.StatusInternalServerError)
		case "3":
			fmt.Fprint(w, pagina([]map[string]interface{}{{"id": 3}}, 3, 3))
		}
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	ordenes, err := client.FetchAllOrdenes(context.Background(), "", 1)

	// La falla de una página intermedia no aborta el recorrido
	require.NoError(t, err)
	require.Len(t, ordenes, 2)
	assert.Equal(t, float64(1), ordenes[0]["id"])
	assert.Equal(t, float64(3), ordenes[1]["id"])
}

func TestFetchAllOrdenes_Pagina1Fallida(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.FetchAllOrdenes(context.Background(), "", 100)

	// La página 1 sí es obligatoria
	require.Error(t, err)
}
