package gis

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractRecords_ArrayPelado(t *testing.T) {
	raw := json.RawMessage(`[{"id": 1, "nombre": "Zona Norte"}, {"id": 2}]`)

	records, anomalia := ExtractRecords(raw)

	require.False(t, anomalia)
	require.Len(t, records, 2)
	assert.Equal(t, "Zona Norte", records[0]["nombre"])
}

func TestExtractRecords_EnvelopeData(t *testing.T) {
	raw := json.RawMessage(`{"data": [{"id": 7}]}`)

	records, anomalia := ExtractRecords(raw)

	require.False(t, anomalia)
	require.Len(t, records, 1)
	assert.Equal(t, float64(7), records[0]["id"])
}

func TestExtractRecords_EnvelopeOrdenes(t *testing.T) {
	raw := json.RawMessage(`{"ordenes": [{"id": 3}], "paginacion": {"total": 1, "pagina": 1, "limite": 100, "paginas": 1}}`)

	records, anomalia := ExtractRecords(raw)

	require.False(t, anomalia)
	require.Len(t, records, 1)
}

func TestExtractRecords_EnvelopeResults(t *testing.T) {
	raw := json.RawMessage(`{"results": [{"id": 9}, {"id": 10}]}`)

	records, anomalia := ExtractRecords(raw)

	require.False(t, anomalia)
	assert.Len(t, records, 2)
}

func TestExtractRecords_PrioridadDataSobreResults(t *testing.T) {
	// Si vienen varias claves conocidas, data gana.
	raw := json.RawMessage(`{"results": [{"id": 1}], "data": [{"id": 2}]}`)

	records, anomalia := ExtractRecords(raw)

	require.False(t, anomalia)
	require.Len(t, records, 1)
	assert.Equal(t, float64(2), records[0]["id"])
}

func TestExtractRecords_FormaDesconocida(t *testing.T) {
	casos := []struct {
		nombre string
		raw    string
	}{
		{"objeto sin claves conocidas", `{"items": [{"id": 1}]}`},
		{"escalar", `42`},
		{"string", `"hola"`},
		{"data no array", `{"data": {"id": 1}}`},
		{"vacio", ``},
	}

	for _, caso := range casos {
		t.Run(caso.nombre, func(t *testing.T) {
			records, anomalia := ExtractRecords(json.RawMessage(caso.raw))
			assert.True(t, anomalia)
			assert.Empty(t, records)
		})
	}
}

func TestExtractRecords_ArrayVacio(t *testing.T) {
	records, anomalia := ExtractRecords(json.RawMessage(`[]`))

	assert.False(t, anomalia)
	assert.Empty(t, records)
}

func TestExtractPaginacion_Presente(t *testing.T) {
	raw := json.RawMessage(`{"ordenes": [], "paginacion": {"total": 250, "pagina": 1, "limite": 100, "paginas": 3}}`)

	paginacion, ok := ExtractPaginacion(raw)

	require.True(t, ok)
	assert.Equal(t, 250, paginacion.Total)
	assert.Equal(t, 3, paginacion.Paginas)
}

func TestExtractPaginacion_Ausente(t *testing.T) {
	casos := []string{
		`{"ordenes": [{"id": 1}]}`,
		`[{"id": 1}]`,
		`{"paginacion": {"paginas": 0}}`,
		`{"paginacion": null}`,
	}

	for _, raw := range casos {
		_, ok := ExtractPaginacion(json.RawMessage(raw))
		assert.False(t, ok, "no debería haber paginación en: %s", raw)
	}
}
