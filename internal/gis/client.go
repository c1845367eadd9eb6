// Package gis implementa el cliente HTTP contra el sistema GIS externo:
// pedidos autenticados por API key, normalización de envelopes de respuesta
// y el recorrido completo de listados paginados.
package gis

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"gestion_forestal/config"
	"gestion_forestal/internal/common"
	"gestion_forestal/internal/logger"
)

// Record es un registro crudo tal como llega del GIS. La forma varía por
// endpoint y no está fijada por contrato: los campos se leen de manera
// defensiva.
type Record = map[string]interface{}

// Endpoints conocidos del GIS.
const (
	EndpointTablasAdmin = "/api/tablas-admin"
	EndpointOrdenes     = "/api/ordenes-trabajo"
	EndpointProteccion  = "/api/proteccion"
)

// Client es el cliente HTTP contra el GIS. Solo hace I/O de red, nunca
// muta estado local.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient crea un cliente GIS desde la configuración del server.
// El timeout es fijo por cliente, dimensionado para el listado más grande.
func NewClient(cfg *config.Configuration) *Client {
	timeout := time.Duration(cfg.GIS_TimeoutSeconds) * time.Second
	return &Client{
		baseURL: cfg.GIS_BaseURL,
		apiKey:  cfg.GIS_APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fetch hace un GET autenticado contra un endpoint del GIS y devuelve el
// body parseado como JSON crudo. Errores de red, timeouts y status no-2xx
// se devuelven como falla de fetch.
func (c *Client) Fetch(ctx context.Context, endpoint string, params url.Values) (json.RawMessage, error) {
	fullURL := c.baseURL + endpoint
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, common.NewError(common.ErrCodeGISFetch,
			fmt.Sprintf("No se pudo armar el pedido a %s", endpoint),
			common.StatusInternalServerError, err)
	}

	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.GetErrorLogger().WithError(err).WithField("endpoint", endpoint).Error("Fallo de red al consultar el GIS")
		return nil, common.NewError(common.ErrCodeGISFetch, common.MsgUpstreamError, common.StatusBadGateway, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.GetErrorLogger().WithFields(map[string]interface{}{
			"endpoint": endpoint,
			"status":   resp.StatusCode,
		}).Error("Respuesta no exitosa del GIS")
		return nil, common.NewError(common.ErrCodeGISFetch,
			fmt.Sprintf("El GIS respondió con status %d en %s", resp.StatusCode, endpoint),
			common.StatusBadGateway, nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, common.NewError(common.ErrCodeGISFetch, "No se pudo leer la respuesta del GIS", common.StatusBadGateway, err)
	}

	if !json.Valid(body) {
		return nil, common.NewError(common.ErrCodeGISEnvelope, "La respuesta del GIS no es JSON válido", common.StatusBadGateway, nil)
	}

	return json.RawMessage(body), nil
}

// FetchTablasAdmin consulta el endpoint de tablas maestras. El GIS devuelve
// un objeto con un array por dominio ({zonas:[...], empresas:[...], ...});
// cada array interno se normaliza con ExtractRecords.
func (c *Client) FetchTablasAdmin(ctx context.Context) (map[string][]Record, error) {
	raw, err := c.Fetch(ctx, EndpointTablasAdmin, nil)
	if err != nil {
		return nil, err
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, common.NewError(common.ErrCodeGISEnvelope,
			"El endpoint de tablas maestras no devolvió un objeto por dominio",
			common.StatusBadGateway, err)
	}

	result := make(map[string][]Record, len(envelope))
	for dominio, rawList := range envelope {
		records, anomalia := ExtractRecords(rawList)
		if anomalia {
			logger.GetAppLogger().WithField("dominio", dominio).Warn("Dominio de tablas maestras con forma inesperada, se toma vacío")
		}
		result[dominio] = records
	}

	return result, nil
}
