package gis

import (
	"context"
	"net/url"
	"strconv"

	"gestion_forestal/internal/logger"
)

// FetchAllOrdenes recorre el listado paginado de órdenes de trabajo del GIS
// y devuelve el corpus completo concatenado en orden de página.
//
// La página 1 define cuántas páginas hay (metadata `paginacion.paginas`);
// si el payload no trae metadata, la página 1 es el corpus completo. Las
// fallas en páginas individuales (2..N) se loguean y se saltean para no
// abortar el recorrido entero; solo la página 1 es obligatoria.
func (c *Client) FetchAllOrdenes(ctx context.Context, desde string, limite int) ([]Record, error) {
	params := url.Values{}
	if desde != "" {
		params.Set("from", desde)
	}
	if limite > 0 {
		params.Set("limit", strconv.Itoa(limite))
	}
	params.Set("page", "1")

	raw, err := c.Fetch(ctx, EndpointOrdenes, params)
	if err != nil {
		return nil, err
	}

	records, anomalia := ExtractRecords(raw)
	if anomalia {
		logger.GetAppLogger().WithField("endpoint", EndpointOrdenes).Warn("Listado de órdenes con forma inesperada en la página 1")
	}

	paginacion, ok := ExtractPaginacion(raw)
	if !ok || paginacion.Paginas <= 1 {
		return records, nil
	}

	all := make([]Record, 0, len(records)*paginacion.Paginas)
	all = append(all, records...)

	for pagina := 2; pagina <= paginacion.Paginas; pagina++ {
		params.Set("page", strconv.Itoa(pagina))

		pageRaw, err := c.Fetch(ctx, EndpointOrdenes, params)
		if err != nil {
			logger.GetErrorLogger().WithError(err).WithField("pagina", pagina).Error("Fallo al traer una página de órdenes, se saltea")
			continue
		}

		pageRecords, anomalia := ExtractRecords(pageRaw)
		if anomalia {
			logger.GetAppLogger().WithField("pagina", pagina).Warn("Página de órdenes con forma inesperada, se toma vacía")
		}
		all = append(all, pageRecords...)
	}

	return all, nil
}
