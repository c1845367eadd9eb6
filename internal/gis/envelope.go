package gis

import "encoding/json"

// Claves de envelope conocidas, en orden de prioridad. El GIS no es
// consistente entre endpoints: algunos devuelven el array pelado, otros lo
// envuelven bajo distintas claves.
var envelopeKeys = []string{"data", "ordenes", "results"}

// ExtractRecords normaliza un payload del GIS a una lista de registros.
// Prueba en orden: array pelado, luego las claves de envelope conocidas.
// Si ninguna forma matchea devuelve lista vacía y anomalia=true; una forma
// desconocida no es un error fatal, pero el llamador debe loguearla.
func ExtractRecords(raw json.RawMessage) (records []Record, anomalia bool) {
	if len(raw) == 0 {
		return []Record{}, true
	}

	var bare []Record
	if err := json.Unmarshal(raw, &bare); err == nil {
		return bare, false
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return []Record{}, true
	}

	for _, key := range envelopeKeys {
		inner, ok := envelope[key]
		if !ok {
			continue
		}
		var wrapped []Record
		if err := json.Unmarshal(inner, &wrapped); err == nil {
			return wrapped, false
		}
	}

	return []Record{}, true
}

// Paginacion es el bloque de metadata de paginado que acompaña los listados
// de órdenes del GIS.
type Paginacion struct {
	Total   int `json:"total"`   // Total de registros en el corpus
	Pagina  int `json:"pagina"`  // Página actual (base 1)
	Limite  int `json:"limite"`  // Tamaño de página
	Paginas int `json:"paginas"` // Cantidad total de páginas
}

// ExtractPaginacion extrae la metadata de paginado de un payload de listado.
// Devuelve ok=false si el payload no trae el bloque `paginacion` (en ese
// caso la página recibida es el corpus completo).
func ExtractPaginacion(raw json.RawMessage) (*Paginacion, bool) {
	var envelope struct {
		Paginacion *Paginacion `json:"paginacion"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, false
	}
	if envelope.Paginacion == nil || envelope.Paginacion.Paginas <= 0 {
		return nil, false
	}
	return envelope.Paginacion, true
}
