package sync

import (
	"strings"
	"time"
)

// Propiedad describe la propiedad de campos de una colección local: qué
// campos pertenecen al origen (se refrescan en cada sync) y cuáles son
// locales (cargados por el portal y preservados). Los dos conjuntos son
// disjuntos y explícitos; el merge es una función pura de este descriptor.
type Propiedad struct {
	// Fuente: campos del origen que se refrescan siempre que vengan en el registro.
	Fuente []string

	// FuenteCompleta: todos los extras del registro pertenecen al origen.
	// Se usa para las colecciones de datos crudos (tablas maestras, órdenes).
	FuenteCompleta bool

	// Locales: campo local -> valor por defecto con el tipo apropiado.
	// Un valor local ya cargado nunca se pisa; si está vacío se toma el del
	// origen (best-effort) y si tampoco viene se usa el default.
	Locales map[string]interface{}

	// Constantes: campos fijos que agrega el sync (ej: rol del directorio).
	Constantes map[string]interface{}
}

// Descriptores por colección del directorio.
var (
	PropiedadEmpresas = Propiedad{
		Locales: map[string]interface{}{
			"cuit":     "",
			"telefono": "",
			"email":    "",
			"notas":    "",
			"activo":   true,
		},
	}

	PropiedadSupervisores = Propiedad{
		Locales: map[string]interface{}{
			"telefono": "",
			"email":    "",
			"password": "",
			"notas":    "",
			"activo":   true,
		},
		Constantes: map[string]interface{}{"rol": "supervisor"},
	}

	PropiedadUsuariosAdmin = Propiedad{
		Locales: map[string]interface{}{
			"telefono": "",
			"email":    "",
			"password": "",
			"notas":    "",
			"activo":   true,
		},
		Constantes: map[string]interface{}{"rol": "proveedor"},
	}

	// PropiedadRaw: colecciones espejo del GIS, sin campos locales.
	PropiedadRaw = Propiedad{FuenteCompleta: true}
)

// ConstruirEntrante arma el documento entrante a partir de un registro
// normalizado y el descriptor de propiedad: nombre canónico, campos del
// origen (filtrados o completos) y constantes. Nunca incluye _id.
func ConstruirEntrante(norm *RegistroNormalizado, prop Propiedad) map[string]interface{} {
	entrante := map[string]interface{}{"nombre": norm.Nombre}

	if prop.FuenteCompleta {
		for campo, valor := range norm.Extras {
			if campo == "_id" {
				continue
			}
			entrante[campo] = valor
		}
	} else {
		for _, campo := range prop.Fuente {
			if valor, ok := norm.Extras[campo]; ok {
				entrante[campo] = valor
			}
		}
		// Los campos locales también pueden venir del origen (best-effort);
		// el merge decide la precedencia.
		for campo := range prop.Locales {
			if valor, ok := norm.Extras[campo]; ok {
				entrante[campo] = valor
			}
		}
	}

	for campo, valor := range prop.Constantes {
		entrante[campo] = valor
	}

	return entrante
}

// MergeDocument fusiona el documento entrante sobre el existente según el
// descriptor de propiedad. Función pura, testeable sin store:
//   - los campos del origen se refrescan siempre,
//   - un campo local cargado en el existente se preserva,
//   - un campo local vacío toma el valor entrante o su default,
//   - se marcan sincronizadoDesdeGIS y ultimaSincronizacion.
func MergeDocument(existente, entrante map[string]interface{}, prop Propiedad, ahora time.Time) map[string]interface{} {
	fusionado := make(map[string]interface{}, len(entrante)+len(prop.Locales)+2)
	for campo, valor := range entrante {
		fusionado[campo] = valor
	}

	for campo, porDefecto := range prop.Locales {
		if valor, ok := existente[campo]; ok && !esVacio(valor) {
			fusionado[campo] = valor
			continue
		}
		if valor, ok := entrante[campo]; ok && !esVacio(valor) {
			fusionado[campo] = valor
			continue
		}
		fusionado[campo] = porDefecto
	}

	fusionado["sincronizadoDesdeGIS"] = true
	fusionado["ultimaSincronizacion"] = ahora.UnixMilli()
	return fusionado
}

// esVacio decide si un valor local cuenta como "no cargado": nil o string
// en blanco. Un booleano presente (ej: activo) siempre cuenta como cargado.
func esVacio(valor interface{}) bool {
	if valor == nil {
		return true
	}
	if s, ok := valor.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}
