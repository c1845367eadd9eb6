// Package sync implementa el motor de reconciliación: normalización de
// registros heterogéneos del GIS a una clave y nombre canónicos, fusión con
// propiedad de campos explícita y upserts idempotentes por clave.
package sync

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gestion_forestal/internal/common"
	"gestion_forestal/internal/gis"
)

// TipoColeccion identifica qué estrategia de derivación de clave aplicar.
// Cada origen del GIS nombra sus identificadores distinto.
type TipoColeccion string

const (
	TipoEmpresa  TipoColeccion = "empresa"
	TipoUsuario  TipoColeccion = "usuario"
	TipoOrden    TipoColeccion = "orden"
	TipoGenerico TipoColeccion = "generico"
)

// estrategiaClave define los campos candidatos a clave canónica, en orden
// fijo de prioridad, y el prefijo para el nombre de respaldo.
type estrategiaClave struct {
	candidatos []string
	prefijo    string
}

// Tabla de estrategias por tipo. Tabla explícita, no branching ad hoc:
// el comportamiento del normalizador se testea por tipo contra esta tabla.
var estrategiasClave = map[TipoColeccion]estrategiaClave{
	TipoEmpresa:  {candidatos: []string{"id", "_id", "idempresa", "cod_empres", "codigo"}, prefijo: "Proveedor"},
	TipoUsuario:  {candidatos: []string{"id", "_id", "idusuario", "cod_usuario"}, prefijo: "Usuario"},
	TipoOrden:    {candidatos: []string{"id", "_id"}, prefijo: "Orden"},
	TipoGenerico: {candidatos: []string{"id", "_id", "codigo"}, prefijo: "Registro"},
}

// Candidatos de nombre de display, compartidos entre tipos. El primero
// presente y no vacío gana.
var candidatosNombre = []string{"empresa", "nombre", "usuario", "nombre_completo", "razon_social"}

// RegistroNormalizado es el resultado de normalizar un registro crudo:
// clave canónica, nombre de display garantizado no vacío y el resto de los
// campos del origen.
type RegistroNormalizado struct {
	Clave  interface{} // int64 cuando parsea numérico, si no el string crudo
	Nombre string
	Extras gis.Record
}

// Normalize deriva la clave y el nombre canónicos de un registro crudo según
// el tipo de colección. Un registro sin clave derivable se rechaza con error
// (el reconciliador lo cuenta y sigue, nunca aborta el lote).
func Normalize(raw gis.Record, tipo TipoColeccion) (*RegistroNormalizado, error) {
	estrategia, ok := estrategiasClave[tipo]
	if !ok {
		estrategia = estrategiasClave[TipoGenerico]
	}

	var clave interface{}
	campoClave := ""
	for _, candidato := range estrategia.candidatos {
		valor, presente := raw[candidato]
		if !presente {
			continue
		}
		if coercida, ok := CanonicalizarClave(valor); ok {
			clave = coercida
			campoClave = candidato
			break
		}
	}
	if campoClave == "" {
		return nil, common.NewError(common.ErrCodeSyncRegistro,
			fmt.Sprintf("Registro de tipo %s sin clave derivable", tipo),
			common.StatusBadRequest, raw)
	}

	nombre := ""
	for _, candidato := range candidatosNombre {
		if s, ok := raw[candidato].(string); ok && strings.TrimSpace(s) != "" {
			nombre = s
			break
		}
	}
	if nombre == "" {
		// Respaldo determinístico: todo registro tiene nombre no vacío
		nombre = fmt.Sprintf("%s %v", estrategia.prefijo, clave)
	}

	extras := make(gis.Record, len(raw))
	for campo, valor := range raw {
		if campo == campoClave {
			continue
		}
		extras[campo] = valor
	}

	return &RegistroNormalizado{Clave: clave, Nombre: nombre, Extras: extras}, nil
}

// CanonicalizarClave coerciona un valor de clave a su forma canónica:
// int64 cuando es numéricamente parseable, si no el string crudo. Los
// filtros de lookup y upsert usan siempre la forma coercida, porque el
// store matchea tipos de manera estricta sobre _id.
func CanonicalizarClave(valor interface{}) (interface{}, bool) {
	switch v := valor.(type) {
	case nil:
		return nil, false
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		// Los números JSON llegan como float64
		if v == math.Trunc(v) && !math.IsInf(v, 0) {
			return int64(v), true
		}
		return v, true
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, true
		}
		s := strings.TrimSpace(v.String())
		return s, s != ""
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil, false
		}
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i, true
		}
		return s, true
	default:
		return nil, false
	}
}
