package sync

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ahora = time.UnixMilli(1700000000000)

func TestMergeDocument_CreacionConDefaults(t *testing.T) {
	entrante := map[string]interface{}{"nombre": "Acme"}

	fusionado := MergeDocument(nil, entrante, PropiedadEmpresas, ahora)

	assert.Equal(t, "Acme", fusionado["nombre"])
	assert.Equal(t, "", fusionado["telefono"])
	assert.Equal(t, "", fusionado["cuit"])
	assert.Equal(t, true, fusionado["activo"])
	assert.Equal(t, true, fusionado["sincronizadoDesdeGIS"])
	assert.Equal(t, ahora.UnixMilli(), fusionado["ultimaSincronizacion"])
}

func TestMergeDocument_PreservaLocalCargado(t *testing.T) {
	existente := map[string]interface{}{"nombre": "Acme", "telefono": "11-2222", "activo": true}
	entrante := map[string]interface{}{"nombre": "Acme Renombrada"}

	fusionado := MergeDocument(existente, entrante, PropiedadEmpresas, ahora)

	// El campo del origen se refresca, el local cargado se preserva
	assert.Equal(t, "Acme Renombrada", fusionado["nombre"])
	assert.Equal(t, "11-2222", fusionado["telefono"])
	assert.Equal(t, true, fusionado["activo"])
}

func TestMergeDocument_LocalVacioTomaElEntrante(t *testing.T) {
	existente := map[string]interface{}{"nombre": "Acme", "telefono": ""}
	entrante := map[string]interface{}{"nombre": "Acme", "telefono": "11-9999"}

	fusionado := MergeDocument(existente, entrante, PropiedadEmpresas, ahora)

	assert.Equal(t, "11-9999", fusionado["telefono"])
}

func TestMergeDocument_LocalCargadoGanaAlEntrante(t *testing.T) {
	existente := map[string]interface{}{"telefono": "11-2222"}
	entrante := map[string]interface{}{"nombre": "Acme", "telefono": "11-9999"}

	fusionado := MergeDocument(existente, entrante, PropiedadEmpresas, ahora)

	assert.Equal(t, "11-2222", fusionado["telefono"])
}

func TestMergeDocument_ActivoFalsoSePreserva(t *testing.T) {
	// Un booleano presente cuenta como cargado: desactivar una empresa
	// localmente sobrevive a los syncs siguientes
	existente := map[string]interface{}{"activo": false}
	entrante := map[string]interface{}{"nombre": "Acme"}

	fusionado := MergeDocument(existente, entrante, PropiedadEmpresas, ahora)

	assert.Equal(t, false, fusionado["activo"])
}

func TestMergeDocument_ConstantesDeRol(t *testing.T) {
	norm := &RegistroNormalizado{Clave: int64(3), Nombre: "jlopez", Extras: map[string]interface{}{}}
	entrante := ConstruirEntrante(norm, PropiedadSupervisores)

	fusionado := MergeDocument(nil, entrante, PropiedadSupervisores, ahora)

	assert.Equal(t, "supervisor", fusionado["rol"])
	assert.Equal(t, "", fusionado["password"])
}

func TestConstruirEntrante_FuenteCompleta(t *testing.T) {
	norm := &RegistroNormalizado{
		Clave:  int64(4),
		Nombre: "Zona Norte",
		Extras: map[string]interface{}{"nombre": "Zona Norte", "region": "N", "_id": "ajeno"},
	}

	entrante := ConstruirEntrante(norm, PropiedadRaw)

	assert.Equal(t, "Zona Norte", entrante["nombre"])
	assert.Equal(t, "N", entrante["region"])
	// _id nunca viaja en el $set
	assert.NotContains(t, entrante, "_id")
}

func TestConstruirEntrante_FiltraExtrasNoDeclarados(t *testing.T) {
	norm := &RegistroNormalizado{
		Clave:  int64(7),
		Nombre: "Acme",
		Extras: map[string]interface{}{"empresa": "Acme", "cuit": "30-11111111-2", "campo_interno_gis": "x"},
	}

	entrante := ConstruirEntrante(norm, PropiedadEmpresas)

	require.Equal(t, "Acme", entrante["nombre"])
	assert.Equal(t, "30-11111111-2", entrante["cuit"])
	// Solo los campos declarados en el descriptor entran al documento
	assert.NotContains(t, entrante, "campo_interno_gis")
	assert.NotContains(t, entrante, "empresa")
}
