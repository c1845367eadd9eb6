package sync

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestion_forestal/internal/common"
	"gestion_forestal/internal/gis"
)

func TestNormalize_PrioridadDeClaves(t *testing.T) {
	casos := []struct {
		nombre string
		raw    gis.Record
		tipo   TipoColeccion
		clave  interface{}
	}{
		{"id gana sobre alias", gis.Record{"id": float64(5), "idempresa": float64(9)}, TipoEmpresa, int64(5)},
		{"alias idempresa", gis.Record{"idempresa": float64(9), "empresa": "Acme"}, TipoEmpresa, int64(9)},
		{"alias cod_empres", gis.Record{"cod_empres": "12"}, TipoEmpresa, int64(12)},
		{"alias codigo", gis.Record{"codigo": "Z-4"}, TipoEmpresa, "Z-4"},
		{"alias idusuario", gis.Record{"idusuario": float64(33)}, TipoUsuario, int64(33)},
		{"alias cod_usuario", gis.Record{"cod_usuario": "u-7"}, TipoUsuario, "u-7"},
		{"_id como respaldo", gis.Record{"_id": "abc123"}, TipoGenerico, "abc123"},
		{"id vacio cae al alias", gis.Record{"id": "", "idempresa": float64(4)}, TipoEmpresa, int64(4)},
	}

	for _, caso := range casos {
		t.Run(caso.nombre, func(t *testing.T) {
			norm, err := Normalize(caso.raw, caso.tipo)
			require.NoError(t, err)
			assert.Equal(t, caso.clave, norm.Clave)
		})
	}
}

func TestNormalize_SinClaveDerivable(t *testing.T) {
	_, err := Normalize(gis.Record{"empresa": "Sin ID"}, TipoEmpresa)

	require.Error(t, err)
	var appErr *common.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, common.ErrCodeSyncRegistro.Code, appErr.Code.Code)
}

func TestNormalize_AliasDeUsuarioNoAplicaAEmpresa(t *testing.T) {
	// idusuario no es candidato para empresas
	_, err := Normalize(gis.Record{"idusuario": float64(3)}, TipoEmpresa)
	assert.Error(t, err)
}

func TestNormalize_NombreCanonico(t *testing.T) {
	casos := []struct {
		nombre   string
		raw      gis.Record
		tipo     TipoColeccion
		esperado string
	}{
		{"empresa gana", gis.Record{"id": float64(1), "empresa": "Acme", "nombre": "Otro"}, TipoEmpresa, "Acme"},
		{"nombre", gis.Record{"id": float64(1), "nombre": "Zona Sur"}, TipoGenerico, "Zona Sur"},
		{"usuario", gis.Record{"id": float64(1), "usuario": "jlopez"}, TipoUsuario, "jlopez"},
		{"nombre_completo", gis.Record{"id": float64(1), "nombre_completo": "Juana López"}, TipoUsuario, "Juana López"},
		{"razon_social", gis.Record{"id": float64(1), "razon_social": "Acme S.A."}, TipoEmpresa, "Acme S.A."},
		{"respaldo proveedor", gis.Record{"id": float64(7)}, TipoEmpresa, "Proveedor 7"},
		{"respaldo usuario", gis.Record{"idusuario": float64(3)}, TipoUsuario, "Usuario 3"},
		{"nombre en blanco usa respaldo", gis.Record{"id": float64(2), "nombre": "   "}, TipoGenerico, "Registro 2"},
	}

	for _, caso := range casos {
		t.Run(caso.nombre, func(t *testing.T) {
			norm, err := Normalize(caso.raw, caso.tipo)
			require.NoError(t, err)
			assert.Equal(t, caso.esperado, norm.Nombre)
		})
	}
}

func TestNormalize_ExtrasSinElCampoDeClave(t *testing.T) {
	norm, err := Normalize(gis.Record{"idempresa": float64(9), "empresa": "Acme", "cuit": "30-11111111-2"}, TipoEmpresa)

	require.NoError(t, err)
	assert.NotContains(t, norm.Extras, "idempresa")
	assert.Equal(t, "Acme", norm.Extras["empresa"])
	assert.Equal(t, "30-11111111-2", norm.Extras["cuit"])
}

func TestCanonicalizarClave(t *testing.T) {
	casos := []struct {
		nombre   string
		valor    interface{}
		esperado interface{}
		ok       bool
	}{
		{"float64 entero", float64(7), int64(7), true},
		{"float64 con decimales", 7.5, 7.5, true},
		{"string numerico", "42", int64(42), true},
		{"string numerico con espacios", " 42 ", int64(42), true},
		{"string no numerico", "Z-4", "Z-4", true},
		{"string vacio", "", nil, false},
		{"string en blanco", "   ", nil, false},
		{"nil", nil, nil, false},
		{"int", 3, int64(3), true},
		{"bool no es clave", true, nil, false},
	}

	for _, caso := range casos {
		t.Run(caso.nombre, func(t *testing.T) {
			clave, ok := CanonicalizarClave(caso.valor)
			assert.Equal(t, caso.ok, ok)
			if caso.ok {
				assert.Equal(t, caso.esperado, clave)
			}
		})
	}
}

func TestCanonicalizarClave_EstabilidadEntreFormas(t *testing.T) {
	// "7" y 7.0 deben resolver a la misma clave: el mismo registro upstream
	// siempre mapea al mismo documento local
	desdeString, ok1 := CanonicalizarClave("7")
	desdeNumero, ok2 := CanonicalizarClave(float64(7))

	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, desdeString, desdeNumero)
}
