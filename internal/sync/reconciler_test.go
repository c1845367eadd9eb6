package sync

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "gestion_forestal/internal/api/base/service"
	"gestion_forestal/internal/common"
	"gestion_forestal/internal/gis"
)

// almacenMemoria es un Almacen en memoria para testear el reconciliador
// sin Mongo. Soporta solo filtros por _id, que es lo único que usa el sync.
type almacenMemoria struct {
	docs         map[interface{}]map[string]interface{}
	fallarUpsert bool
}

func nuevoAlmacenMemoria() *almacenMemoria {
	return &almacenMemoria{docs: make(map[interface{}]map[string]interface{})}
}

func claveDelFiltro(filter interface{}) interface{} {
	return filter.(bson.M)["_id"]
}

func (a *almacenMemoria) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (map[string]interface{}, error) {
	doc, ok := a.docs[claveDelFiltro(filter)]
	if !ok {
		return nil, common.ErrNotFound
	}
	copia := make(map[string]interface{}, len(doc))
	for k, v := range doc {
		copia[k] = v
	}
	return copia, nil
}

func (a *almacenMemoria) Upsert(ctx context.Context, filter interface{}, data interface{}) (map[string]interface{}, error) {
	if a.fallarUpsert {
		return nil, common.NewError(common.ErrCodeDatabase, "escritura rechazada", common.StatusInternalServerError, nil)
	}

	clave := claveDelFiltro(filter)
	doc, ok := a.docs[clave]
	if !ok {
		doc = map[string]interface{}{"_id": clave}
	}
	for campo, valor := range data.(*basesvc.UpdateData).Set {
		doc[campo] = valor
	}
	a.docs[clave] = doc
	return doc, nil
}

func TestReconcileAll_EscenarioAcme(t *testing.T) {
	ctx := context.Background()
	almacen := nuevoAlmacenMemoria()
	reconciler := NewReconciler(almacen, "empresas", TipoEmpresa, PropiedadEmpresas)

	// Primer sync: crea el documento con defaults locales
	resumen := reconciler.ReconcileAll(ctx, []gis.Record{{"id": float64(7), "empresa": "Acme"}})

	assert.Equal(t, &Resumen{Procesados: 1, Nuevos: 1}, resumen)
	doc := almacen.docs[int64(7)]
	require.NotNil(t, doc)
	assert.Equal(t, "Acme", doc["nombre"])
	assert.Equal(t, true, doc["sincronizadoDesdeGIS"])
	assert.Equal(t, true, doc["activo"])
	assert.Equal(t, "", doc["telefono"])

	// El usuario edita telefono por el camino CRUD
	doc["telefono"] = "11-2222"

	// Segundo sync con el nombre cambiado: refresca el origen, preserva lo local
	resumen = reconciler.ReconcileAll(ctx, []gis.Record{{"id": float64(7), "empresa": "Acme Renombrada"}})

	assert.Equal(t, &Resumen{Procesados: 1, Actualizados: 1}, resumen)
	doc = almacen.docs[int64(7)]
	assert.Equal(t, "Acme Renombrada", doc["nombre"])
	assert.Equal(t, "11-2222", doc["telefono"])
	assert.Equal(t, true, doc["activo"])
}

func TestReconcileAll_Idempotencia(t *testing.T) {
	ctx := context.Background()
	almacen := nuevoAlmacenMemoria()
	reconciler := NewReconciler(almacen, "empresas", TipoEmpresa, PropiedadEmpresas)
	lote := []gis.Record{
		{"id": float64(1), "empresa": "Uno"},
		{"id": float64(2), "empresa": "Dos"},
		{"idempresa": float64(3), "empresa": "Tres"},
	}

	primera := reconciler.ReconcileAll(ctx, lote)
	segunda := reconciler.ReconcileAll(ctx, lote)

	assert.Equal(t, 3, primera.Nuevos)
	assert.Equal(t, 0, segunda.Nuevos)
	assert.Equal(t, primera.Nuevos+primera.Actualizados, segunda.Actualizados)
	assert.Len(t, almacen.docs, 3)
}

func TestReconcileAll_EstabilidadDeClave(t *testing.T) {
	// El mismo registro con la clave como string y como número mapea al
	// mismo documento local
	ctx := context.Background()
	almacen := nuevoAlmacenMemoria()
	reconciler := NewReconciler(almacen, "empresas", TipoEmpresa, PropiedadEmpresas)

	reconciler.ReconcileAll(ctx, []gis.Record{{"id": float64(7), "empresa": "Acme"}})
	resumen := reconciler.ReconcileAll(ctx, []gis.Record{{"id": "7", "empresa": "Acme"}})

	assert.Equal(t, 1, resumen.Actualizados)
	assert.Len(t, almacen.docs, 1)
}

func TestReconcileAll_AislamientoDeFallas(t *testing.T) {
	// Un registro sin clave derivable no aborta el resto del lote
	ctx := context.Background()
	almacen := nuevoAlmacenMemoria()
	reconciler := NewReconciler(almacen, "empresas", TipoEmpresa, PropiedadEmpresas)
	lote := []gis.Record{
		{"id": float64(1), "empresa": "Uno"},
		{"empresa": "Sin clave"},
		{"id": float64(3), "empresa": "Tres"},
	}

	resumen := reconciler.ReconcileAll(ctx, lote)

	assert.Equal(t, 3, resumen.Procesados)
	assert.Equal(t, 2, resumen.Nuevos+resumen.Actualizados)
	assert.Equal(t, 1, resumen.Errores)
	assert.Len(t, almacen.docs, 2)
}

func TestReconcileAll_FallaDePersistenciaContada(t *testing.T) {
	ctx := context.Background()
	almacen := nuevoAlmacenMemoria()
	almacen.fallarUpsert = true
	reconciler := NewReconciler(almacen, "empresas", TipoEmpresa, PropiedadEmpresas)

	resumen := reconciler.ReconcileAll(ctx, []gis.Record{
		{"id": float64(1), "empresa": "Uno"},
		{"id": float64(2), "empresa": "Dos"},
	})

	// El job termina con un resumen dominado por errores, no explota
	assert.Equal(t, &Resumen{Procesados: 2, Errores: 2}, resumen)
}

func TestReconcileAll_ColeccionCruda(t *testing.T) {
	ctx := context.Background()
	almacen := nuevoAlmacenMemoria()
	reconciler := NewReconciler(almacen, "zonas", TipoGenerico, PropiedadRaw)

	resumen := reconciler.ReconcileAll(ctx, []gis.Record{
		{"id": float64(1), "nombre": "Norte", "region": "N"},
	})

	assert.Equal(t, 1, resumen.Nuevos)
	doc := almacen.docs[int64(1)]
	assert.Equal(t, "Norte", doc["nombre"])
	assert.Equal(t, "N", doc["region"])
	assert.Equal(t, true, doc["sincronizadoDesdeGIS"])
}

func TestResumen_Acumular(t *testing.T) {
	total := &Resumen{Procesados: 2, Nuevos: 1, Actualizados: 1}
	total.Acumular(&Resumen{Procesados: 3, Nuevos: 2, Errores: 1})

	assert.Equal(t, &Resumen{Procesados: 5, Nuevos: 3, Actualizados: 1, Errores: 1}, total)
}
