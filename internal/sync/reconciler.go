package sync

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "gestion_forestal/internal/api/base/service"
	"gestion_forestal/internal/common"
	"gestion_forestal/internal/gis"
	"gestion_forestal/internal/logger"
)

// Resumen acumula el resultado de una corrida de sincronización.
// Es transitorio: se arma por invocación y no se persiste.
type Resumen struct {
	Procesados   int `json:"procesados"`
	Nuevos       int `json:"nuevos"`
	Actualizados int `json:"actualizados"`
	Errores      int `json:"errores"`
}

// Acumular suma otro resumen sobre este (pasadas secuenciales de un mismo job).
func (r *Resumen) Acumular(otro *Resumen) {
	r.Procesados += otro.Procesados
	r.Nuevos += otro.Nuevos
	r.Actualizados += otro.Actualizados
	r.Errores += otro.Errores
}

// Almacen es la vista mínima del store que necesita el reconciliador.
// BaseServiceMongoImpl[map[string]interface{}] la satisface; los tests usan
// un almacén en memoria.
type Almacen interface {
	FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (map[string]interface{}, error)
	Upsert(ctx context.Context, filter interface{}, data interface{}) (map[string]interface{}, error)
}

// Reconciler fusiona registros normalizados de un origen contra una
// colección local, con upserts idempotentes cuya clave es el _id.
type Reconciler struct {
	almacen   Almacen
	coleccion string // nombre de la colección, solo para logs
	tipo      TipoColeccion
	prop      Propiedad
}

// NewReconciler crea un reconciliador para una colección local.
func NewReconciler(almacen Almacen, coleccion string, tipo TipoColeccion, prop Propiedad) *Reconciler {
	return &Reconciler{
		almacen:   almacen,
		coleccion: coleccion,
		tipo:      tipo,
		prop:      prop,
	}
}

// ReconcileAll procesa un lote completo en orden de llegada. Los errores por
// registro (sin clave derivable, falla de persistencia) se cuentan y se
// sigue con el próximo; un registro malo nunca aborta el lote.
func (r *Reconciler) ReconcileAll(ctx context.Context, registros []gis.Record) *Resumen {
	resumen := &Resumen{}
	for _, raw := range registros {
		resumen.Procesados++

		creado, err := r.reconcileOne(ctx, raw)
		if err != nil {
			resumen.Errores++
			logger.GetErrorLogger().WithError(err).WithField("coleccion", r.coleccion).Error("Registro no reconciliado")
			continue
		}

		if creado {
			resumen.Nuevos++
		} else {
			resumen.Actualizados++
		}
	}
	return resumen
}

// reconcileOne normaliza, fusiona y upsertea un registro. Devuelve si el
// documento fue creado (vs actualizado).
func (r *Reconciler) reconcileOne(ctx context.Context, raw gis.Record) (bool, error) {
	norm, err := Normalize(raw, r.tipo)
	if err != nil {
		return false, err
	}

	filtro := bson.M{"_id": norm.Clave}

	// El lookup previo solo clasifica creado/actualizado para el resumen.
	// La escritura es un único upsert atómico sobre _id: bajo corridas
	// concurrentes la clasificación puede desfasarse, los datos no.
	existente, err := r.almacen.FindOne(ctx, filtro, nil)
	existia := err == nil
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return false, err
	}

	entrante := ConstruirEntrante(norm, r.prop)
	fusionado := MergeDocument(existente, entrante, r.prop, time.Now())

	if _, err := r.almacen.Upsert(ctx, filtro, &basesvc.UpdateData{Set: fusionado}); err != nil {
		return false, err
	}

	return !existia, nil
}
