// Package worker contiene los procesos periódicos de la aplicación.
package worker

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	sincsvc "gestion_forestal/internal/api/sincronizacion/service"
	"gestion_forestal/internal/logger"
	"gestion_forestal/internal/sync"
)

// SyncWorker corre los cuatro jobs de sincronización con una cadencia fija.
// Es el mismo pipeline que disparan los endpoints HTTP; el worker solo
// agrega el reloj. Deshabilitado salvo configuración explícita.
type SyncWorker struct {
	servicio *sincsvc.SincronizacionService
	interval time.Duration
}

// NewSyncWorker crea el worker de sincronización periódica.
func NewSyncWorker(interval time.Duration) (*SyncWorker, error) {
	servicio, err := sincsvc.NewSincronizacionService()
	if err != nil {
		return nil, err
	}
	if interval < time.Minute {
		interval = time.Hour
	}
	return &SyncWorker{
		servicio: servicio,
		interval: interval,
	}, nil
}

// Start corre el worker hasta que se cancele el contexto.
func (w *SyncWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithField("interval", w.interval.String()).Info("🔄 [SYNC_WORKER] Worker de sincronización iniciado")

	// Primera corrida al minuto del arranque, no en el startup mismo
	time.Sleep(time.Minute)
	w.runOnce(ctx, log)

	for {
		select {
		case <-ctx.Done():
			log.Info("🔄 [SYNC_WORKER] Worker de sincronización detenido")
			return
		case <-ticker.C:
			w.runOnce(ctx, log)
		}
	}
}

// runOnce corre los cuatro dominios en secuencia. Una falla en un dominio no
// frena a los siguientes; un panic se absorbe hasta el próximo tick.
func (w *SyncWorker) runOnce(ctx context.Context, log *logrus.Logger) {
	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Error("🔄 [SYNC_WORKER] Panic en la corrida, se retoma en el próximo tick")
		}
	}()

	runID := uuid.NewString()
	jobs := []struct {
		dominio string
		run     func(context.Context) (*sync.Resumen, error)
	}{
		{"tablas-admin", w.servicio.SincronizarTablasAdmin},
		{"ordenes", w.servicio.SincronizarOrdenes},
		{"empresas", w.servicio.SincronizarEmpresas},
		{"usuarios-admin", w.servicio.SincronizarUsuariosAdmin},
	}

	for _, job := range jobs {
		resumen, err := job.run(ctx)
		if err != nil {
			log.WithError(err).WithFields(map[string]interface{}{
				"dominio": job.dominio,
				"runId":   runID,
			}).Error("🔄 [SYNC_WORKER] Dominio fallido, se sigue con el próximo")
			continue
		}

		log.WithFields(map[string]interface{}{
			"dominio":      job.dominio,
			"runId":        runID,
			"procesados":   resumen.Procesados,
			"nuevos":       resumen.Nuevos,
			"actualizados": resumen.Actualizados,
			"errores":      resumen.Errores,
		}).Info("🔄 [SYNC_WORKER] Dominio sincronizado")
	}
}
