// Package sinchdl expone los disparadores HTTP de los jobs de sincronización.
package sinchdl

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	basehdl "gestion_forestal/internal/api/base/handler"
	sincdto "gestion_forestal/internal/api/sincronizacion/dto"
	sincsvc "gestion_forestal/internal/api/sincronizacion/service"
	"gestion_forestal/internal/common"
	"gestion_forestal/internal/logger"
	"gestion_forestal/internal/sync"
)

// SincronizacionHandler atiende los disparos GET (cron) y POST (manual) de
// cada dominio de sincronización.
type SincronizacionHandler struct {
	basehdl.BaseHandler[interface{}, interface{}, interface{}]
	servicio *sincsvc.SincronizacionService
}

// NewSincronizacionHandler crea el handler de sincronización.
func NewSincronizacionHandler() (*SincronizacionHandler, error) {
	servicio, err := sincsvc.NewSincronizacionService()
	if err != nil {
		return nil, fmt.Errorf("create sincronizacion service: %w", err)
	}
	return &SincronizacionHandler{servicio: servicio}, nil
}

// ejecutar corre un job de dominio y arma la respuesta uniforme
// {success, message, resumen} o {success:false, error} con HTTP 500.
func (h *SincronizacionHandler) ejecutar(c fiber.Ctx, dominio string, job func(context.Context) (*sync.Resumen, error)) error {
	return h.SafeHandler(c, func() error {
		runID := uuid.NewString()
		logger.GetAppLogger().WithFields(map[string]interface{}{
			"dominio": dominio,
			"runId":   runID,
		}).Info("Inicio de sincronización")

		resumen, err := job(context.Background())
		if err != nil {
			logger.GetErrorLogger().WithError(err).WithFields(map[string]interface{}{
				"dominio": dominio,
				"runId":   runID,
			}).Error("Sincronización fallida")
			return basehdl.JSONResponse(c, common.StatusInternalServerError, sincdto.RespuestaSync{
				Success: false,
				Error:   err.Error(),
				RunID:   runID,
			})
		}

		logger.GetAppLogger().WithFields(map[string]interface{}{
			"dominio":      dominio,
			"runId":        runID,
			"procesados":   resumen.Procesados,
			"nuevos":       resumen.Nuevos,
			"actualizados": resumen.Actualizados,
			"errores":      resumen.Errores,
		}).Info("Sincronización finalizada")

		return basehdl.JSONResponse(c, common.StatusOK, sincdto.RespuestaSync{
			Success: true,
			Message: fmt.Sprintf("Sincronización de %s finalizada", dominio),
			Resumen: resumen,
			RunID:   runID,
		})
	})
}

// HandleSincronizarTablasAdmin sincroniza las tablas administrativas maestras.
func (h *SincronizacionHandler) HandleSincronizarTablasAdmin(c fiber.Ctx) error {
	return h.ejecutar(c, "tablas-admin", h.servicio.SincronizarTablasAdmin)
}

// HandleSincronizarOrdenes sincroniza el listado completo de órdenes de trabajo.
func (h *SincronizacionHandler) HandleSincronizarOrdenes(c fiber.Ctx) error {
	return h.ejecutar(c, "ordenes", h.servicio.SincronizarOrdenes)
}

// HandleSincronizarEmpresas sincroniza el directorio de empresas proveedoras.
func (h *SincronizacionHandler) HandleSincronizarEmpresas(c fiber.Ctx) error {
	return h.ejecutar(c, "empresas", h.servicio.SincronizarEmpresas)
}

// HandleSincronizarUsuariosAdmin sincroniza supervisores y usuarios proveedores.
func (h *SincronizacionHandler) HandleSincronizarUsuariosAdmin(c fiber.Ctx) error {
	return h.ejecutar(c, "usuarios-admin", h.servicio.SincronizarUsuariosAdmin)
}
