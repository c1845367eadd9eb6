// Package ordhdl expone los handlers HTTP del dominio de órdenes de trabajo.
package ordhdl

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "gestion_forestal/internal/api/base/handler"
	orddto "gestion_forestal/internal/api/ordenes/dto"
	ordmodels "gestion_forestal/internal/api/ordenes/models"
	ordsvc "gestion_forestal/internal/api/ordenes/service"
	"gestion_forestal/internal/common"
	"gestion_forestal/internal/sync"
)

// OrdenTrabajoHandler atiende el cache local de órdenes (solo lectura) y el
// filtrado por supervisor sobre el corpus completo del GIS.
type OrdenTrabajoHandler struct {
	basehdl.BaseHandler[map[string]interface{}, interface{}, interface{}]
	servicio *ordsvc.OrdenTrabajoService
}

// NewOrdenTrabajoHandler crea el handler de órdenes de trabajo.
func NewOrdenTrabajoHandler() (*OrdenTrabajoHandler, error) {
	servicio, err := ordsvc.NewOrdenTrabajoService()
	if err != nil {
		return nil, fmt.Errorf("create orden trabajo service: %w", err)
	}
	handler := &OrdenTrabajoHandler{servicio: servicio}
	handler.BaseHandler = *basehdl.NewBaseHandler[map[string]interface{}, interface{}, interface{}](servicio)
	return handler, nil
}

// HandlePorSupervisor devuelve las órdenes de un supervisor. Recorre el
// listado completo del GIS y filtra localmente.
func (h *OrdenTrabajoHandler) HandlePorSupervisor(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		clave, ok := sync.CanonicalizarClave(c.Params("id"))
		if !ok {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Clave de supervisor inválida", common.StatusBadRequest, nil))
			return nil
		}

		ordenes, err := h.servicio.FindPorSupervisor(context.Background(), clave)
		h.HandleResponse(c, ordenes, err)
		return nil
	})
}

// AvanceHandler atiende el CRUD de avances de trabajo.
type AvanceHandler struct {
	basehdl.BaseHandler[ordmodels.Avance, orddto.CrearAvanceInput, orddto.ActualizarAvanceInput]
	servicio *ordsvc.AvanceService
}

// NewAvanceHandler crea el handler de avances.
func NewAvanceHandler() (*AvanceHandler, error) {
	servicio, err := ordsvc.NewAvanceService()
	if err != nil {
		return nil, fmt.Errorf("create avance service: %w", err)
	}
	handler := &AvanceHandler{servicio: servicio}
	handler.BaseHandler = *basehdl.NewBaseHandler[ordmodels.Avance, orddto.CrearAvanceInput, orddto.ActualizarAvanceInput](servicio)
	return handler, nil
}

// HandleFindPorOrden lista los avances de una orden de trabajo.
func (h *AvanceHandler) HandleFindPorOrden(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		clave, ok := sync.CanonicalizarClave(c.Params("clave"))
		if !ok {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Clave de orden inválida", common.StatusBadRequest, nil))
			return nil
		}

		avances, err := h.servicio.FindPorOrden(context.Background(), clave)
		h.HandleResponse(c, avances, err)
		return nil
	})
}
