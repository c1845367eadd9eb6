// Package router registra las rutas del dominio de órdenes de trabajo.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	ordhdl "gestion_forestal/internal/api/ordenes/handler"
	apirouter "gestion_forestal/internal/api/router"
)

// Register registra las rutas de órdenes y avances sobre v1. El cache de
// órdenes es de solo lectura (lo escribe la sincronización); los avances son
// propiedad local con CRUD completo.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	ordenHandler, err := ordhdl.NewOrdenTrabajoHandler()
	if err != nil {
		return fmt.Errorf("create orden trabajo handler: %w", err)
	}
	apirouter.RegisterRouteWithMiddleware(v1, "/ordenes-trabajo", "GET", "/por-supervisor/:id", nil, ordenHandler.HandlePorSupervisor)
	r.RegisterCRUDRoutes(v1, "/ordenes-trabajo", ordenHandler, apirouter.ReadOnlyConfig)

	avanceHandler, err := ordhdl.NewAvanceHandler()
	if err != nil {
		return fmt.Errorf("create avance handler: %w", err)
	}
	apirouter.RegisterRouteWithMiddleware(v1, "/avances", "GET", "/por-orden/:clave", nil, avanceHandler.HandleFindPorOrden)
	r.RegisterCRUDRoutes(v1, "/avances", avanceHandler, apirouter.ReadWriteConfig)

	return nil
}
