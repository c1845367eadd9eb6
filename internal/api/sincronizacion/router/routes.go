// Package router registra los disparadores de sincronización por dominio.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"gestion_forestal/internal/api/middleware"
	apirouter "gestion_forestal/internal/api/router"
	sinchdl "gestion_forestal/internal/api/sincronizacion/handler"
)

// Register registra los disparadores de sincronización sobre v1. El GET es
// el disparo tipo cron (guardado por secreto compartido); el POST es el
// disparo manual desde el portal.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := sinchdl.NewSincronizacionHandler()
	if err != nil {
		return fmt.Errorf("create sincronizacion handler: %w", err)
	}

	cronGuard := middleware.CronGuard()

	dominios := []struct {
		path    string
		handler fiber.Handler
	}{
		{"/tablas-admin", handler.HandleSincronizarTablasAdmin},
		{"/ordenes", handler.HandleSincronizarOrdenes},
		{"/empresas", handler.HandleSincronizarEmpresas},
		{"/usuarios-admin", handler.HandleSincronizarUsuariosAdmin},
	}

	for _, dominio := range dominios {
		apirouter.RegisterRouteWithMiddleware(v1, "/sincronizacion", "GET", dominio.path, []fiber.Handler{cronGuard}, dominio.handler)
		apirouter.RegisterRouteWithMiddleware(v1, "/sincronizacion", "POST", dominio.path, nil, dominio.handler)
	}

	return nil
}
