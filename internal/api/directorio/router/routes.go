// Package router registra las rutas del directorio sincronizado: empresas,
// supervisores y usuarios administrativos.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	dirhdl "gestion_forestal/internal/api/directorio/handler"
	apirouter "gestion_forestal/internal/api/router"
)

// Register registra las rutas del directorio sobre v1. Las tres colecciones
// se exponen con lectura completa y update restringido a los campos de
// contacto; el alta y la baja las gobierna la sincronización.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	empresaHandler, err := dirhdl.NewEmpresaHandler()
	if err != nil {
		return fmt.Errorf("create empresa handler: %w", err)
	}
	apirouter.RegisterRouteWithMiddleware(v1, "/empresas", "GET", "/find-by-clave/:clave", nil, empresaHandler.HandleFindByClave)
	r.RegisterCRUDRoutes(v1, "/empresas", empresaHandler, apirouter.ContactoConfig)

	supervisorHandler, err := dirhdl.NewSupervisorHandler()
	if err != nil {
		return fmt.Errorf("create supervisor handler: %w", err)
	}
	apirouter.RegisterRouteWithMiddleware(v1, "/supervisores", "GET", "/find-by-clave/:clave", nil, supervisorHandler.HandleFindByClave)
	r.RegisterCRUDRoutes(v1, "/supervisores", supervisorHandler, apirouter.ContactoConfig)

	usuarioAdminHandler, err := dirhdl.NewUsuarioAdminHandler()
	if err != nil {
		return fmt.Errorf("create usuario admin handler: %w", err)
	}
	apirouter.RegisterRouteWithMiddleware(v1, "/usuarios-admin", "GET", "/find-by-clave/:clave", nil, usuarioAdminHandler.HandleFindByClave)
	r.RegisterCRUDRoutes(v1, "/usuarios-admin", usuarioAdminHandler, apirouter.ContactoConfig)

	return nil
}
