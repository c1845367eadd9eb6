// Package router registra las rutas de lectura de las tablas maestras.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	apirouter "gestion_forestal/internal/api/router"
	tabhdl "gestion_forestal/internal/api/tablas/handler"
	"gestion_forestal/internal/global"
)

// Register registra las tablas maestras crudas sobre v1, todas de solo
// lectura bajo /tablas.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	tablas := []struct {
		path      string
		coleccion string
	}{
		{"/tablas/zonas", global.ColNames.Zonas},
		{"/tablas/propietarios", global.ColNames.Propietarios},
		{"/tablas/campos", global.ColNames.Campos},
		{"/tablas/actividades", global.ColNames.Actividades},
		{"/tablas/usuarios-gis", global.ColNames.UsuariosGIS},
		{"/tablas/empresas-gis", global.ColNames.EmpresasGIS},
	}

	for _, tabla := range tablas {
		handler, err := tabhdl.NewTablaHandler(tabla.coleccion)
		if err != nil {
			return fmt.Errorf("create tabla handler %s: %w", tabla.path, err)
		}
		r.RegisterCRUDRoutes(v1, tabla.path, handler, apirouter.ReadOnlyConfig)
	}

	return nil
}
