// Package dirhdl expone los handlers HTTP del directorio sincronizado.
// Las tres colecciones usan clave canónica del GIS como _id (no ObjectID),
// por eso la búsqueda puntual es por clave y no por ObjectID.
package dirhdl

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"

	basehdl "gestion_forestal/internal/api/base/handler"
	basesvc "gestion_forestal/internal/api/base/service"
	dirdto "gestion_forestal/internal/api/directorio/dto"
	dirmodels "gestion_forestal/internal/api/directorio/models"
	"gestion_forestal/internal/common"
	"gestion_forestal/internal/global"
	"gestion_forestal/internal/sync"
)

// buscarPorClave resuelve el param :clave a su forma canónica (int64 o
// string) y busca el documento por _id.
func buscarPorClave[T any](servicio basesvc.BaseServiceMongo[T], c fiber.Ctx) (T, error) {
	var cero T
	clave, ok := sync.CanonicalizarClave(c.Params("clave"))
	if !ok {
		return cero, common.NewError(common.ErrCodeValidationFormat, "Clave inválida", common.StatusBadRequest, nil)
	}
	return servicio.FindOne(context.Background(), bson.M{"_id": clave}, nil)
}

// EmpresaHandler atiende las rutas del directorio de empresas proveedoras.
type EmpresaHandler struct {
	basehdl.BaseHandler[dirmodels.Empresa, dirdto.ActualizarEmpresaInput, dirdto.ActualizarEmpresaInput]
}

// NewEmpresaHandler crea el handler de empresas.
func NewEmpresaHandler() (*EmpresaHandler, error) {
	coll, ok := global.RegistryCollections.Get(global.ColNames.Empresas)
	if !ok {
		return nil, fmt.Errorf("failed to get empresas collection: %v", common.ErrNotFound)
	}
	handler := &EmpresaHandler{}
	handler.BaseHandler = *basehdl.NewBaseHandler[dirmodels.Empresa, dirdto.ActualizarEmpresaInput, dirdto.ActualizarEmpresaInput](
		basesvc.NewBaseServiceMongo[dirmodels.Empresa](coll))
	return handler, nil
}

// HandleFindByClave busca una empresa por su clave canónica del GIS.
func (h *EmpresaHandler) HandleFindByClave(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		data, err := buscarPorClave(h.BaseService, c)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// SupervisorHandler atiende las rutas del directorio de supervisores.
type SupervisorHandler struct {
	basehdl.BaseHandler[dirmodels.Supervisor, dirdto.ActualizarSupervisorInput, dirdto.ActualizarSupervisorInput]
}

// NewSupervisorHandler crea el handler de supervisores.
func NewSupervisorHandler() (*SupervisorHandler, error) {
	coll, ok := global.RegistryCollections.Get(global.ColNames.Supervisores)
	if !ok {
		return nil, fmt.Errorf("failed to get supervisores collection: %v", common.ErrNotFound)
	}
	handler := &SupervisorHandler{}
	handler.BaseHandler = *basehdl.NewBaseHandler[dirmodels.Supervisor, dirdto.ActualizarSupervisorInput, dirdto.ActualizarSupervisorInput](
		basesvc.NewBaseServiceMongo[dirmodels.Supervisor](coll))
	return handler, nil
}

// HandleFindByClave busca un supervisor por su clave canónica del GIS.
func (h *SupervisorHandler) HandleFindByClave(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		data, err := buscarPorClave(h.BaseService, c)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// UsuarioAdminHandler atiende las rutas del directorio de usuarios
// administrativos.
type UsuarioAdminHandler struct {
	basehdl.BaseHandler[dirmodels.UsuarioAdmin, dirdto.ActualizarUsuarioAdminInput, dirdto.ActualizarUsuarioAdminInput]
}

// NewUsuarioAdminHandler crea el handler de usuarios administrativos.
func NewUsuarioAdminHandler() (*UsuarioAdminHandler, error) {
	coll, ok := global.RegistryCollections.Get(global.ColNames.UsuariosAdmin)
	if !ok {
		return nil, fmt.Errorf("failed to get usuarios_admin collection: %v", common.ErrNotFound)
	}
	handler := &UsuarioAdminHandler{}
	handler.BaseHandler = *basehdl.NewBaseHandler[dirmodels.UsuarioAdmin, dirdto.ActualizarUsuarioAdminInput, dirdto.ActualizarUsuarioAdminInput](
		basesvc.NewBaseServiceMongo[dirmodels.UsuarioAdmin](coll))
	return handler, nil
}

// HandleFindByClave busca un usuario administrativo por su clave canónica.
func (h *UsuarioAdminHandler) HandleFindByClave(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		data, err := buscarPorClave(h.BaseService, c)
		h.HandleResponse(c, data, err)
		return nil
	})
}
