// Package tabhdl expone las tablas administrativas maestras espejadas del
// GIS. Todas son documentos crudos de solo lectura: un único handler
// genérico por colección alcanza.
package tabhdl

import (
	"fmt"

	basehdl "gestion_forestal/internal/api/base/handler"
	basesvc "gestion_forestal/internal/api/base/service"
	"gestion_forestal/internal/common"
	"gestion_forestal/internal/global"
)

// TablaHandler atiende la lectura de una tabla maestra cruda.
type TablaHandler struct {
	basehdl.BaseHandler[map[string]interface{}, interface{}, interface{}]
}

// NewTablaHandler crea el handler de lectura para la colección dada.
func NewTablaHandler(coleccion string) (*TablaHandler, error) {
	coll, ok := global.RegistryCollections.Get(coleccion)
	if !ok {
		return nil, fmt.Errorf("failed to get %s collection: %v", coleccion, common.ErrNotFound)
	}
	handler := &TablaHandler{}
	handler.BaseHandler = *basehdl.NewBaseHandler[map[string]interface{}, interface{}, interface{}](
		basesvc.NewBaseServiceMongo[map[string]interface{}](coll))
	return handler, nil
}
