// Package ordsvc contiene la lógica del dominio de órdenes de trabajo:
// lectura del cache local sincronizado y el armado del corpus completo
// desde el GIS para filtrados que el upstream no soporta.
package ordsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "gestion_forestal/internal/api/base/service"
	ordmodels "gestion_forestal/internal/api/ordenes/models"
	"gestion_forestal/internal/common"
	"gestion_forestal/internal/gis"
	"gestion_forestal/internal/global"
	"gestion_forestal/internal/sync"
)

// OrdenTrabajoService opera sobre el cache local de órdenes (documentos
// crudos del GIS) y sobre el listado paginado del upstream.
type OrdenTrabajoService struct {
	*basesvc.BaseServiceMongoImpl[map[string]interface{}]
	cliente *gis.Client
}

// NewOrdenTrabajoService crea el servicio de órdenes de trabajo.
func NewOrdenTrabajoService() (*OrdenTrabajoService, error) {
	coll, ok := global.RegistryCollections.Get(global.ColNames.OrdenesTrabajoAPI)
	if !ok {
		return nil, fmt.Errorf("failed to get ordenes collection: %v", common.ErrNotFound)
	}
	return &OrdenTrabajoService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[map[string]interface{}](coll),
		cliente:              gis.NewClient(global.ServerConfig),
	}, nil
}

// Campos candidatos que identifican al supervisor dentro de una orden cruda.
var candidatosSupervisor = []string{"idsupervisor", "supervisor", "idusuario"}

// FindPorSupervisor arma el corpus completo de órdenes desde el GIS y lo
// filtra localmente por supervisor. El upstream no soporta filtrado
// server-side por predicado, por eso el recorrido completo. El resultado es
// "completo al último fetch de página exitoso".
func (s *OrdenTrabajoService) FindPorSupervisor(ctx context.Context, claveSupervisor interface{}) ([]gis.Record, error) {
	ordenes, err := s.cliente.FetchAllOrdenes(ctx, global.ServerConfig.GIS_FechaDesde, global.ServerConfig.GIS_PageLimit)
	if err != nil {
		return nil, err
	}

	filtradas := make([]gis.Record, 0)
	for _, orden := range ordenes {
		if perteneceASupervisor(orden, claveSupervisor) {
			filtradas = append(filtradas, orden)
		}
	}
	return filtradas, nil
}

// perteneceASupervisor compara las claves en forma canónica: el GIS manda
// el supervisor a veces como número y a veces como string.
func perteneceASupervisor(orden gis.Record, clave interface{}) bool {
	for _, campo := range candidatosSupervisor {
		valor, presente := orden[campo]
		if !presente {
			continue
		}
		if canonica, ok := sync.CanonicalizarClave(valor); ok && canonica == clave {
			return true
		}
	}
	return false
}

// AvanceService opera sobre los avances de trabajo (propiedad local).
type AvanceService struct {
	*basesvc.BaseServiceMongoImpl[ordmodels.Avance]
}

// NewAvanceService crea el servicio de avances.
func NewAvanceService() (*AvanceService, error) {
	coll, ok := global.RegistryCollections.Get(global.ColNames.Avances)
	if !ok {
		return nil, fmt.Errorf("failed to get avances collection: %v", common.ErrNotFound)
	}
	return &AvanceService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[ordmodels.Avance](coll),
	}, nil
}

// FindPorOrden lista los avances de una orden, del más reciente al más viejo.
func (s *AvanceService) FindPorOrden(ctx context.Context, claveOrden interface{}) ([]ordmodels.Avance, error) {
	opts := options.Find().SetSort(bson.D{{Key: "fecha", Value: -1}})
	return s.Find(ctx, bson.M{"ordenTrabajoId": claveOrden}, opts)
}
