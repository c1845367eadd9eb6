// Package sincsvc orquesta los jobs de sincronización por dominio:
// tablas administrativas, órdenes de trabajo, directorio de empresas y
// directorio de usuarios administrativos.
package sincsvc

import (
	"context"
	"fmt"

	basesvc "gestion_forestal/internal/api/base/service"
	"gestion_forestal/internal/common"
	"gestion_forestal/internal/gis"
	"gestion_forestal/internal/global"
	"gestion_forestal/internal/sync"
)

// SincronizacionService dirige el pipeline cliente GIS -> normalizador ->
// reconciliador para cada dominio. Sin reintentos propios: el caller (cron,
// disparo manual o worker) reinvoca ante una falla.
type SincronizacionService struct {
	cliente *gis.Client
}

// NewSincronizacionService crea el servicio de sincronización.
func NewSincronizacionService() (*SincronizacionService, error) {
	if global.ServerConfig == nil {
		return nil, fmt.Errorf("configuración del server no inicializada")
	}
	return &SincronizacionService{cliente: gis.NewClient(global.ServerConfig)}, nil
}

// almacenDe arma el servicio base sobre la colección registrada con ese
// nombre. La falla acá es de inicialización del store: aborta la invocación
// entera (el handler la mapea a HTTP 500).
func almacenDe(coleccion string) (sync.Almacen, error) {
	coll, ok := global.RegistryCollections.Get(coleccion)
	if !ok {
		return nil, fmt.Errorf("colección %s no registrada: %v", coleccion, common.ErrNotFound)
	}
	return basesvc.NewBaseServiceMongo[map[string]interface{}](coll), nil
}

// destinoTabla mapea un dominio del payload de tablas maestras a su colección
// local y su estrategia de normalización.
type destinoTabla struct {
	dominio   string
	coleccion string
	tipo      sync.TipoColeccion
}

// destinosTablasAdmin se resuelve en cada corrida porque los nombres de
// colección se cargan en el arranque.
func destinosTablasAdmin() []destinoTabla {
	return []destinoTabla{
		{"zonas", global.ColNames.Zonas, sync.TipoGenerico},
		{"propietarios", global.ColNames.Propietarios, sync.TipoGenerico},
		{"campos", global.ColNames.Campos, sync.TipoGenerico},
		{"actividades", global.ColNames.Actividades, sync.TipoGenerico},
		{"usuarios", global.ColNames.UsuariosGIS, sync.TipoUsuario},
		{"empresas", global.ColNames.EmpresasGIS, sync.TipoEmpresa},
	}
}

// SincronizarTablasAdmin espeja las tablas maestras del GIS como documentos
// crudos, un reconciliador por dominio, todo acumulado en un resumen. Un
// dominio ausente en el payload simplemente no aporta registros.
func (s *SincronizacionService) SincronizarTablasAdmin(ctx context.Context) (*sync.Resumen, error) {
	tablas, err := s.cliente.FetchTablasAdmin(ctx)
	if err != nil {
		return nil, err
	}

	resumen := &sync.Resumen{}
	for _, destino := range destinosTablasAdmin() {
		almacen, err := almacenDe(destino.coleccion)
		if err != nil {
			return nil, err
		}
		reconciler := sync.NewReconciler(almacen, destino.coleccion, destino.tipo, sync.PropiedadRaw)
		resumen.Acumular(reconciler.ReconcileAll(ctx, tablas[destino.dominio]))
	}
	return resumen, nil
}

// SincronizarOrdenes recorre el listado paginado completo de órdenes de
// trabajo y lo cachea localmente como documentos crudos.
func (s *SincronizacionService) SincronizarOrdenes(ctx context.Context) (*sync.Resumen, error) {
	ordenes, err := s.cliente.FetchAllOrdenes(ctx, global.ServerConfig.GIS_FechaDesde, global.ServerConfig.GIS_PageLimit)
	if err != nil {
		return nil, err
	}

	almacen, err := almacenDe(global.ColNames.OrdenesTrabajoAPI)
	if err != nil {
		return nil, err
	}

	reconciler := sync.NewReconciler(almacen, global.ColNames.OrdenesTrabajoAPI, sync.TipoOrden, sync.PropiedadRaw)
	return reconciler.ReconcileAll(ctx, ordenes), nil
}

// SincronizarEmpresas reconcilia el dominio empresas del GIS contra el
// directorio local de proveedoras, preservando los campos de contacto
// cargados por el portal.
func (s *SincronizacionService) SincronizarEmpresas(ctx context.Context) (*sync.Resumen, error) {
	tablas, err := s.cliente.FetchTablasAdmin(ctx)
	if err != nil {
		return nil, err
	}

	almacen, err := almacenDe(global.ColNames.Empresas)
	if err != nil {
		return nil, err
	}

	reconciler := sync.NewReconciler(almacen, global.ColNames.Empresas, sync.TipoEmpresa, sync.PropiedadEmpresas)
	return reconciler.ReconcileAll(ctx, tablas["empresas"]), nil
}

// SincronizarUsuariosAdmin corre dos pasadas secuenciales sobre un mismo
// resumen: supervisores desde el dominio usuarios, y usuarios proveedores
// desde el dominio empresas. La falla de un registro en una pasada no afecta
// a la otra.
func (s *SincronizacionService) SincronizarUsuariosAdmin(ctx context.Context) (*sync.Resumen, error) {
	tablas, err := s.cliente.FetchTablasAdmin(ctx)
	if err != nil {
		return nil, err
	}

	resumen := &sync.Resumen{}

	almacenSupervisores, err := almacenDe(global.ColNames.Supervisores)
	if err != nil {
		return nil, err
	}
	supervisores := sync.NewReconciler(almacenSupervisores, global.ColNames.Supervisores, sync.TipoUsuario, sync.PropiedadSupervisores)
	resumen.Acumular(supervisores.ReconcileAll(ctx, tablas["usuarios"]))

	almacenAdmin, err := almacenDe(global.ColNames.UsuariosAdmin)
	if err != nil {
		return nil, err
	}
	proveedores := sync.NewReconciler(almacenAdmin, global.ColNames.UsuariosAdmin, sync.TipoEmpresa, sync.PropiedadUsuariosAdmin)
	resumen.Acumular(proveedores.ReconcileAll(ctx, tablas["empresas"]))

	return resumen, nil
}
