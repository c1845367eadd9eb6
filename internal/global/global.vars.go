package global

import (
	"gestion_forestal/config"
	"gestion_forestal/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName contiene los nombres de las colecciones en MongoDB.
type MongoDB_CollectionName struct {
	// Directorio (proveedores y usuarios sincronizados del GIS)
	Empresas      string // Colección de empresas proveedoras de servicios
	Supervisores  string // Colección de supervisores
	UsuariosAdmin string // Colección de usuarios administrativos

	// Órdenes de trabajo (cache local del listado paginado del GIS)
	OrdenesTrabajoAPI string // Colección de órdenes de trabajo sincronizadas
	Avances           string // Colección de avances de trabajo (propiedad local)

	// Tablas administrativas maestras (documentos crudos del GIS)
	Zonas        string // Colección de zonas
	Propietarios string // Colección de propietarios
	Campos       string // Colección de campos
	Actividades  string // Colección de actividades
	UsuariosGIS  string // Colección cruda de usuarios del GIS
	EmpresasGIS  string // Colección cruda de empresas del GIS
}

// Variables globales de la aplicación, inicializadas una sola vez desde cmd/server.
var (
	Validate     *validator.Validate                                   // Validador de datos (DTOs)
	Session      *mongo.Client                                         // Sesión compartida de conexión a MongoDB
	ServerConfig *config.Configuration                                 // Configuración del server
	ColNames     MongoDB_CollectionName = MongoDB_CollectionName{}     // Nombres de las colecciones
)

// Registries de instancias compartidas.
var (
	RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry de colecciones
)
