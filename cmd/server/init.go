package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"gestion_forestal/config"
	dirmodels "gestion_forestal/internal/api/directorio/models"
	"gestion_forestal/internal/api/eventos"
	ordmodels "gestion_forestal/internal/api/ordenes/models"
	"gestion_forestal/internal/database"
	"gestion_forestal/internal/global"
	"gestion_forestal/internal/logger"
)

// InitGlobal inicializa las variables globales de la aplicación.
func InitGlobal() {
	initColNames()         // Nombres de las colecciones
	initValidator()        // Validador de DTOs
	initConfig()           // Configuración del server
	initDatabase_MongoDB() // Conexión a la base de datos
	initEventos()          // Auditoría de cambios locales
}

// initColNames define los nombres de las colecciones en MongoDB.
func initColNames() {
	// Directorio sincronizado desde el GIS
	global.ColNames.Empresas = "empresas"
	global.ColNames.Supervisores = "supervisores"
	global.ColNames.UsuariosAdmin = "usuarios_admin"

	// Órdenes de trabajo y avances
	global.ColNames.OrdenesTrabajoAPI = "ordenes_trabajo_api"
	global.ColNames.Avances = "avances"

	// Tablas administrativas maestras (espejo crudo del GIS)
	global.ColNames.Zonas = "zonas"
	global.ColNames.Propietarios = "propietarios"
	global.ColNames.Campos = "campos"
	global.ColNames.Actividades = "actividades"
	global.ColNames.UsuariosGIS = "usuarios_gis"
	global.ColNames.EmpresasGIS = "empresas_gis"

	logrus.Info("Initialized collection names")
}

// initValidator registra los validadores custom (no_xss, cuit, exists).
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// initConfig carga la configuración desde el archivo env del entorno.
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// initDatabase_MongoDB conecta a MongoDB, asegura las colecciones y crea los
// índices de los modelos tipados. Las colecciones espejo del GIS no tienen
// modelo tipado, sus documentos son crudos.
func initDatabase_MongoDB() {
	var err error
	global.Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	database.EnsureDatabaseAndCollections(global.Session)
	logrus.Info("Ensured database and collections")

	dbName := global.ServerConfig.MongoDB_DBName
	db := global.Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Empresas), dirmodels.Empresa{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Supervisores), dirmodels.Supervisor{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.UsuariosAdmin), dirmodels.UsuarioAdmin{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Avances), ordmodels.Avance{})
}

// initEventos registra la auditoría de ediciones locales. Los upserts de la
// sincronización se omiten porque ya quedan registrados en el resumen de cada corrida.
func initEventos() {
	auditadas := map[string]bool{
		global.ColNames.Empresas:      true,
		global.ColNames.Supervisores:  true,
		global.ColNames.UsuariosAdmin: true,
		global.ColNames.Avances:       true,
	}

	eventos.OnCambioDeDatos(func(ctx context.Context, e eventos.CambioDeDatos) {
		if e.Operacion == eventos.OpUpsert || !auditadas[e.Coleccion] {
			return
		}
		logger.GetAppLogger().WithFields(logrus.Fields{
			"coleccion": e.Coleccion,
			"operacion": e.Operacion,
		}).Info("Cambio local registrado")
	})

	logrus.Info("Initialized data change audit")
}
