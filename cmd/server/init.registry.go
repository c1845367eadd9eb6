package main

import (
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"gestion_forestal/config"
	"gestion_forestal/internal/global"
)

// InitRegistry inicializa el registry de colecciones compartido.
func InitRegistry() {
	if err := InitCollections(global.Session, global.ServerConfig); err != nil {
		logrus.Fatalf("Failed to initialize collections: %v", err)
	}
	logrus.Info("Initialized collection registry")
}

// InitCollections registra todas las colecciones de la aplicación en el
// registry compartido. Los servicios las resuelven por nombre.
func InitCollections(client *mongo.Client, cfg *config.Configuration) error {
	db := client.Database(cfg.MongoDB_DBName)

	colNames := []string{
		global.ColNames.Empresas,
		global.ColNames.Supervisores,
		global.ColNames.UsuariosAdmin,
		global.ColNames.OrdenesTrabajoAPI,
		global.ColNames.Avances,
		global.ColNames.Zonas,
		global.ColNames.Propietarios,
		global.ColNames.Campos,
		global.ColNames.Actividades,
		global.ColNames.UsuariosGIS,
		global.ColNames.EmpresasGIS,
	}

	for _, name := range colNames {
		registered, err := global.RegistryCollections.Register(name, db.Collection(name))
		if err != nil {
			logrus.Errorf("Failed to register collection %s: %v", name, err)
			return err
		}

		if registered {
			logrus.Infof("Collection %s registered successfully", name)
		} else {
			logrus.Warnf("Collection %s already registered", name)
		}
	}

	return nil
}
