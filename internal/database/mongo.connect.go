// Package database administra la conexión compartida a MongoDB: creación del
// cliente con pool acotado, verificación de base/colecciones e índices por tag.
package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gestion_forestal/config"
	"gestion_forestal/internal/logger"
)

var (
	instance *mongo.Client
	initErr  error
	initOnce sync.Once
)

// GetInstance devuelve el cliente compartido de MongoDB, inicializándolo una
// sola vez. Varias rutinas pueden llamar concurrentemente durante el arranque;
// la primera gana y el resto reusa la misma conexión (single-flight).
func GetInstance(c *config.Configuration) (*mongo.Client, error) {
	initOnce.Do(func() {
		instance, initErr = connect(c)
	})
	return instance, initErr
}

// connect crea y verifica el cliente de MongoDB con pool acotado.
func connect(c *config.Configuration) (*mongo.Client, error) {
	if c.MongoDB_ConnectionURI == "" {
		return nil, fmt.Errorf("la URI de conexión a la base de datos está vacía")
	}

	clientOptions := options.Client().ApplyURI(c.MongoDB_ConnectionURI).
		SetMaxPoolSize(50).                 // Máximo de conexiones en el pool
		SetMinPoolSize(10).                 // Mínimo de conexiones a mantener
		SetConnectTimeout(5 * time.Second). // Timeout de conexión
		SetSocketTimeout(10 * time.Second)  // Timeout de envío/recepción

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("no se pudo conectar a MongoDB: %w", err)
	}

	ctxPing, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancelPing()

	if err := client.Ping(ctxPing, nil); err != nil {
		return nil, fmt.Errorf("no se pudo hacer ping a MongoDB: %w", err)
	}

	logger.GetAppLogger().Info("Conexión a MongoDB establecida")
	return client, nil
}

// CloseInstance cierra la conexión del cliente de MongoDB.
func CloseInstance(client *mongo.Client) error {
	if client == nil {
		return nil
	}
	if err := client.Disconnect(context.TODO()); err != nil {
		logger.GetAppLogger().WithError(err).Error("No se pudo desconectar el cliente de MongoDB")
		return err
	}
	logger.GetAppLogger().Info("Cliente de MongoDB desconectado")
	return nil
}
