package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"

	"gestion_forestal/internal/global"
	"gestion_forestal/internal/logger"
	"gestion_forestal/internal/worker"
)

// initLogger inicializa el sistema de logging para toda la aplicación.
func initLogger() {
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	log := logger.GetAppLogger()
	log.Info("Sistema de logging inicializado")
}

// main_thread levanta el server Fiber en el thread principal.
func main_thread() {
	app := InitFiberApp()

	cfg := global.ServerConfig
	log := logger.GetAppLogger()

	log.WithFields(map[string]interface{}{
		"address":  cfg.Address,
		"protocol": "HTTP",
	}).Info("Levantando el server Fiber")

	listenConfig := fiber.ListenConfig{}
	if err := app.Listen(cfg.Address, listenConfig); err != nil {
		log.Fatalf("Error en Fiber Listen: %v", err)
	}
}

func main() {
	// Logger primero: todo lo demás loguea a través de él
	initLogger()

	// Variables globales: config, validador, conexión a MongoDB
	InitGlobal()

	// Registry de colecciones
	InitRegistry()

	log := logger.GetAppLogger()

	// Worker periódico de sincronización (opcional por configuración)
	if global.ServerConfig.SyncWorker_Enabled {
		interval := time.Duration(global.ServerConfig.SyncWorker_Interval) * time.Second
		syncWorker, err := worker.NewSyncWorker(interval)
		if err != nil {
			log.WithError(err).Error("No se pudo crear el worker de sincronización, se sigue sin worker")
		} else {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			go func() {
				defer func() {
					if r := recover(); r != nil {
						log.WithField("panic", r).Error("🔄 [SYNC_WORKER] Panic en la goroutine del worker")
					}
				}()
				syncWorker.Start(ctx)
			}()
			log.Info("🔄 [SYNC_WORKER] Worker de sincronización lanzado")
		}
	} else {
		log.Info("Worker de sincronización deshabilitado por configuración")
	}

	// Server Fiber en el thread principal
	main_thread()
}
