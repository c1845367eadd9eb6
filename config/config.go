package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration contiene la información estática necesaria para correr la aplicación:
// conexión a la base de datos, direcciones del sistema GIS externo y parámetros de sincronización.
type Configuration struct {
	Address string `env:"ADDRESS" envDefault:":8080"` // Dirección del server

	// MongoDB
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"` // URI de conexión a la base de datos
	MongoDB_DBName        string `env:"MONGODB_DBNAME,required"`         // Nombre de la base de datos

	// Sistema GIS externo (fuente de verdad de datos operativos)
	GIS_BaseURL        string `env:"GIS_BASE_URL,required"`                   // URL base de la API del GIS
	GIS_APIKey         string `env:"GIS_API_KEY,required"`                    // API key estática para la API del GIS
	GIS_TimeoutSeconds int    `env:"GIS_TIMEOUT_SECONDS" envDefault:"120"`    // Timeout de cada request al GIS (segundos)
	GIS_FechaDesde     string `env:"GIS_FECHA_DESDE" envDefault:"2024-01-01"` // Fecha "desde" por defecto para pulls incrementales de órdenes
	GIS_PageLimit      int    `env:"GIS_PAGE_LIMIT" envDefault:"100"`         // Tamaño de página para el listado paginado de órdenes

	// Disparadores de sincronización
	CronSecret          string `env:"CRON_SECRET"`                            // Secreto compartido para disparos GET tipo cron (vacío = sin guardia)
	SyncWorker_Enabled  bool   `env:"SYNC_WORKER_ENABLED" envDefault:"false"` // Habilita el worker periódico de sincronización
	SyncWorker_Interval int    `env:"SYNC_WORKER_INTERVAL" envDefault:"3600"` // Intervalo del worker (segundos)

	// CORS / rate limit
	CORS_Origins      string `env:"CORS_ORIGINS" envDefault:"*"`          // Origins permitidos (separados por coma, * = todos)
	RateLimit_Max     int    `env:"RATE_LIMIT_MAX" envDefault:"100"`      // Máximo de requests por ventana (0 = deshabilitado)
	RateLimit_Window  int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`    // Ventana de rate limit (segundos)
	RateLimit_Enabled bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"` // Habilita rate limiting
}

// getEnvPath devuelve la ruta al archivo env según el entorno (GO_ENV, default development).
// Busca el directorio config/env subiendo desde el directorio actual.
func getEnvPath() string {
	entorno := os.Getenv("GO_ENV")
	if entorno == "" {
		entorno = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		// Usamos fmt.Printf porque el logger puede no estar inicializado acá
		fmt.Printf("No se pudo obtener el directorio actual: %v\n", err)
		return ""
	}

	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", entorno))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig lee la configuración desde el archivo env del entorno y la parsea
// con las struct tags de caarlos0/env. Devuelve nil si falta el archivo o una
// variable required.
func NewConfig() *Configuration {
	envPath := getEnvPath()
	if envPath == "" {
		fmt.Printf("No se encontró el directorio config/env\n")
		return nil
	}

	if err := godotenv.Load(envPath); err != nil {
		fmt.Printf("No se pudo cargar el archivo env en %s: %v\n", envPath, err)
		return nil
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("Error al parsear la configuración: %+v\n", err)
		return nil
	}

	return &cfg
}
