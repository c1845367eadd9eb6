package logger

import (
	"os"
	"strconv"
)

// LogConfig contiene la configuración del sistema de logging.
// Se alimenta de variables de entorno para no depender del orden de init de config.
type LogConfig struct {
	Level  string // Nivel de log: debug, info, warn, error
	Format string // Formato: text o json
	Output string // Destino: stdout, file o both

	LogPath    string // Directorio de logs (relativo al root del proyecto)
	AppFile    string // Archivo del logger principal
	ErrorFile  string // Archivo del logger de errores
	MaxSize    int    // Tamaño máximo de cada archivo (MB)
	MaxBackups int    // Cantidad de archivos rotados a conservar
	MaxAge     int    // Días a conservar archivos rotados
	Compress   bool   // Comprimir archivos rotados
}

// DefaultConfig devuelve la configuración de logging leyendo variables de entorno,
// con defaults razonables para desarrollo.
func DefaultConfig() *LogConfig {
	cfg := &LogConfig{
		Level:      getEnv("LOG_LEVEL", "info"),
		Format:     getEnv("LOG_FORMAT", "text"),
		Output:     getEnv("LOG_OUTPUT", "stdout"),
		LogPath:    getEnv("LOG_PATH", "logs"),
		AppFile:    getEnv("LOG_APP_FILE", "app.log"),
		ErrorFile:  getEnv("LOG_ERROR_FILE", "error.log"),
		MaxSize:    getEnvInt("LOG_MAX_SIZE", 100),
		MaxBackups: getEnvInt("LOG_MAX_BACKUPS", 5),
		MaxAge:     getEnvInt("LOG_MAX_AGE", 30),
		Compress:   getEnvBool("LOG_COMPRESS", true),
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
