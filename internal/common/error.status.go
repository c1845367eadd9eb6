package common

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// HTTP Status Code Constants
const (
	// Success Codes (2xx)
	StatusOK       = 200 // Operación exitosa
	StatusCreated  = 201 // Creación exitosa
	StatusAccepted = 202 // Pedido aceptado

	// Client Error Codes (4xx)
	StatusBadRequest      = 400 // Pedido inválido
	StatusUnauthorized    = 401 // Sin autenticar
	StatusForbidden       = 403 // Sin permiso de acceso
	StatusNotFound        = 404 // Recurso no encontrado
	StatusConflict        = 409 // Conflicto de datos
	StatusTooManyRequests = 429 // Demasiados pedidos

	// Server Error Codes (5xx)
	StatusInternalServerError = 500 // Error del server
	StatusBadGateway          = 502 // Respuesta inválida del upstream
	StatusServiceUnavailable  = 503 // Servicio no disponible
	StatusGatewayTimeout      = 504 // Timeout del upstream
)

// Response Messages
const (
	MsgSuccess = "Operación exitosa"

	MsgBadRequest      = "Pedido inválido"
	MsgNotFound        = "No se encontraron datos"
	MsgValidationError = "Datos inválidos"
	MsgDatabaseError   = "Error al interactuar con la base de datos"
	MsgInvalidFormat   = "Formato de datos inválido"
	MsgInternalError   = "Error del sistema"
	MsgUpstreamError   = "Error al consultar el sistema GIS"
)

// ErrorCode define un código de error detallado con su categoría.
type ErrorCode struct {
	Code        string // Código del error (ej: SYNC_001)
	Category    string // Categoría del error (ej: Sync)
	SubCategory string // Subcategoría (ej: Fetch)
	Description string // Descripción detallada
}

// Códigos de error del sistema, agrupados por categoría.
var (
	// System Errors (SYS_xxx)
	ErrCodeInternalServer = ErrorCode{
		Code:        "SYS_001",
		Category:    "System",
		SubCategory: "Internal",
		Description: "Error interno del sistema",
	}

	// Validation Errors (VAL_xxx)
	ErrCodeValidationInput = ErrorCode{
		Code:        "VAL_001",
		Category:    "Validation",
		SubCategory: "Input",
		Description: "Datos de entrada inválidos",
	}
	ErrCodeValidationFormat = ErrorCode{
		Code:        "VAL_002",
		Category:    "Validation",
		SubCategory: "Format",
		Description: "Formato de datos inválido",
	}

	// Database Errors (DB_xxx)
	ErrCodeDatabase = ErrorCode{
		Code:        "DB_001",
		Category:    "Database",
		SubCategory: "General",
		Description: "Error general de base de datos",
	}
	ErrCodeDatabaseConnection = ErrorCode{
		Code:        "DB_002",
		Category:    "Database",
		SubCategory: "Connection",
		Description: "Error de conexión a la base de datos",
	}
	ErrCodeDatabaseQuery = ErrorCode{
		Code:        "DB_003",
		Category:    "Database",
		SubCategory: "Query",
		Description: "Error al consultar la base de datos",
	}
	ErrCodeDatabaseDuplicate = ErrorCode{
		Code:        "DB_004",
		Category:    "Database",
		SubCategory: "Duplicate",
		Description: "Clave duplicada",
	}

	// GIS Upstream Errors (GIS_xxx)
	ErrCodeGISFetch = ErrorCode{
		Code:        "GIS_001",
		Category:    "GIS",
		SubCategory: "Fetch",
		Description: "Error al consultar un endpoint del GIS",
	}
	ErrCodeGISEnvelope = ErrorCode{
		Code:        "GIS_002",
		Category:    "GIS",
		SubCategory: "Envelope",
		Description: "Respuesta del GIS con forma inesperada",
	}

	// Sync Errors (SYNC_xxx)
	ErrCodeSyncRegistro = ErrorCode{
		Code:        "SYNC_001",
		Category:    "Sync",
		SubCategory: "Registro",
		Description: "Registro de origen sin clave derivable",
	}
	ErrCodeSyncAuth = ErrorCode{
		Code:        "SYNC_002",
		Category:    "Sync",
		SubCategory: "Auth",
		Description: "Disparo de sincronización no autorizado",
	}
)

// Error es el tipo de error de la aplicación: código detallado, mensaje legible,
// status HTTP y detalles opcionales (la causa original, por ejemplo).
type Error struct {
	Code       ErrorCode // Código de error detallado
	Message    string    // Mensaje del error
	StatusCode int       // HTTP status code
	Details    any       // Información adicional sobre el error
}

// Error implementa la interfaz error.
func (e *Error) Error() string {
	return e.Message
}

// Is permite comparar con los errores centinela vía errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code.Code == t.Code.Code
}

// NewError crea un error de aplicación con código, mensaje, status HTTP y detalles.
func NewError(code ErrorCode, message string, statusCode int, details any) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Errores centinela reutilizados en toda la aplicación.
var (
	ErrNotFound      = NewError(ErrCodeDatabaseQuery, MsgNotFound, StatusNotFound, nil)
	ErrInvalidFormat = NewError(ErrCodeValidationFormat, MsgInvalidFormat, StatusBadRequest, nil)
	ErrDuplicateKey  = NewError(ErrCodeDatabaseDuplicate, "Clave duplicada", StatusConflict, nil)
	ErrDBConnection  = NewError(ErrCodeDatabaseConnection, "No se pudo conectar a la base de datos", StatusServiceUnavailable, nil)
)

// ConvertMongoError convierte errores del driver de MongoDB en errores de aplicación.
// ErrNotFound se deja pasar sin convertir para que los llamadores puedan usar errors.Is.
func ConvertMongoError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrNotFound) {
		return err
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}

	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateKey
	}

	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) {
		return NewError(ErrCodeDatabaseConnection, MsgDatabaseError, StatusServiceUnavailable, err)
	}

	var writeErr mongo.WriteException
	if errors.As(err, &writeErr) {
		return NewError(ErrCodeDatabase, MsgDatabaseError, StatusInternalServerError, err)
	}

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return NewError(ErrCodeDatabase, MsgDatabaseError, StatusInternalServerError, err)
	}

	return NewError(ErrCodeDatabase, err.Error(), StatusInternalServerError, err)
}
