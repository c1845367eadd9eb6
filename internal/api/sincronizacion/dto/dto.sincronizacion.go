// Package dto define las respuestas de los disparadores de sincronización.
package dto

import "gestion_forestal/internal/sync"

// RespuestaSync es el cuerpo devuelto por todo disparo de sincronización.
// Siempre trae un resumen cuando el job llegó a correr; el error solo cuando
// la invocación falló por completo (fetch o conexión inicial al store).
type RespuestaSync struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Error   string        `json:"error,omitempty"`
	Resumen *sync.Resumen `json:"resumen,omitempty"`
	RunID   string        `json:"runId,omitempty"`
}
