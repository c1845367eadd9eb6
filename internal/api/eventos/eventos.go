// Package eventos provee un mecanismo central de eventos cuando los datos cambian vía CRUD.
// Los servicios CRUD no necesitan sobreescribir cada método: BaseServiceMongoImpl emite el evento.
// La lógica que reacciona (auditoría de ediciones locales, invalidación de caches, ...) se registra con OnCambioDeDatos.
package eventos

import (
	"context"
	"sync"
)

// OpInsert, OpUpdate, OpUpsert y OpDelete son los tipos de operación CRUD.
const (
	OpInsert = "insert"
	OpUpdate = "update"
	OpUpsert = "upsert"
	OpDelete = "delete"
)

// CambioDeDatos describe un evento de cambio de datos.
// Documento es el registro después del cambio (nil si es delete).
type CambioDeDatos struct {
	Coleccion string
	Operacion string
	Documento interface{}
}

// ManejadorCambio procesa un evento de cambio de datos.
type ManejadorCambio func(ctx context.Context, e CambioDeDatos)

var (
	manejadores   []ManejadorCambio
	manejadoresMu sync.RWMutex
)

// OnCambioDeDatos registra un manejador. Llamar durante el init de la aplicación.
func OnCambioDeDatos(h ManejadorCambio) {
	manejadoresMu.Lock()
	defer manejadoresMu.Unlock()
	manejadores = append(manejadores, h)
}

// EmitirCambioDeDatos emite el evento. Lo llama BaseServiceMongoImpl después de cada CRUD exitoso.
// Cada manejador corre en su propia goroutine y los panic se recuperan para no afectar al resto.
func EmitirCambioDeDatos(ctx context.Context, e CambioDeDatos) {
	manejadoresMu.RLock()
	lista := make([]ManejadorCambio, len(manejadores))
	copy(lista, manejadores)
	manejadoresMu.RUnlock()

	for _, h := range lista {
		go func(fn ManejadorCambio) {
			defer func() {
				if r := recover(); r != nil {
					// El logger puede no estar inicializado si el evento corre muy temprano
					_ = r
				}
			}()
			fn(ctx, e)
		}(h)
	}
}
