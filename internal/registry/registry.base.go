// Package registry provee una implementación genérica y thread-safe del patrón registry.
// Se usa para administrar instancias singleton de la aplicación (colecciones de MongoDB,
// servicios compartidos) detrás de un nombre.
package registry

import (
	"fmt"
	"sync"
)

// Registry es un registry genérico thread-safe. El type parameter T permite
// administrar cualquier tipo de objeto; la concurrencia se protege con sync.RWMutex.
type Registry[T any] struct {
	items map[string]T // Items registrados por nombre
	mu    sync.RWMutex // Mutex para garantizar thread-safety
}

// NewRegistry crea y devuelve un registry nuevo para el tipo T.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		items: make(map[string]T),
	}
}

// Register registra un item bajo un nombre. Si el nombre ya existe, el item se sobrescribe.
//
// Returns:
//   - isNew: true si el item es nuevo, false si se sobrescribió uno existente
//   - err: error si el nombre está vacío
func (r *Registry[T]) Register(name string, item T) (isNew bool, err error) {
	if name == "" {
		return false, fmt.Errorf("el nombre del item no puede estar vacío")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, exists := r.items[name]
	r.items[name] = item
	return !exists, nil
}

// Get devuelve el item registrado bajo un nombre y un bool indicando si existe.
func (r *Registry[T]) Get(name string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, exists := r.items[name]
	return item, exists
}

// Unregister elimina un item del registry. Devuelve true si el item existía.
func (r *Registry[T]) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, exists := r.items[name]
	if exists {
		delete(r.items, name)
	}
	return exists
}

// Names devuelve los nombres de todos los items registrados.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	return names
}

// Len devuelve la cantidad de items registrados.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
