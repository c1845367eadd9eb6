// Package models define las entidades del dominio de órdenes de trabajo.
// Las órdenes en sí son documentos crudos cacheados del GIS; el único dato
// de propiedad local es el avance de trabajo.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Avance es un registro de progreso cargado por un supervisor sobre una
// orden de trabajo. Propiedad local: no participa de la sincronización.
type Avance struct {
	ID primitive.ObjectID `json:"id" bson:"_id,omitempty"`

	OrdenTrabajoId interface{} `json:"ordenTrabajoId" bson:"ordenTrabajoId" index:"single"` // Clave canónica de la orden en el GIS
	SupervisorId   interface{} `json:"supervisorId" bson:"supervisorId" index:"single"`     // Clave canónica del supervisor

	Fecha       int64   `json:"fecha" bson:"fecha" index:"single"` // Fecha del avance (epoch ms)
	Descripcion string  `json:"descripcion" bson:"descripcion"`
	Cantidad    float64 `json:"cantidad" bson:"cantidad"`
	Unidad      string  `json:"unidad" bson:"unidad"` // ha, m3, jornales
	Estado      string  `json:"estado" bson:"estado" index:"single"`
	Notas       string  `json:"notas" bson:"notas"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
