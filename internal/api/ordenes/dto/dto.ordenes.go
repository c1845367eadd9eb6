// Package dto define las entradas del dominio de órdenes de trabajo.
package dto

// CrearAvanceInput crea un avance de trabajo sobre una orden.
type CrearAvanceInput struct {
	OrdenTrabajoId int64   `json:"ordenTrabajoId" validate:"required"`
	SupervisorId   int64   `json:"supervisorId" validate:"required"`
	Fecha          int64   `json:"fecha" validate:"required"`
	Descripcion    string  `json:"descripcion" validate:"required,max=2000,no_xss"`
	Cantidad       float64 `json:"cantidad" validate:"gte=0"`
	Unidad         string  `json:"unidad" validate:"omitempty,oneof=ha m3 jornales plantas km"`
	Estado         string  `json:"estado" validate:"omitempty,oneof=pendiente en_curso finalizado"`
	Notas          string  `json:"notas" validate:"omitempty,max=2000,no_xss"`
}

// ActualizarAvanceInput actualiza un avance existente. Solo los campos
// presentes y no vacíos se aplican.
type ActualizarAvanceInput struct {
	Fecha       int64   `json:"fecha"`
	Descripcion string  `json:"descripcion" validate:"omitempty,max=2000,no_xss"`
	Cantidad    float64 `json:"cantidad" validate:"gte=0"`
	Unidad      string  `json:"unidad" validate:"omitempty,oneof=ha m3 jornales plantas km"`
	Estado      string  `json:"estado" validate:"omitempty,oneof=pendiente en_curso finalizado"`
	Notas       string  `json:"notas" validate:"omitempty,max=2000,no_xss"`
}
