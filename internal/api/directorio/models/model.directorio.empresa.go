// Package models define las entidades del directorio sincronizado desde el
// GIS: empresas proveedoras, supervisores y usuarios administrativos.
package models

// Empresa es una empresa proveedora de servicios forestales. La identidad y
// el nombre vienen del GIS; los campos de contacto se cargan en el portal y
// la sincronización nunca los pisa una vez cargados.
type Empresa struct {
	Id     interface{} `json:"id" bson:"_id,omitempty"` // Clave canónica del GIS (int64 o string)
	Nombre string      `json:"nombre" bson:"nombre" index:"single"`

	// Campos de contacto propios del portal
	Cuit     string `json:"cuit" bson:"cuit"`
	Telefono string `json:"telefono" bson:"telefono"`
	Email    string `json:"email" bson:"email"`
	Notas    string `json:"notas" bson:"notas"`
	Activo   bool   `json:"activo" bson:"activo" index:"single"`

	// Marcas de sincronización
	SincronizadoDesdeGIS bool  `json:"sincronizadoDesdeGIS" bson:"sincronizadoDesdeGIS"`
	UltimaSincronizacion int64 `json:"ultimaSincronizacion" bson:"ultimaSincronizacion" index:"single"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
