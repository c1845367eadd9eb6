package models

// Supervisor es un supervisor de campo sincronizado desde el dominio
// usuarios del GIS.
type Supervisor struct {
	Id     interface{} `json:"id" bson:"_id,omitempty"` // Clave canónica del GIS
	Nombre string      `json:"nombre" bson:"nombre" index:"single"`
	Rol    string      `json:"rol" bson:"rol" index:"single"` // Siempre "supervisor" en esta colección

	// Campos propios del portal
	Telefono string `json:"telefono" bson:"telefono"`
	Email    string `json:"email" bson:"email"`
	Password string `json:"-" bson:"password"` // Nunca viaja en las respuestas
	Notas    string `json:"notas" bson:"notas"`
	Activo   bool   `json:"activo" bson:"activo"`

	// Marcas de sincronización
	SincronizadoDesdeGIS bool  `json:"sincronizadoDesdeGIS" bson:"sincronizadoDesdeGIS"`
	UltimaSincronizacion int64 `json:"ultimaSincronizacion" bson:"ultimaSincronizacion"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
