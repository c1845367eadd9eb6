package models

// UsuarioAdmin es un usuario del portal administrativo. Lo crea la
// sincronización a partir del dominio empresas del GIS (una usuaria por
// empresa proveedora, rol "proveedor").
type UsuarioAdmin struct {
	Id     interface{} `json:"id" bson:"_id,omitempty"` // Clave canónica del GIS
	Nombre string      `json:"nombre" bson:"nombre" index:"single"`
	Rol    string      `json:"rol" bson:"rol" index:"single"`

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
