// Package dto define las entradas de actualización del directorio. Solo los
// campos de contacto propios del portal son editables; la identidad y el
// nombre los gobierna la sincronización.
package dto

// ActualizarEmpresaInput actualiza los campos de contacto de una empresa.
type ActualizarEmpresaInput struct {
	Cuit     string `json:"cuit" validate:"omitempty,cuit"`
	Telefono string `json:"telefono" validate:"omitempty,max=50,no_xss"`
	Email    string `json:"email" validate:"omitempty,email"`
	Notas    string `json:"notas" validate:"omitempty,max=1000,no_xss"`
	Activo   bool   `json:"activo"`
}

// ActualizarSupervisorInput actualiza los campos propios de un supervisor.
type ActualizarSupervisorInput struct {
	Telefono string `json:"telefono" validate:"omitempty,max=50,no_xss"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=8,max=100"`
	Notas    string `json:"notas" validate:"omitempty,max=1000,no_xss"`
	Activo   bool   `json:"activo"`
}

// ActualizarUsuarioAdminInput actualiza los campos propios de un usuario
// administrativo.
type ActualizarUsuarioAdminInput struct {
	Telefono string `json:"telefono" validate:"omitempty,max=50,no_xss"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=8,max=100"`
	Notas    string `json:"notas" validate:"omitempty,max=1000,no_xss"`
	Activo   bool   `json:"activo"`
}
