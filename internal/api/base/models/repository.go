// Package models contiene los tipos compartidos del layer base (paginación, conteo).
package models

// PaginateResult representa el resultado de una consulta paginada
type PaginateResult[T any] struct {
	// Página actual
	Page int64 `json:"page" bson:"page"`
	// Cantidad de elementos por página
	Limit int64 `json:"limit" bson:"limit"`
	// Cantidad de elementos en la página actual
	ItemCount int64 `json:"itemCount" bson:"itemCount"`
	// Lista de elementos
	Items []T `json:"items" bson:"items"`
	// Total de elementos
	Total int64 `json:"total" bson:"total"`
	// Total de páginas
	TotalPage int64 `json:"totalPage" bson:"totalPage"`
}

// CountResult representa el resultado de un conteo
type CountResult struct {
	// Total de elementos
	TotalCount int64 `json:"totalCount" bson:"totalCount"`
	// Cantidad de elementos por página
	Limit int64 `json:"limit" bson:"limit"`
	// Total de páginas
	TotalPage int64 `json:"totalPage" bson:"totalPage"`
}
