package entity

import "time"

// User usuario del backoffice del catálogo (autenticación JWT).
type User struct {
	ID           string
	StoreID      string
	Email        string
	PasswordHash string
	Role         string // "admin" | "catalogo" | "consulta"
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
