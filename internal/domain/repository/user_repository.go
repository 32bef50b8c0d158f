package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios del backoffice.
type UserRepository interface {
	Create(user *entity.User) error
	GetByEmail(email string) (*entity.User, error)
	GetByID(id string) (*entity.User, error)
}
