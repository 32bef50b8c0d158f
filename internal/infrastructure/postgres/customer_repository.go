package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo lectura de clientes con sus roles comerciales.
type CustomerRepo struct {
	q Querier
}

func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), `
		SELECT id, store_id, name, email, created_at, updated_at
		FROM customers WHERE id = $1`, id).
		Scan(&c.ID, &c.StoreID, &c.Name, &c.Email, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}

	rows, err := r.q.Query(context.Background(), `
		SELECT cr.id, cr.name, cr.active
		FROM customer_roles cr
		JOIN customer_role_mappings m ON m.role_id = cr.id
		WHERE m.customer_id = $1`, c.ID)
	if err != nil {
		return nil, fmt.Errorf("load customer roles: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var role entity.CustomerRole
		if err := rows.Scan(&role.ID, &role.Name, &role.Active); err != nil {
			return nil, fmt.Errorf("scan customer role: %w", err)
		}
		c.Roles = append(c.Roles, &role)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &c, nil
}
