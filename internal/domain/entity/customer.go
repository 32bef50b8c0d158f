package entity

import "time"

// CustomerRole rol comercial de un cliente (ej. "mayorista", "vip").
// Los precios por volumen pueden restringirse a un rol.
type CustomerRole struct {
	ID     string
	Name   string
	Active bool
}

// Customer representa un cliente de la tienda con sus roles activos.
type Customer struct {
	ID        string
	StoreID   string
	Name      string
	Email     string
	Roles     []*CustomerRole
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ActiveRoleIDs devuelve los IDs de los roles activos del cliente.
func (c *Customer) ActiveRoleIDs() []string {
	if c == nil {
		return nil
	}
	ids := make([]string, 0, len(c.Roles))
	for _, r := range c.Roles {
		if r != nil && r.Active {
			ids = append(ids, r.ID)
		}
	}
	return ids
}
