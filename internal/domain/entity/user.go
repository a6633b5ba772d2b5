package entity

import "time"

// Roles de usuario para el RBAC del API.
const (
	RoleAdmin    = "admin"    // administración total
	RoleOperador = "operador" // báscula y planta: producción, ajustes, traslados
	RoleVentas   = "ventas"   // despachos y clientes
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // admin | operador | ventas
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
