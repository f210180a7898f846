package users

import "time"

// Role define el rol elegido en onboarding.
// @Enum adopter, shelter
type Role string

const (
	RoleAdopter Role = "adopter"
	RoleShelter Role = "shelter"

	// RoleUnset: el usuario existe (llegó el sync de identidad) pero todavía
	// no completó onboarding.
	RoleUnset Role = ""
)

// User es el registro interno de un usuario de la plataforma.
// IdentityKey es la clave estable del proveedor de identidad; única por usuario.
// El ciclo de vida lo maneja el proveedor vía webhook (create/update/delete);
// onboarding solo toca role/address/phone.
type User struct {
	ID          string
	IdentityKey string

	Name     string
	Email    string
	Role     Role
	Address  string
	Phone    string
	ImageURL string

	CreatedAt time.Time
	UpdatedAt time.Time
}
