package auth

// Claims representa la identidad verificada que entrega el proveedor externo.
// UserID es la clave estable del proveedor, NO el id interno de users.
type Claims struct {
	UserID   string
	Email    string
	Name     string
	ImageURL string
}
