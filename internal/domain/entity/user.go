package entity

// User cuenta del backend local de desarrollo (cmd/mockapi).
// El cliente nunca ve PasswordHash; recibe una Identity.
type User struct {
	Identity
	PasswordHash string // bcrypt hash, nunca plano después de sembrar
	Status       string // active, inactive
}

// Active true si la cuenta puede iniciar sesión.
func (u User) Active() bool {
	return u.Status == "active"
}
