package entity

// Session estado de autenticación del cliente.
// Un User presente sin Token no es una sesión válida.
type Session struct {
	User  *Identity
	Token string
}

// Authenticated true solo si hay token.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// Consistent false cuando hay usuario restaurado pero el token desapareció.
func (s Session) Consistent() bool {
	return s.User == nil || s.Token != ""
}
