package entity

// Category categoría de productos (plana, sin jerarquía).
type Category struct {
	ID          int64
	Name        string
	Description string
}
