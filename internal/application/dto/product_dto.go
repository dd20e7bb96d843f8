package dto

// ProductDTO producto en el formato de la API.
// Los opcionales llegan vacíos cuando el servidor no los informa.
type ProductDTO struct {
	ID              int64  `json:"id,omitempty"`
	Codigo          string `json:"codigo,omitempty"`
	Nombre          string `json:"nombre"`
	Descripcion     string `json:"descripcion"`
	Precio          Money  `json:"precio"`
	PrecioCompra    *Money `json:"precio_compra,omitempty"`
	StockActual     int    `json:"stock_actual"`
	StockMinimo     int    `json:"stock_minimo"`
	CategoriaID     int64  `json:"categoria_id"`
	CategoriaNombre string `json:"categoria_nombre,omitempty"`
	Imagen          string `json:"imagen,omitempty"`
	Activo          *bool  `json:"activo,omitempty"`
	CreatedAt       string `json:"created_at,omitempty"`
	UpdatedAt       string `json:"updated_at,omitempty"`
}

// ProductPayload cuerpo de POST/PUT /products.
// Stock duplica StockActual: el backend aún acepta el nombre heredado "stock".
type ProductPayload struct {
	ProductDTO
	Stock int `json:"stock"`
}

// NewProductPayload arma el cuerpo con el campo heredado sincronizado.
func NewProductPayload(p ProductDTO) ProductPayload {
	return ProductPayload{ProductDTO: p, Stock: p.StockActual}
}

// EffectiveStock stock recibido por el servidor: stock_actual o, si viene en cero, el heredado.
func (p ProductPayload) EffectiveStock() int {
	if p.StockActual == 0 && p.Stock != 0 {
		return p.Stock
	}
	return p.StockActual
}
