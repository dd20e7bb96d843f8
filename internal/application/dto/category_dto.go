package dto

// CategoryDTO categoría en el formato de la API.
type CategoryDTO struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

// CreateCategoryRequest cuerpo de POST /categories.
type CreateCategoryRequest struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

// CategoryListEnvelope respuesta de GET /categories.
// Versiones anteriores del backend devolvían la lista en "categories" en vez de "data".
type CategoryListEnvelope struct {
	Success    bool          `json:"success"`
	Message    string        `json:"message"`
	Data       []CategoryDTO `json:"data"`
	Categories []CategoryDTO `json:"categories,omitempty"`
}

// Normalize devuelve el envelope estándar tomando la lista de donde venga.
func (e CategoryListEnvelope) Normalize() Envelope[[]CategoryDTO] {
	list := e.Categories
	if len(list) == 0 {
		list = e.Data
	}
	if list == nil {
		list = []CategoryDTO{}
	}
	return Envelope[[]CategoryDTO]{Success: e.Success, Message: e.Message, Data: list}
}
