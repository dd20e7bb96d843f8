// Package usecase contiene los casos de uso CRUD del backend local de desarrollo.
package usecase

import (
	"fmt"
	"strings"

	"github.com/jhoicas/Inventario-client/internal/application/dto"
	"github.com/jhoicas/Inventario-client/internal/domain"
	"github.com/jhoicas/Inventario-client/internal/domain/repository"
)

// CatalogUseCase productos y categorías sobre el CatalogRepository.
type CatalogUseCase struct {
	repo repository.CatalogRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// ── Productos ─────────────────────────────────────────────────────────────────

// ListProducts todos los productos con el nombre de su categoría resuelto.
func (uc *CatalogUseCase) ListProducts() []dto.ProductDTO {
	list := uc.repo.ListProducts()
	out := make([]dto.ProductDTO, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ProductFromEntity(p))
	}
	return out
}

// GetProduct obtiene un producto por ID.
func (uc *CatalogUseCase) GetProduct(id int64) (*dto.ProductDTO, error) {
	p, err := uc.repo.GetProduct(id)
	if err != nil {
		return nil, err
	}
	out := dto.ProductFromEntity(*p)
	return &out, nil
}

// CreateProduct crea un producto. Acepta el stock en stock_actual o en el campo heredado stock.
func (uc *CatalogUseCase) CreateProduct(in dto.ProductPayload) (*dto.ProductDTO, error) {
	if err := validateProduct(in); err != nil {
		return nil, err
	}
	p := dto.ToProduct(normalize(in))
	p.ID = 0
	created, err := uc.repo.CreateProduct(p)
	if err != nil {
		return nil, err
	}
	out := dto.ProductFromEntity(*created)
	return &out, nil
}

// UpdateProduct reemplaza el producto id con los datos recibidos.
func (uc *CatalogUseCase) UpdateProduct(id int64, in dto.ProductPayload) (*dto.ProductDTO, error) {
	if err := validateProduct(in); err != nil {
		return nil, err
	}
	p := dto.ToProduct(normalize(in))
	p.ID = id
	updated, err := uc.repo.UpdateProduct(p)
	if err != nil {
		return nil, err
	}
	out := dto.ProductFromEntity(*updated)
	return &out, nil
}

// DeleteProduct elimina por ID.
func (uc *CatalogUseCase) DeleteProduct(id int64) error {
	return uc.repo.DeleteProduct(id)
}

// normalize toma el stock efectivo y descarta campos asignados por el servidor.
func normalize(in dto.ProductPayload) dto.ProductDTO {
	p := in.ProductDTO
	p.StockActual = in.EffectiveStock()
	p.CategoriaNombre = ""
	p.CreatedAt, p.UpdatedAt = "", ""
	return p
}

func validateProduct(in dto.ProductPayload) error {
	var missing []string
	if strings.TrimSpace(in.Nombre) == "" {
		missing = append(missing, "nombre")
	}
	if in.CategoriaID == 0 {
		missing = append(missing, "categoria_id")
	}
	if in.Precio.IsNegative() {
		missing = append(missing, "precio")
	}
	if in.EffectiveStock() < 0 || in.StockMinimo < 0 {
		missing = append(missing, "stock")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(missing, ", "))
	}
	return nil
}

// ── Categorías ────────────────────────────────────────────────────────────────

// ListCategories todas las categorías.
func (uc *CatalogUseCase) ListCategories() []dto.CategoryDTO {
	list := uc.repo.ListCategories()
	out := make([]dto.CategoryDTO, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CategoryFromEntity(c))
	}
	return out
}

// CreateCategory crea una categoría. El nombre es requerido.
func (uc *CatalogUseCase) CreateCategory(in dto.CreateCategoryRequest) (*dto.CategoryDTO, error) {
	if strings.TrimSpace(in.Nombre) == "" {
		return nil, fmt.Errorf("%w: nombre", domain.ErrInvalidInput)
	}
	c, err := uc.repo.CreateCategory(dto.ToCategory(dto.CategoryDTO{Nombre: strings.TrimSpace(in.Nombre), Descripcion: in.Descripcion}))
	if err != nil {
		return nil, err
	}
	out := dto.CategoryFromEntity(*c)
	return &out, nil
}
