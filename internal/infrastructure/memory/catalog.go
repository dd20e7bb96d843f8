// Package memory implementa el catálogo en memoria del backend local de desarrollo.
package memory

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Inventario-client/internal/domain"
	"github.com/jhoicas/Inventario-client/internal/domain/entity"
	"github.com/jhoicas/Inventario-client/internal/domain/repository"
)

var _ repository.CatalogRepository = (*Catalog)(nil)

// Catalog productos, categorías y usuarios protegidos por un mutex.
// Los ids son enteros secuenciales por tipo.
type Catalog struct {
	mu          sync.RWMutex
	products    map[int64]entity.Product
	categories  map[int64]entity.Category
	users       map[string]entity.User // por username en minúsculas
	nextProduct int64
	nextCat     int64
	nextUser    int64
	now         func() time.Time
}

// NewCatalog catálogo vacío.
func NewCatalog() *Catalog {
	return &Catalog{
		products:   make(map[int64]entity.Product),
		categories: make(map[int64]entity.Category),
		users:      make(map[string]entity.User),
		now:        time.Now,
	}
}

// ── Productos ─────────────────────────────────────────────────────────────────

// ListProducts productos ordenados por id.
func (c *Catalog) ListProducts() []entity.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]entity.Product, 0, len(c.products))
	for _, p := range c.products {
		out = append(out, c.withCategoryName(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// GetProduct obtiene un producto por id.
func (c *Catalog) GetProduct(id int64) (*entity.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p = c.withCategoryName(p)
	return &p, nil
}

// CreateProduct asigna id y fechas. La categoría debe existir y el código no repetirse.
func (c *Catalog) CreateProduct(p entity.Product) (*entity.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.checkProduct(p, 0); err != nil {
		return nil, err
	}
	c.nextProduct++
	now := c.now()
	p.ID = c.nextProduct
	p.CreatedAt, p.UpdatedAt = now, now
	if p.Active == nil {
		active := true
		p.Active = &active
	}
	p.CategoryName = ""
	c.products[p.ID] = p
	out := c.withCategoryName(p)
	return &out, nil
}

// UpdateProduct reemplaza el producto p.ID conservando su fecha de creación.
func (c *Catalog) UpdateProduct(p entity.Product) (*entity.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	current, ok := c.products[p.ID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if err := c.checkProduct(p, p.ID); err != nil {
		return nil, err
	}
	p.CreatedAt = current.CreatedAt
	p.UpdatedAt = c.now()
	if p.Active == nil {
		p.Active = current.Active
	}
	p.CategoryName = ""
	c.products[p.ID] = p
	out := c.withCategoryName(p)
	return &out, nil
}

// DeleteProduct elimina por id.
func (c *Catalog) DeleteProduct(id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(c.products, id)
	return nil
}

// checkProduct valida la categoría y la unicidad del código (ignorando selfID).
func (c *Catalog) checkProduct(p entity.Product, selfID int64) error {
	if _, ok := c.categories[p.CategoryID]; !ok {
		return fmt.Errorf("%w: categoría %d no existe", domain.ErrInvalidInput, p.CategoryID)
	}
	if p.Code == "" {
		return nil
	}
	for id, other := range c.products {
		if id != selfID && strings.EqualFold(other.Code, p.Code) {
			return fmt.Errorf("%w: código %s", domain.ErrDuplicate, p.Code)
		}
	}
	return nil
}

func (c *Catalog) withCategoryName(p entity.Product) entity.Product {
	if cat, ok := c.categories[p.CategoryID]; ok {
		p.CategoryName = cat.Name
	}
	return p
}

// ── Categorías ────────────────────────────────────────────────────────────────

// ListCategories categorías ordenadas por id.
func (c *Catalog) ListCategories() []entity.Category {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]entity.Category, 0, len(c.categories))
	for _, cat := range c.categories {
		out = append(out, cat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// CreateCategory asigna id. El nombre no puede repetirse.
func (c *Catalog) CreateCategory(cat entity.Category) (*entity.Category, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, other := range c.categories {
		if strings.EqualFold(other.Name, cat.Name) {
			return nil, fmt.Errorf("%w: categoría %s", domain.ErrDuplicate, cat.Name)
		}
	}
	c.nextCat++
	cat.ID = c.nextCat
	c.categories[cat.ID] = cat
	return &cat, nil
}

// ── Usuarios ──────────────────────────────────────────────────────────────────

// AddUser registra un usuario con la contraseña hasheada con bcrypt.
func (c *Catalog) AddUser(id entity.Identity, password string, cost int) (*entity.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	key := strings.ToLower(id.Username)
	if _, ok := c.users[key]; ok {
		return nil, fmt.Errorf("%w: usuario %s", domain.ErrDuplicate, id.Username)
	}
	c.nextUser++
	id.ID = c.nextUser
	u := entity.User{Identity: id, PasswordHash: string(hash), Status: "active"}
	c.users[key] = u
	return &u, nil
}

// FindUserByUsername devuelve domain.ErrNotFound si no existe.
func (c *Catalog) FindUserByUsername(username string) (*entity.User, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	u, ok := c.users[strings.ToLower(strings.TrimSpace(username))]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

// ── Semilla ───────────────────────────────────────────────────────────────────

// SeedPasswords credenciales de desarrollo sembradas por Seed.
var SeedPasswords = map[string]string{
	"admin":    "secret",
	"empleado": "empleado123",
}

// Seed carga usuarios, categorías y productos de ejemplo. cost es el costo bcrypt.
func Seed(c *Catalog, cost int) error {
	users := []entity.Identity{
		{Username: "admin", Email: "admin@inventario.local", GivenName: "Ana", FamilyName: "Pérez", Role: entity.RoleAdmin},
		{Username: "empleado", Email: "empleado@inventario.local", GivenName: "Luis", FamilyName: "Gómez", Role: entity.RoleEmpleado},
	}
	for _, u := range users {
		if _, err := c.AddUser(u, SeedPasswords[u.Username], cost); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}

	catIDs := make(map[string]int64)
	for _, cat := range []entity.Category{
		{Name: "Ferretería", Description: "Herramientas y fijaciones"},
		{Name: "Pinturas", Description: "Pinturas y solventes"},
		{Name: "Eléctricos", Description: "Cables e iluminación"},
	} {
		created, err := c.CreateCategory(cat)
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		catIDs[created.Name] = created.ID
	}

	products := []entity.Product{
		{Code: "FER-001", Name: "Tornillo M6", Description: "Acero inoxidable, caja x100", UnitPrice: decimal.NewFromInt(12000), PurchasePrice: decimal.NewNullDecimal(decimal.NewFromInt(8000)), CurrentStock: 40, MinStock: 10, CategoryID: catIDs["Ferretería"]},
		{Code: "FER-002", Name: "Taladro percutor", Description: "600W con maletín", UnitPrice: decimal.NewFromInt(189900), PurchasePrice: decimal.NewNullDecimal(decimal.NewFromInt(140000)), CurrentStock: 3, MinStock: 5, CategoryID: catIDs["Ferretería"]},
		{Code: "PIN-001", Name: "Pintura blanca", Description: "Látex interior 1 galón", UnitPrice: decimal.NewFromInt(54500), CurrentStock: 12, MinStock: 12, CategoryID: catIDs["Pinturas"]},
		{Code: "ELE-001", Name: "Cable eléctrico", Description: "Cobre 12 AWG, rollo 100 m", UnitPrice: decimal.RequireFromString("215000.50"), CurrentStock: 25, MinStock: 4, CategoryID: catIDs["Eléctricos"]},
	}
	for _, p := range products {
		if _, err := c.CreateProduct(p); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}
	return nil
}
