// Package workspace contiene el caso de uso de gestión de productos: carga
// concurrente de productos y categorías, filtrado local, formulario de
// alta/edición y eliminación con confirmación.
package workspace

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-client/internal/application/ports"
	"github.com/jhoicas/Inventario-client/internal/domain"
	"github.com/jhoicas/Inventario-client/internal/domain/entity"
	"github.com/jhoicas/Inventario-client/pkg/logger"
)

// Mensajes mostrados tras una mutación exitosa.
const (
	MsgCreated = "Producto creado exitosamente"
	MsgUpdated = "Producto actualizado exitosamente"
	MsgDeleted = "Producto eliminado exitosamente"
)

// State estado de la vista.
type State int

const (
	StateLoading State = iota
	StateReady
)

// FormMode estado del formulario superpuesto.
type FormMode int

const (
	FormClosed FormMode = iota
	FormCreate
	FormEdit
)

func (m FormMode) String() string {
	switch m {
	case FormCreate:
		return "create"
	case FormEdit:
		return "edit"
	default:
		return "closed"
	}
}

// Summary cifras del dashboard.
type Summary struct {
	TotalProducts  int
	LowStock       int
	Categories     int
	InventoryValue decimal.Decimal
}

// Workspace estado de la vista de productos.
//
// products es la lista autoritativa y solo la escribe Load; displayed es
// derivada y solo la escribe Filter (o Load al reiniciarla).
type Workspace struct {
	api     ports.InventoryAPI
	confirm ports.Confirmer
	notify  ports.Notifier
	log     *logger.Logger

	busy atomic.Bool // mutación en curso

	mu         sync.RWMutex
	state      State
	products   []entity.Product
	displayed  []entity.Product
	categories []entity.Category
	term       string
	categoryID string
	form       FormMode
	draft      entity.Product
}

// New construye el workspace en estado StateLoading.
func New(api ports.InventoryAPI, confirm ports.Confirmer, notify ports.Notifier, log *logger.Logger) *Workspace {
	return &Workspace{
		api:     api,
		confirm: confirm,
		notify:  notify,
		log:     log.Named("workspace"),
		state:   StateLoading,
	}
}

// Load pide productos y categorías en paralelo y espera a ambas respuestas.
//
// Si fallan las categorías se registra y quedan vacías. Si fallan los productos
// se registra, la lista anterior se conserva y se devuelve el error. En ambos
// casos la vista pasa a StateReady y el conjunto mostrado es el completo.
func (w *Workspace) Load(ctx context.Context) error {
	w.mu.Lock()
	w.state = StateLoading
	w.mu.Unlock()

	type productsResult struct {
		list []entity.Product
		err  error
	}
	type categoriesResult struct {
		list []entity.Category
		err  error
	}

	productsCh := make(chan productsResult, 1)
	categoriesCh := make(chan categoriesResult, 1)

	go func() {
		env, err := w.api.ListProducts(ctx)
		if err == nil && !env.Success {
			err = &domain.APIError{Message: env.Message}
		}
		if err != nil {
			productsCh <- productsResult{err: err}
			return
		}
		productsCh <- productsResult{list: env.Data}
	}()
	go func() {
		env, err := w.api.ListCategories(ctx)
		if err == nil && !env.Success {
			err = &domain.APIError{Message: env.Message}
		}
		if err != nil {
			categoriesCh <- categoriesResult{err: err}
			return
		}
		categoriesCh <- categoriesResult{list: env.Data}
	}()

	products := <-productsCh
	categories := <-categoriesCh

	w.mu.Lock()
	defer w.mu.Unlock()

	if categories.err != nil {
		w.log.Warn().Err(categories.err).Msg("no se pudieron cargar las categorías")
		w.categories = nil
	} else {
		w.categories = categories.list
	}
	if products.err == nil {
		w.products = products.list
	} else {
		w.log.Error().Err(products.err).Msg("no se pudieron cargar los productos")
	}

	w.term, w.categoryID = "", ""
	w.displayed = append([]entity.Product(nil), w.products...)
	w.state = StateReady

	if products.err != nil {
		return fmt.Errorf("workspace: cargar productos: %w", products.err)
	}
	w.log.Debug().Int("products", len(w.products)).Int("categories", len(w.categories)).Msg("datos cargados")
	return nil
}

// Filter fija los criterios y recalcula el conjunto mostrado. No llama a la red.
func (w *Workspace) Filter(term, categoryID string) []entity.Product {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.term, w.categoryID = term, categoryID
	w.displayed = FilterProducts(w.products, term, categoryID)
	return append([]entity.Product(nil), w.displayed...)
}

// OpenCreate abre el formulario con la plantilla vacía.
func (w *Workspace) OpenCreate() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.form = FormCreate
	w.draft = entity.NewEmptyProduct()
}

// OpenEdit abre el formulario con una copia de p.
func (w *Workspace) OpenEdit(p entity.Product) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.form = FormEdit
	w.draft = p.Clone()
}

// CloseForm descarta el borrador.
func (w *Workspace) CloseForm() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.form = FormClosed
	w.draft = entity.Product{}
}

// UpdateDraft aplica fn sobre el borrador del formulario abierto.
func (w *Workspace) UpdateDraft(fn func(*entity.Product)) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.form == FormClosed {
		return domain.ErrFormClosed
	}
	fn(&w.draft)
	return nil
}

// Save crea o actualiza según el modo del formulario.
//
// Con éxito cierra el formulario, notifica y recarga una vez. Con error el
// formulario queda abierto con el borrador intacto y se notifica el error.
func (w *Workspace) Save(ctx context.Context) error {
	w.mu.RLock()
	mode, draft := w.form, w.draft.Clone()
	w.mu.RUnlock()

	if mode == FormClosed {
		return domain.ErrFormClosed
	}
	err := validateDraft(draft)
	if err == nil && mode == FormEdit && draft.IsNew() {
		err = &domain.ValidationError{Fields: []string{"id"}}
	}
	if err != nil {
		w.notify.Notify(ports.LevelError, domain.UserMessage(err))
		return err
	}
	if !w.busy.CompareAndSwap(false, true) {
		return domain.ErrOperationInProgress
	}
	defer w.busy.Store(false)

	var (
		success bool
		message string
		okMsg   string
	)
	if mode == FormCreate {
		okMsg = MsgCreated
		env, callErr := w.api.CreateProduct(ctx, draft)
		err = callErr
		if env != nil {
			success, message = env.Success, env.Message
		}
	} else {
		okMsg = MsgUpdated
		env, callErr := w.api.UpdateProduct(ctx, draft.ID, draft)
		err = callErr
		if env != nil {
			success, message = env.Success, env.Message
		}
	}
	if err == nil && !success {
		err = &domain.APIError{Message: message}
	}
	if err != nil {
		w.log.Error().Err(err).Str("mode", mode.String()).Int64("product_id", draft.ID).Msg("error al guardar producto")
		w.notify.Notify(ports.LevelError, domain.UserMessage(err))
		return fmt.Errorf("workspace: guardar producto: %w", err)
	}

	w.CloseForm()
	w.log.Info().Str("mode", mode.String()).Str("name", draft.Name).Msg("producto guardado")
	w.notify.Notify(ports.LevelInfo, okMsg)
	w.reload(ctx)
	return nil
}

// Delete elimina p tras confirmación explícita.
// Sin confirmación devuelve domain.ErrDeleteNotConfirmed y no llama a la API.
func (w *Workspace) Delete(ctx context.Context, p entity.Product) error {
	if !w.busy.CompareAndSwap(false, true) {
		return domain.ErrOperationInProgress
	}
	defer w.busy.Store(false)

	ok, err := w.confirm.Confirm(ctx, DeletePrompt(p))
	if err != nil {
		return fmt.Errorf("workspace: confirmar eliminación: %w", err)
	}
	if !ok {
		return domain.ErrDeleteNotConfirmed
	}

	env, err := w.api.DeleteProduct(ctx, p.ID)
	if err == nil && !env.Success {
		err = &domain.APIError{Message: env.Message}
	}
	if err != nil {
		w.log.Error().Err(err).Int64("product_id", p.ID).Msg("error al eliminar producto")
		w.notify.Notify(ports.LevelError, domain.UserMessage(err))
		return fmt.Errorf("workspace: eliminar producto: %w", err)
	}

	w.log.Info().Int64("product_id", p.ID).Msg("producto eliminado")
	w.notify.Notify(ports.LevelInfo, MsgDeleted)
	w.reload(ctx)
	return nil
}

// DeletePrompt texto de confirmación para eliminar p.
func DeletePrompt(p entity.Product) string {
	return fmt.Sprintf("¿Estás seguro de que quieres eliminar %q?", p.Name)
}

// reload recarga tras una mutación exitosa; la mutación ya ocurrió, así que la
// falla de recarga se notifica pero no se devuelve.
func (w *Workspace) reload(ctx context.Context) {
	if err := w.Load(ctx); err != nil {
		w.notify.Notify(ports.LevelError, domain.UserMessage(err))
	}
}

// ── Lecturas ──────────────────────────────────────────────────────────────────

// State estado actual de la vista.
func (w *Workspace) State() State {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.state
}

// Form modo del formulario.
func (w *Workspace) Form() FormMode {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.form
}

// Draft copia del borrador del formulario.
func (w *Workspace) Draft() entity.Product {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.draft.Clone()
}

// Products copia de la lista autoritativa.
func (w *Workspace) Products() []entity.Product {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]entity.Product(nil), w.products...)
}

// Displayed copia del conjunto mostrado.
func (w *Workspace) Displayed() []entity.Product {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]entity.Product(nil), w.displayed...)
}

// Categories copia de las categorías cargadas.
func (w *Workspace) Categories() []entity.Category {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]entity.Category(nil), w.categories...)
}

// Criteria criterios de filtro vigentes.
func (w *Workspace) Criteria() (term, categoryID string) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.term, w.categoryID
}

// Find busca un producto cargado por id.
func (w *Workspace) Find(id int64) (entity.Product, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, p := range w.products {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return entity.Product{}, false
}

// LowStock productos con stock bajo, en el orden de la carga.
func (w *Workspace) LowStock() []entity.Product {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]entity.Product, 0)
	for _, p := range w.products {
		if p.IsLowStock() {
			out = append(out, p)
		}
	}
	return out
}

// Summary cifras del dashboard sobre la lista autoritativa.
func (w *Workspace) Summary() Summary {
	w.mu.RLock()
	defer w.mu.RUnlock()
	s := Summary{
		TotalProducts:  len(w.products),
		Categories:     len(w.categories),
		InventoryValue: decimal.Zero,
	}
	for _, p := range w.products {
		if p.IsLowStock() {
			s.LowStock++
		}
		s.InventoryValue = s.InventoryValue.Add(p.StockValue())
	}
	return s
}
