package workspace

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/Inventario-client/internal/domain/entity"
)

// FilterProducts devuelve los productos de all que coinciden con term y categoryID,
// en el mismo orden. term vacío coincide con todo; si no, debe ser subcadena
// (sin distinguir mayúsculas) del nombre o la descripción. categoryID vacío
// coincide con todo; si no, debe ser igual al id de categoría en texto.
// Ninguno de los dos se recorta. No modifica all.
func FilterProducts(all []entity.Product, term, categoryID string) []entity.Product {
	// Un Caser no se comparte entre goroutines.
	lower := cases.Lower(language.Und)
	needle := lower.String(term)

	out := make([]entity.Product, 0, len(all))
	for _, p := range all {
		if needle != "" &&
			!strings.Contains(lower.String(p.Name), needle) &&
			!strings.Contains(lower.String(p.Description), needle) {
			continue
		}
		if categoryID != "" && strconv.FormatInt(p.CategoryID, 10) != categoryID {
			continue
		}
		out = append(out, p)
	}
	return out
}
