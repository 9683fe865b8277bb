// Package pricing builds the priced line-item list submitted to the payment
// processor. Names, images and prices always come from the restaurant's own
// menu catalog, never from the client-submitted cart snapshot, so a tampered
// cart cannot change what gets charged.
package pricing

import (
	"errors"
	"fmt"

	"github.com/example/foodcourt/pkg/models"
)

// ErrMenuItemNotFound is returned when a cart entry references a menu item
// that is not in the restaurant's catalog.
var ErrMenuItemNotFound = errors.New("menu item not found in restaurant catalog")

// minorUnitFactor converts major currency units to the processor's integer
// minor units (e.g. rupees to paise).
const minorUnitFactor = 100

// LineItem is one priced, named, quantified unit of a checkout session.
type LineItem struct {
	Name       string
	Image      string
	UnitAmount int64 // minor currency units
	Quantity   int64
}

// Build produces one line item per cart entry, in cart order. It is
// all-or-nothing: if any entry references a menu item missing from the
// catalog, no line items are produced. A stale or tampered cart must not
// silently drop items from the charged total.
func Build(cart []models.CartItem, catalog []models.MenuItem) ([]LineItem, error) {
	byID := make(map[string]*models.MenuItem, len(catalog))
	for i := range catalog {
		byID[catalog[i].ID.Hex()] = &catalog[i]
	}

	items := make([]LineItem, 0, len(cart))
	for _, entry := range cart {
		menuItem, ok := byID[entry.MenuID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMenuItemNotFound, entry.MenuID)
		}
		items = append(items, LineItem{
			Name:       menuItem.Title,
			Image:      menuItem.Image,
			UnitAmount: menuItem.Price * minorUnitFactor,
			Quantity:   entry.Quantity,
		})
	}
	return items, nil
}
