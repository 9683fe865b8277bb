package pricing

import (
	"testing"

	"github.com/example/foodcourt/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuild(t *testing.T) {
	pizza := models.MenuItem{ID: primitive.NewObjectID(), Title: "Margherita", Image: "pizza.jpg", Price: 500}
	pasta := models.MenuItem{ID: primitive.NewObjectID(), Title: "Carbonara", Image: "pasta.jpg", Price: 350}
	catalog := []models.MenuItem{pizza, pasta}

	t.Run("one_line_item_per_entry_in_cart_order", func(t *testing.T) {
		cart := []models.CartItem{
			{MenuID: pasta.ID.Hex(), Name: "tampered", Price: 1, Quantity: 2},
			{MenuID: pizza.ID.Hex(), Name: "tampered", Price: 1, Quantity: 3},
		}

		items, err := Build(cart, catalog)
		require.NoError(t, err)
		require.Len(t, items, 2)

		// Names, images and prices come from the catalog, not the cart.
		assert.Equal(t, "Carbonara", items[0].Name)
		assert.Equal(t, "pasta.jpg", items[0].Image)
		assert.Equal(t, int64(35000), items[0].UnitAmount)
		assert.Equal(t, int64(2), items[0].Quantity)

		assert.Equal(t, "Margherita", items[1].Name)
		assert.Equal(t, int64(50000), items[1].UnitAmount)
		assert.Equal(t, int64(3), items[1].Quantity)
	})

	t.Run("unknown_menu_id_fails_with_no_partial_result", func(t *testing.T) {
		cart := []models.CartItem{
			{MenuID: pizza.ID.Hex(), Quantity: 1},
			{MenuID: primitive.NewObjectID().Hex(), Quantity: 1},
		}

		items, err := Build(cart, catalog)
		assert.ErrorIs(t, err, ErrMenuItemNotFound)
		assert.Nil(t, items)
	})

	t.Run("empty_cart_yields_no_line_items", func(t *testing.T) {
		items, err := Build(nil, catalog)
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}
