package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("defaults status to Pending", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(commands.NewOrderInput{
			Customer:   "  Ana ",
			Type:       order.DineIn,
			Selections: []commands.Selection{{ItemID: "m-soup", Qty: 2}},
		})
		require.NoError(t, err)
		assert.Equal(t, order.Pending, cmd.Input().Status)
		assert.Equal(t, "Ana", cmd.Input().Customer)
	})

	t.Run("requires selections", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(commands.NewOrderInput{Type: order.DineIn})
		require.ErrorIs(t, err, commands.ErrSelectionsAreRequired)
	})

	t.Run("rejects zero quantity and unknown type together", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(commands.NewOrderInput{
			Selections: []commands.Selection{{ItemID: "m-soup", Qty: 0}},
		})
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		require.ErrorIs(t, commands.CreateOrderCommand{}.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}

func TestCreateOrderCommandHandler_Handle(t *testing.T) {
	t.Run("copies name and price from the menu", func(t *testing.T) {
		f := newFixture(t)
		ctx := t.Context()
		h := commands.NewCreateOrderCommandHandler(f.orders, f.menu,
			kernel.IDGeneratorFunc(func() string { return "ORD-1" }), kernel.FixedClock(now))

		cmd, err := commands.NewCreateOrderCommand(commands.NewOrderInput{
			Customer:   "Ana",
			Type:       order.DineIn,
			Selections: []commands.Selection{{ItemID: "m-soup", Qty: 2}},
		})
		require.NoError(t, err)

		created, err := h.Handle(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, "ORD-1", created.ID())
		assert.Equal(t, now, created.CreatedAt())
		assert.Equal(t, "10.00", created.Total().String())
		assert.Equal(t, "Tomato Soup x2", created.Lines()[0].Label())

		_, err = f.menu.Update(ctx, "m-soup", "Soup of the Day", kernel.NewMoney(7))
		require.NoError(t, err)

		stored, err := f.orders.Get("ORD-1")
		require.NoError(t, err)
		assert.Equal(t, "Tomato Soup", stored.Lines()[0].Name())
		assert.Equal(t, "10.00", stored.Total().String())
	})

	t.Run("delivery order keeps recipient", func(t *testing.T) {
		f := newFixture(t)
		h := commands.NewCreateOrderCommandHandler(f.orders, f.menu, kernel.NewUUIDGenerator("ORD"), nil)

		cmd, err := commands.NewCreateOrderCommand(commands.NewOrderInput{
			Customer:   "Ana",
			Type:       order.Delivery,
			Selections: []commands.Selection{{ItemID: "m-burger", Qty: 1}},
			Delivery:   &order.DeliveryDetails{Name: "Ana", Address: "1 Main St"},
		})
		require.NoError(t, err)

		created, err := h.Handle(t.Context(), cmd)
		require.NoError(t, err)
		require.NotNil(t, created.Delivery())
		assert.Equal(t, "1 Main St", created.Delivery().Address)
	})

	t.Run("unknown menu item", func(t *testing.T) {
		f := newFixture(t)
		h := commands.NewCreateOrderCommandHandler(f.orders, f.menu, kernel.NewUUIDGenerator("ORD"), nil)

		cmd, err := commands.NewCreateOrderCommand(commands.NewOrderInput{
			Type:       order.Takeaway,
			Selections: []commands.Selection{{ItemID: "m-missing", Qty: 1}},
		})
		require.NoError(t, err)

		_, err = h.Handle(t.Context(), cmd)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Empty(t, f.orders.Snapshot())
	})
}
