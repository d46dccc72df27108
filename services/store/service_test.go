package store

import (
	"context"
	"testing"
	"time"

	"fitapp/catalog"
	"fitapp/services/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStoreService() *DefaultStoreService {
	return &DefaultStoreService{
		Products: catalog.NewMemoryProductRepo(),
		Sessions: session.NewMemoryStore(30 * time.Minute),
		Now:      func() time.Time { return time.Date(2026, 8, 29, 11, 0, 0, 0, time.Local) },
	}
}

func TestCart_AddAndMerge(t *testing.T) {
	svc := newTestStoreService()
	ctx := context.Background()

	cart, err := svc.StartCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)

	cart, err = svc.AddItem(ctx, cart.SessionID, "p1", 2)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "比賽級羽球 (12入)", cart.Lines[0].Name)
	assert.Equal(t, 2, cart.Lines[0].Quantity)

	// Same product merges into the existing line.
	cart, err = svc.AddItem(ctx, cart.SessionID, "p1", 3)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 5, cart.Lines[0].Quantity)

	cart, err = svc.AddItem(ctx, cart.SessionID, "p3", 1)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 2)
	assert.Equal(t, 650.0*5+120.0, cart.Total())
}

func TestCart_StockLimit(t *testing.T) {
	svc := newTestStoreService()
	ctx := context.Background()
	cart, err := svc.StartCart(ctx)
	require.NoError(t, err)

	// p4 has 15 in stock.
	_, err = svc.AddItem(ctx, cart.SessionID, "p4", 16)
	assert.ErrorIs(t, err, ErrOutOfStock)

	cart, err = svc.AddItem(ctx, cart.SessionID, "p4", 10)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, cart.SessionID, "p4", 6)
	assert.ErrorIs(t, err, ErrOutOfStock)

	cart, err = svc.GetCart(ctx, cart.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 10, cart.Lines[0].Quantity)
}

func TestCart_InvalidInput(t *testing.T) {
	svc := newTestStoreService()
	ctx := context.Background()
	cart, err := svc.StartCart(ctx)
	require.NoError(t, err)

	_, err = svc.AddItem(ctx, cart.SessionID, "p1", 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = svc.AddItem(ctx, cart.SessionID, "nope", 1)
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	_, err = svc.GetCart(ctx, "expired")
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestCart_RemoveItem(t *testing.T) {
	svc := newTestStoreService()
	ctx := context.Background()
	cart, err := svc.StartCart(ctx)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, cart.SessionID, "p1", 1)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, cart.SessionID, "p2", 1)
	require.NoError(t, err)

	cart, err = svc.RemoveItem(ctx, cart.SessionID, "p1")
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "p2", cart.Lines[0].ProductID)

	// Removing an id that is not in the cart changes nothing.
	cart, err = svc.RemoveItem(ctx, cart.SessionID, "p1")
	require.NoError(t, err)
	assert.Len(t, cart.Lines, 1)
}

func TestWallet_SeededOnFirstRead(t *testing.T) {
	svc := newTestStoreService()
	ctx := context.Background()

	wallet, err := svc.GetWallet(ctx, "visitor-1")
	require.NoError(t, err)
	assert.Equal(t, 1250.0, wallet.Balance)
	require.Len(t, wallet.Transactions, 2)

	// Subsequent reads return the stored wallet, not a fresh seed.
	again, err := svc.GetWallet(ctx, "visitor-1")
	require.NoError(t, err)
	assert.Equal(t, wallet, again)
}

func TestWallet_TopUp(t *testing.T) {
	svc := newTestStoreService()
	ctx := context.Background()

	wallet, err := svc.TopUp(ctx, "visitor-2", 500)
	require.NoError(t, err)
	assert.Equal(t, 1750.0, wallet.Balance)
	require.Len(t, wallet.Transactions, 3)
	assert.Equal(t, "topup", wallet.Transactions[0].Kind)
	assert.Equal(t, 500.0, wallet.Transactions[0].Amount)
	assert.Equal(t, "2026/08/29", wallet.Transactions[0].Date)

	_, err = svc.TopUp(ctx, "visitor-2", 0)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}
