package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"fitapp/catalog"
	"fitapp/models"
	"fitapp/services/session"

	"github.com/google/uuid"
)

var (
	// ErrCartNotFound means the store session id has no live cart.
	ErrCartNotFound = errors.New("store cart not found or expired")
	// ErrOutOfStock means the requested quantity exceeds remaining stock.
	ErrOutOfStock = errors.New("not enough stock")
	// ErrInvalidQuantity means a non-positive quantity was requested.
	ErrInvalidQuantity = errors.New("quantity must be positive")
	// ErrInvalidAmount means a non-positive top-up amount was requested.
	ErrInvalidAmount = errors.New("amount must be positive")
)

const walletPrefix = "wallet:"

// Service handles the store cart and the session wallet.
type Service interface {
	StartCart(ctx context.Context) (models.StoreCart, error)
	GetCart(ctx context.Context, sessionID string) (models.StoreCart, error)
	AddItem(ctx context.Context, sessionID, productID string, quantity int) (models.StoreCart, error)
	RemoveItem(ctx context.Context, sessionID, productID string) (models.StoreCart, error)
	GetWallet(ctx context.Context, sessionID string) (models.Wallet, error)
	TopUp(ctx context.Context, sessionID string, amount float64) (models.Wallet, error)
}

// DefaultStoreService is the session-store-backed implementation.
type DefaultStoreService struct {
	Products catalog.ProductRepository
	Sessions session.Store
	Now      func() time.Time
}

func (s *DefaultStoreService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultStoreService) StartCart(ctx context.Context) (models.StoreCart, error) {
	cart := models.StoreCart{SessionID: uuid.New().String(), Lines: []models.StoreCartLine{}}
	if err := s.saveCart(ctx, cart); err != nil {
		return models.StoreCart{}, err
	}
	return cart, nil
}

func (s *DefaultStoreService) GetCart(ctx context.Context, sessionID string) (models.StoreCart, error) {
	return s.loadCart(ctx, sessionID)
}

// AddItem adds quantity of a product to the cart, merging into an existing
// line. The summed quantity may not exceed the product's stock.
func (s *DefaultStoreService) AddItem(ctx context.Context, sessionID, productID string, quantity int) (models.StoreCart, error) {
	if quantity <= 0 {
		return models.StoreCart{}, ErrInvalidQuantity
	}
	cart, err := s.loadCart(ctx, sessionID)
	if err != nil {
		return models.StoreCart{}, err
	}
	product, err := s.Products.GetProductByID(productID)
	if err != nil {
		return cart, err
	}

	merged := false
	for i := range cart.Lines {
		if cart.Lines[i].ProductID == productID {
			if cart.Lines[i].Quantity+quantity > product.Stock {
				return cart, ErrOutOfStock
			}
			cart.Lines[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		if quantity > product.Stock {
			return cart, ErrOutOfStock
		}
		cart.Lines = append(cart.Lines, models.StoreCartLine{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  quantity,
		})
	}

	if err := s.saveCart(ctx, cart); err != nil {
		return models.StoreCart{}, err
	}
	return cart, nil
}

// RemoveItem drops a product's line entirely. Absent ids are a no-op.
func (s *DefaultStoreService) RemoveItem(ctx context.Context, sessionID, productID string) (models.StoreCart, error) {
	cart, err := s.loadCart(ctx, sessionID)
	if err != nil {
		return models.StoreCart{}, err
	}
	for i, l := range cart.Lines {
		if l.ProductID == productID {
			cart.Lines = append(cart.Lines[:i:i], cart.Lines[i+1:]...)
			if err := s.saveCart(ctx, cart); err != nil {
				return models.StoreCart{}, err
			}
			break
		}
	}
	return cart, nil
}

// GetWallet returns the session wallet, seeding a fresh one on first read.
func (s *DefaultStoreService) GetWallet(ctx context.Context, sessionID string) (models.Wallet, error) {
	data, ok, err := s.Sessions.Get(ctx, walletPrefix+sessionID)
	if err != nil {
		return models.Wallet{}, err
	}
	if !ok {
		wallet := seedWallet()
		if err := s.saveWallet(ctx, sessionID, wallet); err != nil {
			return models.Wallet{}, err
		}
		return wallet, nil
	}
	var wallet models.Wallet
	if err := json.Unmarshal(data, &wallet); err != nil {
		return models.Wallet{}, err
	}
	return wallet, nil
}

// TopUp raises the balance and prepends a ledger entry.
func (s *DefaultStoreService) TopUp(ctx context.Context, sessionID string, amount float64) (models.Wallet, error) {
	if amount <= 0 {
		return models.Wallet{}, ErrInvalidAmount
	}
	wallet, err := s.GetWallet(ctx, sessionID)
	if err != nil {
		return models.Wallet{}, err
	}
	wallet.Balance += amount
	wallet.Transactions = append([]models.Transaction{{
		ID:     uuid.New().String(),
		Kind:   "topup",
		Title:  "儲值",
		Amount: amount,
		Date:   s.now().Format("2006/01/02"),
	}}, wallet.Transactions...)
	if err := s.saveWallet(ctx, sessionID, wallet); err != nil {
		return models.Wallet{}, err
	}
	return wallet, nil
}

func seedWallet() models.Wallet {
	return models.Wallet{
		Balance: 1250,
		Transactions: []models.Transaction{
			{ID: "w1", Kind: "payment", Title: "場地預約 - 羽球A", Amount: -300, Date: "2026/08/20"},
			{ID: "w2", Kind: "topup", Title: "儲值", Amount: 1000, Date: "2026/08/18"},
		},
	}
}

func (s *DefaultStoreService) loadCart(ctx context.Context, sessionID string) (models.StoreCart, error) {
	data, ok, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return models.StoreCart{}, err
	}
	if !ok {
		return models.StoreCart{}, ErrCartNotFound
	}
	var cart models.StoreCart
	if err := json.Unmarshal(data, &cart); err != nil {
		return models.StoreCart{}, err
	}
	return cart, nil
}

func (s *DefaultStoreService) saveCart(ctx context.Context, cart models.StoreCart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return s.Sessions.Set(ctx, cart.SessionID, data)
}

func (s *DefaultStoreService) saveWallet(ctx context.Context, sessionID string, wallet models.Wallet) error {
	data, err := json.Marshal(wallet)
	if err != nil {
		return err
	}
	return s.Sessions.Set(ctx, walletPrefix+sessionID, data)
}
