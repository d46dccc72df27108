package handlers

import (
	"errors"
	"net/http"

	"fitapp/appstate"
	"fitapp/catalog"
	"fitapp/services/store"

	"github.com/gin-gonic/gin"
)

// StoreHandler exposes the store catalog, the store cart and the wallet.
type StoreHandler struct {
	Svc      store.Service
	Products catalog.ProductRepository
	App      *appstate.AppState
}

func NewStoreHandler(svc store.Service, products catalog.ProductRepository, app *appstate.AppState) *StoreHandler {
	return &StoreHandler{Svc: svc, Products: products, App: app}
}

func (h *StoreHandler) respondErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrCartNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, catalog.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "找不到商品"})
	case errors.Is(err, store.ErrOutOfStock),
		errors.Is(err, store.ErrInvalidQuantity),
		errors.Is(err, store.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// ListProducts returns the store catalog.
func (h *StoreHandler) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"products": h.Products.ListProducts()})
}

// StartCart creates a new store cart session.
func (h *StoreHandler) StartCart(c *gin.Context) {
	cart, err := h.Svc.StartCart(c.Request.Context())
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": cart, "total": cart.Total()})
}

// GetCart returns the live cart with its total.
func (h *StoreHandler) GetCart(c *gin.Context) {
	cart, err := h.Svc.GetCart(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": cart, "total": cart.Total()})
}

// AddItem adds a product to the cart.
func (h *StoreHandler) AddItem(c *gin.Context) {
	var input struct {
		ProductID string `json:"productId" binding:"required"`
		Quantity  int    `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	cart, err := h.Svc.AddItem(c.Request.Context(), c.Param("sessionID"), input.ProductID, input.Quantity)
	if err != nil {
		h.respondErr(c, err)
		return
	}
	h.App.ShowToast("已加入購物車")
	c.JSON(http.StatusOK, gin.H{"cart": cart, "total": cart.Total()})
}

// RemoveItem drops a product line from the cart.
func (h *StoreHandler) RemoveItem(c *gin.Context) {
	cart, err := h.Svc.RemoveItem(c.Request.Context(), c.Param("sessionID"), c.Param("productID"))
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": cart, "total": cart.Total()})
}

// GetWallet returns the session wallet.
func (h *StoreHandler) GetWallet(c *gin.Context) {
	wallet, err := h.Svc.GetWallet(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, wallet)
}

// TopUp raises the wallet balance.
func (h *StoreHandler) TopUp(c *gin.Context) {
	var input struct {
		Amount float64 `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	wallet, err := h.Svc.TopUp(c.Request.Context(), c.Param("sessionID"), input.Amount)
	if err != nil {
		h.respondErr(c, err)
		return
	}
	h.App.ShowToast("儲值成功")
	c.JSON(http.StatusOK, wallet)
}
