package models

// Product is one store item.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Emoji    string  `json:"emoji"`
}

// StoreCartLine is one product with a quantity inside a store cart.
type StoreCartLine struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

// StoreCart is the session-scoped shopping cart for the store screen.
type StoreCart struct {
	SessionID string          `json:"sessionId"`
	Lines     []StoreCartLine `json:"lines"`
}

// Total sums quantity times unit price over all lines.
func (c StoreCart) Total() float64 {
	var sum float64
	for _, l := range c.Lines {
		sum += l.UnitPrice * float64(l.Quantity)
	}
	return sum
}
