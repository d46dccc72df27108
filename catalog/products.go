package catalog

import "fitapp/models"

// ProductRepository serves store products.
type ProductRepository interface {
	ListProducts() []models.Product
	GetProductByID(id string) (models.Product, error)
}

// MemoryProductRepo is the seeded in-memory product repository.
type MemoryProductRepo struct {
	products []models.Product
}

func NewMemoryProductRepo() *MemoryProductRepo {
	return &MemoryProductRepo{
		products: []models.Product{
			{ID: "p1", Name: "比賽級羽球 (12入)", Category: "羽球", Price: 650, Stock: 30, Emoji: "🏸"},
			{ID: "p2", Name: "運動毛巾", Category: "配件", Price: 250, Stock: 50, Emoji: "🧺"},
			{ID: "p3", Name: "防滑握把帶", Category: "配件", Price: 120, Stock: 80, Emoji: "🎽"},
			{ID: "p4", Name: "7 號籃球", Category: "籃球", Price: 880, Stock: 15, Emoji: "🏀"},
			{ID: "p5", Name: "運動水壺 1L", Category: "配件", Price: 320, Stock: 40, Emoji: "🥤"},
		},
	}
}

func (r *MemoryProductRepo) ListProducts() []models.Product {
	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out
}

func (r *MemoryProductRepo) GetProductByID(id string) (models.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}
