package product

import (
	"context"
	"fmt"

	"MiniShop/pkg/kit"
)

// Product is the typed view of a product record. The store keeps the raw
// records so fields beyond these three survive a round trip.
type Product struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func (p Product) Record() kit.Record {
	return kit.Record{"id": p.ID, "name": p.Name, "price": p.Price}
}

// FromRecord extracts the typed product fields. It fails with kit.ErrFieldMissing
// or kit.ErrFieldType instead of guessing.
func FromRecord(rec kit.Record) (Product, error) {
	id, err := rec.Int("id")
	if err != nil {
		return Product{}, fmt.Errorf("product: %w", err)
	}
	name, err := rec.String("name")
	if err != nil {
		return Product{}, fmt.Errorf("product: %w", err)
	}
	price, err := rec.Float("price")
	if err != nil {
		return Product{}, fmt.Errorf("product: %w", err)
	}
	return Product{ID: id, Name: name, Price: price}, nil
}

var seed = []Product{
	{ID: 1, Name: "Laptop", Price: 1200},
	{ID: 2, Name: "Phone", Price: 800},
}

type Store interface {
	Ping(ctx context.Context) error
	List(ctx context.Context) ([]kit.Record, error)
	Add(ctx context.Context, rec kit.Record) error
	Len() int
}

func NewStore() Store {
	return NewMemStore()
}
