package cart

import (
	"context"

	"MiniShop/pkg/kit"
)

// Items are schemaless records; only "id" has meaning here, and only to Remove.
const idField = "id"

type Store interface {
	Ping(ctx context.Context) error
	List(ctx context.Context) ([]kit.Record, error)
	Add(ctx context.Context, item kit.Record) error
	// Remove drops every item whose id equals id and reports how many went.
	Remove(ctx context.Context, id int64) (int, error)
	Len() int
}

func NewStore() Store {
	return NewMemStore()
}

// matches reports whether item carries an integer id equal to id. Items
// without one never match.
func matches(item kit.Record, id int64) bool {
	got, err := item.Int(idField)
	return err == nil && got == id
}
