package repository

import (
	"context"
	"errors"

	"tokokom/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// Persistensi produk. Snapshot katalog penuh diambil lewat ListCatalog;
// filter/sort dilakukan mesin katalog, bukan query SQL, supaya satu set
// aturan bisnis yang sama dipakai di mana pun.
type ProductRepository interface {
	// Produk aktif saja, urut featured_rank lalu created_at — urutan inilah
	// yang diteruskan sort "featured".
	ListCatalog(ctx context.Context, inStockOnly bool) ([]model.Product, error)
	FindByID(ctx context.Context, id string) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	SetStockStatus(ctx context.Context, id string, status model.StockStatus) error
	SoftDelete(ctx context.Context, id string) error
}
