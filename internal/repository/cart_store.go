package repository

import (
	"context"

	"tokokom/internal/domain/model"
)

// Key/value durable store untuk dokumen keranjang, satu dokumen per token.
type CartStore interface {
	// Token tanpa dokumen mengembalikan ErrNotFound.
	Load(ctx context.Context, token string) (model.CartDocument, error)
	Save(ctx context.Context, doc model.CartDocument) error
	Delete(ctx context.Context, token string) error
}
