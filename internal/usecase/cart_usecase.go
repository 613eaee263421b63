package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"tokokom/internal/cart"
	"tokokom/internal/domain/model"
	repo "tokokom/internal/repository"
)

// CartUsecase memetakan satu cart token ke satu cart.Manager per request.
// Manager-nya sendiri murni in-memory; durabilitas datang dari CartStore
// yang di-inject sebagai cart.Storage.
type CartUsecase struct {
	cartStore   repo.CartStore
	productRepo repo.ProductRepository
	idGen       IDGenerator
}

// DI
func NewCartUsecase(cartStore repo.CartStore, productRepo repo.ProductRepository, idGen IDGenerator) *CartUsecase {
	return &CartUsecase{
		cartStore:   cartStore,
		productRepo: productRepo,
		idGen:       idGen,
	}
}

type CartResponse struct {
	Token   string       `json:"token"`
	Items   []cart.Line  `json:"items"`
	Summary cart.Summary `json:"summary"`
}

type AddCartItemInput struct {
	ProductID string
	Quantity  int64
}

// tokenStorage mengadaptasi CartStore (ctx + token) ke kontrak cart.Storage.
type tokenStorage struct {
	ctx   context.Context
	store repo.CartStore
	token string
}

func (s *tokenStorage) Load() ([]cart.Line, error) {
	doc, err := s.store.Load(s.ctx, s.token)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var lines []cart.Line
	if err := json.Unmarshal([]byte(doc.Payload), &lines); err != nil {
		// payload rusak = cart kosong
		return nil, nil
	}
	return lines, nil
}

func (s *tokenStorage) Save(lines []cart.Line) error {
	payload, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return s.store.Save(s.ctx, model.CartDocument{
		Token:   s.token,
		Payload: string(payload),
	})
}

// manager merehidrasi cart untuk token. Token kosong berarti sesi baru:
// dibuatkan token, belum ada yang perlu di-load.
func (u *CartUsecase) manager(ctx context.Context, token string) (*cart.Manager, string) {
	if strings.TrimSpace(token) == "" {
		token = u.idGen.NewID()
	}
	st := &tokenStorage{ctx: ctx, store: u.cartStore, token: token}
	return cart.NewManager(st), token
}

func (u *CartUsecase) GetCart(ctx context.Context, token string) (CartResponse, error) {
	m, token := u.manager(ctx, token)
	return CartResponse{Token: token, Items: m.Lines(), Summary: m.Summary()}, nil
}

func (u *CartUsecase) AddItem(ctx context.Context, token string, in AddCartItemInput) (CartResponse, error) {
	if strings.TrimSpace(in.ProductID) == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	p, err := u.productRepo.FindByID(ctx, in.ProductID)
	if errors.Is(err, repo.ErrNotFound) {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if p.StockStatus != model.StockStatusInStock {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "out of stock")
	}

	m, token := u.manager(ctx, token)
	if err := m.AddItem(p, in.Quantity); err != nil {
		if errors.Is(err, cart.ErrInvalidQuantity) {
			return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
		}
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}

	return CartResponse{Token: token, Items: m.Lines(), Summary: m.Summary()}, nil
}

func (u *CartUsecase) UpdateItem(ctx context.Context, token string, productID string, quantity int64) (CartResponse, error) {
	if strings.TrimSpace(token) == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "cart token required")
	}
	if strings.TrimSpace(productID) == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	m, token := u.manager(ctx, token)
	if err := m.UpdateQuantity(productID, quantity); err != nil {
		if errors.Is(err, cart.ErrProductNotInCart) {
			return CartResponse{}, NewHTTPError(http.StatusNotFound, "product not in cart")
		}
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}

	return CartResponse{Token: token, Items: m.Lines(), Summary: m.Summary()}, nil
}

func (u *CartUsecase) RemoveItem(ctx context.Context, token string, productID string) (CartResponse, error) {
	if strings.TrimSpace(token) == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "cart token required")
	}

	m, token := u.manager(ctx, token)
	if err := m.RemoveItem(productID); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}

	return CartResponse{Token: token, Items: m.Lines(), Summary: m.Summary()}, nil
}

func (u *CartUsecase) ClearCart(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return nil
	}
	if err := u.cartStore.Delete(ctx, token); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "storage error")
	}
	return nil
}
