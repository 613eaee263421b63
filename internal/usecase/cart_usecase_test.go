package usecase_test

import (
	"context"
	"testing"

	"tokokom/internal/domain/model"
	repo "tokokom/internal/repository"
	"tokokom/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type CartStoreMock struct{ mock.Mock }

func (m *CartStoreMock) Load(ctx context.Context, token string) (model.CartDocument, error) {
	args := m.Called(ctx, token)
	doc, _ := args.Get(0).(model.CartDocument)
	return doc, args.Error(1)
}

func (m *CartStoreMock) Save(ctx context.Context, doc model.CartDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *CartStoreMock) Delete(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// memCartStore: CartStore in-memory untuk skenario multi-operasi.
type memCartStore struct {
	docs map[string]model.CartDocument
}

func newMemCartStore() *memCartStore {
	return &memCartStore{docs: map[string]model.CartDocument{}}
}

func (s *memCartStore) Load(ctx context.Context, token string) (model.CartDocument, error) {
	doc, ok := s.docs[token]
	if !ok {
		return model.CartDocument{}, repo.ErrNotFound
	}
	return doc, nil
}

func (s *memCartStore) Save(ctx context.Context, doc model.CartDocument) error {
	s.docs[doc.Token] = doc
	return nil
}

func (s *memCartStore) Delete(ctx context.Context, token string) error {
	delete(s.docs, token)
	return nil
}

func inStockLaptop() model.Product {
	return model.Product{ID: "p1", Title: "Laptop A", Price: 5000000, StockStatus: model.StockStatusInStock}
}

func TestCartUsecase_AddItem_MintsTokenAndPersists(t *testing.T) {
	ctx := context.Background()

	store := newMemCartStore()
	pRepo := new(ProductRepoMock)
	uc := usecase.NewCartUsecase(store, pRepo, fixedIDGen{id: "tok-1"})

	pRepo.On("FindByID", mock.Anything, "p1").Return(inStockLaptop(), nil)

	out, err := uc.AddItem(ctx, "", usecase.AddCartItemInput{ProductID: "p1", Quantity: 2})
	assert.NoError(t, err)
	assert.Equal(t, "tok-1", out.Token)
	assert.Len(t, out.Items, 1)
	assert.Equal(t, int64(2), out.Summary.TotalQuantity)
	assert.Equal(t, int64(10000000), out.Summary.TotalAmount)

	// dokumen tersimpan dan bisa direhidrasi
	again, err := uc.GetCart(ctx, "tok-1")
	assert.NoError(t, err)
	assert.Equal(t, out.Items, again.Items)
}

func TestCartUsecase_AddItem_OutOfStock(t *testing.T) {
	store := newMemCartStore()
	pRepo := new(ProductRepoMock)
	uc := usecase.NewCartUsecase(store, pRepo, fixedIDGen{id: "tok-1"})

	p := inStockLaptop()
	p.StockStatus = model.StockStatusOutOfStock
	pRepo.On("FindByID", mock.Anything, "p1").Return(p, nil)

	_, err := uc.AddItem(context.Background(), "", usecase.AddCartItemInput{ProductID: "p1", Quantity: 1})
	assertErrContains(t, err, "out of stock")
}

func TestCartUsecase_AddItem_UnknownProduct(t *testing.T) {
	store := newMemCartStore()
	pRepo := new(ProductRepoMock)
	uc := usecase.NewCartUsecase(store, pRepo, fixedIDGen{id: "tok-1"})

	pRepo.On("FindByID", mock.Anything, "ghost").Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.AddItem(context.Background(), "", usecase.AddCartItemInput{ProductID: "ghost", Quantity: 1})
	assertErrContains(t, err, "invalid product_id")
}

func TestCartUsecase_AddItem_InvalidQuantity(t *testing.T) {
	store := newMemCartStore()
	pRepo := new(ProductRepoMock)
	uc := usecase.NewCartUsecase(store, pRepo, fixedIDGen{id: "tok-1"})

	pRepo.On("FindByID", mock.Anything, "p1").Return(inStockLaptop(), nil)

	_, err := uc.AddItem(context.Background(), "", usecase.AddCartItemInput{ProductID: "p1", Quantity: 0})
	assertErrContains(t, err, "invalid quantity")
}

func TestCartUsecase_UpdateItem_MissingLine(t *testing.T) {
	store := newMemCartStore()
	uc := usecase.NewCartUsecase(store, new(ProductRepoMock), fixedIDGen{id: "tok-1"})

	_, err := uc.UpdateItem(context.Background(), "tok-1", "ghost", 2)
	assertErrContains(t, err, "product not in cart")
}

func TestCartUsecase_UpdateItem_ZeroRemoves(t *testing.T) {
	ctx := context.Background()

	store := newMemCartStore()
	pRepo := new(ProductRepoMock)
	uc := usecase.NewCartUsecase(store, pRepo, fixedIDGen{id: "tok-1"})

	pRepo.On("FindByID", mock.Anything, "p1").Return(inStockLaptop(), nil)

	_, err := uc.AddItem(ctx, "", usecase.AddCartItemInput{ProductID: "p1", Quantity: 3})
	assert.NoError(t, err)

	out, err := uc.UpdateItem(ctx, "tok-1", "p1", 0)
	assert.NoError(t, err)
	assert.Empty(t, out.Items)
	assert.Equal(t, int64(0), out.Summary.TotalAmount)
}

func TestCartUsecase_RemoveItem_AbsentIsNoop(t *testing.T) {
	store := newMemCartStore()
	uc := usecase.NewCartUsecase(store, new(ProductRepoMock), fixedIDGen{id: "tok-1"})

	out, err := uc.RemoveItem(context.Background(), "tok-1", "ghost")
	assert.NoError(t, err)
	assert.Empty(t, out.Items)
}

func TestCartUsecase_GetCart_CorruptPayloadIsEmptyCart(t *testing.T) {
	store := newMemCartStore()
	store.docs["tok-1"] = model.CartDocument{Token: "tok-1", Payload: "{not json"}
	uc := usecase.NewCartUsecase(store, new(ProductRepoMock), fixedIDGen{id: "tok-1"})

	out, err := uc.GetCart(context.Background(), "tok-1")
	assert.NoError(t, err)
	assert.Empty(t, out.Items)
	assert.Equal(t, "tok-1", out.Token)
}

func TestCartUsecase_ClearCart_DeletesDocument(t *testing.T) {
	store := new(CartStoreMock)
	uc := usecase.NewCartUsecase(store, new(ProductRepoMock), fixedIDGen{id: "tok-1"})

	store.On("Delete", mock.Anything, "tok-1").Return(nil)

	assert.NoError(t, uc.ClearCart(context.Background(), "tok-1"))
	store.AssertExpectations(t)
}
