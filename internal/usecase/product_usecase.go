package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"tokokom/internal/catalog"
	"tokokom/internal/domain/model"
	repo "tokokom/internal/repository"
)

type ProductUsecase struct {
	productRepo repo.ProductRepository
	idGen       IDGenerator
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository, idGen IDGenerator) *ProductUsecase {
	return &ProductUsecase{
		productRepo: productRepo,
		idGen:       idGen,
	}
}

// Input DTO untuk GET /products
type ListProductsInput struct {
	Q           string
	Category    string
	MinPrice    *int64
	MaxPrice    *int64
	Sort        string
	InStockOnly bool
}

type ProductListOutput struct {
	Items []model.Product `json:"items"`
	Total int             `json:"total"`
}

// ListCatalogProducts mengambil snapshot katalog lalu menjalankan mesin
// filter. min > max lolos validasi dan menghasilkan list kosong.
func (u *ProductUsecase) ListCatalogProducts(ctx context.Context, in ListProductsInput) (ProductListOutput, error) {
	if len(in.Q) > 100 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "q too long")
	}
	if in.MinPrice != nil && *in.MinPrice < 0 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "min_price must be >= 0")
	}
	if in.MaxPrice != nil && *in.MaxPrice < 0 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "max_price must be >= 0")
	}
	if in.Category != "" && in.Category != catalog.CategoryAll && !model.IsValidCategory(in.Category) {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid category")
	}

	spec := catalog.DefaultSpec()
	spec.SearchText = strings.TrimSpace(in.Q)
	if in.Category != "" {
		spec.Category = in.Category
	}
	if in.MinPrice != nil {
		spec.PriceMin = *in.MinPrice
	}
	if in.MaxPrice != nil {
		spec.PriceMax = *in.MaxPrice
	}
	if in.Sort != "" {
		spec.SortKey = catalog.SortKey(in.Sort)
	}

	products, err := u.productRepo.ListCatalog(ctx, in.InStockOnly)
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items, err := catalog.Apply(products, spec)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidSortKey) {
			return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid sort")
		}
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return ProductListOutput{Items: items, Total: len(items)}, nil
}

// ListCategories menghitung chip kategori di atas katalog penuh (tanpa
// filter), supaya jumlah per kategori konsisten apa pun filter aktifnya.
func (u *ProductUsecase) ListCategories(ctx context.Context) ([]catalog.CategoryCount, error) {
	products, err := u.productRepo.ListCatalog(ctx, false)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return catalog.DistinctCategories(products), nil
}

func (u *ProductUsecase) GetProductDetail(ctx context.Context, productID string) (model.Product, error) {
	if strings.TrimSpace(productID) == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

type AdminProductInput struct {
	Title        string
	Description  string
	Price        int64
	Category     string
	ImageURL     string
	Featured     bool
	FeaturedRank int64
}

func (u *ProductUsecase) validateAdminInput(in AdminProductInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return NewHTTPError(http.StatusBadRequest, "title required")
	}
	if in.Price < 0 {
		return NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	if !model.IsValidCategory(in.Category) {
		return NewHTTPError(http.StatusBadRequest, "invalid category")
	}
	return nil
}

func (u *ProductUsecase) AdminCreateProduct(ctx context.Context, in AdminProductInput) (model.Product, error) {
	if err := u.validateAdminInput(in); err != nil {
		return model.Product{}, err
	}

	p, err := u.productRepo.Create(ctx, model.Product{
		ID:           u.idGen.NewID(),
		Title:        strings.TrimSpace(in.Title),
		Description:  in.Description,
		Price:        in.Price,
		Category:     in.Category,
		ImageURL:     in.ImageURL,
		StockStatus:  model.StockStatusInStock,
		Featured:     in.Featured,
		FeaturedRank: in.FeaturedRank,
	})
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

func (u *ProductUsecase) AdminUpdateProduct(ctx context.Context, productID string, in AdminProductInput) error {
	if strings.TrimSpace(productID) == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if err := u.validateAdminInput(in); err != nil {
		return err
	}

	err := u.productRepo.Update(ctx, model.Product{
		ID:           productID,
		Title:        strings.TrimSpace(in.Title),
		Description:  in.Description,
		Price:        in.Price,
		Category:     in.Category,
		ImageURL:     in.ImageURL,
		Featured:     in.Featured,
		FeaturedRank: in.FeaturedRank,
	})
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *ProductUsecase) AdminSetStockStatus(ctx context.Context, productID string, status model.StockStatus) error {
	if strings.TrimSpace(productID) == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if status != model.StockStatusInStock && status != model.StockStatusOutOfStock {
		return NewHTTPError(http.StatusBadRequest, "invalid stock status")
	}

	err := u.productRepo.SetStockStatus(ctx, productID, status)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *ProductUsecase) AdminDeleteProduct(ctx context.Context, productID string) error {
	if strings.TrimSpace(productID) == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	err := u.productRepo.SoftDelete(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
