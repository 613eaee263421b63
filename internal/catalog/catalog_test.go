package catalog

import (
	"testing"
	"time"

	"tokokom/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func day(n int) time.Time {
	return time.Date(2025, 1, n, 0, 0, 0, 0, time.UTC)
}

func sampleCatalog() []model.Product {
	return []model.Product{
		{ID: "1", Title: "Laptop A", Description: "Laptop kerja ringan", Price: 5000000, Category: "Laptop", CreatedAt: day(1)},
		{ID: "2", Title: "PC B", Description: "Rakitan gaming", Price: 12000000, Category: "PC Desktop", CreatedAt: day(2)},
		{ID: "3", Title: "Mouse Wireless", Description: "Aksesoris meja kerja", Price: 150000, Category: "Aksesoris", CreatedAt: day(3)},
		{ID: "4", Title: "SSD 1TB", Description: "Upgrade storage laptop", Price: 1200000, Category: "Hardware", CreatedAt: day(4)},
		{ID: "5", Title: "Laptop C", Description: "Laptop gaming berat", Price: 15000000, Category: "Laptop", CreatedAt: day(5)},
	}
}

func ids(products []model.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestApply_EmptyCatalog(t *testing.T) {
	out, err := Apply([]model.Product{}, DefaultSpec())
	assert.NoError(t, err)
	assert.Empty(t, out)
}

func TestApply_CategoryFilter(t *testing.T) {
	spec := DefaultSpec()
	spec.Category = "Laptop"
	spec.SortKey = SortFeatured

	out, err := Apply(sampleCatalog(), spec)
	assert.NoError(t, err)
	assert.Equal(t, []string{"1", "5"}, ids(out))
}

func TestApply_SearchMatchesTitleAndDescription(t *testing.T) {
	spec := DefaultSpec()
	spec.SearchText = "LAPTOP"
	spec.SortKey = SortFeatured

	// "laptop" muncul di judul 1 dan 5, dan di deskripsi 1 dan 4
	out, err := Apply(sampleCatalog(), spec)
	assert.NoError(t, err)
	assert.Equal(t, []string{"1", "4", "5"}, ids(out))
}

func TestApply_PriceBounds_Inclusive(t *testing.T) {
	spec := DefaultSpec()
	spec.PriceMin = 150000
	spec.PriceMax = 5000000
	spec.SortKey = SortFeatured

	out, err := Apply(sampleCatalog(), spec)
	assert.NoError(t, err)
	assert.Equal(t, []string{"1", "3", "4"}, ids(out))
}

func TestApply_SwappedBounds_EmptyNotError(t *testing.T) {
	spec := DefaultSpec()
	spec.PriceMin = 10000000
	spec.PriceMax = 100

	out, err := Apply(sampleCatalog(), spec)
	assert.NoError(t, err)
	assert.Empty(t, out)
}

func TestApply_SortNewest(t *testing.T) {
	spec := DefaultSpec()

	out, err := Apply(sampleCatalog(), spec)
	assert.NoError(t, err)
	assert.Equal(t, []string{"5", "4", "3", "2", "1"}, ids(out))
}

func TestApply_SortPriceAscending(t *testing.T) {
	spec := DefaultSpec()
	spec.SortKey = SortPriceAsc

	out, err := Apply(sampleCatalog(), spec)
	assert.NoError(t, err)
	assert.Equal(t, []string{"3", "4", "1", "2", "5"}, ids(out))
}

func TestApply_SortPriceDescending(t *testing.T) {
	spec := DefaultSpec()
	spec.SortKey = SortPriceDesc

	out, err := Apply(sampleCatalog(), spec)
	assert.NoError(t, err)
	assert.Equal(t, []string{"5", "2", "1", "4", "3"}, ids(out))
}

func TestApply_SortStable_EqualPricesKeepInputOrder(t *testing.T) {
	products := []model.Product{
		{ID: "a", Price: 100, Category: "Laptop", CreatedAt: day(1)},
		{ID: "b", Price: 100, Category: "Laptop", CreatedAt: day(1)},
		{ID: "c", Price: 100, Category: "Laptop", CreatedAt: day(1)},
	}
	spec := DefaultSpec()
	spec.SortKey = SortPriceAsc

	out, err := Apply(products, spec)
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, ids(out))
}

func TestApply_FeaturedKeepsInputOrder(t *testing.T) {
	spec := DefaultSpec()
	spec.SortKey = SortFeatured
	spec.SearchText = "gaming"

	// subsequence dari input, tanpa diurutkan ulang
	out, err := Apply(sampleCatalog(), spec)
	assert.NoError(t, err)
	assert.Equal(t, []string{"2", "5"}, ids(out))
}

func TestApply_InvalidSortKey(t *testing.T) {
	spec := DefaultSpec()
	spec.SortKey = "popularity"

	_, err := Apply(sampleCatalog(), spec)
	assert.ErrorIs(t, err, ErrInvalidSortKey)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	products := sampleCatalog()
	spec := DefaultSpec()
	spec.SortKey = SortPriceAsc

	_, err := Apply(products, spec)
	assert.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(products))
}

func TestApply_PredicateSoundAndComplete(t *testing.T) {
	products := sampleCatalog()
	spec := DefaultSpec()
	spec.Category = "Laptop"
	spec.PriceMin = 0
	spec.PriceMax = 6000000
	spec.SortKey = SortFeatured

	out, err := Apply(products, spec)
	assert.NoError(t, err)

	// setiap hasil memenuhi predikat
	for _, p := range out {
		assert.Equal(t, "Laptop", p.Category)
		assert.LessOrEqual(t, p.Price, int64(6000000))
	}

	// tidak ada yang memenuhi predikat tapi tercecer
	included := make(map[string]bool)
	for _, p := range out {
		included[p.ID] = true
	}
	for _, p := range products {
		if p.Category == "Laptop" && p.Price <= 6000000 {
			assert.True(t, included[p.ID], "product %s missing from result", p.ID)
		}
	}
}

func TestDistinctCategories_CountsAndOrder(t *testing.T) {
	products := []model.Product{
		{ID: "1", Category: "Laptop"},
		{ID: "2", Category: "Aksesoris"},
		{ID: "3", Category: "Laptop"},
		{ID: "4", Category: "Hardware"},
		{ID: "5", Category: "Aksesoris"},
	}

	out := DistinctCategories(products)

	// count turun; count sama urut alfabetis
	assert.Equal(t, []CategoryCount{
		{Category: "Aksesoris", Count: 2},
		{Category: "Laptop", Count: 2},
		{Category: "Hardware", Count: 1},
	}, out)
}

func TestDistinctCategories_CountsSumToCatalogSize(t *testing.T) {
	products := sampleCatalog()

	total := 0
	for _, cc := range DistinctCategories(products) {
		total += cc.Count
	}
	assert.Equal(t, len(products), total)
}

func TestDistinctCategories_Empty(t *testing.T) {
	assert.Empty(t, DistinctCategories(nil))
}
