// Package catalog adalah mesin filter/sort katalog produk.
// Semua fungsi pure: input tidak pernah dimutasi, tanpa I/O.
package catalog

import (
	"errors"
	"math"
	"sort"
	"strings"

	"tokokom/internal/domain/model"
)

type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	// Urutan kurasi dari luar; hasil filter dibiarkan apa adanya.
	SortFeatured SortKey = "featured"
)

// Sentinel kategori "semua".
const CategoryAll = "all"

var ErrInvalidSortKey = errors.New("invalid sort key")

type FilterSpec struct {
	SearchText string
	Category   string
	PriceMin   int64
	PriceMax   int64
	SortKey    SortKey
}

// DefaultSpec cocok untuk halaman katalog tanpa filter: semua kategori,
// rentang harga penuh, urutan terbaru.
func DefaultSpec() FilterSpec {
	return FilterSpec{
		Category: CategoryAll,
		PriceMin: 0,
		PriceMax: math.MaxInt64,
		SortKey:  SortNewest,
	}
}

// Apply memfilter lalu mengurutkan. Filter dulu baru sort; kebalikannya
// membuat hasil min/max harga terlihat salah saat diurutkan.
// PriceMin > PriceMax bukan error: hasilnya kosong.
func Apply(products []model.Product, spec FilterSpec) ([]model.Product, error) {
	switch spec.SortKey {
	case SortNewest, SortPriceAsc, SortPriceDesc, SortFeatured:
	default:
		return nil, ErrInvalidSortKey
	}

	needle := strings.ToLower(strings.TrimSpace(spec.SearchText))

	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if !matches(p, spec, needle) {
			continue
		}
		out = append(out, p)
	}

	switch spec.SortKey {
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price < out[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price > out[j].Price
		})
	case SortFeatured:
		// pass-through
	}

	return out, nil
}

func matches(p model.Product, spec FilterSpec, needle string) bool {
	if spec.Category != CategoryAll && p.Category != spec.Category {
		return false
	}
	if needle != "" {
		title := strings.ToLower(p.Title)
		desc := strings.ToLower(p.Description)
		if !strings.Contains(title, needle) && !strings.Contains(desc, needle) {
			return false
		}
	}
	if p.Price < spec.PriceMin || p.Price > spec.PriceMax {
		return false
	}
	return true
}

// CategoryCount dipakai untuk chip filter kategori.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// DistinctCategories menghitung per kategori di atas katalog penuh (bukan
// hasil filter), supaya jumlah per kategori tetap terlihat saat user sedang
// memfilter dimensi lain. Urut: count turun, lalu alfabetis.
func DistinctCategories(products []model.Product) []CategoryCount {
	counts := make(map[string]int)
	for _, p := range products {
		counts[p.Category]++
	}

	out := make([]CategoryCount, 0, len(counts))
	for c, n := range counts {
		out = append(out, CategoryCount{Category: c, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})
	return out
}
