// Package cart adalah state manager keranjang belanja: map productID→Line
// di memori, dipersistenkan lewat Storage yang di-inject.
package cart

import (
	"errors"

	"tokokom/internal/domain/model"
)

var (
	ErrInvalidQuantity  = errors.New("invalid quantity")
	ErrProductNotInCart = errors.New("product not in cart")
)

// Line menyimpan snapshot field display saat produk ditambahkan, supaya
// keranjang tetap bisa dirender walau produknya berubah atau hilang dari
// katalog.
type Line struct {
	ProductID string `json:"product_id"`
	Title     string `json:"title"`
	Price     int64  `json:"price"`
	ImageURL  string `json:"image_url"`
	Quantity  int64  `json:"quantity"`
}

// Summary dihitung ulang setiap dipanggil, tidak pernah di-cache.
type Summary struct {
	LineCount     int   `json:"line_count"`
	TotalQuantity int64 `json:"total_quantity"`
	TotalAmount   int64 `json:"total_amount"`
}

// Storage adalah kontrak persistensi keranjang. Load boleh mengembalikan
// nil tanpa error kalau belum ada state tersimpan.
type Storage interface {
	Load() ([]Line, error)
	Save(lines []Line) error
}

type Manager struct {
	storage Storage
	lines   map[string]*Line
	order   []string // urutan insert, untuk output yang deterministik
}

// NewManager merehidrasi dari storage. State yang rusak atau hilang
// diperlakukan sebagai keranjang kosong, bukan error.
func NewManager(storage Storage) *Manager {
	m := &Manager{
		storage: storage,
		lines:   make(map[string]*Line),
	}

	stored, err := storage.Load()
	if err != nil || stored == nil {
		return m
	}
	for _, l := range stored {
		if l.ProductID == "" || l.Quantity < 1 {
			continue
		}
		if _, ok := m.lines[l.ProductID]; ok {
			continue
		}
		cp := l
		m.lines[l.ProductID] = &cp
		m.order = append(m.order, l.ProductID)
	}
	return m
}

// AddItem menambahkan produk; produk yang sudah ada di keranjang
// di-merge dengan menambah quantity, bukan membuat baris baru.
func (m *Manager) AddItem(p model.Product, quantity int64) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	if line, ok := m.lines[p.ID]; ok {
		line.Quantity += quantity
	} else {
		m.lines[p.ID] = &Line{
			ProductID: p.ID,
			Title:     p.Title,
			Price:     p.Price,
			ImageURL:  p.ImageURL,
			Quantity:  quantity,
		}
		m.order = append(m.order, p.ID)
	}

	return m.persist()
}

// UpdateQuantity mengeset quantity baris. newQuantity <= 0 menghapus baris
// (decrement sampai nol = hapus item).
func (m *Manager) UpdateQuantity(productID string, newQuantity int64) error {
	if _, ok := m.lines[productID]; !ok {
		return ErrProductNotInCart
	}

	if newQuantity <= 0 {
		m.drop(productID)
	} else {
		m.lines[productID].Quantity = newQuantity
	}

	return m.persist()
}

// RemoveItem idempoten: menghapus baris yang tidak ada bukan error,
// karena tombol di UI bisa balapan dengan state.
func (m *Manager) RemoveItem(productID string) error {
	if _, ok := m.lines[productID]; !ok {
		return nil
	}
	m.drop(productID)
	return m.persist()
}

func (m *Manager) Clear() error {
	m.lines = make(map[string]*Line)
	m.order = nil
	return m.persist()
}

// Lines mengembalikan salinan baris dalam urutan insert.
func (m *Manager) Lines() []Line {
	out := make([]Line, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, *m.lines[id])
	}
	return out
}

func (m *Manager) Summary() Summary {
	var s Summary
	for _, id := range m.order {
		l := m.lines[id]
		s.LineCount++
		s.TotalQuantity += l.Quantity
		s.TotalAmount += l.Price * l.Quantity
	}
	return s
}

func (m *Manager) drop(productID string) {
	delete(m.lines, productID)
	for i, id := range m.order {
		if id == productID {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

func (m *Manager) persist() error {
	return m.storage.Save(m.Lines())
}
