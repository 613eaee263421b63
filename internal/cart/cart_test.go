package cart

import (
	"errors"
	"testing"

	"tokokom/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func laptop() model.Product {
	return model.Product{ID: "p1", Title: "Laptop A", Price: 5000000, ImageURL: "https://cdn.example/p1.jpg"}
}

func mouse() model.Product {
	return model.Product{ID: "p2", Title: "Mouse Wireless", Price: 150000}
}

func TestAddItem_CreatesLineWithSnapshot(t *testing.T) {
	m := NewManager(NewMemoryStorage())

	err := m.AddItem(laptop(), 2)
	assert.NoError(t, err)

	lines := m.Lines()
	assert.Len(t, lines, 1)
	assert.Equal(t, "p1", lines[0].ProductID)
	assert.Equal(t, "Laptop A", lines[0].Title)
	assert.Equal(t, int64(5000000), lines[0].Price)
	assert.Equal(t, int64(2), lines[0].Quantity)
}

func TestAddItem_SameProductMergesQuantity(t *testing.T) {
	m := NewManager(NewMemoryStorage())

	assert.NoError(t, m.AddItem(laptop(), 1))
	assert.NoError(t, m.AddItem(laptop(), 1))

	lines := m.Lines()
	assert.Len(t, lines, 1)
	assert.Equal(t, int64(2), lines[0].Quantity)
}

func TestAddItem_InvalidQuantity(t *testing.T) {
	m := NewManager(NewMemoryStorage())

	assert.ErrorIs(t, m.AddItem(laptop(), 0), ErrInvalidQuantity)
	assert.ErrorIs(t, m.AddItem(laptop(), -3), ErrInvalidQuantity)
	assert.Empty(t, m.Lines())
}

func TestUpdateQuantity_SetsNewValue(t *testing.T) {
	m := NewManager(NewMemoryStorage())
	assert.NoError(t, m.AddItem(laptop(), 1))

	assert.NoError(t, m.UpdateQuantity("p1", 5))
	assert.Equal(t, int64(5), m.Lines()[0].Quantity)
}

func TestUpdateQuantity_ZeroRemovesLine(t *testing.T) {
	m := NewManager(NewMemoryStorage())
	assert.NoError(t, m.AddItem(laptop(), 3))

	assert.NoError(t, m.UpdateQuantity("p1", 0))
	assert.Empty(t, m.Lines())
}

func TestUpdateQuantity_MissingLine(t *testing.T) {
	m := NewManager(NewMemoryStorage())

	assert.ErrorIs(t, m.UpdateQuantity("ghost", 2), ErrProductNotInCart)
}

func TestRemoveItem_RoundTripRestoresPriorState(t *testing.T) {
	m := NewManager(NewMemoryStorage())
	assert.NoError(t, m.AddItem(mouse(), 1))
	before := m.Lines()

	assert.NoError(t, m.AddItem(laptop(), 1))
	assert.NoError(t, m.RemoveItem("p1"))

	assert.Equal(t, before, m.Lines())
}

func TestRemoveItem_AbsentIsNoop(t *testing.T) {
	m := NewManager(NewMemoryStorage())

	assert.NoError(t, m.RemoveItem("ghost"))
}

func TestClear(t *testing.T) {
	m := NewManager(NewMemoryStorage())
	assert.NoError(t, m.AddItem(laptop(), 1))
	assert.NoError(t, m.AddItem(mouse(), 2))

	assert.NoError(t, m.Clear())
	assert.Empty(t, m.Lines())
	assert.Equal(t, Summary{}, m.Summary())
}

func TestSummary(t *testing.T) {
	m := NewManager(NewMemoryStorage())
	assert.NoError(t, m.AddItem(model.Product{ID: "x", Price: 1000000}, 2))

	assert.Equal(t, Summary{LineCount: 1, TotalQuantity: 2, TotalAmount: 2000000}, m.Summary())

	assert.NoError(t, m.AddItem(mouse(), 3))
	assert.Equal(t, Summary{LineCount: 2, TotalQuantity: 5, TotalAmount: 2450000}, m.Summary())
}

func TestRehydrate_FromStorage(t *testing.T) {
	st := NewMemoryStorage()

	first := NewManager(st)
	assert.NoError(t, first.AddItem(laptop(), 2))
	assert.NoError(t, first.AddItem(mouse(), 1))

	second := NewManager(st)
	assert.Equal(t, first.Lines(), second.Lines())
	assert.Equal(t, first.Summary(), second.Summary())
}

type failingStorage struct{}

func (failingStorage) Load() ([]Line, error) { return nil, errors.New("boom") }
func (failingStorage) Save([]Line) error     { return nil }

func TestRehydrate_StorageErrorMeansEmptyCart(t *testing.T) {
	m := NewManager(failingStorage{})

	assert.Empty(t, m.Lines())
	assert.NoError(t, m.AddItem(laptop(), 1))
}

func TestRehydrate_SkipsCorruptLines(t *testing.T) {
	st := NewMemoryStorage()
	st.lines = []Line{
		{ProductID: "", Quantity: 2},         // tanpa product id
		{ProductID: "ok", Quantity: 0},       // quantity tidak valid
		{ProductID: "p1", Quantity: 1},       // valid
		{ProductID: "p1", Quantity: 9},       // duplikat, diabaikan
	}

	m := NewManager(st)
	lines := m.Lines()
	assert.Len(t, lines, 1)
	assert.Equal(t, "p1", lines[0].ProductID)
	assert.Equal(t, int64(1), lines[0].Quantity)
}

func TestMutationsPersistToStorage(t *testing.T) {
	st := NewMemoryStorage()
	m := NewManager(st)

	assert.NoError(t, m.AddItem(laptop(), 1))
	stored, err := st.Load()
	assert.NoError(t, err)
	assert.Len(t, stored, 1)

	assert.NoError(t, m.RemoveItem("p1"))
	stored, err = st.Load()
	assert.NoError(t, err)
	assert.Empty(t, stored)
}
