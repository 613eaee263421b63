package checkout

import (
	"testing"

	"tokokom/internal/cart"

	"github.com/stretchr/testify/assert"
)

func TestFormatIDR(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "Rp 0"},
		{500, "Rp 500"},
		{1000, "Rp 1.000"},
		{150000, "Rp 150.000"},
		{15000000, "Rp 15.000.000"},
		{1234567890, "Rp 1.234.567.890"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatIDR(tc.amount))
	}
}

func TestBuildOrderText(t *testing.T) {
	lines := []cart.Line{
		{ProductID: "1", Title: "Laptop A", Price: 5000000, Quantity: 2},
		{ProductID: "2", Title: "Mouse Wireless", Price: 150000, Quantity: 1},
	}
	summary := cart.Summary{LineCount: 2, TotalQuantity: 3, TotalAmount: 10150000}

	text := BuildOrderText(lines, summary)

	assert.Contains(t, text, "1. Laptop A (2x) - Rp 10.000.000")
	assert.Contains(t, text, "2. Mouse Wireless (1x) - Rp 150.000")
	assert.Contains(t, text, "Total: Rp 10.150.000")
}

func TestWhatsAppLink_NormalizesPhoneAndEscapesText(t *testing.T) {
	link := WhatsAppLink("+62 812-3456-7890", "Halo, saya ingin memesan")

	assert.Equal(t, "https://wa.me/6281234567890?text=Halo%2C+saya+ingin+memesan", link)
}
