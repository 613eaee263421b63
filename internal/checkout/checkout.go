// Package checkout memformat isi keranjang menjadi teks pesanan untuk
// di-handoff ke WhatsApp. Tidak ada pemrosesan pembayaran.
package checkout

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"tokokom/internal/cart"
)

// FormatIDR memformat harga integer jadi rupiah dengan pemisah ribuan titik,
// tanpa desimal: 15000000 -> "Rp 15.000.000".
func FormatIDR(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)

	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	if neg {
		return "Rp -" + b.String()
	}
	return "Rp " + b.String()
}

// BuildOrderText menyusun teks pesanan: satu baris per item plus total.
func BuildOrderText(lines []cart.Line, summary cart.Summary) string {
	var b strings.Builder
	b.WriteString("Halo, saya ingin memesan:\n")
	for i, l := range lines {
		lineTotal := l.Price * l.Quantity
		fmt.Fprintf(&b, "%d. %s (%dx) - %s\n", i+1, l.Title, l.Quantity, FormatIDR(lineTotal))
	}
	fmt.Fprintf(&b, "\nTotal: %s", FormatIDR(summary.TotalAmount))
	return b.String()
}

// WhatsAppLink membangun deep link wa.me. Nomor dinormalisasi ke digit saja
// (wa.me menolak "+", spasi, dan tanda hubung).
func WhatsAppLink(phone string, text string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return "https://wa.me/" + digits.String() + "?text=" + url.QueryEscape(text)
}
