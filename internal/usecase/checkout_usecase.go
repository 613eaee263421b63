package usecase

import (
	"context"
	"net/http"
	"strings"

	"tokokom/internal/cart"
	"tokokom/internal/checkout"
	repo "tokokom/internal/repository"
)

// CheckoutUsecase menyusun teks pesanan dari isi keranjang dan
// mengembalikan deep link WhatsApp. Tidak ada order yang dipersistenkan;
// transaksi berlanjut di percakapan WhatsApp.
type CheckoutUsecase struct {
	cartStore repo.CartStore
	phone     string
}

// DI
func NewCheckoutUsecase(cartStore repo.CartStore, phone string) *CheckoutUsecase {
	return &CheckoutUsecase{
		cartStore: cartStore,
		phone:     phone,
	}
}

type CheckoutOutput struct {
	OrderText    string `json:"order_text"`
	WhatsAppLink string `json:"whatsapp_link"`
	TotalAmount  int64  `json:"total_amount"`
}

func (u *CheckoutUsecase) BuildWhatsAppOrder(ctx context.Context, token string) (CheckoutOutput, error) {
	if strings.TrimSpace(token) == "" {
		return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest, "cart token required")
	}

	// manager hanya menulis storage saat mutasi, jadi aman dipakai baca saja
	st := &tokenStorage{ctx: ctx, store: u.cartStore, token: token}
	m := cart.NewManager(st)

	lines := m.Lines()
	if len(lines) == 0 {
		return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest, "cart is empty")
	}

	summary := m.Summary()
	text := checkout.BuildOrderText(lines, summary)

	return CheckoutOutput{
		OrderText:    text,
		WhatsAppLink: checkout.WhatsAppLink(u.phone, text),
		TotalAmount:  summary.TotalAmount,
	}, nil
}
