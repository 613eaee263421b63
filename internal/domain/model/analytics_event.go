package model

import "time"

type EventType string

const (
	EventPageView      EventType = "page_view"
	EventAddToCart     EventType = "add_to_cart"
	EventCheckoutClick EventType = "checkout_click"
)

func IsValidEventType(t EventType) bool {
	switch t {
	case EventPageView, EventAddToCart, EventCheckoutClick:
		return true
	}
	return false
}

// Event dari beacon frontend. Tidak menyimpan data pribadi.
type AnalyticsEvent struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Type      EventType `gorm:"type:varchar(30);not null;index" json:"type"`
	Path      string    `gorm:"type:varchar(255)" json:"path"`
	Locale    Locale    `gorm:"type:varchar(5)" json:"locale"`
	CreatedAt time.Time `gorm:"not null;index;autoCreateTime" json:"created_at"`
}
