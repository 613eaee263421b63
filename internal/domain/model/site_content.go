package model

import "time"

type Locale string

const (
	LocaleID Locale = "id"
	LocaleEN Locale = "en"
)

func IsValidLocale(l Locale) bool {
	return l == LocaleID || l == LocaleEN
}

// Blok teks halaman (hero, tentang kami, layanan, kontak) per bahasa.
type SiteContent struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Section   string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_section_locale" json:"section"`
	Locale    Locale    `gorm:"type:varchar(5);not null;uniqueIndex:idx_section_locale" json:"locale"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Body      string    `gorm:"type:text" json:"body"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

type Testimonial struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Rating    int       `gorm:"not null" json:"rating"`
	Published bool      `gorm:"not null;default:false" json:"published"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

type FAQEntry struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Locale   Locale `gorm:"type:varchar(5);not null;index" json:"locale"`
	Question string `gorm:"type:text;not null" json:"question"`
	Answer   string `gorm:"type:text;not null" json:"answer"`
	Position int64  `gorm:"not null;default:0" json:"position"`
}
