package model

import "time"

// Satu dokumen JSON per cart token. Isi payload adalah []cart.Line;
// payload rusak dianggap cart kosong, bukan error.
type CartDocument struct {
	Token     string    `gorm:"type:varchar(36);primaryKey" json:"token"`
	Payload   string    `gorm:"type:text;not null" json:"payload"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
