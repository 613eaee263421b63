package model

import (
	"time"

	"gorm.io/gorm"
)

type StockStatus string

const (
	StockStatusInStock    StockStatus = "in_stock"
	StockStatusOutOfStock StockStatus = "out_of_stock"
)

// Kategori produk yang dipakai di katalog.
var ProductCategories = []string{
	"Laptop",
	"PC Desktop",
	"Aksesoris",
	"Hardware",
	"Servis",
}

func IsValidCategory(c string) bool {
	for _, v := range ProductCategories {
		if v == c {
			return true
		}
	}
	return false
}

type Product struct {
	ID           string         `gorm:"type:varchar(36);primaryKey" json:"id"`
	Title        string         `gorm:"type:varchar(255);not null" json:"title"`
	Description  string         `gorm:"type:text" json:"description"`
	Price        int64          `gorm:"not null" json:"price"`
	Category     string         `gorm:"type:varchar(50);not null;index" json:"category"`
	ImageURL     string         `gorm:"type:text" json:"image_url"`
	StockStatus  StockStatus    `gorm:"type:varchar(20);not null;default:in_stock" json:"stock_status"`
	Featured     bool           `gorm:"not null;default:false" json:"featured"`
	FeaturedRank int64          `gorm:"not null;default:0" json:"featured_rank"`
	CreatedAt    time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
