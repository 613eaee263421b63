package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"tokokom/internal/config"
	"tokokom/internal/domain/model"
	"tokokom/internal/handler"
	"tokokom/internal/infra/db"
	infraRepo "tokokom/internal/infra/repository"
	"tokokom/internal/repository"
	"tokokom/internal/server"
	"tokokom/internal/usecase"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func (i *jwtIssuer) Issue(userID int64, role model.Role, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub":  userID,
		"role": string(role),
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func main() {
	// .env opsional; di prod semua lewat env asli
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.Connect()
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	if err := gormDB.AutoMigrate(
		&model.Product{},
		&model.CartDocument{},
		&model.User{},
		&model.RefreshToken{},
		&model.SiteContent{},
		&model.Testimonial{},
		&model.FAQEntry{},
		&model.AnalyticsEvent{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	// Repository (implementasi GORM)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	cartStore := infraRepo.NewCartStoreGorm(gormDB)
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	rtRepo := infraRepo.NewRefreshTokenRepository(gormDB)
	contentRepo := infraRepo.NewContentGormRepository(gormDB)
	analyticsRepo := infraRepo.NewAnalyticsGormRepository(gormDB)

	idGen := &uuidGenerator{}
	clock := &realClock{}
	verifier := usecase.NewBcryptPasswordVerifier()
	issuer := &jwtIssuer{
		secret:    []byte(cfg.JWTSecret),
		accessTTL: 15 * time.Minute,
	}
	refreshTTL := 14 * 24 * time.Hour

	seedAdmin(userRepo, clock)

	// Usecase
	productUC := usecase.NewProductUsecase(productRepo, idGen)
	cartUC := usecase.NewCartUsecase(cartStore, productRepo, idGen)
	checkoutUC := usecase.NewCheckoutUsecase(cartStore, cfg.WhatsAppPhone)
	contentUC := usecase.NewContentUsecase(contentRepo)
	analyticsUC := usecase.NewAnalyticsUsecase(analyticsRepo, clock)
	authUC := usecase.NewAuthUsecase(userRepo, rtRepo, verifier, issuer, idGen, clock, refreshTTL)

	// Handler
	handlers := server.Handlers{
		Product:      handler.NewProductHandler(productUC),
		Cart:         handler.NewCartHandler(cartUC),
		Checkout:     handler.NewCheckoutHandler(checkoutUC),
		Content:      handler.NewContentHandler(contentUC),
		Event:        handler.NewEventHandler(analyticsUC),
		Auth:         handler.NewAuthHandler(authUC, refreshTTL, cfg.GoEnv != "dev"),
		AdminProduct: handler.NewAdminProductHandler(productUC),
		AdminContent: handler.NewAdminContentHandler(contentUC),
		AdminStats:   handler.NewAdminStatsHandler(analyticsUC),
	}

	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	if err := server.Start(addr, cfg, handlers); err != nil {
		log.Fatalf("server: %v", err)
	}
}

// seedAdmin membuat akun admin pertama dari env, kalau belum ada.
func seedAdmin(userRepo repository.UserRepository, clock usecase.Clock) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	ctx := context.Background()
	if _, err := userRepo.FindByEmail(ctx, email); err == nil {
		return
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		log.Printf("seed admin: %v", err)
		return
	}

	hasher := usecase.NewBcryptPasswordHasher(12)
	hash, err := hasher.Hash(password)
	if err != nil {
		log.Printf("seed admin: %v", err)
		return
	}

	err = userRepo.Create(ctx, &model.User{
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
		IsActive:     true,
		CreatedAt:    clock.Now(),
	})
	// instance lain bisa saja menanam duluan saat start bersamaan
	if err != nil && !errors.Is(err, repository.ErrEmailTaken) {
		log.Printf("seed admin: %v", err)
	}
}
