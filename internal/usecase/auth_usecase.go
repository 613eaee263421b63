package usecase

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"tokokom/internal/domain/model"
	repo "tokokom/internal/repository"
)

// JWT akses untuk back-office.
type AccessTokenIssuer interface {
	Issue(userID int64, role model.Role, now time.Time) (token string, expiresAt time.Time, err error)
}

// Cocokkan password input dengan hash tersimpan.
type PasswordVerifier interface {
	Verify(plain string, hashed string) bool
}

type AuthUsecase struct {
	userRepo   repo.UserRepository
	rtRepo     repo.RefreshTokenRepository
	verifier   PasswordVerifier
	issuer     AccessTokenIssuer
	idGen      IDGenerator
	clock      Clock
	refreshTTL time.Duration
}

// DI
func NewAuthUsecase(
	userRepo repo.UserRepository,
	rtRepo repo.RefreshTokenRepository,
	verifier PasswordVerifier,
	issuer AccessTokenIssuer,
	idGen IDGenerator,
	clock Clock,
	refreshTTL time.Duration,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:   userRepo,
		rtRepo:     rtRepo,
		verifier:   verifier,
		issuer:     issuer,
		idGen:      idGen,
		clock:      clock,
		refreshTTL: refreshTTL,
	}
}

type LoginInput struct {
	Email     string
	Password  string
	UserAgent string
}

type LoginOutput struct {
	User        model.User `json:"user"`
	AccessToken string     `json:"access_token"`
	ExpiresIn   int        `json:"expires_in"`
}

// Refresh token dikirim handler sebagai cookie, bukan body JSON.
type LoginSideEffect struct {
	PlainRefreshToken string
}

func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (LoginOutput, LoginSideEffect, error) {
	var out LoginOutput
	var side LoginSideEffect

	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" || in.Password == "" {
		return out, side, NewHTTPError(http.StatusBadRequest, "email and password required")
	}

	user, err := u.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repo.ErrUserNotFound) {
		// pesan sama dengan password salah, jangan bocorkan email terdaftar
		return out, side, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}
	if err != nil {
		return out, side, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if !user.IsActive {
		return out, side, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}
	if ok := u.verifier.Verify(in.Password, user.PasswordHash); !ok {
		return out, side, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	now := u.clock.Now()
	accessToken, accessExp, err := u.issuer.Issue(user.ID, user.Role, now)
	if err != nil {
		return out, side, NewHTTPError(http.StatusInternalServerError, "token error")
	}

	plainRefresh, err := u.createRefreshToken(ctx, user.ID, in.UserAgent, now)
	if err != nil {
		return out, side, NewHTTPError(http.StatusInternalServerError, "token error")
	}

	safeUser := *user
	safeUser.PasswordHash = ""

	out.User = safeUser
	out.AccessToken = accessToken
	out.ExpiresIn = int(accessExp.Sub(now).Seconds())
	side.PlainRefreshToken = plainRefresh
	return out, side, nil
}

type RefreshOutput struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// Refresh merotasi token: token lama dicabut, token baru diterbitkan.
func (u *AuthUsecase) Refresh(ctx context.Context, plainRefresh string, userAgent string) (RefreshOutput, LoginSideEffect, error) {
	var out RefreshOutput
	var side LoginSideEffect

	if plainRefresh == "" {
		return out, side, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	stored, err := u.rtRepo.FindByTokenHash(ctx, hashToken(plainRefresh))
	if errors.Is(err, repo.ErrRefreshTokenNotFound) {
		return out, side, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err != nil {
		return out, side, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	now := u.clock.Now()
	if stored.RevokedAt != nil || now.After(stored.ExpiresAt) {
		return out, side, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	user, err := u.userRepo.FindByID(ctx, stored.UserID)
	if errors.Is(err, repo.ErrUserNotFound) {
		return out, side, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err != nil {
		return out, side, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !user.IsActive {
		return out, side, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	if err := u.rtRepo.Revoke(ctx, stored.ID, now); err != nil {
		return out, side, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	accessToken, accessExp, err := u.issuer.Issue(user.ID, user.Role, now)
	if err != nil {
		return out, side, NewHTTPError(http.StatusInternalServerError, "token error")
	}

	plainNext, err := u.createRefreshToken(ctx, user.ID, userAgent, now)
	if err != nil {
		return out, side, NewHTTPError(http.StatusInternalServerError, "token error")
	}

	out.AccessToken = accessToken
	out.ExpiresIn = int(accessExp.Sub(now).Seconds())
	side.PlainRefreshToken = plainNext
	return out, side, nil
}

// Logout mencabut semua refresh token milik user.
func (u *AuthUsecase) Logout(ctx context.Context, plainRefresh string) error {
	if plainRefresh == "" {
		return nil
	}

	stored, err := u.rtRepo.FindByTokenHash(ctx, hashToken(plainRefresh))
	if errors.Is(err, repo.ErrRefreshTokenNotFound) {
		return nil
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.rtRepo.DeleteAllByUserID(ctx, stored.UserID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *AuthUsecase) createRefreshToken(ctx context.Context, userID int64, userAgent string, now time.Time) (string, error) {
	plain, err := generateSecureToken(32)
	if err != nil {
		return "", err
	}

	refresh := &model.RefreshToken{
		ID:        u.idGen.NewID(),
		UserID:    userID,
		TokenHash: hashToken(plain),
		UserAgent: userAgent,
		ExpiresAt: now.Add(u.refreshTTL),
	}
	if err := u.rtRepo.Create(ctx, refresh); err != nil {
		return "", err
	}
	return plain, nil
}

func hashToken(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}

func generateSecureToken(bytesLen int) (string, error) {
	if bytesLen <= 0 {
		return "", fmt.Errorf("bytesLen must be positive")
	}

	b := make([]byte, bytesLen)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}
