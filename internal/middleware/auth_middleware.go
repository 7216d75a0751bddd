package middleware

import (
	"strings"
	"sync"

	"laporkerja-backend/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// TokenStore mencatat token yang sudah dicabut (logout). Token yang ada di
// store ditolak meski tanda tangannya masih valid.
type TokenStore interface {
	Revoke(token string)
	IsRevoked(token string) bool
}

type memoryTokenStore struct {
	mu      sync.RWMutex
	revoked map[string]bool
}

func NewMemoryTokenStore() TokenStore {
	return &memoryTokenStore{revoked: map[string]bool{}}
}

func (s *memoryTokenStore) Revoke(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[token] = true
}

func (s *memoryTokenStore) IsRevoked(token string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revoked[token]
}

// Auth memvalidasi token Bearer lalu menyimpan claims ke context agar bisa
// dipakai handler: id_pengguna, id_jabatan, level.
func Auth(store TokenStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token tidak ditemukan"})
		}

		tokenString := strings.Replace(authHeader, "Bearer ", "", 1)
		if store != nil && store.IsRevoked(tokenString) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token sudah tidak berlaku"})
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.ErrUnauthorized
			}
			return []byte(config.GetEnv("JWT_SECRET_KEY", "rahasia")), nil
		})
		if err != nil || !token.Valid {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token tidak valid atau kadaluwarsa"})
		}

		claims := token.Claims.(jwt.MapClaims)
		c.Locals("token", tokenString)
		c.Locals("id_pengguna", claims["id_pengguna"])
		c.Locals("id_jabatan", claims["id_jabatan"])
		c.Locals("level", claims["level"])

		return c.Next()
	}
}
