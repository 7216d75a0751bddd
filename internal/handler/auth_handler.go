package handler

import (
	"fmt"
	"strings"
	"time"

	"laporkerja-backend/config"
	"laporkerja-backend/internal/helper"
	"laporkerja-backend/internal/middleware"
	"laporkerja-backend/internal/model"
	"laporkerja-backend/internal/repository"
	"laporkerja-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	repo  repository.PenggunaRepository
	store middleware.TokenStore
	email *service.EmailService
}

func NewAuthHandler(repo repository.PenggunaRepository, store middleware.TokenStore, email *service.EmailService) *AuthHandler {
	return &AuthHandler{repo: repo, store: store, email: email}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string          `json:"token"`
	Pengguna *model.Pengguna `json:"pengguna"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Fail(c, fiber.StatusBadRequest, "Request tidak valid")
	}

	pengguna, err := h.repo.GetByEmail(req.Email)
	if err != nil {
		return helper.Fail(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(pengguna.Password), []byte(req.Password)); err != nil {
		return helper.Fail(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	token, err := buatToken(pengguna)
	if err != nil {
		return helper.Fail(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.Success(c, "Login berhasil", loginResponse{Token: token, Pengguna: pengguna})
}

// Logout mencabut token yang sedang dipakai; request berikutnya dengan
// token yang sama ditolak middleware.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token, _ := c.Locals("token").(string)
	if token != "" {
		h.store.Revoke(token)
	}
	return helper.Success(c, "Logout berhasil", struct{}{})
}

// Profile mengembalikan data pengguna yang sedang login beserta jabatannya.
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	pengguna, err := h.repo.GetByID(penggunaID(c))
	if err != nil {
		return helper.Fail(c, fiber.StatusNotFound, "Pengguna tidak ditemukan")
	}
	return helper.Success(c, "Berhasil mengambil profil", pengguna)
}

type lupaPasswordRequest struct {
	Email string `json:"email"`
}

// LupaPassword mengganti password dengan yang acak lalu mengirimkannya ke
// email pengguna. Respons selalu sama agar email terdaftar tidak bisa
// ditebak dari luar.
func (h *AuthHandler) LupaPassword(c *fiber.Ctx) error {
	var req lupaPasswordRequest
	if err := c.BodyParser(&req); err != nil || req.Email == "" {
		return helper.Fail(c, fiber.StatusBadRequest, "Email wajib diisi")
	}

	pesanSukses := "Jika email terdaftar, password baru sudah dikirim"
	pengguna, err := h.repo.GetByEmail(req.Email)
	if err != nil {
		return helper.Success(c, pesanSukses, struct{}{})
	}

	passwordBaru := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	hashed, err := bcrypt.GenerateFromPassword([]byte(passwordBaru), bcrypt.DefaultCost)
	if err != nil {
		return helper.Fail(c, fiber.StatusInternalServerError, "Gagal mengenkripsi password")
	}
	pengguna.Password = string(hashed)
	if err := h.repo.Update(pengguna); err != nil {
		return helper.Fail(c, fiber.StatusInternalServerError, "Gagal memperbarui password")
	}

	isi := fmt.Sprintf("<p>Halo %s,</p><p>Password baru Anda: <b>%s</b></p><p>Segera ganti setelah login.</p>",
		pengguna.Nama, passwordBaru)
	if err := h.email.Kirim(pengguna.Email, "Password Baru Lapor Kerja", isi); err != nil {
		return helper.Fail(c, fiber.StatusInternalServerError, "Gagal mengirim email")
	}
	return helper.Success(c, pesanSukses, struct{}{})
}

type ubahPasswordRequest struct {
	PasswordLama string `json:"password_lama"`
	PasswordBaru string `json:"password_baru"`
}

func (h *AuthHandler) UbahPassword(c *fiber.Ctx) error {
	var req ubahPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Fail(c, fiber.StatusBadRequest, "Request tidak valid")
	}

	pengguna, err := h.repo.GetByID(penggunaID(c))
	if err != nil {
		return helper.Fail(c, fiber.StatusNotFound, "Pengguna tidak ditemukan")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(pengguna.Password), []byte(req.PasswordLama)); err != nil {
		return helper.Fail(c, fiber.StatusBadRequest, "Password lama salah")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.PasswordBaru), bcrypt.DefaultCost)
	if err != nil {
		return helper.Fail(c, fiber.StatusInternalServerError, "Gagal mengenkripsi password")
	}
	pengguna.Password = string(hashed)
	if err := h.repo.Update(pengguna); err != nil {
		return helper.Fail(c, fiber.StatusInternalServerError, "Gagal memperbarui password")
	}
	return helper.Success(c, "Password berhasil diubah", struct{}{})
}

func buatToken(pengguna *model.Pengguna) (string, error) {
	level := 0
	idJabatan := ""
	if pengguna.Jabatan != nil {
		level = int(pengguna.Jabatan.Level)
		idJabatan = pengguna.Jabatan.IDJabatan
	}
	claims := jwt.MapClaims{
		"id_pengguna": pengguna.IDPengguna,
		"id_jabatan":  idJabatan,
		"level":       level,
		"exp":         time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.GetEnv("JWT_SECRET_KEY", "rahasia")))
}
