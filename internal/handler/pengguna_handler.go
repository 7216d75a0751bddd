package handler

import (
	"laporkerja-backend/internal/helper"
	"laporkerja-backend/internal/model"
	"laporkerja-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type PenggunaHandler struct {
	repo     repository.PenggunaRepository
	validate *validator.Validate
}

func NewPenggunaHandler(repo repository.PenggunaRepository) *PenggunaHandler {
	return &PenggunaHandler{repo: repo, validate: validator.New()}
}

type penggunaRequest struct {
	Nama      string  `json:"nama" validate:"required,max=255"`
	IDJabatan *string `json:"id_jabatan"`
	Email     string  `json:"email" validate:"required,email,max=60"`
	Telepon   string  `json:"telepon" validate:"max=12"`
	Password  string  `json:"password" validate:"omitempty,min=8"`
}

func (h *PenggunaHandler) Create(c *fiber.Ctx) error {
	var req penggunaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Fail(c, fiber.StatusBadRequest, "Request tidak valid")
	}
	if err := h.validate.Struct(req); err != nil {
		return helper.Fail(c, fiber.StatusBadRequest, "Data pengguna tidak lengkap")
	}
	if req.Password == "" {
		return helper.Fail(c, fiber.StatusBadRequest, "Password wajib diisi")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.Fail(c, fiber.StatusInternalServerError, "Gagal mengenkripsi password")
	}

	pengguna := model.Pengguna{
		IDPengguna:     uuid.Must(uuid.NewV7()).String(),
		Nama:           req.Nama,
		IDJabatan:      req.IDJabatan,
		Email:          req.Email,
		Telepon:        req.Telepon,
		Password:       string(hashed),
		StatusPengguna: model.StatusAktif,
	}
	if err := h.repo.Create(&pengguna); err != nil {
		return helper.Fail(c, fiber.StatusInternalServerError, "Gagal menyimpan pengguna")
	}
	return helper.Success(c, "Pengguna berhasil dibuat", pengguna)
}

func (h *PenggunaHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetAll(c.Query("search"))
	if err != nil {
		return helper.Fail(c, fiber.StatusInternalServerError, "Gagal mengambil data pengguna")
	}
	return helper.Success(c, "Berhasil mengambil data pengguna", list)
}

func (h *PenggunaHandler) GetByID(c *fiber.Ctx) error {
	pengguna, err := h.repo.GetByID(c.Params("id"))
	if err != nil {
		return helper.Fail(c, fiber.StatusNotFound, "Pengguna tidak ditemukan")
	}
	return helper.Success(c, "Berhasil mengambil data pengguna", pengguna)
}

func (h *PenggunaHandler) Update(c *fiber.Ctx) error {
	pengguna, err := h.repo.GetByID(c.Params("id"))
	if err != nil {
		return helper.Fail(c, fiber.StatusNotFound, "Pengguna tidak ditemukan")
	}

	var req penggunaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Fail(c, fiber.StatusBadRequest, "Request tidak valid")
	}
	if err := h.validate.Struct(req); err != nil {
		return helper.Fail(c, fiber.StatusBadRequest, "Data pengguna tidak lengkap")
	}

	pengguna.Nama = req.Nama
	pengguna.IDJabatan = req.IDJabatan
	pengguna.Email = req.Email
	pengguna.Telepon = req.Telepon
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return helper.Fail(c, fiber.StatusInternalServerError, "Gagal mengenkripsi password")
		}
		pengguna.Password = string(hashed)
	}
	if err := h.repo.Update(pengguna); err != nil {
		return helper.Fail(c, fiber.StatusInternalServerError, "Gagal memperbarui pengguna")
	}
	return helper.Success(c, "Pengguna berhasil diperbarui", pengguna)
}

func (h *PenggunaHandler) Delete(c *fiber.Ctx) error {
	if err := h.repo.SoftDelete(c.Params("id")); err != nil {
		return helper.Fail(c, fiber.StatusInternalServerError, "Gagal menghapus pengguna")
	}
	return helper.Success(c, "Pengguna berhasil dihapus", struct{}{})
}
