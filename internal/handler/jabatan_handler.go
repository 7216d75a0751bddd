package handler

import (
	"laporkerja-backend/internal/helper"
	"laporkerja-backend/internal/model"
	"laporkerja-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type JabatanHandler struct {
	repo     repository.JabatanRepository
	validate *validator.Validate
}

func NewJabatanHandler(repo repository.JabatanRepository) *JabatanHandler {
	return &JabatanHandler{repo: repo, validate: validator.New()}
}

type jabatanRequest struct {
	Jabatan string  `json:"jabatan" validate:"required,max=36"`
	Divisi  string  `json:"divisi" validate:"max=36"`
	Parent  *string `json:"parent"`
	Level   int8    `json:"level" validate:"gte=0"`
}

func (h *JabatanHandler) Create(c *fiber.Ctx) error {
	var req jabatanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Fail(c, fiber.StatusBadRequest, "Request tidak valid")
	}
	if err := h.validate.Struct(req); err != nil {
		return helper.Fail(c, fiber.StatusBadRequest, "Data jabatan tidak lengkap")
	}
	// Parent harus jabatan yang sudah ada; root dibuat tanpa parent.
	if req.Parent != nil {
		if _, err := h.repo.GetByID(*req.Parent); err != nil {
			return helper.Fail(c, fiber.StatusBadRequest, "Jabatan parent tidak ditemukan")
		}
	}

	jabatan := model.Jabatan{
		IDJabatan: uuid.Must(uuid.NewV7()).String(),
		Jabatan:   req.Jabatan,
		Divisi:    req.Divisi,
		Parent:    req.Parent,
		Level:     req.Level,
	}
	if err := h.repo.Create(&jabatan); err != nil {
		return helper.Fail(c, fiber.StatusInternalServerError, "Gagal menyimpan jabatan")
	}
	return helper.Success(c, "Jabatan berhasil dibuat", jabatan)
}

func (h *JabatanHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetAll(c.Query("search"), c.Query("parent"))
	if err != nil {
		return helper.Fail(c, fiber.StatusInternalServerError, "Gagal mengambil data jabatan")
	}
	return helper.Success(c, "Berhasil mengambil data jabatan", list)
}

func (h *JabatanHandler) GetByID(c *fiber.Ctx) error {
	jabatan, err := h.repo.GetByID(c.Params("id"))
	if err != nil {
		return helper.Fail(c, fiber.StatusNotFound, "Jabatan tidak ditemukan")
	}
	return helper.Success(c, "Berhasil mengambil data jabatan", jabatan)
}

func (h *JabatanHandler) Update(c *fiber.Ctx) error {
	jabatan, err := h.repo.GetByID(c.Params("id"))
	if err != nil {
		return helper.Fail(c, fiber.StatusNotFound, "Jabatan tidak ditemukan")
	}

	var req jabatanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Fail(c, fiber.StatusBadRequest, "Request tidak valid")
	}
	if err := h.validate.Struct(req); err != nil {
		return helper.Fail(c, fiber.StatusBadRequest, "Data jabatan tidak lengkap")
	}
	// Jabatan tidak boleh jadi parent dirinya sendiri.
	if req.Parent != nil && *req.Parent == jabatan.IDJabatan {
		return helper.Fail(c, fiber.StatusBadRequest, "Jabatan tidak boleh menjadi parent dirinya sendiri")
	}

	jabatan.Jabatan = req.Jabatan
	jabatan.Divisi = req.Divisi
	jabatan.Parent = req.Parent
	jabatan.Level = req.Level
	if err := h.repo.Update(jabatan); err != nil {
		return helper.Fail(c, fiber.StatusInternalServerError, "Gagal memperbarui jabatan")
	}
	return helper.Success(c, "Jabatan berhasil diperbarui", jabatan)
}
