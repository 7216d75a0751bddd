package handler

import (
	"laporkerja-backend/internal/helper"
	"laporkerja-backend/internal/model"
	"laporkerja-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProjekHandler struct {
	repo repository.ProjekRepository
}

func NewProjekHandler(repo repository.ProjekRepository) *ProjekHandler {
	return &ProjekHandler{repo: repo}
}

type projekRequest struct {
	Projek string `json:"projek"`
}

func (h *ProjekHandler) Create(c *fiber.Ctx) error {
	var req projekRequest
	if err := c.BodyParser(&req); err != nil || req.Projek == "" {
		return helper.Fail(c, fiber.StatusBadRequest, "Nama projek wajib diisi")
	}

	projek := model.Projek{
		IDProjek:     uuid.Must(uuid.NewV7()).String(),
		Projek:       req.Projek,
		IDPengguna:   penggunaID(c),
		StatusProjek: model.StatusAktif,
	}
	if err := h.repo.Create(&projek); err != nil {
		return helper.Fail(c, fiber.StatusInternalServerError, "Gagal menyimpan projek")
	}
	return helper.Success(c, "Projek berhasil dibuat", projek)
}

func (h *ProjekHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetAll(c.Query("search"))
	if err != nil {
		return helper.Fail(c, fiber.StatusInternalServerError, "Gagal mengambil data projek")
	}
	return helper.Success(c, "Berhasil mengambil data projek", list)
}

func (h *ProjekHandler) GetByID(c *fiber.Ctx) error {
	projek, err := h.repo.GetByID(c.Params("id"))
	if err != nil {
		return helper.Fail(c, fiber.StatusNotFound, "Projek tidak ditemukan")
	}
	return helper.Success(c, "Berhasil mengambil data projek", projek)
}

func (h *ProjekHandler) Update(c *fiber.Ctx) error {
	projek, err := h.repo.GetByID(c.Params("id"))
	if err != nil {
		return helper.Fail(c, fiber.StatusNotFound, "Projek tidak ditemukan")
	}

	var req projekRequest
	if err := c.BodyParser(&req); err != nil || req.Projek == "" {
		return helper.Fail(c, fiber.StatusBadRequest, "Nama projek wajib diisi")
	}
	projek.Projek = req.Projek
	if err := h.repo.Update(projek); err != nil {
		return helper.Fail(c, fiber.StatusInternalServerError, "Gagal memperbarui projek")
	}
	return helper.Success(c, "Projek berhasil diperbarui", projek)
}

func (h *ProjekHandler) Delete(c *fiber.Ctx) error {
	if err := h.repo.SoftDelete(c.Params("id")); err != nil {
		return helper.Fail(c, fiber.StatusInternalServerError, "Gagal menghapus projek")
	}
	return helper.Success(c, "Projek berhasil dihapus", struct{}{})
}
