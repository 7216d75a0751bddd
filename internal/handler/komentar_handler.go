package handler

import (
	"laporkerja-backend/internal/helper"
	"laporkerja-backend/internal/model"
	"laporkerja-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type KomentarHandler struct {
	repo repository.KomentarRepository
}

func NewKomentarHandler(repo repository.KomentarRepository) *KomentarHandler {
	return &KomentarHandler{repo: repo}
}

type komentarRequest struct {
	IDLaporan string  `json:"id_laporan"`
	IDBalas   *string `json:"id_balas"`
	Komentar  string  `json:"komentar"`
}

func (h *KomentarHandler) Create(c *fiber.Ctx) error {
	var req komentarRequest
	if err := c.BodyParser(&req); err != nil || req.IDLaporan == "" || req.Komentar == "" {
		return helper.Fail(c, fiber.StatusBadRequest, "Komentar dan id laporan wajib diisi")
	}

	komentar := model.Komentar{
		IDKomentar:     uuid.Must(uuid.NewV7()).String(),
		IDPengguna:     penggunaID(c),
		IDLaporan:      req.IDLaporan,
		IDBalas:        req.IDBalas,
		Komentar:       req.Komentar,
		StatusKomentar: model.StatusAktif,
	}
	if err := h.repo.Create(&komentar); err != nil {
		return helper.Fail(c, fiber.StatusInternalServerError, "Gagal menyimpan komentar")
	}
	return helper.Success(c, "Komentar berhasil dibuat", komentar)
}

func (h *KomentarHandler) GetByLaporan(c *fiber.Ctx) error {
	list, err := h.repo.GetByLaporan(c.Params("id"))
	if err != nil {
		return helper.Fail(c, fiber.StatusInternalServerError, "Gagal mengambil komentar")
	}
	return helper.Success(c, "Berhasil mengambil komentar", list)
}

func (h *KomentarHandler) Delete(c *fiber.Ctx) error {
	if err := h.repo.SoftDelete(c.Params("id")); err != nil {
		return helper.Fail(c, fiber.StatusInternalServerError, "Gagal menghapus komentar")
	}
	return helper.Success(c, "Komentar berhasil dihapus", struct{}{})
}
