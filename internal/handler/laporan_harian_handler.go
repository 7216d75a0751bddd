package handler

import (
	"laporkerja-backend/internal/helper"
	"laporkerja-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type LaporanHarianHandler struct {
	svc      *service.LaporanHarianService
	validate *validator.Validate
}

func NewLaporanHarianHandler(svc *service.LaporanHarianService) *LaporanHarianHandler {
	return &LaporanHarianHandler{svc: svc, validate: validator.New()}
}

func (h *LaporanHarianHandler) Create(c *fiber.Ctx) error {
	var input service.BuatLaporanHarianInput
	if err := c.BodyParser(&input); err != nil {
		return helper.Fail(c, fiber.StatusBadRequest, "Request tidak valid")
	}
	if err := h.validate.Struct(input); err != nil {
		return helper.Fail(c, fiber.StatusBadRequest, "Data laporan tidak lengkap")
	}

	laporan, err := h.svc.Create(penggunaID(c), input)
	if err != nil {
		return helper.Error(c, err)
	}
	return helper.Success(c, "Laporan harian berhasil dibuat", laporan)
}

func (h *LaporanHarianHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.svc.GetByPengguna(penggunaID(c))
	if err != nil {
		return helper.Error(c, err)
	}
	return helper.Success(c, "Berhasil mengambil laporan harian", list)
}

func (h *LaporanHarianHandler) GetByID(c *fiber.Ctx) error {
	laporan, err := h.svc.GetByID(c.Params("id"))
	if err != nil {
		return helper.Error(c, err)
	}
	return helper.Success(c, "Berhasil mengambil laporan harian", laporan)
}

func (h *LaporanHarianHandler) Publish(c *fiber.Ctx) error {
	laporan, err := h.svc.Publish(c.Params("id"), penggunaID(c))
	if err != nil {
		return helper.Error(c, err)
	}
	return helper.Success(c, "Laporan berhasil dipublikasikan", laporan)
}

func (h *LaporanHarianHandler) Review(c *fiber.Ctx) error {
	if err := h.svc.Review(c.Params("id")); err != nil {
		return helper.Error(c, err)
	}
	return helper.Success(c, "Laporan berhasil direview", struct{}{})
}

func (h *LaporanHarianHandler) KendalaSelesai(c *fiber.Ctx) error {
	if err := h.svc.TandaiKendalaSelesai(c.Params("id")); err != nil {
		return helper.Error(c, err)
	}
	return helper.Success(c, "Kendala ditandai selesai", struct{}{})
}

func (h *LaporanHarianHandler) Delete(c *fiber.Ctx) error {
	if err := h.svc.Delete(c.Params("id"), penggunaID(c)); err != nil {
		return helper.Error(c, err)
	}
	return helper.Success(c, "Laporan berhasil dihapus", struct{}{})
}
