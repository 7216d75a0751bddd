package handler

import (
	"time"

	"laporkerja-backend/internal/helper"
	"laporkerja-backend/internal/repository"
	"laporkerja-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type LaporanMingguanHandler struct {
	svc *service.LaporanMingguanService
}

func NewLaporanMingguanHandler(svc *service.LaporanMingguanService) *LaporanMingguanHandler {
	return &LaporanMingguanHandler{svc: svc}
}

// Generate membuat laporan mingguan dari query startDate dan endDate
// (format YYYY-MM-DD).
func (h *LaporanMingguanHandler) Generate(c *fiber.Ctx) error {
	awal, err := time.Parse("2006-01-02", c.Query("startDate"))
	if err != nil {
		return helper.Fail(c, fiber.StatusBadRequest, "startDate tidak valid, gunakan format YYYY-MM-DD")
	}
	akhir, err := time.Parse("2006-01-02", c.Query("endDate"))
	if err != nil {
		return helper.Fail(c, fiber.StatusBadRequest, "endDate tidak valid, gunakan format YYYY-MM-DD")
	}
	if akhir.Before(awal) {
		return helper.Fail(c, fiber.StatusBadRequest, "endDate harus setelah startDate")
	}

	hasil, err := h.svc.Generate(penggunaID(c), jabatanID(c), awal, akhir)
	if err != nil {
		return helper.Error(c, err)
	}
	return helper.Success(c, "Laporan mingguan berhasil dibuat", hasil)
}

func (h *LaporanMingguanHandler) GetAll(c *fiber.Ctx) error {
	filter := repository.ListLaporanMingguanFilter{
		Search:       c.Query("search"),
		NamaPengguna: c.Query("nama"),
	}
	if awal, err := time.Parse("2006-01-02", c.Query("startDate")); err == nil {
		if akhir, err := time.Parse("2006-01-02", c.Query("endDate")); err == nil {
			filter.PeriodeAwal = &awal
			filter.PeriodeAkhir = &akhir
		}
	}

	hasil, err := h.svc.GetAll(
		penggunaID(c), levelPengguna(c),
		c.QueryInt("pageNumber", 1), c.QueryInt("pageSize", 7),
		filter,
	)
	if err != nil {
		return helper.Error(c, err)
	}
	return helper.Success(c, "Berhasil mengambil laporan mingguan", hasil)
}

func (h *LaporanMingguanHandler) Detail(c *fiber.Ctx) error {
	hasil, err := h.svc.DetailByID(c.Params("id"))
	if err != nil {
		return helper.Error(c, err)
	}
	return helper.Success(c, "Berhasil mengambil detail laporan mingguan", hasil)
}

func (h *LaporanMingguanHandler) Ringkasan(c *fiber.Ctx) error {
	hasil, err := h.svc.Ringkasan(c.Params("id"))
	if err != nil {
		return helper.Error(c, err)
	}
	return helper.Success(c, "Berhasil mengambil ringkasan laporan mingguan", hasil)
}
