package handler

import (
	"laporkerja-backend/internal/helper"
	"laporkerja-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	svc *service.DashboardService
}

func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// ---- Dashboard karyawan ----

func (h *DashboardHandler) TotalReview(c *fiber.Ctx) error {
	data, err := h.svc.TotalLaporanDanReview(penggunaID(c))
	if err != nil {
		return helper.Error(c, err)
	}
	return helper.Success(c, "Berhasil mengambil total review", data)
}

func (h *DashboardHandler) StatusLaporan(c *fiber.Ctx) error {
	data, err := h.svc.StatusLaporanPengguna(penggunaID(c))
	if err != nil {
		return helper.Error(c, err)
	}
	return helper.Success(c, "Berhasil mengambil status laporan", data)
}

func (h *DashboardHandler) ListKendala(c *fiber.Ctx) error {
	data, err := h.svc.ListKendala(penggunaID(c))
	if err != nil {
		return helper.Error(c, err)
	}
	return helper.Success(c, "Berhasil mengambil daftar kendala", data)
}

func (h *DashboardHandler) InformasiKendala(c *fiber.Ctx) error {
	data, err := h.svc.InformasiKendalaPengguna(penggunaID(c))
	if err != nil {
		return helper.Error(c, err)
	}
	return helper.Success(c, "Berhasil mengambil informasi kendala", data)
}

func (h *DashboardHandler) PresentaseTask(c *fiber.Ctx) error {
	data, err := h.svc.PresentaseTask(penggunaID(c))
	if err != nil {
		return helper.Error(c, err)
	}
	return helper.Success(c, "Berhasil mengambil persentase task", data)
}

func (h *DashboardHandler) TaskStatus(c *fiber.Ctx) error {
	data, err := h.svc.TotalTaskStatus(penggunaID(c))
	if err != nil {
		return helper.Error(c, err)
	}
	return helper.Success(c, "Berhasil mengambil status task", data)
}

// ---- Dashboard atasan ----

// TotalLaporanBawahan menghitung laporan seluruh bawahan pemanggil. Query
// id_jabatan_parent membatasi ke satu cabang (dipakai drill-down).
func (h *DashboardHandler) TotalLaporanBawahan(c *fiber.Ctx) error {
	data, err := h.svc.TotalLaporanBawahan(jabatanID(c), c.Query("id_jabatan_parent"))
	if err != nil {
		return helper.Error(c, err)
	}
	return helper.Success(c, "Berhasil mengambil total laporan bawahan", data)
}

func (h *DashboardHandler) DaftarBawahan(c *fiber.Ctx) error {
	data, err := h.svc.DaftarBawahan(jabatanID(c), c.Query("id_jabatan_parent"))
	if err != nil {
		return helper.Error(c, err)
	}
	return helper.Success(c, "Berhasil mengambil daftar bawahan", data)
}

func (h *DashboardHandler) InformasiProjek(c *fiber.Ctx) error {
	data, err := h.svc.InformasiProjek(penggunaID(c))
	if err != nil {
		return helper.Error(c, err)
	}
	return helper.Success(c, "Berhasil mengambil informasi projek", data)
}

// ---- Dashboard direktur ----

func (h *DashboardHandler) DaftarAtasan(c *fiber.Ctx) error {
	data, err := h.svc.DaftarAtasan(jabatanID(c))
	if err != nil {
		return helper.Error(c, err)
	}
	return helper.Success(c, "Berhasil mengambil daftar atasan", data)
}

// DashboardAtasanByID menampilkan dashboard atasan lain (drill-down
// direktur ke satu cabang).
func (h *DashboardHandler) DashboardAtasanByID(c *fiber.Ctx) error {
	data, err := h.svc.DashboardAtasanByID(c.Params("id"))
	if err != nil {
		return helper.Error(c, err)
	}
	return helper.Success(c, "Berhasil mengambil dashboard atasan", data)
}

// DashboardBawahanByID menampilkan dashboard karyawan lain (drill-down
// atasan ke satu bawahan).
func (h *DashboardHandler) DashboardBawahanByID(c *fiber.Ctx) error {
	data, err := h.svc.DashboardBawahanByID(c.Params("id"))
	if err != nil {
		return helper.Error(c, err)
	}
	return helper.Success(c, "Berhasil mengambil dashboard bawahan", data)
}
