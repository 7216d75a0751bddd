package handler

import (
	"time"

	"laporkerja-backend/internal/helper"
	"laporkerja-backend/internal/model"
	"laporkerja-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type TaskHandler struct {
	repo     repository.TaskRepository
	validate *validator.Validate
}

func NewTaskHandler(repo repository.TaskRepository) *TaskHandler {
	return &TaskHandler{repo: repo, validate: validator.New()}
}

type taskRequest struct {
	IDProjek string     `json:"id_projek" validate:"required"`
	IDTarget string     `json:"id_target" validate:"required"`
	Task     string     `json:"task" validate:"required"`
	Bobot    int        `json:"bobot" validate:"gte=0"`
	Deadline *time.Time `json:"deadline"`
}

func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var req taskRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Fail(c, fiber.StatusBadRequest, "Request tidak valid")
	}
	if err := h.validate.Struct(req); err != nil {
		return helper.Fail(c, fiber.StatusBadRequest, "Data task tidak lengkap")
	}

	task := model.Task{
		IDTask:        uuid.Must(uuid.NewV7()).String(),
		IDProjek:      req.IDProjek,
		IDTarget:      req.IDTarget,
		Task:          req.Task,
		Bobot:         req.Bobot,
		Deadline:      req.Deadline,
		StatusSelesai: model.TaskBelum,
		StatusTask:    model.StatusAktif,
	}
	if err := h.repo.Create(&task); err != nil {
		return helper.Fail(c, fiber.StatusInternalServerError, "Gagal menyimpan task")
	}
	return helper.Success(c, "Task berhasil dibuat", task)
}

// GetMilikSaya mengambil task yang ditargetkan ke pemanggil.
func (h *TaskHandler) GetMilikSaya(c *fiber.Ctx) error {
	list, err := h.repo.GetByTarget(penggunaID(c))
	if err != nil {
		return helper.Fail(c, fiber.StatusInternalServerError, "Gagal mengambil data task")
	}
	return helper.Success(c, "Berhasil mengambil data task", list)
}

func (h *TaskHandler) GetByProjek(c *fiber.Ctx) error {
	list, err := h.repo.GetByProjek(c.Params("id"))
	if err != nil {
		return helper.Fail(c, fiber.StatusInternalServerError, "Gagal mengambil data task")
	}
	return helper.Success(c, "Berhasil mengambil data task", list)
}

type ubahStatusTaskRequest struct {
	StatusSelesai int8 `json:"status_selesai" validate:"gte=0,lte=3"`
}

func (h *TaskHandler) UbahStatus(c *fiber.Ctx) error {
	var req ubahStatusTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Fail(c, fiber.StatusBadRequest, "Request tidak valid")
	}
	if err := h.validate.Struct(req); err != nil {
		return helper.Fail(c, fiber.StatusBadRequest, "Status task tidak valid")
	}
	if _, err := h.repo.GetByID(c.Params("id")); err != nil {
		return helper.Fail(c, fiber.StatusNotFound, "Task tidak ditemukan")
	}
	if err := h.repo.SetStatusSelesai(c.Params("id"), req.StatusSelesai); err != nil {
		return helper.Fail(c, fiber.StatusInternalServerError, "Gagal memperbarui status task")
	}
	return helper.Success(c, "Status task berhasil diperbarui", struct{}{})
}

func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	if err := h.repo.SoftDelete(c.Params("id")); err != nil {
		return helper.Fail(c, fiber.StatusInternalServerError, "Gagal menghapus task")
	}
	return helper.Success(c, "Task berhasil dihapus", struct{}{})
}
