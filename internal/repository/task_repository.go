package repository

import (
	"laporkerja-backend/internal/model"

	"gorm.io/gorm"
)

type TaskRepository interface {
	Create(task *model.Task) error
	GetByID(id string) (*model.Task, error)
	GetByTarget(penggunaID string) ([]model.Task, error)
	GetByProjek(projekID string) ([]model.Task, error)
	Update(task *model.Task) error
	SetStatusSelesai(id string, status int8) error
	SoftDelete(id string) error
}

type taskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db}
}

func (r *taskRepository) Create(task *model.Task) error {
	return r.db.Create(task).Error
}

func (r *taskRepository) GetByID(id string) (*model.Task, error) {
	var task model.Task
	err := r.db.Preload("Projek").Where("id_task = ? AND status_task <> 0", id).First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) GetByTarget(penggunaID string) ([]model.Task, error) {
	list := []model.Task{}
	err := r.db.Preload("Projek").
		Where("id_target = ? AND status_task <> 0", penggunaID).
		Order("deadline ASC").
		Find(&list).Error
	return list, err
}

func (r *taskRepository) GetByProjek(projekID string) ([]model.Task, error) {
	list := []model.Task{}
	err := r.db.Where("id_projek = ? AND status_task <> 0", projekID).
		Order("created_at ASC").
		Find(&list).Error
	return list, err
}

func (r *taskRepository) Update(task *model.Task) error {
	return r.db.Save(task).Error
}

func (r *taskRepository) SetStatusSelesai(id string, status int8) error {
	return r.db.Model(&model.Task{}).
		Where("id_task = ?", id).
		Update("status_selesai", status).Error
}

func (r *taskRepository) SoftDelete(id string) error {
	return r.db.Model(&model.Task{}).
		Where("id_task = ?", id).
		Update("status_task", model.StatusNonaktif).Error
}
