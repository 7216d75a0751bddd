package service

import (
	"testing"

	"laporkerja-backend/internal/helper"
	"laporkerja-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateLaporanDenganKendala(t *testing.T) {
	repo := new(mockLaporanHarianRepo)
	repo.On("CreateWithDetails", mock.Anything, mock.Anything).Return(nil)

	svc := NewLaporanHarianService(repo)
	laporan, err := svc.Create("u1", BuatLaporanHarianInput{
		Judul:         "Senin",
		StatusLaporan: model.LaporanPublish,
		Detail: []DetailKontenInput{
			{Konten: model.KontenSelesai, IsiKonten: "Fix bug"},
			{Konten: model.KontenKendala, IsiKonten: "Server lambat"},
		},
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, laporan.IDLaporan)
	// Ada detail kendala -> kendala_selesai otomatis 0 (belum selesai).
	assert.NotNil(t, laporan.KendalaSelesai)
	assert.Equal(t, int8(0), *laporan.KendalaSelesai)
	assert.Len(t, laporan.DetailLaporan, 2)
}

func TestCreateLaporanTanpaKendala(t *testing.T) {
	repo := new(mockLaporanHarianRepo)
	repo.On("CreateWithDetails", mock.Anything, mock.Anything).Return(nil)

	svc := NewLaporanHarianService(repo)
	laporan, err := svc.Create("u1", BuatLaporanHarianInput{
		Judul:         "Selasa",
		StatusLaporan: model.LaporanDraft,
		Detail: []DetailKontenInput{
			{Konten: model.KontenSelesai, IsiKonten: "Deploy"},
		},
	})

	assert.NoError(t, err)
	assert.Nil(t, laporan.KendalaSelesai)
}

func TestPublishBukanMilik(t *testing.T) {
	repo := new(mockLaporanHarianRepo)
	repo.On("GetByID", "l1").Return(&model.LaporanHarian{
		IDLaporan:     "l1",
		IDPengguna:    "u1",
		StatusLaporan: model.LaporanDraft,
	}, nil)

	svc := NewLaporanHarianService(repo)
	_, err := svc.Publish("l1", "u2")

	assert.ErrorIs(t, err, helper.ErrValidation)
	repo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestPublishIdempoten(t *testing.T) {
	repo := new(mockLaporanHarianRepo)
	repo.On("GetByID", "l1").Return(&model.LaporanHarian{
		IDLaporan:     "l1",
		IDPengguna:    "u1",
		StatusLaporan: model.LaporanPublish,
	}, nil)

	svc := NewLaporanHarianService(repo)
	laporan, err := svc.Publish("l1", "u1")

	assert.NoError(t, err)
	assert.Equal(t, model.LaporanPublish, laporan.StatusLaporan)
	repo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestReviewDraftDitolak(t *testing.T) {
	repo := new(mockLaporanHarianRepo)
	repo.On("GetByID", "l1").Return(&model.LaporanHarian{
		IDLaporan:     "l1",
		StatusLaporan: model.LaporanDraft,
	}, nil)

	svc := NewLaporanHarianService(repo)
	err := svc.Review("l1")

	assert.ErrorIs(t, err, helper.ErrValidation)
	repo.AssertNotCalled(t, "SetReviewed", mock.Anything)
}

func TestTandaiKendalaSelesaiTanpaKendala(t *testing.T) {
	repo := new(mockLaporanHarianRepo)
	repo.On("GetByID", "l1").Return(&model.LaporanHarian{
		IDLaporan:     "l1",
		StatusLaporan: model.LaporanPublish,
	}, nil)

	svc := NewLaporanHarianService(repo)
	err := svc.TandaiKendalaSelesai("l1")

	assert.ErrorIs(t, err, helper.ErrValidation)
	repo.AssertNotCalled(t, "SetKendalaSelesai", mock.Anything, mock.Anything)
}

func TestTandaiKendalaSelesai(t *testing.T) {
	belum := int8(0)
	repo := new(mockLaporanHarianRepo)
	repo.On("GetByID", "l1").Return(&model.LaporanHarian{
		IDLaporan:      "l1",
		StatusLaporan:  model.LaporanPublish,
		KendalaSelesai: &belum,
	}, nil)
	repo.On("SetKendalaSelesai", "l1", int8(1)).Return(nil)

	svc := NewLaporanHarianService(repo)
	err := svc.TandaiKendalaSelesai("l1")

	assert.NoError(t, err)
	repo.AssertCalled(t, "SetKendalaSelesai", "l1", int8(1))
}
