package service

import (
	"fmt"
	"log"

	"laporkerja-backend/config"
	"laporkerja-backend/internal/repository"

	"gopkg.in/gomail.v2"
)

// EmailService mengirim notifikasi lewat SMTP. Konfigurasi diambil dari
// env (SMTP_HOST, SMTP_PORT, SMTP_USER, SMTP_PASSWORD, SMTP_SENDER).
// Kalau SMTP_HOST kosong, pengiriman dilewati tanpa error.
type EmailService struct {
	penggunaRepo repository.PenggunaRepository
}

func NewEmailService(penggunaRepo repository.PenggunaRepository) *EmailService {
	return &EmailService{penggunaRepo: penggunaRepo}
}

func (s *EmailService) Kirim(tujuan, subjek, isi string) error {
	host := config.GetEnv("SMTP_HOST", "")
	if host == "" {
		return nil
	}
	port := config.GetEnvAsInt("SMTP_PORT", 587)
	user := config.GetEnv("SMTP_USER", "")
	password := config.GetEnv("SMTP_PASSWORD", "")
	pengirim := config.GetEnv("SMTP_SENDER", user)

	msg := gomail.NewMessage()
	msg.SetHeader("From", pengirim)
	msg.SetHeader("To", tujuan)
	msg.SetHeader("Subject", subjek)
	msg.SetBody("text/html", isi)

	dialer := gomail.NewDialer(host, port, user, password)
	return dialer.DialAndSend(msg)
}

// KirimNotifikasiLaporanMingguan memberi tahu pembuat laporan lewat email.
// Kegagalan kirim hanya dicatat, tidak menggagalkan pembuatan laporan.
func (s *EmailService) KirimNotifikasiLaporanMingguan(penggunaID, judul string) {
	pengguna, err := s.penggunaRepo.GetByID(penggunaID)
	if err != nil || pengguna.Email == "" {
		return
	}
	isi := fmt.Sprintf("<p>Halo %s,</p><p>Laporan mingguan <b>%s</b> berhasil dibuat.</p>", pengguna.Nama, judul)
	if err := s.Kirim(pengguna.Email, "Laporan Mingguan Dibuat", isi); err != nil {
		log.Printf("gagal mengirim email notifikasi: %v", err)
	}
}
