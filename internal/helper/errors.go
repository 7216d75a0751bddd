package helper

import "errors"

// Taksonomi error inti. Repository membungkus error storage sebagai
// ErrQuery; service menaikkan ErrNotFound saat precondition gagal
// (jabatan tidak resolvable, bawahan kosong). Pesan yang dibungkus
// aman ditampilkan ke pemanggil.
var (
	ErrNotFound   = errors.New("data tidak ditemukan")
	ErrQuery      = errors.New("query gagal")
	ErrValidation = errors.New("input tidak valid")
)
