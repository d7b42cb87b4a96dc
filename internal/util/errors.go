package util

import "errors"

var (
	ErrUserNotFound        = errors.New("pengguna tidak ditemukan")
	ErrPesertaNotFound     = errors.New("peserta tidak ditemukan")
	ErrNIKTerdaftar        = errors.New("NIK sudah terdaftar")
	ErrNIKAtauSandiSalah   = errors.New("NIK atau kata sandi salah")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrSoalNotFound        = errors.New("soal tidak ditemukan")
	ErrSoalTidakTersedia   = errors.New("belum ada soal untuk kombinasi IDP dan grade peserta")
	ErrUjianSudahSelesai   = errors.New("ujian tertulis sudah pernah diselesaikan")
	ErrHasilNotFound       = errors.New("hasil ujian tidak ditemukan")
	ErrNilaiDiLuarRentang  = errors.New("nilai harus di antara 0 dan 100")
	ErrMasterDataNotFound  = errors.New("data master tidak ditemukan")
	ErrKategoriTidakValid  = errors.New("kategori data master tidak valid")
	ErrMasterDataDipakai   = errors.New("nilai master data masih dipakai peserta")
	ErrMasterAdminTerakhir = errors.New("master admin terakhir tidak dapat dihapus")
)
