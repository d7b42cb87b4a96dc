package util

import (
	"testing"
	"time"
)

func TestMasaKerja(t *testing.T) {
	now := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		joined string
		want   string
	}{
		{"empty", "", "N/A"},
		{"garbage", "bukan-tanggal", "Tanggal tidak valid"},
		{"future", "2027-01-15", "Tanggal tidak valid"},
		{"same month", "2026-09-01", "Kurang dari 1 bulan"},
		{"months only", "2026-03-10", "6 bulan"},
		{"years and months", "2023-05-01", "3 tahun, 4 bulan"},
		{"exact years", "2021-09-01", "5 tahun"},
		{"month borrow", "2024-11-20", "1 tahun, 10 bulan"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MasaKerja(tt.joined, now); got != tt.want {
				t.Errorf("MasaKerja(%q) = %q, want %q", tt.joined, got, tt.want)
			}
		})
	}
}
