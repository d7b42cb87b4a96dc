package util

import (
	"fmt"
	"strings"
	"time"
)

// MasaKerja renders tenure since the join date ("2006-01-02") as a
// human-readable Indonesian string, e.g. "3 tahun, 4 bulan".
func MasaKerja(tanggalBergabung string, now time.Time) string {
	if tanggalBergabung == "" {
		return "N/A"
	}
	joined, err := time.Parse("2006-01-02", tanggalBergabung)
	if err != nil || joined.After(now) {
		return "Tanggal tidak valid"
	}

	years := now.Year() - joined.Year()
	months := int(now.Month()) - int(joined.Month())
	if months < 0 {
		years--
		months += 12
	}

	if years == 0 && months == 0 {
		return "Kurang dari 1 bulan"
	}

	var parts []string
	if years > 0 {
		parts = append(parts, fmt.Sprintf("%d tahun", years))
	}
	if months > 0 {
		parts = append(parts, fmt.Sprintf("%d bulan", months))
	}
	return strings.Join(parts, ", ")
}
