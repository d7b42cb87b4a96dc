package service

import (
	"testing"
	"ujikom_backend/internal/model"
	"ujikom_backend/internal/util"
)

func TestSiteReportCacheKey(t *testing.T) {
	s := &ReportService{}

	a := &util.Claims{Role: model.RoleAdmin, Peran: model.PeranAdminBiasa, JobSites: []string{"Site A", "Site B"}}
	b := &util.Claims{Role: model.RoleAdmin, Peran: model.PeranAdminBiasa, JobSites: []string{"Site B", "Site A"}}
	if ka, kb := s.cacheKey("Semua", a), s.cacheKey("Semua", b); ka != kb {
		t.Errorf("same site set in different claim order got distinct keys %q and %q", ka, kb)
	}

	master := &util.Claims{Role: model.RoleAdmin, Peran: model.PeranMasterAdmin}
	if got := s.cacheKey("Semua", master); got != "report:site:Semua:all" {
		t.Errorf("master admin key = %q, want report:site:Semua:all", got)
	}

	if s.cacheKey("Semua", a) == s.cacheKey("Semua", master) {
		t.Error("scoped admin shares a cache entry with the master admin view")
	}
	if s.cacheKey("Site A", a) == s.cacheKey("Semua", a) {
		t.Error("site filter not reflected in the cache key")
	}
}
