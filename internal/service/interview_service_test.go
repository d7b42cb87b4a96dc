package service

import (
	"errors"
	"testing"
	"ujikom_backend/internal/model"
	"ujikom_backend/internal/util"
)

func TestEnsureSiteAccess(t *testing.T) {
	tests := []struct {
		name    string
		claims  *util.Claims
		jobSite string
		denied  bool
	}{
		{"no claims", nil, "Site A", false},
		{"master admin", &util.Claims{Role: model.RoleAdmin, Peran: model.PeranMasterAdmin}, "Site B", false},
		{"scoped admin own site", &util.Claims{Role: model.RoleAdmin, Peran: model.PeranAdminBiasa, JobSites: []string{"Site A"}}, "Site A", false},
		{"scoped admin other site", &util.Claims{Role: model.RoleAdmin, Peran: model.PeranAdminBiasa, JobSites: []string{"Site A"}}, "Site B", true},
		{"participant claims", &util.Claims{Role: model.RolePeserta}, "Site A", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ensureSiteAccess(tt.claims, tt.jobSite)
			if tt.denied && !errors.Is(err, util.ErrPermissionDenied) {
				t.Errorf("ensureSiteAccess = %v, want ErrPermissionDenied", err)
			}
			if !tt.denied && err != nil {
				t.Errorf("ensureSiteAccess = %v, want nil", err)
			}
		})
	}
}
