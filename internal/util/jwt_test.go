package util

import (
	"testing"
	"time"
	"ujikom_backend/internal/model"
)

const testSecret = "unit-test-secret-unit-test-secret"

func TestGenerateAndParseJWT(t *testing.T) {
	user := &model.User{
		Role:     model.RoleAdmin,
		Peran:    model.PeranAdminBiasa,
		JobSites: []string{"Site A"},
	}
	user.ID = 42

	token, err := GenerateJWT(user, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ParseJWT(token, testSecret)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Role != model.RoleAdmin || claims.Peran != model.PeranAdminBiasa {
		t.Errorf("role claims = %q/%q", claims.Role, claims.Peran)
	}
	if len(claims.JobSites) != 1 || claims.JobSites[0] != "Site A" {
		t.Errorf("JobSites = %v, want [Site A]", claims.JobSites)
	}
}

func TestParseJWTRejectsBadToken(t *testing.T) {
	user := &model.User{Role: model.RolePeserta}
	user.ID = 7

	token, err := GenerateJWT(user, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	if _, err := ParseJWT(token, "some-other-secret-some-other-secret"); err == nil {
		t.Error("token signed with another secret accepted")
	}

	expired, err := GenerateJWT(user, testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	if _, err := ParseJWT(expired, testSecret); err == nil {
		t.Error("expired token accepted")
	}
}

func TestClaimsSiteAccess(t *testing.T) {
	tests := []struct {
		name   string
		claims Claims
		site   string
		want   bool
	}{
		{"master admin any site", Claims{Role: model.RoleAdmin, Peran: model.PeranMasterAdmin}, "Site B", true},
		{"regular admin assigned site", Claims{Role: model.RoleAdmin, Peran: model.PeranAdminBiasa, JobSites: []string{"Site A"}}, "Site A", true},
		{"regular admin other site", Claims{Role: model.RoleAdmin, Peran: model.PeranAdminBiasa, JobSites: []string{"Site A"}}, "Site B", false},
		{"participant", Claims{Role: model.RolePeserta}, "Site A", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.claims.CanAccessSite(tt.site); got != tt.want {
				t.Errorf("CanAccessSite(%q) = %v, want %v", tt.site, got, tt.want)
			}
		})
	}
}
