package model

type UserRole string

const (
	RolePeserta UserRole = "peserta"
	RoleAdmin   UserRole = "admin"
)

// Peran levels for admin accounts. A Master Admin sees every job site;
// a regular admin only the sites listed in JobSites (empty = all, but
// only Master Admin accounts are created that way).
const (
	PeranMasterAdmin = "Master Admin"
	PeranAdminBiasa  = "Admin Biasa"
)

// swagger:model User
type User struct {
	BaseModel
	NIK      string   `gorm:"size:32;uniqueIndex;not null" json:"nik"`
	Nama     string   `gorm:"size:100;not null" json:"nama"`
	Password string   `gorm:"size:100;not null" json:"-"`
	Role     UserRole `gorm:"type:enum('peserta','admin');default:'peserta'" json:"role"`
	Jabatan  string   `gorm:"size:100" json:"jabatan"`

	// Participant fields.
	Grade            string `gorm:"size:50;index" json:"grade,omitempty"`
	JobSite          string `gorm:"size:100;index" json:"jobSite,omitempty"`
	Section          string `gorm:"size:100;index" json:"section,omitempty"`
	IDP              string `gorm:"column:idp;size:50;index" json:"idp,omitempty"`
	TahunUjikom      int    `json:"tahunUjikom,omitempty"`
	TempatLahir      string `gorm:"size:100" json:"tempatLahir,omitempty"`
	TanggalLahir     string `gorm:"size:10" json:"tanggalLahir,omitempty"`
	TanggalBergabung string `gorm:"size:10" json:"tanggalBergabung,omitempty"`

	// Admin fields.
	Peran    string   `gorm:"size:50" json:"peran,omitempty"`
	JobSites []string `gorm:"serializer:json" json:"jobSites,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// IsMasterAdmin reports whether the user has unrestricted job-site access.
func (u *User) IsMasterAdmin() bool {
	return u.Role == RoleAdmin && u.Peran == PeranMasterAdmin
}

// CanAccessSite reports whether an admin may see data for the given job site.
func (u *User) CanAccessSite(site string) bool {
	if u.IsMasterAdmin() || len(u.JobSites) == 0 {
		return true
	}
	for _, s := range u.JobSites {
		if s == site {
			return true
		}
	}
	return false
}
