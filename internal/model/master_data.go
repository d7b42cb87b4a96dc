package model

// Master-data categories. The grade list is ordered: its sequence
// defines the promotion path.
const (
	CategoryIDP          = "idp"
	CategoryGrade        = "grade"
	CategorySection      = "section"
	CategoryJabatan      = "jabatan"
	CategoryJabatanAdmin = "jabatanAdmin"
	CategoryJobSite      = "jobSite"
)

// MasterCategories lists every option-list category, in display order.
var MasterCategories = []string{
	CategoryIDP,
	CategoryGrade,
	CategorySection,
	CategoryJabatan,
	CategoryJabatanAdmin,
	CategoryJobSite,
}

// swagger:model MasterOption
type MasterOption struct {
	BaseModel
	Category string `gorm:"size:32;index;not null" json:"category"`
	Value    string `gorm:"size:100;not null" json:"value"`
	Urutan   int    `gorm:"default:0" json:"urutan"`
}

func (MasterOption) TableName() string {
	return "master_options"
}

const SettingLogo = "logo"

// Setting is a single named value (currently only the organization logo URL).
type Setting struct {
	BaseModel
	Key   string `gorm:"size:50;uniqueIndex;not null" json:"key"`
	Value string `gorm:"size:255" json:"value"`
}

func (Setting) TableName() string {
	return "settings"
}

// DefaultAspects is the canonical interview aspect set, seeded into a
// result's interview detail on first open.
var DefaultAspects = []string{
	"Aspek Safety",
	"Aspek Teknik",
	"Aspek Maintenance Management",
	"Aspek HPU WAY",
}
