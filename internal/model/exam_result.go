package model

// ExamResult holds one participant's written-exam fields and interview
// outcome. Created empty when the participant is registered and deleted
// with them. Written fields are all-null until the exam is taken;
// SkorInterview stays null until the interview is finalized.
//
// swagger:model ExamResult
type ExamResult struct {
	BaseModel
	PesertaID uint `gorm:"uniqueIndex;not null" json:"pesertaId"`

	SkorTertulis *int `json:"skorTertulis"`
	JumlahSoal   *int `json:"jumlahSoal"`
	JawabanBenar *int `json:"jawabanBenar"`
	JawabanSalah *int `json:"jawabanSalah"`

	SkorInterview    *int   `json:"skorInterview"`
	TanggalInterview string `gorm:"size:10" json:"tanggalInterview"`
	Ringkasan        string `gorm:"type:text" json:"ringkasan"`
	Keunggulan       string `gorm:"type:text" json:"keunggulan"`
	Saran            string `gorm:"type:text" json:"saran"`

	Penguji   []InterviewExaminer `gorm:"foreignKey:ResultID" json:"penguji,omitempty"`
	Penilaian []InterviewAspect   `gorm:"foreignKey:ResultID" json:"penilaian,omitempty"`
}

func (ExamResult) TableName() string {
	return "exam_results"
}

// WrittenTaken reports whether the written exam has been submitted.
func (r *ExamResult) WrittenTaken() bool {
	return r.SkorTertulis != nil
}

// InterviewInitialized reports whether the aspect structure has been
// seeded (the Initialized variant of the interview detail).
func (r *ExamResult) InterviewInitialized() bool {
	return len(r.Penilaian) > 0
}

type InterviewExaminer struct {
	BaseModel
	ResultID uint   `gorm:"index;not null" json:"-"`
	Nama     string `gorm:"size:100;not null" json:"nama"`
	NIK      string `gorm:"size:32;not null" json:"nik"`
	Jabatan  string `gorm:"size:100;not null" json:"jabatan"`
	Urutan   int    `gorm:"default:0" json:"urutan"`
}

func (InterviewExaminer) TableName() string {
	return "interview_examiners"
}

type InterviewAspect struct {
	BaseModel
	ResultID uint            `gorm:"index;not null" json:"-"`
	Aspek    string          `gorm:"size:100;not null" json:"aspek"`
	Urutan   int             `gorm:"default:0" json:"urutan"`
	Items    []InterviewItem `gorm:"foreignKey:AspectID" json:"items"`
}

func (InterviewAspect) TableName() string {
	return "interview_aspects"
}

// InterviewItem is a single scored interview question. Nilai is nil
// while unscored; Catatan is derived from Nilai and never hand-edited.
type InterviewItem struct {
	BaseModel
	AspectID   uint     `gorm:"index;not null" json:"-"`
	Pertanyaan string   `gorm:"type:text" json:"pertanyaan"`
	Nilai      *float64 `json:"nilai"`
	Catatan    string   `gorm:"size:100" json:"catatan"`
	Urutan     int      `gorm:"default:0" json:"urutan"`
}

func (InterviewItem) TableName() string {
	return "interview_items"
}
