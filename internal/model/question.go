package model

// swagger:model Question
type Question struct {
	BaseModel
	IDP          string   `gorm:"column:idp;size:50;index:idx_questions_pool" json:"idp"`
	Grade        string   `gorm:"size:50;index:idx_questions_pool" json:"grade"`
	Nilai        int      `gorm:"not null" json:"nilai"`
	Pertanyaan   string   `gorm:"type:text;not null" json:"pertanyaan"`
	Pilihan      []string `gorm:"serializer:json" json:"pilihan"`
	JawabanBenar string   `gorm:"size:1;not null" json:"jawabanBenar"`
	Gambar       string   `gorm:"size:255" json:"gambar"`
}

func (Question) TableName() string {
	return "questions"
}

// ChoiceLabel returns the label ("A".."D") for a choice index.
func ChoiceLabel(index int) string {
	return string(rune('A' + index))
}
