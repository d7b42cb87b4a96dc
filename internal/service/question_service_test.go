package service

import (
	"testing"
	"ujikom_backend/internal/model"
)

func TestValidateQuestion(t *testing.T) {
	valid := func() *model.Question {
		return &model.Question{
			IDP:          "ENGINE-01",
			Grade:        "M1",
			Nilai:        10,
			Pertanyaan:   "Apa fungsi oil filter?",
			Pilihan:      []string{"Menyaring oli", "Mendinginkan mesin", "Menaikkan tekanan"},
			JawabanBenar: "A",
		}
	}

	if err := validateQuestion(valid()); err != nil {
		t.Fatalf("valid question rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*model.Question)
	}{
		{"missing idp", func(q *model.Question) { q.IDP = "" }},
		{"missing grade", func(q *model.Question) { q.Grade = "" }},
		{"blank question", func(q *model.Question) { q.Pertanyaan = "   " }},
		{"zero points", func(q *model.Question) { q.Nilai = 0 }},
		{"single choice", func(q *model.Question) { q.Pilihan = q.Pilihan[:1] }},
		{"answer beyond choices", func(q *model.Question) { q.JawabanBenar = "D" }},
		{"lowercase answer", func(q *model.Question) { q.JawabanBenar = "a" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := valid()
			tt.mutate(q)
			if err := validateQuestion(q); err == nil {
				t.Error("invalid question accepted")
			}
		})
	}
}

func TestMergeQuestionClearsImage(t *testing.T) {
	q := &model.Question{
		IDP:          "ENGINE-01",
		Grade:        "M1",
		Nilai:        10,
		Pertanyaan:   "Apa fungsi oil filter?",
		Pilihan:      []string{"Menyaring oli", "Mendinginkan mesin"},
		JawabanBenar: "A",
		Gambar:       "/uploads/questions/1.png",
	}

	updated := *q
	updated.Gambar = ""
	mergeQuestion(q, &updated)
	if q.Gambar != "" {
		t.Errorf("Gambar = %q after clearing update, want empty", q.Gambar)
	}

	updated.Gambar = "/uploads/questions/2.png"
	mergeQuestion(q, &updated)
	if q.Gambar != "/uploads/questions/2.png" {
		t.Errorf("Gambar = %q, want the replacement image", q.Gambar)
	}
}

func TestImageObjectKey(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"/uploads/questions/1700000000.png", "questions/1700000000.png"},
		{"/exam-assets/questions/5.jpg", "questions/5.jpg"},
		{"https://bucket.oss-region.aliyuncs.com/questions/9.webp", "questions/9.webp"},
		{"https://example.com/external.png", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := imageObjectKey(tt.url); got != tt.want {
			t.Errorf("imageObjectKey(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestCollectChoices(t *testing.T) {
	got := collectChoices("Menyaring oli", "  ", "Mendinginkan mesin", "")
	if len(got) != 2 || got[0] != "Menyaring oli" || got[1] != "Mendinginkan mesin" {
		t.Errorf("collectChoices = %v, want the two non-blank choices", got)
	}
}
