package database

import (
	"fmt"
	"log"
	"ujikom_backend/internal/config"
	"ujikom_backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Question{},
		&model.ExamResult{},
		&model.InterviewExaminer{},
		&model.InterviewAspect{},
		&model.InterviewItem{},
		&model.MasterOption{},
		&model.Setting{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	if err := seedMasterData(db); err != nil {
		return nil, err
	}
	if err := seedMasterAdmin(db); err != nil {
		return nil, err
	}

	return db, nil
}

// seedMasterData inserts the initial option lists when the table is
// empty. The grade order matters: it is the promotion sequence.
func seedMasterData(db *gorm.DB) error {
	var count int64
	db.Model(&model.MasterOption{}).Count(&count)
	if count > 0 {
		return nil
	}

	defaults := map[string][]string{
		model.CategoryIDP:          {"ENGINE-01", "ELECTRICAL-01", "CHASSIS-01"},
		model.CategoryGrade:        {"M1", "M2", "M3", "Foreman"},
		model.CategorySection:      {"Engine Assembly", "Quality Control", "Body Repair", "Maintenance"},
		model.CategoryJabatan:      {"Mekanik", "Team Leader", "Supervisor"},
		model.CategoryJabatanAdmin: {"Instruktur", "Supervisor", "Master Admin"},
		model.CategoryJobSite:      {"Site A", "Site B", "Head Office"},
	}

	for _, category := range model.MasterCategories {
		for i, value := range defaults[category] {
			option := &model.MasterOption{Category: category, Value: value, Urutan: i}
			if err := db.Create(option).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// seedMasterAdmin creates the bootstrap admin account when no admin
// exists yet. The password must be changed after first login.
func seedMasterAdmin(db *gorm.DB) error {
	var count int64
	db.Model(&model.User{}).Where("role = ?", model.RoleAdmin).Count(&count)
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("12345"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &model.User{
		NIK:      "MASTER-001",
		Nama:     "Administrator Utama",
		Password: string(hashed),
		Role:     model.RoleAdmin,
		Jabatan:  "Master Admin",
		Peran:    model.PeranMasterAdmin,
		JobSites: []string{},
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}

	log.Println("Seeded master admin account MASTER-001")
	return nil
}
