package database

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lsandini/OnCall/pkg/models"
)

// Worker represents the workers table
type Worker struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"not null" json:"name"`
	Role           string    `gorm:"not null" json:"role"`
	Type           string    `gorm:"not null" json:"type"`
	CanDoubleShift bool      `gorm:"default:false" json:"can_double_shift"`
	YearOfStudy    *int      `json:"year_of_study"`
	StartDate      *string   `json:"start_date"`
	EndDate        *string   `json:"end_date"`
	Active         bool      `gorm:"default:true" json:"active"`
	CreatedAt      time.Time `json:"created_at"`
}

// AvailabilityEntry represents the availability_entries table.
// The slot tuple is unique; upserts replace the status in place.
type AvailabilityEntry struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	WorkerID    string `gorm:"uniqueIndex:idx_availability_slot;not null" json:"worker_id"`
	Year        int    `gorm:"uniqueIndex:idx_availability_slot;not null" json:"year"`
	Week        int    `gorm:"uniqueIndex:idx_availability_slot;not null" json:"week"`
	Day         int    `gorm:"uniqueIndex:idx_availability_slot;not null" json:"day"`
	ShiftTypeID string `gorm:"uniqueIndex:idx_availability_slot;not null" json:"shift_type_id"`
	Status      string `gorm:"not null" json:"status"`
}

// ShiftConfiguration represents the shift_configurations table. Shift types
// and daily requirements are stored as JSON columns.
type ShiftConfiguration struct {
	ID                string                         `gorm:"primaryKey" json:"id"`
	Name              string                         `gorm:"not null" json:"name"`
	Description       string                         `json:"description"`
	ShiftTypes        []models.ShiftTypeDefinition   `gorm:"serializer:json" json:"shift_types"`
	DailyRequirements []models.DailyShiftRequirement `gorm:"serializer:json" json:"daily_requirements"`
	IsActive          bool                           `gorm:"default:false" json:"is_active"`
	CreatedAt         time.Time                      `json:"created_at"`
	UpdatedAt         time.Time                      `json:"updated_at"`
}

// Holiday represents the holidays table
type Holiday struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Date string `gorm:"uniqueIndex:idx_holiday;not null" json:"date"`
	Name string `gorm:"uniqueIndex:idx_holiday;not null" json:"name"`
	Type string `gorm:"default:public" json:"type"`
}

// MonthlySchedule represents the monthly_schedules table. A month's
// assignments are replaced wholesale whenever the schedule is regenerated.
type MonthlySchedule struct {
	ID          uint                     `gorm:"primaryKey" json:"id"`
	Year        int                      `gorm:"uniqueIndex:idx_schedule_month;not null" json:"year"`
	Month       int                      `gorm:"uniqueIndex:idx_schedule_month;not null" json:"month"`
	Assignments []models.ShiftAssignment `gorm:"serializer:json" json:"assignments"`
	GeneratedAt time.Time                `json:"generated_at"`
}

// MasterUser represents the master_users table
type MasterUser struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"unique;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// InitDB initializes the database connection and migrates the schema
func InitDB() *gorm.DB {
	var db *gorm.DB
	var err error

	dsn := os.Getenv("DATABASE_URL")
	if dsn != "" {
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	} else {
		dbPath := os.Getenv("DATA_PATH")
		if dbPath == "" {
			dbPath = "oncall.db"
		}
		db, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	}

	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	// Auto Migration
	db.AutoMigrate(
		&Worker{},
		&AvailabilityEntry{},
		&ShiftConfiguration{},
		&Holiday{},
		&MonthlySchedule{},
		&MasterUser{},
	)

	return db
}
