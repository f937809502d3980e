package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/lsandini/OnCall/pkg/auth"
	"github.com/lsandini/OnCall/pkg/database"
	"github.com/lsandini/OnCall/pkg/models"
)

// Seeds the database with a demo roster and the default staffing template.
// Safe to run repeatedly: it only inserts into empty tables.
func main() {
	// Load .env from project root
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")

	db := database.InitDB()

	if err := auth.EnsureAdminExists(db); err != nil {
		fmt.Println("Error creating admin user:", err)
		os.Exit(1)
	}

	seeded := 0
	var workerCount int64
	db.Model(&database.Worker{}).Count(&workerCount)
	if workerCount == 0 {
		workers := demoRoster()
		if err := db.Create(&workers).Error; err != nil {
			fmt.Println("Error seeding workers:", err)
			os.Exit(1)
		}
		seeded = len(workers)
	}

	var configCount int64
	db.Model(&database.ShiftConfiguration{}).Count(&configCount)
	if configCount == 0 {
		config := models.DefaultConfiguration(uuid.NewString())
		row := database.ShiftConfiguration{
			ID:                config.ID,
			Name:              config.Name,
			Description:       config.Description,
			ShiftTypes:        config.ShiftTypes,
			DailyRequirements: config.DailyRequirements,
			IsActive:          true,
		}
		if err := db.Create(&row).Error; err != nil {
			fmt.Println("Error seeding configuration:", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Seed complete: %d workers inserted, %d configurations present\n",
		seeded, configTotal(db))
}

func configTotal(db *gorm.DB) int64 {
	var n int64
	db.Model(&database.ShiftConfiguration{}).Count(&n)
	return n
}

func demoRoster() []database.Worker {
	var workers []database.Worker

	add := func(name string, role models.WorkerRole, typ models.WorkerType, canDouble bool, year *int) {
		workers = append(workers, database.Worker{
			ID:             uuid.NewString(),
			Name:           name,
			Role:           string(role),
			Type:           string(typ),
			CanDoubleShift: canDouble,
			YearOfStudy:    year,
			Active:         true,
		})
	}
	yr := func(y int) *int { return &y }

	seniors := []string{
		"Dr. Elena Marchetti", "Dr. Marco Rossi", "Dr. Lucia Bianchi",
		"Dr. Andrea Conti", "Dr. Francesca Romano", "Dr. Giovanni Ricci",
		"Dr. Chiara Moretti", "Dr. Stefano Colombo", "Dr. Maria Ferraro",
		"Dr. Alessandro Bruno", "Dr. Valentina Costa", "Dr. Roberto Greco",
		"Dr. Silvia Mancini", "Dr. Paolo Lombardi", "Dr. Giulia Fontana",
	}
	for _, name := range seniors {
		add(name, models.RoleSeniorSpecialist, models.TypePermanent, false, nil)
	}

	residents := []string{
		"Dr. Matteo Pellegrini", "Dr. Sara Martinelli", "Dr. Davide Gallo",
		"Dr. Anna Santoro", "Dr. Luca Fabbri", "Dr. Emma Caruso",
		"Dr. Federico Vitale", "Dr. Laura Rinaldi", "Dr. Simone Gatti",
		"Dr. Alice Barbieri",
	}
	for _, name := range residents {
		add(name, models.RoleResident, models.TypePermanent, false, nil)
	}

	students := []struct {
		name string
		year int
	}{
		{"Marco Esposito", 6}, {"Giulia Rizzo", 6}, {"Andrea Marino", 5},
		{"Chiara De Luca", 5}, {"Francesco Ferrara", 5}, {"Martina Giordano", 4},
		{"Tommaso Russo", 4}, {"Sofia Leone", 4}, {"Lorenzo Serra", 6},
		{"Beatrice Mazza", 5},
	}
	for _, s := range students {
		add(s.name, models.RoleStudent, models.TypePermanent, false, yr(s.year))
	}

	// Externals may cover evening + night as a double shift
	add("Dr. Pietro Valentini", models.RoleResident, models.TypeExternal, true, nil)
	add("Elisa Morandi", models.RoleStudent, models.TypeExternal, true, yr(6))
	add("Nicola Parisi", models.RoleStudent, models.TypeExternal, true, yr(5))
	add("Alessia Conti", models.RoleStudent, models.TypeExternal, true, yr(5))

	return workers
}
