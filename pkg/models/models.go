package models

import "time"

// WorkerRole determines which positions a worker may cover
type WorkerRole string

const (
	RoleSeniorSpecialist WorkerRole = "senior_specialist"
	RoleResident         WorkerRole = "resident"
	RoleStudent          WorkerRole = "student"
)

// WorkerType distinguishes permanent staff from external/on-demand staff
type WorkerType string

const (
	TypePermanent WorkerType = "permanent"
	TypeExternal  WorkerType = "external"
)

// Position is a named role-slot within a shift
type Position string

const (
	PositionSupervisor Position = "supervisor"
	PositionFirstLine  Position = "first_line"
	PositionSecondLine Position = "second_line"
	PositionThirdLine  Position = "third_line"
)

// AvailabilityStatus is a worker's declared preference for a weekly slot
type AvailabilityStatus string

const (
	StatusAvailable   AvailabilityStatus = "available"
	StatusPreferred   AvailabilityStatus = "preferred"
	StatusUnavailable AvailabilityStatus = "unavailable"
)

// Well-known shift type ids used by the default template. The engine treats
// any other id opaquely; only the double-shift pass looks for evening+night.
const (
	ShiftTypeDay     = "day"
	ShiftTypeEvening = "evening"
	ShiftTypeNight   = "night"
)

// Worker represents a member of the clinic roster
type Worker struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Role           WorkerRole `json:"role"`
	Type           WorkerType `json:"type"`
	CanDoubleShift bool       `json:"can_double_shift"`
	YearOfStudy    *int       `json:"year_of_study,omitempty"`
	StartDate      *string    `json:"start_date,omitempty"` // YYYY-MM-DD, nil = always employed
	EndDate        *string    `json:"end_date,omitempty"`   // YYYY-MM-DD, nil = open-ended
	Active         bool       `json:"active"`
	CreatedAt      time.Time  `json:"created_at"`
}

// WeeklyAvailability is one worker's declared status for a weekly slot.
// Absence of an entry for a slot means "available".
type WeeklyAvailability struct {
	WorkerID    string             `json:"worker_id"`
	Year        int                `json:"year"`
	Week        int                `json:"week"` // ISO-8601 week number
	Day         int                `json:"day"`  // 0=Sunday ... 6=Saturday
	ShiftTypeID string             `json:"shift_type_id"`
	Status      AvailabilityStatus `json:"status"`
}

// ShiftTypeDefinition describes a named time window within a day.
// Start/end times and the midnight flag are display metadata only.
type ShiftTypeDefinition struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	StartTime       string `json:"start_time"` // "15:00"
	EndTime         string `json:"end_time"`   // "22:00"
	CrossesMidnight bool   `json:"crosses_midnight"`
}

// DailyShiftRequirement states which positions must be staffed for a
// given weekday and shift type
type DailyShiftRequirement struct {
	DayOfWeek   int        `json:"day_of_week"` // 0=Sunday ... 6=Saturday
	ShiftTypeID string     `json:"shift_type_id"`
	Positions   []Position `json:"positions"`
}

// ShiftConfiguration is a staffing template. Exactly one configuration
// is active per deployment at any time.
type ShiftConfiguration struct {
	ID                string                  `json:"id"`
	Name              string                  `json:"name"`
	Description       string                  `json:"description,omitempty"`
	ShiftTypes        []ShiftTypeDefinition   `json:"shift_types"`
	DailyRequirements []DailyShiftRequirement `json:"daily_requirements"`
	IsActive          bool                    `json:"is_active"`
	CreatedAt         time.Time               `json:"created_at"`
	UpdatedAt         time.Time               `json:"updated_at"`
}

// Holiday forces a date to be staffed with Sunday's requirement set
type Holiday struct {
	Date string `json:"date"` // YYYY-MM-DD
	Name string `json:"name"`
	Type string `json:"type"` // "public" or "custom"
}

// ShiftAssignment places one worker in one position of one shift on one date
type ShiftAssignment struct {
	ID            string   `json:"id"`
	Date          string   `json:"date"` // YYYY-MM-DD
	ShiftTypeID   string   `json:"shift_type_id"`
	Position      Position `json:"position"`
	WorkerID      string   `json:"worker_id"`
	IsDoubleShift bool     `json:"is_double_shift"`
}

// MonthlySchedule is the full assignment set for one calendar month
type MonthlySchedule struct {
	Year        int               `json:"year"`
	Month       int               `json:"month"` // 1-12
	Assignments []ShiftAssignment `json:"assignments"`
	GeneratedAt time.Time         `json:"generated_at"`
}

// EligibleRoles is the fixed role-to-position mapping. It is not configurable.
var EligibleRoles = map[Position][]WorkerRole{
	PositionSupervisor: {RoleSeniorSpecialist},
	PositionFirstLine:  {RoleResident},
	PositionSecondLine: {RoleResident, RoleStudent},
	PositionThirdLine:  {RoleResident, RoleStudent},
}

// CanFillPosition reports whether a role may cover a position
func CanFillPosition(role WorkerRole, position Position) bool {
	for _, r := range EligibleRoles[position] {
		if r == role {
			return true
		}
	}
	return false
}
