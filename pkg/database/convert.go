package database

import "github.com/lsandini/OnCall/pkg/models"

// ToModel converts a worker row to the domain type consumed by the engine
func (w Worker) ToModel() models.Worker {
	return models.Worker{
		ID:             w.ID,
		Name:           w.Name,
		Role:           models.WorkerRole(w.Role),
		Type:           models.WorkerType(w.Type),
		CanDoubleShift: w.CanDoubleShift,
		YearOfStudy:    w.YearOfStudy,
		StartDate:      w.StartDate,
		EndDate:        w.EndDate,
		Active:         w.Active,
		CreatedAt:      w.CreatedAt,
	}
}

// WorkersToModels converts worker rows in bulk
func WorkersToModels(rows []Worker) []models.Worker {
	out := make([]models.Worker, len(rows))
	for i, w := range rows {
		out[i] = w.ToModel()
	}
	return out
}

// ToModel converts an availability row to the domain type
func (a AvailabilityEntry) ToModel() models.WeeklyAvailability {
	return models.WeeklyAvailability{
		WorkerID:    a.WorkerID,
		Year:        a.Year,
		Week:        a.Week,
		Day:         a.Day,
		ShiftTypeID: a.ShiftTypeID,
		Status:      models.AvailabilityStatus(a.Status),
	}
}

// AvailabilityToModels converts availability rows in bulk
func AvailabilityToModels(rows []AvailabilityEntry) []models.WeeklyAvailability {
	out := make([]models.WeeklyAvailability, len(rows))
	for i, a := range rows {
		out[i] = a.ToModel()
	}
	return out
}

// ToModel converts a configuration row to the domain type
func (c ShiftConfiguration) ToModel() models.ShiftConfiguration {
	return models.ShiftConfiguration{
		ID:                c.ID,
		Name:              c.Name,
		Description:       c.Description,
		ShiftTypes:        c.ShiftTypes,
		DailyRequirements: c.DailyRequirements,
		IsActive:          c.IsActive,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

// ToModel converts a holiday row to the domain type
func (h Holiday) ToModel() models.Holiday {
	return models.Holiday{Date: h.Date, Name: h.Name, Type: h.Type}
}

// HolidaysToModels converts holiday rows in bulk
func HolidaysToModels(rows []Holiday) []models.Holiday {
	out := make([]models.Holiday, len(rows))
	for i, h := range rows {
		out[i] = h.ToModel()
	}
	return out
}

// ToModel converts a schedule row to the domain type
func (s MonthlySchedule) ToModel() models.MonthlySchedule {
	return models.MonthlySchedule{
		Year:        s.Year,
		Month:       s.Month,
		Assignments: s.Assignments,
		GeneratedAt: s.GeneratedAt,
	}
}

// SchedulesToModels converts schedule rows in bulk
func SchedulesToModels(rows []MonthlySchedule) []models.MonthlySchedule {
	out := make([]models.MonthlySchedule, len(rows))
	for i, s := range rows {
		out[i] = s.ToModel()
	}
	return out
}
