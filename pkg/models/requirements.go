package models

import "time"

// DefaultShiftTypes is the stock internal-medicine shift structure.
//
// Weekdays run an evening shift (15:00-22:00) and a night shift
// (22:00-08:00); weekends collapse day and evening into a single
// 09:00-22:00 day shift ahead of the night shift.
var DefaultShiftTypes = []ShiftTypeDefinition{
	{ID: ShiftTypeDay, Name: "Day", StartTime: "09:00", EndTime: "22:00", CrossesMidnight: false},
	{ID: ShiftTypeEvening, Name: "Evening", StartTime: "15:00", EndTime: "22:00", CrossesMidnight: false},
	{ID: ShiftTypeNight, Name: "Night", StartTime: "22:00", EndTime: "08:00", CrossesMidnight: true},
}

// DefaultRequirements is the stock weekly staffing template. The third line
// is only staffed on Monday and Friday evenings; the supervisor's evening
// assignment covers the whole on-call period through the following morning.
var DefaultRequirements = []DailyShiftRequirement{
	// Monday
	{DayOfWeek: 1, ShiftTypeID: ShiftTypeEvening, Positions: []Position{PositionSupervisor, PositionFirstLine, PositionSecondLine, PositionThirdLine}},
	{DayOfWeek: 1, ShiftTypeID: ShiftTypeNight, Positions: []Position{PositionFirstLine}},
	// Tuesday
	{DayOfWeek: 2, ShiftTypeID: ShiftTypeEvening, Positions: []Position{PositionSupervisor, PositionFirstLine, PositionSecondLine}},
	{DayOfWeek: 2, ShiftTypeID: ShiftTypeNight, Positions: []Position{PositionFirstLine}},
	// Wednesday
	{DayOfWeek: 3, ShiftTypeID: ShiftTypeEvening, Positions: []Position{PositionSupervisor, PositionFirstLine, PositionSecondLine}},
	{DayOfWeek: 3, ShiftTypeID: ShiftTypeNight, Positions: []Position{PositionFirstLine}},
	// Thursday
	{DayOfWeek: 4, ShiftTypeID: ShiftTypeEvening, Positions: []Position{PositionSupervisor, PositionFirstLine, PositionSecondLine}},
	{DayOfWeek: 4, ShiftTypeID: ShiftTypeNight, Positions: []Position{PositionFirstLine}},
	// Friday
	{DayOfWeek: 5, ShiftTypeID: ShiftTypeEvening, Positions: []Position{PositionSupervisor, PositionFirstLine, PositionSecondLine, PositionThirdLine}},
	{DayOfWeek: 5, ShiftTypeID: ShiftTypeNight, Positions: []Position{PositionFirstLine}},
	// Saturday
	{DayOfWeek: 6, ShiftTypeID: ShiftTypeDay, Positions: []Position{PositionSupervisor, PositionFirstLine, PositionSecondLine}},
	{DayOfWeek: 6, ShiftTypeID: ShiftTypeNight, Positions: []Position{PositionFirstLine}},
	// Sunday
	{DayOfWeek: 0, ShiftTypeID: ShiftTypeDay, Positions: []Position{PositionSupervisor, PositionFirstLine, PositionSecondLine}},
	{DayOfWeek: 0, ShiftTypeID: ShiftTypeNight, Positions: []Position{PositionFirstLine}},
}

// DefaultConfiguration returns the stock template as an active configuration
func DefaultConfiguration(id string) ShiftConfiguration {
	now := time.Now()
	return ShiftConfiguration{
		ID:                id,
		Name:              "Internal Medicine",
		Description:       "Default weekly on-call structure",
		ShiftTypes:        DefaultShiftTypes,
		DailyRequirements: DefaultRequirements,
		IsActive:          true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}
