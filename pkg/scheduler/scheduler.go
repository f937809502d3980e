package scheduler

import (
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/lsandini/OnCall/pkg/models"
)

// TieBreak selects how ranking ties between equally scored workers are broken
type TieBreak int

const (
	// TieBreakRandom picks uniformly among tied candidates using the
	// scheduler's rand source. Seed it for reproducible runs.
	TieBreakRandom TieBreak = iota
	// TieBreakLexical picks the tied candidate with the lowest worker id
	TieBreakLexical
)

// Scoring constants. A slot is only filled when the winning score clears
// scoreFloor, so a lone unavailable candidate still leaves a vacancy.
const (
	scorePreferred   = 100
	scoreAvailable   = 50
	scoreUnavailable = -1000
	scoreLoadPenalty = 10
	scorePermanent   = 5
	scoreFloor       = -500
)

type availabilityKey struct {
	workerID    string
	year        int
	week        int
	day         int
	shiftTypeID string
}

// Scheduler computes monthly on-call schedules for one clinic roster.
// It is a pure in-memory computation: all inputs are supplied up front
// and never mutated, so concurrent calls on separate instances are safe.
type Scheduler struct {
	active   []models.Worker
	roster   map[string]models.Worker
	avail    map[availabilityKey]models.AvailabilityStatus
	config   *models.ShiftConfiguration
	holidays map[string]bool

	tieBreak TieBreak
	rng      *rand.Rand
	newID    func() string
}

// Option configures a Scheduler
type Option func(*Scheduler)

// WithTieBreak sets the tie-break policy
func WithTieBreak(policy TieBreak) Option {
	return func(s *Scheduler) { s.tieBreak = policy }
}

// WithSeed seeds the random tie-break source for reproducible runs
func WithSeed(seed int64) Option {
	return func(s *Scheduler) { s.rng = rand.New(rand.NewSource(seed)) }
}

// WithIDGenerator overrides assignment id generation
func WithIDGenerator(gen func() string) Option {
	return func(s *Scheduler) { s.newID = gen }
}

// New creates a scheduler over a roster, its weekly availability, the
// active configuration and the holiday list. A nil configuration yields
// zero requirements and therefore empty (still valid) schedules.
func New(workers []models.Worker, availability []models.WeeklyAvailability, config *models.ShiftConfiguration, holidays []models.Holiday, opts ...Option) *Scheduler {
	s := &Scheduler{
		roster:   make(map[string]models.Worker, len(workers)),
		avail:    make(map[availabilityKey]models.AvailabilityStatus, len(availability)),
		config:   config,
		holidays: HolidaySet(holidays),
		tieBreak: TieBreakRandom,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		newID:    uuid.NewString,
	}

	for _, w := range workers {
		s.roster[w.ID] = w
		if w.Active {
			s.active = append(s.active, w)
		}
	}
	for _, a := range availability {
		key := availabilityKey{a.WorkerID, a.Year, a.Week, a.Day, a.ShiftTypeID}
		s.avail[key] = a.Status
	}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ResolveAvailability returns the worker's declared status for a date and
// shift type. Missing entries default to available.
func (s *Scheduler) ResolveAvailability(workerID string, date time.Time, shiftTypeID string) models.AvailabilityStatus {
	key := availabilityKey{
		workerID:    workerID,
		year:        date.Year(),
		week:        WeekNumber(date),
		day:         int(date.Weekday()),
		shiftTypeID: shiftTypeID,
	}
	if status, ok := s.avail[key]; ok {
		return status
	}
	return models.StatusAvailable
}

// Generate builds a month's schedule from scratch. existing supplies prior
// months' schedules; only the immediately preceding month is consulted, for
// the consecutive-weekend check.
func (s *Scheduler) Generate(year, month int, existing []models.MonthlySchedule) models.MonthlySchedule {
	r := &run{
		counts:   make(map[string]int, len(s.active)),
		previous: previousMonthAssignments(year, month, existing),
	}
	for _, w := range s.active {
		r.counts[w.ID] = 0
	}

	s.fillSlots(year, month, r)
	markDoubleShifts(r.assignments)

	return models.MonthlySchedule{
		Year:        year,
		Month:       month,
		Assignments: r.assignments,
		GeneratedAt: time.Now(),
	}
}

// FillGaps repairs an existing month's schedule: assignments whose worker is
// gone, deactivated or now unavailable are dropped, every still-valid
// assignment is kept untouched, and only the resulting vacancies are
// re-filled. Running it twice without input changes is a no-op.
func (s *Scheduler) FillGaps(year, month int, existing []models.ShiftAssignment, previousMonth []models.ShiftAssignment) models.MonthlySchedule {
	r := &run{
		assignments: s.pruneStale(existing),
		counts:      make(map[string]int, len(s.active)),
		previous:    previousMonth,
	}
	for _, w := range s.active {
		r.counts[w.ID] = 0
	}
	// Seed fairness counters from the kept assignments so new picks
	// account for load already present in the schedule.
	for _, a := range r.assignments {
		r.counts[a.WorkerID]++
	}

	s.fillSlots(year, month, r)
	markDoubleShifts(r.assignments)

	return models.MonthlySchedule{
		Year:        year,
		Month:       month,
		Assignments: r.assignments,
		GeneratedAt: time.Now(),
	}
}

// pruneStale keeps only assignments whose worker is still active and not
// declared unavailable for that exact date and shift type
func (s *Scheduler) pruneStale(existing []models.ShiftAssignment) []models.ShiftAssignment {
	kept := make([]models.ShiftAssignment, 0, len(existing))
	for _, a := range existing {
		w, ok := s.roster[a.WorkerID]
		if !ok || !w.Active {
			continue
		}
		date, err := time.Parse("2006-01-02", a.Date)
		if err != nil {
			continue
		}
		if s.ResolveAvailability(a.WorkerID, date, a.ShiftTypeID) == models.StatusUnavailable {
			continue
		}
		kept = append(kept, a)
	}
	return kept
}

// fillSlots walks every date, requirement and position the configuration
// demands, in that order, and fills each vacant slot with the best eligible
// worker. The traversal order determines which slots compete for scarce
// workers first, so it is part of the observable contract.
func (s *Scheduler) fillSlots(year, month int, r *run) {
	if s.config == nil {
		return
	}

	for _, date := range DatesInMonth(year, month) {
		dateStr := FormatDate(date)
		effectiveDay := EffectiveDayOfWeek(date, s.holidays)

		for _, req := range s.config.DailyRequirements {
			if req.DayOfWeek != effectiveDay {
				continue
			}
			for _, position := range req.Positions {
				if r.slotFilled(dateStr, req.ShiftTypeID, position) {
					continue
				}

				var eligible []models.Worker
				for _, w := range s.active {
					if s.isEligible(w, date, dateStr, req.ShiftTypeID, position, r) {
						eligible = append(eligible, w)
					}
				}
				if len(eligible) == 0 {
					continue // vacancy, not an error
				}

				winner, ok := s.selectWorker(eligible, date, req.ShiftTypeID, r)
				if !ok {
					continue
				}

				r.assignments = append(r.assignments, models.ShiftAssignment{
					ID:          s.newID(),
					Date:        dateStr,
					ShiftTypeID: req.ShiftTypeID,
					Position:    position,
					WorkerID:    winner.ID,
				})
				r.counts[winner.ID]++
			}
		}
	}
}

// isEligible applies the hard placement rules; preference is scoring's job
func (s *Scheduler) isEligible(w models.Worker, date time.Time, dateStr, shiftTypeID string, position models.Position, r *run) bool {
	if !s.employedOn(w, dateStr) {
		return false
	}
	if !models.CanFillPosition(w.Role, position) {
		return false
	}
	if r.assignedToShift(w.ID, dateStr, shiftTypeID) {
		return false
	}

	// A second shift on the same day is only allowed for supervisors
	// (their on-call period spans shift windows) and for workers cleared
	// to double-shift.
	if position != models.PositionSupervisor {
		if r.assignedOnDate(w.ID, dateStr) && !w.CanDoubleShift {
			return false
		}
	}

	// No back-to-back on-call weekends unless this slot is explicitly
	// preferred by the worker.
	if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
		prevSat, prevSun := previousWeekend(date)
		if r.workedOn(w.ID, FormatDate(prevSat)) || r.workedOn(w.ID, FormatDate(prevSun)) {
			if s.ResolveAvailability(w.ID, date, shiftTypeID) != models.StatusPreferred {
				return false
			}
		}
	}

	return true
}

func (s *Scheduler) employedOn(w models.Worker, dateStr string) bool {
	if w.StartDate != nil && dateStr < *w.StartDate {
		return false
	}
	if w.EndDate != nil && dateStr > *w.EndDate {
		return false
	}
	return true
}

// selectWorker ranks eligible workers by availability preference, month-to-
// date load and staff type, then applies the tie-break policy. Returns false
// when even the best candidate is effectively unavailable.
func (s *Scheduler) selectWorker(eligible []models.Worker, date time.Time, shiftTypeID string, r *run) (models.Worker, bool) {
	bestScore := math.MinInt
	var tied []models.Worker

	for _, w := range eligible {
		score := 0
		switch s.ResolveAvailability(w.ID, date, shiftTypeID) {
		case models.StatusPreferred:
			score += scorePreferred
		case models.StatusAvailable:
			score += scoreAvailable
		case models.StatusUnavailable:
			score += scoreUnavailable
		}
		score -= scoreLoadPenalty * r.counts[w.ID]
		if w.Type == models.TypePermanent {
			score += scorePermanent
		}

		if score > bestScore {
			bestScore = score
			tied = append(tied[:0], w)
		} else if score == bestScore {
			tied = append(tied, w)
		}
	}

	if len(tied) == 0 || bestScore <= scoreFloor {
		return models.Worker{}, false
	}

	if s.tieBreak == TieBreakLexical {
		winner := tied[0]
		for _, w := range tied[1:] {
			if w.ID < winner.ID {
				winner = w
			}
		}
		return winner, true
	}
	return tied[s.rng.Intn(len(tied))], true
}

// previousWeekend returns the Saturday and Sunday of the weekend before the
// one containing date. date must be a Saturday or Sunday.
func previousWeekend(date time.Time) (sat, sun time.Time) {
	if date.Weekday() == time.Saturday {
		return date.AddDate(0, 0, -7), date.AddDate(0, 0, -6)
	}
	return date.AddDate(0, 0, -8), date.AddDate(0, 0, -7)
}

func previousMonthAssignments(year, month int, existing []models.MonthlySchedule) []models.ShiftAssignment {
	prevYear, prevMonth := year, month-1
	if prevMonth < 1 {
		prevYear, prevMonth = year-1, 12
	}
	for _, sched := range existing {
		if sched.Year == prevYear && sched.Month == prevMonth {
			return sched.Assignments
		}
	}
	return nil
}

// markDoubleShifts flags every worker-day group that contains both an
// evening and a night assignment. Eligibility restricts that combination
// to workers cleared for double shifts, so the flag is bookkeeping for the
// schedule's consumers. Stale flags from a previous run are cleared first.
func markDoubleShifts(assignments []models.ShiftAssignment) {
	type workerDay struct {
		workerID string
		date     string
	}

	groups := make(map[workerDay][]int)
	for i := range assignments {
		assignments[i].IsDoubleShift = false
		key := workerDay{assignments[i].WorkerID, assignments[i].Date}
		groups[key] = append(groups[key], i)
	}

	for _, idx := range groups {
		if len(idx) < 2 {
			continue
		}
		hasEvening, hasNight := false, false
		for _, i := range idx {
			switch assignments[i].ShiftTypeID {
			case models.ShiftTypeEvening:
				hasEvening = true
			case models.ShiftTypeNight:
				hasNight = true
			}
		}
		if hasEvening && hasNight {
			for _, i := range idx {
				assignments[i].IsDoubleShift = true
			}
		}
	}
}

// run is the single-call accumulator for one generation or gap-fill pass
type run struct {
	assignments []models.ShiftAssignment
	counts      map[string]int
	previous    []models.ShiftAssignment
}

func (r *run) slotFilled(date, shiftTypeID string, position models.Position) bool {
	for _, a := range r.assignments {
		if a.Date == date && a.ShiftTypeID == shiftTypeID && a.Position == position {
			return true
		}
	}
	return false
}

func (r *run) assignedToShift(workerID, date, shiftTypeID string) bool {
	for _, a := range r.assignments {
		if a.WorkerID == workerID && a.Date == date && a.ShiftTypeID == shiftTypeID {
			return true
		}
	}
	return false
}

func (r *run) assignedOnDate(workerID, date string) bool {
	for _, a := range r.assignments {
		if a.WorkerID == workerID && a.Date == date {
			return true
		}
	}
	return false
}

// workedOn also consults the previous month's assignments, so weekend
// checks keep working across the month boundary
func (r *run) workedOn(workerID, date string) bool {
	if r.assignedOnDate(workerID, date) {
		return true
	}
	for _, a := range r.previous {
		if a.WorkerID == workerID && a.Date == date {
			return true
		}
	}
	return false
}
