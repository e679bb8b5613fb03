package recurrence

import (
	"errors"
	"time"
)

// Urgency classifies how soon a recurring payment is due.
type Urgency string

const (
	UrgencyOverdue Urgency = "overdue"
	UrgencyToday   Urgency = "today"
	UrgencyUrgent  Urgency = "urgent"
	UrgencySoon    Urgency = "soon"
	UrgencyNormal  Urgency = "normal"
)

// Occurrence is the resolved next payment for a recurring schedule.
type Occurrence struct {
	NextDate  time.Time `json:"nextDate"`
	DaysLeft  int       `json:"daysLeft"`
	IsOverdue bool      `json:"isOverdue"`
	Urgency   Urgency   `json:"urgency"`
}

var (
	errInvalidFrequency = errors.New("invalid frequency")
	errInvalidDay       = errors.New("day of month must be between 1 and 31")
)

// Classify maps a days-left count onto the urgency scale. The thresholds are
// a fixed policy: negative is overdue, zero is today, 1-3 urgent, 4-7 soon.
func Classify(daysLeft int) Urgency {
	switch {
	case daysLeft < 0:
		return UrgencyOverdue
	case daysLeft == 0:
		return UrgencyToday
	case daysLeft <= 3:
		return UrgencyUrgent
	case daysLeft <= 7:
		return UrgencySoon
	default:
		return UrgencyNormal
	}
}

// NextOccurrence computes the next payment date strictly after ref.
//
// Monthly-class frequencies interpret dayOfMonth as a calendar day, clamped to
// the last valid day of the target month (day 31 in February resolves to the
// 28th or 29th). If the current cycle's date is on or before ref, the date
// advances by exactly one cycle length. Weekly reinterprets dayOfMonth as a
// weekday (value mod 7). Biweekly uses two fixed anchors per month:
// min(day,15) and min(day+15,28).
func NextOccurrence(ref time.Time, dayOfMonth int, freq Frequency) (Occurrence, error) {
	if !freq.Valid() {
		return Occurrence{}, errInvalidFrequency
	}
	if dayOfMonth < 1 || dayOfMonth > 31 {
		return Occurrence{}, errInvalidDay
	}

	today := midnight(ref)

	var next time.Time
	switch freq {
	case FrequencyWeekly:
		next = nextWeekday(today, dayOfMonth)
	case FrequencyBiweekly:
		next = nextBiweeklyAnchor(today, dayOfMonth)
	default:
		next = nextMonthlyClass(today, dayOfMonth, monthsPerCycle(freq))
	}

	daysLeft := daysBetween(today, next)
	return Occurrence{
		NextDate:  next,
		DaysLeft:  daysLeft,
		IsOverdue: daysLeft < 0,
		Urgency:   Classify(daysLeft),
	}, nil
}

// nextMonthlyClass resolves the next occurrence for monthly, bimonthly,
// quarterly, semiannual and annual schedules.
func nextMonthlyClass(today time.Time, day, cycleMonths int) time.Time {
	next := dateClamped(today.Year(), today.Month(), day, today.Location())
	if !next.After(today) {
		year, month := addMonths(today.Year(), today.Month(), cycleMonths)
		next = dateClamped(year, month, day, today.Location())
	}
	return next
}

// nextWeekday treats day as a day-of-week and advances to its next
// occurrence, at least 1 and at most 7 days out.
func nextWeekday(today time.Time, day int) time.Time {
	target := time.Weekday(day % 7)
	delta := (int(target) - int(today.Weekday()) + 7) % 7
	if delta == 0 {
		delta = 7
	}
	return today.AddDate(0, 0, delta)
}

// nextBiweeklyAnchor picks the nearest of the month's two anchors strictly
// after today, rolling to the next month's first anchor when both have passed.
func nextBiweeklyAnchor(today time.Time, day int) time.Time {
	first := min(day, 15)
	second := min(day+15, 28)

	for _, anchor := range []int{first, second} {
		candidate := time.Date(today.Year(), today.Month(), anchor, 0, 0, 0, 0, today.Location())
		if candidate.After(today) {
			return candidate
		}
	}

	year, month := addMonths(today.Year(), today.Month(), 1)
	return time.Date(year, month, first, 0, 0, 0, 0, today.Location())
}

// dateClamped builds a date with the day clamped to the month's length.
func dateClamped(year int, month time.Month, day int, loc *time.Location) time.Time {
	if last := daysInMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

func daysInMonth(year int, month time.Month) int {
	// day 0 of the next month normalizes to this month's last day
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func addMonths(year int, month time.Month, n int) (int, time.Month) {
	m := int(month) - 1 + n
	return year + m/12, time.Month(m%12 + 1)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysBetween counts calendar days from a to b. Both dates are rebuilt in UTC
// so DST transitions cannot shorten or stretch a day.
func daysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au).Hours() / 24)
}
