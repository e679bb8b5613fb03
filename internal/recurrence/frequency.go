package recurrence

// Frequency describes how often a recurring payment repeats.
type Frequency string

const (
	FrequencyWeekly     Frequency = "weekly"
	FrequencyBiweekly   Frequency = "biweekly"
	FrequencyMonthly    Frequency = "monthly"
	FrequencyBimonthly  Frequency = "bimonthly"
	FrequencyQuarterly  Frequency = "quarterly"
	FrequencySemiannual Frequency = "semiannual"
	FrequencyAnnual     Frequency = "annual"
)

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly, FrequencyBimonthly,
		FrequencyQuarterly, FrequencySemiannual, FrequencyAnnual:
		return true
	}
	return false
}

// monthsPerCycle returns the cycle length in months for monthly-class
// frequencies, and 0 for the day-based ones.
func monthsPerCycle(f Frequency) int {
	switch f {
	case FrequencyMonthly:
		return 1
	case FrequencyBimonthly:
		return 2
	case FrequencyQuarterly:
		return 3
	case FrequencySemiannual:
		return 6
	case FrequencyAnnual:
		return 12
	}
	return 0
}

// monthlyFactor normalizes an amount of each frequency to its average monthly
// cost. The factors are fixed approximations, not exact calendar fractions;
// the small systematic error for non-monthly frequencies is accepted.
var monthlyFactor = map[Frequency]float64{
	FrequencyWeekly:     4.33,
	FrequencyBiweekly:   2.17,
	FrequencyMonthly:    1,
	FrequencyBimonthly:  0.5,
	FrequencyQuarterly:  0.33,
	FrequencySemiannual: 0.167,
	FrequencyAnnual:     0.083,
}

// MonthlyEquivalent converts an amount of the given frequency to its
// monthly-equivalent cost. Unknown frequencies are treated as monthly.
func MonthlyEquivalent(amount float64, f Frequency) float64 {
	factor, ok := monthlyFactor[f]
	if !ok {
		factor = 1
	}
	return amount * factor
}

// AnnualEquivalent is the monthly-equivalent projected over a year.
func AnnualEquivalent(amount float64, f Frequency) float64 {
	return MonthlyEquivalent(amount, f) * 12
}
