package enums

import "time"

type Frequency string

const (
	FrequencyInvalid Frequency = ""

	// FrequencyDaily allows one notification per 24 hours.
	FrequencyDaily Frequency = "quotidien"

	// FrequencyWeekly allows one notification per 7 days.
	FrequencyWeekly Frequency = "hebdomadaire"

	// FrequencyMonthly allows one notification per 30 days.
	FrequencyMonthly Frequency = "mensuel"
)

// MinInterval returns the minimum time that must elapse since the last
// notification before an alert with this frequency is due again.
func (f Frequency) MinInterval() time.Duration {
	switch f {
	case FrequencyDaily:
		return 24 * time.Hour
	case FrequencyWeekly:
		return 168 * time.Hour
	case FrequencyMonthly:
		return 720 * time.Hour
	default:
		return 0
	}
}

func (f Frequency) Valid() bool {
	return f == FrequencyDaily || f == FrequencyWeekly || f == FrequencyMonthly
}
