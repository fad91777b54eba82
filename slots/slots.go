// Package slots holds the fixed daily visit schedule for property
// reservations.
package slots

// Template returns the bookable time slots for any given day: 09:00-11:30
// and 14:00-17:00 in 30-minute increments.
func Template() []string {
	return []string{
		"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
		"14:00", "14:30", "15:00", "15:30", "16:00", "16:30", "17:00",
	}
}

// Valid reports whether the slot belongs to the daily template.
func Valid(slot string) bool {
	for _, s := range Template() {
		if s == slot {
			return true
		}
	}
	return false
}

// Available returns the template minus the already-taken slots.
func Available(taken []string) []string {
	takenSet := make(map[string]bool, len(taken))
	for _, t := range taken {
		takenSet[t] = true
	}

	available := make([]string, 0)
	for _, s := range Template() {
		if !takenSet[s] {
			available = append(available, s)
		}
	}
	return available
}
