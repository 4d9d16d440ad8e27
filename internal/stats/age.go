package stats

import "time"

// Age returns the whole years between birth and now. The year difference is
// reduced by one until now reaches the birth month and day.
func Age(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}

// AdultAge is the age from which a patient counts as an adult.
const AdultAge = 18

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
