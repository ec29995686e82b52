package timezone

import "time"

const defaultTimezone = "Europe/Paris"

// Location resolves an establishment's timezone name, falling back to
// the default when the name is empty or unknown.
func Location(name string) *time.Location {
	if name != "" {
		if loc, err := time.LoadLocation(name); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(defaultTimezone)
	return loc
}

// Parse validates a timezone name without falling back.
func Parse(name string) (*time.Location, error) {
	return time.LoadLocation(name)
}

func NowIn(name string) time.Time {
	return time.Now().In(Location(name))
}
