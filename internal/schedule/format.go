package schedule

import "time"

// FormatDate renders a task date for display: "Today", "Tomorrow", or a
// short weekday form like "Mon, Mar 11". Unparseable input is returned
// verbatim.
func FormatDate(date string, now time.Time) string {
	day, err := time.ParseInLocation(DateLayout, date, now.Location())
	if err != nil {
		return date
	}

	if sameDay(day, now) {
		return "Today"
	}
	if sameDay(day, now.AddDate(0, 0, 1)) {
		return "Tomorrow"
	}
	return day.Format("Mon, Jan 2")
}

// FormatTime renders a time of day on a 12-hour clock, e.g. "3:04 PM".
// Unparseable input is returned verbatim.
func FormatTime(timeOfDay string) string {
	t, err := time.Parse(TimeLayout, timeOfDay)
	if err != nil {
		return timeOfDay
	}
	return t.Format("3:04 PM")
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
