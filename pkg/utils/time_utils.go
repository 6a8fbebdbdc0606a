package utils

import "time"

// Schedule dates and times are stored as strings the way the mobile clients
// send them.
const (
	ScheduleDateLayout = "2006-01-02"
	ScheduleTimeLayout = "15:04"
)

func NowUnixSeconds() int64 { return time.Now().Unix() }

// ScheduleDateFromNow returns the schedule date string n days from today.
func ScheduleDateFromNow(days int) string {
	return time.Now().AddDate(0, 0, days).Format(ScheduleDateLayout)
}

// IsScheduleDatePast reports whether the given schedule date is before today.
// Unparseable dates are treated as past so they drop out of upcoming lists.
func IsScheduleDatePast(date string) bool {
	d, err := time.ParseInLocation(ScheduleDateLayout, date, time.Local)
	if err != nil {
		return true
	}
	today, _ := time.ParseInLocation(ScheduleDateLayout, time.Now().Format(ScheduleDateLayout), time.Local)
	return d.Before(today)
}
