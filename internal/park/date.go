// Package park holds park-wide game state that the news subsystem reads:
// the in-game calendar, the screen mode and guest warning throttles.
package park

import "fmt"

// MonthCount is the number of months in a park year (March..October).
const MonthCount = 8

// MonthTicksPerTick is how far the month progress counter moves each tick.
// The counter is 16 bits wide, so a month lasts 0x10000/4 ticks.
const MonthTicksPerTick = 4

// DaysInMonth is indexed by Month().
var DaysInMonth = [MonthCount]uint8{31, 30, 31, 30, 31, 31, 30, 31}

var monthNames = [MonthCount]string{"March", "April", "May", "June", "July", "August", "September", "October"}

// Date is the in-game calendar.
type Date struct {
	MonthsElapsed uint16
	MonthTicks    uint16
}

// MonthOf returns the month index of a months-elapsed value.
func MonthOf(monthsElapsed uint16) int { return int(monthsElapsed % MonthCount) }

// YearOf returns the 1-based year of a months-elapsed value.
func YearOf(monthsElapsed uint16) int { return int(monthsElapsed/MonthCount) + 1 }

// DayOf returns the 1-based day of the month for the given progress counter.
func DayOf(monthsElapsed, monthTicks uint16) uint8 {
	days := uint32(DaysInMonth[MonthOf(monthsElapsed)])
	return uint8((days*uint32(monthTicks))>>16) + 1
}

// Month returns the current month index.
func (d Date) Month() int { return MonthOf(d.MonthsElapsed) }

// Year returns the current 1-based year.
func (d Date) Year() int { return YearOf(d.MonthsElapsed) }

// Day returns the current 1-based day of the month.
func (d Date) Day() uint8 { return DayOf(d.MonthsElapsed, d.MonthTicks) }

// Advance moves the calendar forward by one tick. It reports whether a new
// month started.
func (d *Date) Advance() bool {
	next := uint32(d.MonthTicks) + MonthTicksPerTick
	d.MonthTicks = uint16(next)
	if next > 0xFFFF {
		d.MonthsElapsed++
		return true
	}
	return false
}

// MonthName returns the English name of a month index.
func MonthName(month int) string {
	if month < 0 || month >= MonthCount {
		return ""
	}
	return monthNames[month]
}

// FormatDate renders a stored message date such as "3 May, Year 2".
func FormatDate(monthsElapsed uint16, day uint8) string {
	return fmt.Sprintf("%d %s, Year %d", day, MonthName(MonthOf(monthsElapsed)), YearOf(monthsElapsed))
}

func (d Date) String() string { return FormatDate(d.MonthsElapsed, d.Day()) }
