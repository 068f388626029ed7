package main

import (
	"time"

	"github.com/rickar/cal/v2"
)

// ---------------------------------------------------------------------------
// Business Calendar
// ---------------------------------------------------------------------------

// weekendSubstitute moves a holiday falling on a weekend to the next Monday.
var weekendSubstitute = []cal.AltDay{
	{Day: time.Saturday, Offset: 2},
	{Day: time.Sunday, Offset: 1},
}

func fixedHoliday(name string, month time.Month, day int) *cal.Holiday {
	return &cal.Holiday{
		Name:     name,
		Type:     cal.ObservancePublic,
		Month:    month,
		Day:      day,
		Observed: weekendSubstitute,
		Func:     cal.CalcDayOfMonth,
	}
}

// thaiHolidays are the fixed-date Thai public holidays. Lunar holidays
// (Makha Bucha, Visakha Bucha, Asarnha Bucha) are configured per year.
var thaiHolidays = []*cal.Holiday{
	fixedHoliday("วันขึ้นปีใหม่", time.January, 1),
	fixedHoliday("วันจักรี", time.April, 6),
	fixedHoliday("วันสงกรานต์", time.April, 13),
	fixedHoliday("วันสงกรานต์", time.April, 14),
	fixedHoliday("วันสงกรานต์", time.April, 15),
	fixedHoliday("วันแรงงานแห่งชาติ", time.May, 1),
	fixedHoliday("วันฉัตรมงคล", time.May, 4),
	fixedHoliday("วันเฉลิมพระชนมพรรษาพระราชินี", time.June, 3),
	fixedHoliday("วันเฉลิมพระชนมพรรษา ร.10", time.July, 28),
	fixedHoliday("วันแม่แห่งชาติ", time.August, 12),
	fixedHoliday("วันคล้ายวันสวรรคต ร.9", time.October, 13),
	fixedHoliday("วันปิยมหาราช", time.October, 23),
	fixedHoliday("วันพ่อแห่งชาติ", time.December, 5),
	fixedHoliday("วันรัฐธรรมนูญ", time.December, 10),
	fixedHoliday("วันสิ้นปี", time.December, 31),
}

// newBusinessCalendar creates a calendar with Thai public holidays plus the
// given one-off closed days.
func newBusinessCalendar(company string, extra []time.Time) *cal.BusinessCalendar {
	c := cal.NewBusinessCalendar()
	c.Name = company
	c.Description = "Thai public holidays"
	c.AddHoliday(thaiHolidays...)

	for _, d := range extra {
		c.AddHoliday(&cal.Holiday{
			Name:      "วันหยุดพิเศษ",
			Type:      cal.ObservancePublic,
			StartYear: d.Year(),
			EndYear:   d.Year(),
			Month:     d.Month(),
			Day:       d.Day(),
			Func:      cal.CalcDayOfMonth,
		})
	}
	return c
}

// closedDays returns which of the given days of the month are not workdays.
func closedDays(c *cal.BusinessCalendar, year int, month time.Month, days []int) map[int]bool {
	closed := make(map[int]bool, len(days))
	if year == 0 {
		return closed
	}
	for _, day := range days {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		if !c.IsWorkday(date) {
			closed[day] = true
		}
	}
	return closed
}

// daysInMonth returns the number of days in the given month.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
