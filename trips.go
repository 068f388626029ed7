package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ---------------------------------------------------------------------------
// Trip Report
// ---------------------------------------------------------------------------

const (
	dayOff        = "หยุด"
	daysPerHalf   = 15
	tripNameWidth = 50.0
	tripDayWidth  = 13.0
	tripSumWidth  = 20.0
)

var tripTitles = map[string]string{
	"ALL":   "สรุปจำนวนเที่ยวรายวัน (เฉพาะ แม็คโคร/สิบล้อ)",
	"MACRO": "สรุปจำนวนเที่ยวรายวัน (เฉพาะ แม็คโคร)",
	"TRUCK": "สรุปจำนวนเที่ยวรายวัน (เฉพาะ สิบล้อ)",
}

// TripReport is the daily trip count of each driver for half a month.
type TripReport struct {
	Type       string    `yaml:"type"` // ALL, MACRO or TRUCK
	Year       int       `yaml:"year"`
	Month      int       `yaml:"month"`
	Half       int       `yaml:"half"` // 1: days 1-15, 2: day 16 to month end
	MonthLabel string    `yaml:"month_label"`
	Rows       []TripRow `yaml:"rows"`
}

// TripRow holds one driver's counts, one entry per report day. "หยุด" marks
// a day off.
type TripRow struct {
	Name  string   `yaml:"name"`
	Trips []string `yaml:"trips"`
	Total string   `yaml:"total"`
}

func (t TripReport) kind() string {
	k := strings.ToUpper(strings.TrimSpace(t.Type))
	if _, ok := tripTitles[k]; !ok {
		return "ALL"
	}
	return k
}

// days returns the days of the month shown as columns.
func (t TripReport) days() []int {
	first, last := 1, daysPerHalf
	if t.Half == 2 {
		first, last = daysPerHalf+1, 31
		if t.Year != 0 && t.Month >= 1 && t.Month <= 12 {
			last = daysInMonth(t.Year, time.Month(t.Month))
		}
	}
	days := make([]int, 0, last-first+1)
	for d := first; d <= last; d++ {
		days = append(days, d)
	}
	return days
}

func (t TripReport) label() string {
	if t.MonthLabel != "" {
		return t.MonthLabel
	}
	return monthLabel(t.Year, time.Month(t.Month))
}

// total returns the row total, summing the numeric counts when none is given.
func (row TripRow) total() string {
	if row.Total != "" {
		return row.Total
	}
	var sum float64
	for _, v := range row.Trips {
		if n, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			sum += n
		}
	}
	return strconv.FormatFloat(sum, 'f', -1, 64)
}

// createTripReport renders the landscape trip grid. Closed days from the
// business calendar get a shaded header; days off print a red x.
func (g *generator) createTripReport(t TripReport) (Attachment, error) {
	if len(t.Rows) == 0 {
		return Attachment{}, errors.New("no trip rows to render")
	}

	days := t.days()
	closed := closedDays(newBusinessCalendar(g.company, g.holidays), t.Year, time.Month(t.Month), days)

	columns := make([]column, 0, len(days)+2)
	columns = append(columns, column{Title: "ชื่อพนักงาน", Width: tripNameWidth, Align: alignLeft})
	for _, d := range days {
		columns = append(columns, column{Title: strconv.Itoa(d), Width: tripDayWidth, Align: alignCenter})
	}
	columns = append(columns, column{Title: "รวม", Width: tripSumWidth, Align: alignCenter})

	body := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		line := make([]string, 0, len(columns))
		line = append(line, row.Name)
		for i := range days {
			v := "-"
			if i < len(row.Trips) && strings.TrimSpace(row.Trips[i]) != "" {
				v = strings.TrimSpace(row.Trips[i])
			}
			line = append(line, v)
		}
		line = append(line, row.total())
		body = append(body, line)
	}

	r, err := g.newRenderer(landscape)
	if err != nil {
		return Attachment{}, err
	}

	r.setFont(true, 18)
	r.text(148.5, 18, tripTitles[t.kind()], alignCenter)
	r.setFont(false, 14)
	r.text(148.5, 27, "ประจำเดือน "+t.label(), alignCenter)

	mark := "x"
	r.table(35, tableSpec{
		X:          10,
		Columns:    columns,
		RowHeight:  10,
		FontSize:   10,
		HeaderFill: colorLightGrey,
		HeaderText: colorBlack,
		Grid:       true,
		HeaderStyle: func(col int) *cellStyle {
			if col >= 1 && col <= len(days) && closed[days[col-1]] {
				return &cellStyle{Fill: &colorClosed}
			}
			return nil
		},
		CellStyle: func(_, _ int, value string) *cellStyle {
			if value == dayOff {
				return &cellStyle{Text: &mark, TextColor: &colorExpense, Bold: true}
			}
			return nil
		},
	}, body)

	data, err := r.bytes()
	if err != nil {
		return Attachment{}, err
	}

	filename := "Trip_Report_All.pdf"
	if k := t.kind(); k != "ALL" {
		filename = fmt.Sprintf("Trip_Report_%s.pdf", k)
	}
	return Attachment{Filename: filename, Data: data}, nil
}
