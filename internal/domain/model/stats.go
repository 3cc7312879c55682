package model

import (
	"sort"
	"time"
)

// DailySale is one (date, amount) statistics record. The persisted file
// holds one record per order, so the same date repeats; aggregation happens
// at read time.
type DailySale struct {
	Date   string
	Amount float64
}

// WeeklyTotal groups date-sorted sales into a 7-day window anchored at
// WeekStart.
type WeeklyTotal struct {
	WeekStart string
	Amount    float64
	Sales     []DailySale
}

// AggregateDaily sums per-order records into one entry per date, sorted by
// date ascending.
func AggregateDaily(sales []DailySale) []DailySale {
	totals := make(map[string]float64, len(sales))
	for _, sale := range sales {
		totals[sale.Date] += sale.Amount
	}
	aggregated := make([]DailySale, 0, len(totals))
	for date, amount := range totals {
		aggregated = append(aggregated, DailySale{Date: date, Amount: amount})
	}
	sort.Slice(aggregated, func(i, j int) bool {
		return aggregated[i].Date < aggregated[j].Date
	})
	return aggregated
}

// GroupWeekly splits sales into consecutive 7-day windows. The first window
// is anchored at the earliest sale date; each later window starts at the
// first sale date falling past the previous window.
func GroupWeekly(sales []DailySale) []WeeklyTotal {
	if len(sales) == 0 {
		return nil
	}

	sorted := make([]DailySale, len(sales))
	copy(sorted, sales)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})

	var weeks []WeeklyTotal
	current := WeeklyTotal{WeekStart: sorted[0].Date}
	for _, sale := range sorted {
		if sale.Date >= NextWeekDate(current.WeekStart) {
			weeks = append(weeks, current)
			current = WeeklyTotal{WeekStart: sale.Date}
		}
		current.Amount += sale.Amount
		current.Sales = append(current.Sales, sale)
	}
	return append(weeks, current)
}

// NextWeekDate returns the date seven days after the given YYYY-MM-DD date.
// Unparseable dates are returned unchanged.
func NextWeekDate(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, 7).Format(DateLayout)
}
