package service

import "github.com/azurecafe/cafe-service/internal/domain/model"

// DailySales returns per-day sales totals aggregated from the persisted
// per-order records, sorted by date.
func (c *Cafe) DailySales() ([]model.DailySale, error) {
	sales, err := c.repos.Stats.Load()
	if err != nil {
		return nil, err
	}
	return model.AggregateDaily(sales), nil
}

// WeeklySales returns sales grouped into 7-day windows anchored at the
// earliest recorded date.
func (c *Cafe) WeeklySales() ([]model.WeeklyTotal, error) {
	sales, err := c.repos.Stats.Load()
	if err != nil {
		return nil, err
	}
	return model.GroupWeekly(sales), nil
}
