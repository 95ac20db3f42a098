package usecase

import (
	"time"

	"github.com/finreport/aws-spend-report-go/internal/domain/entity"
)

// Clock supplies the current instant. Report runs inject it so the lookback
// window is reproducible in tests; production wiring passes time.Now.
type Clock func() time.Time

// DaysBack returns the n calendar days ending today, oldest first. Instants
// are truncated to the day boundary in their own location, so the sequence is
// a pure function of (now, n) and matches the chart's x-axis order.
func DaysBack(now time.Time, n int) []time.Time {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	days := make([]time.Time, 0, n)
	for k := n - 1; k >= 0; k-- {
		days = append(days, today.AddDate(0, 0, -k))
	}
	return days
}

// dateKeys renders a day window in the bucket key layout.
func dateKeys(window []time.Time) []string {
	keys := make([]string, 0, len(window))
	for _, day := range window {
		keys = append(keys, day.Format(entity.DateLayout))
	}
	return keys
}

// xAxisLabels returns the day-of-month label for every day in the window.
func xAxisLabels(window []time.Time) []string {
	labels := make([]string, 0, len(window))
	for _, day := range window {
		labels = append(labels, day.Format("02"))
	}
	return labels
}
