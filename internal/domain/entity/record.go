package entity

// DateLayout is the calendar-day layout used for day bucket keys and for the
// start_date column of the billing table.
const DateLayout = "2006-01-02"

// UsageRecord is one flat billing observation: an owner spent Cost on a day,
// optionally under a secondary grouping axis (billing account or product).
type UsageRecord struct {
	Owner         string  `json:"owner"`
	DimensionID   string  `json:"dimension_id,omitempty"`
	DimensionName string  `json:"dimension_name,omitempty"`
	Date          string  `json:"date"`
	Cost          float64 `json:"cost"`
}
