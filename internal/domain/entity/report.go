package entity

// ChartLine is a single plotted line: the per-day values already divided by
// the selected scale tier's divisor, a palette color, and a legend label.
type ChartLine struct {
	Label  string    `json:"label,omitempty"`
	Color  string    `json:"color"`
	Values []float64 `json:"values"`
}

// ChartSpec is the renderer-agnostic description of a line chart. The core
// only builds this payload; turning it into a URL is the chart renderer's
// concern.
type ChartSpec struct {
	Title      string      `json:"title"`
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	Lines      []ChartLine `json:"lines"`
	XLabels    []string    `json:"x_labels"`
	XAxisTitle string      `json:"x_axis_title"`
	YTicks     []int       `json:"y_ticks"`
	YAxisTitle string      `json:"y_axis_title"`
}

// TableSpec is the renderer-agnostic description of a report table.
type TableSpec struct {
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
	Footer string     `json:"footer,omitempty"`
}

// Report is one assembled report for one owner, produced fresh per run.
// Chart and Table hold the structured payloads; ChartURL and HTMLTable are
// filled by the rendering adapters.
type Report struct {
	Owner     string     `json:"owner"`
	Variant   string     `json:"variant"`
	Total     float64    `json:"total"`
	Chart     *ChartSpec `json:"chart,omitempty"`
	Table     *TableSpec `json:"table,omitempty"`
	ChartURL  string     `json:"chart_url,omitempty"`
	HTMLTable string     `json:"html_table,omitempty"`
}

// Employee groups every report generated for one owner across the report
// variants, in the order the reports were produced.
type Employee struct {
	UserName string    `json:"user_name"`
	Reports  []*Report `json:"reports"`
}
