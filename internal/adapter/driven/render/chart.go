package render

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/finreport/aws-spend-report-go/internal/domain/entity"
	"github.com/finreport/aws-spend-report-go/internal/domain/repository"
)

const chartBaseURL = "https://chart.googleapis.com/chart"

// GoogleChartRenderer turns a chart description into a Google Image Charts
// line-chart URL, suitable for embedding as an <img> in mail bodies.
type GoogleChartRenderer struct{}

func NewGoogleChartRenderer() repository.ChartRenderer {
	return &GoogleChartRenderer{}
}

func (r *GoogleChartRenderer) RenderChartURL(spec entity.ChartSpec) (string, error) {
	if len(spec.Lines) == 0 {
		return "", fmt.Errorf("chart %q has no lines", spec.Title)
	}

	params := url.Values{}
	params.Set("cht", "lc")
	params.Set("chs", fmt.Sprintf("%dx%d", spec.Width, spec.Height))
	params.Set("chtt", spec.Title)
	params.Set("chd", "t:"+seriesData(spec.Lines))
	// Values arrive pre-divided by the scale tier divisor, so they always
	// plot on a 0-100 range. The axis ticks are literal label text and can
	// end at 10 while the data still spans the full range.
	params.Set("chds", "0,100")
	params.Set("chco", lineColors(spec.Lines))
	if legend := legendLabels(spec.Lines); legend != "" {
		params.Set("chdl", legend)
	}
	params.Set("chxt", "x,y,x,y")
	params.Set("chxl", axisLabels(spec))

	return chartBaseURL + "?" + params.Encode(), nil
}

func seriesData(lines []entity.ChartLine) string {
	series := make([]string, 0, len(lines))
	for _, line := range lines {
		values := make([]string, 0, len(line.Values))
		for _, v := range line.Values {
			values = append(values, strconv.FormatFloat(v, 'f', 2, 64))
		}
		series = append(series, strings.Join(values, ","))
	}
	return strings.Join(series, "|")
}

func lineColors(lines []entity.ChartLine) string {
	colors := make([]string, 0, len(lines))
	for _, line := range lines {
		colors = append(colors, line.Color)
	}
	return strings.Join(colors, ",")
}

// legendLabels returns the chdl parameter, or "" when no line is labelled.
func legendLabels(lines []entity.ChartLine) string {
	labelled := false
	labels := make([]string, 0, len(lines))
	for _, line := range lines {
		if line.Label != "" {
			labelled = true
		}
		labels = append(labels, line.Label)
	}
	if !labelled {
		return ""
	}
	return strings.Join(labels, "|")
}

func axisLabels(spec entity.ChartSpec) string {
	ticks := make([]string, 0, len(spec.YTicks))
	for _, tick := range spec.YTicks {
		ticks = append(ticks, strconv.Itoa(tick))
	}
	return fmt.Sprintf("0:|%s|1:|%s|2:|%s|3:|%s",
		strings.Join(spec.XLabels, "|"),
		strings.Join(ticks, "|"),
		spec.XAxisTitle,
		spec.YAxisTitle)
}
