package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/finreport/aws-spend-report-go/internal/domain/entity"
	"github.com/finreport/aws-spend-report-go/internal/domain/repository"
	"github.com/finreport/aws-spend-report-go/internal/shared/types"
	"github.com/finreport/aws-spend-report-go/pkg/format"
)

const (
	chartWidth  = 1000
	chartHeight = 300

	// layout for dates shown in table headers
	tableDateLayout = "Jan 02, 2006"

	defaultDaysBack = 30
)

// ReportService is one report variant: it queries the billing data, rolls it
// up and emits one report per qualifying owner.
type ReportService interface {
	Name() string
	Reports(ctx context.Context) ([]*entity.Report, error)
}

// Dependencies are the collaborators every report variant needs.
type Dependencies struct {
	Query   repository.QueryRepository
	Charts  repository.ChartRenderer
	Tables  repository.TableRenderer
	Console types.ConsoleInterface
	Clock   Clock
}

// ReportConfig carries the validated per-run report settings.
type ReportConfig struct {
	OwnerPattern *regexp.Regexp
	Threshold    float64
	DaysBack     int
	Accounts     map[string]string
	Database     string
	TableName    string
}

// NewReportConfig validates the raw configuration values and fails fast,
// before any row is processed. The owner expression is anchored so it must
// match the whole owner id, and the threshold must not be negative; a zero
// threshold means no filtering.
func NewReportConfig(ownerRegexp string, threshold float64, daysBack int, accounts map[string]string, database, tableName string) (ReportConfig, error) {
	if ownerRegexp == "" {
		return ReportConfig{}, types.ErrMissingOwnerRegexp
	}
	pattern, err := regexp.Compile("^(?:" + ownerRegexp + ")$")
	if err != nil {
		return ReportConfig{}, fmt.Errorf("invalid user_owner_regexp: %w", err)
	}
	if threshold < 0 {
		return ReportConfig{}, types.ErrNegativeThreshold
	}
	if daysBack < 1 {
		daysBack = defaultDaysBack
	}
	if accounts == nil {
		accounts = map[string]string{}
	}
	return ReportConfig{
		OwnerPattern: pattern,
		Threshold:    threshold,
		DaysBack:     daysBack,
		Accounts:     accounts,
		Database:     database,
		TableName:    tableName,
	}, nil
}

// injectSQLConfig fills the databasename/tablename/daysback placeholders of a
// variant's SQL text.
func injectSQLConfig(sql string, cfg ReportConfig) string {
	sql = strings.ReplaceAll(sql, "databasename", cfg.Database)
	sql = strings.ReplaceAll(sql, "tablename", cfg.TableName)
	return strings.ReplaceAll(sql, "daysback", strconv.Itoa(cfg.DaysBack))
}

// belowThreshold reports whether an owner falls below the report threshold.
// Equality keeps the owner in.
func (cfg ReportConfig) belowThreshold(total float64) bool {
	return total < cfg.Threshold
}

// ownerDailySeries is the owner's aggregate cost for every day of the window,
// chronological, with 0.0 for absent days. The series drives scale selection
// and is never reordered.
func ownerDailySeries(owner *entity.OwnerNode, dayKeys []string) []float64 {
	series := make([]float64, 0, len(dayKeys))
	for _, key := range dayKeys {
		series = append(series, owner.DailyTotal(key))
	}
	return series
}

// buildChartSpec assembles the chart payload for one owner: one line per
// dimension in first-seen order, values divided by the tier divisor, colors
// from a palette cycle that starts fresh for this owner. With legends on,
// each line is labelled with the dimension display name and its formatted
// total.
func buildChartSpec(owner *entity.OwnerNode, dayKeys []string, xLabels []string, scale entity.ScaleTier, title string, legend bool) entity.ChartSpec {
	colors := colorCycle{}
	lines := make([]entity.ChartLine, 0, len(owner.Dimensions()))
	for _, dim := range owner.Dimensions() {
		values := make([]float64, 0, len(dayKeys))
		for _, key := range dayKeys {
			values = append(values, dim.DayCost(key)/scale.Divisor)
		}
		label := ""
		if legend {
			label = dim.DisplayName + " " + format.Decimal(dim.Total(), 2)
		}
		lines = append(lines, entity.ChartLine{
			Label:  label,
			Color:  colors.Next(),
			Values: values,
		})
	}
	return entity.ChartSpec{
		Title:      title,
		Width:      chartWidth,
		Height:     chartHeight,
		Lines:      lines,
		XLabels:    xLabels,
		XAxisTitle: "Day",
		YTicks:     scale.AxisTicks,
		YAxisTitle: "Cost in " + scale.UnitSuffix,
	}
}
