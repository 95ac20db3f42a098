package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/finreport/aws-spend-report-go/internal/domain/entity"
	"github.com/finreport/aws-spend-report-go/pkg/format"
)

const spendByResourceSQL = `
SELECT user_owner, product_name, start_date, SUM(cost) AS cost
FROM databasename.tablename
WHERE start_date >= date_format(date_add('day', -daysback, current_date), '%Y-%m-%d')
GROUP BY user_owner, product_name, start_date`

// SpendPerEmployeeByResource is the two-level variant keyed by product: one
// line and one table row per product under each owner. Part of the employee
// report set.
type SpendPerEmployeeByResource struct {
	deps Dependencies
	cfg  ReportConfig
	sql  string
}

// NewSpendPerEmployeeByResource creates the by-resource report variant.
func NewSpendPerEmployeeByResource(deps Dependencies, cfg ReportConfig) *SpendPerEmployeeByResource {
	return &SpendPerEmployeeByResource{deps: deps, cfg: cfg, sql: injectSQLConfig(spendByResourceSQL, cfg)}
}

func (s *SpendPerEmployeeByResource) Name() string {
	return "spend-per-employee-by-resource"
}

// Reports queries the billing table and emits one chart-and-table report per
// owner at or above the threshold.
func (s *SpendPerEmployeeByResource) Reports(ctx context.Context) ([]*entity.Report, error) {
	rows, err := s.deps.Query.ExecuteQuery(ctx, s.sql)
	if err != nil {
		return nil, fmt.Errorf("spend by resource query: %w", err)
	}

	records := make([]entity.UsageRecord, 0, len(rows))
	for _, row := range rows {
		cost, ok := parseCost(row["cost"], s.deps.Console)
		if !ok {
			continue
		}
		records = append(records, entity.UsageRecord{
			Owner:       row["user_owner"],
			DimensionID: row["product_name"],
			Date:        row["start_date"],
			Cost:        cost,
		})
	}

	tree := buildTree(records, s.cfg.OwnerPattern, s.deps.Console)
	window := DaysBack(s.deps.Clock(), s.cfg.DaysBack)
	keys := dateKeys(window)
	s.deps.Console.LogInfo("Generating reports for spend per employee listed by resource the last %d days", len(window))

	reports := make([]*entity.Report, 0, tree.Len())
	for _, owner := range tree.Owners() {
		total := owner.Total()
		if s.cfg.belowThreshold(total) {
			s.deps.Console.LogInfo("Owner %s fell beneath the report threshold of %.2f (total: %.2f)", owner.Name, s.cfg.Threshold, total)
			continue
		}

		scale := entity.SelectScale(ownerDailySeries(owner, keys))
		title := fmt.Sprintf("Total spend for %s by resource the past %d days. %s USD",
			owner.Name, len(window), format.Decimal(total, 2))
		spec := buildChartSpec(owner, keys, xAxisLabels(window), scale, title, true)

		url, err := s.deps.Charts.RenderChartURL(spec)
		if err != nil {
			return nil, fmt.Errorf("render chart for %s: %w", owner.Name, err)
		}

		table := dimensionTable("Resource", owner, window, keys)
		html, err := s.deps.Tables.RenderHTMLTable(table)
		if err != nil {
			return nil, fmt.Errorf("render table for %s: %w", owner.Name, err)
		}

		reports = append(reports, &entity.Report{
			Owner:     owner.Name,
			Variant:   s.Name(),
			Total:     total,
			Chart:     &spec,
			Table:     &table,
			ChartURL:  url,
			HTMLTable: html,
		})
		s.deps.Console.LogInfo("Report generated for %s", owner.Name)
	}
	s.deps.Console.LogInfo("Reports generated: %d", len(reports))
	return reports, nil
}

// dimensionTable builds the per-dimension day-by-day table payload shared by
// the two-level variants: one column per window day, one row per dimension
// and a grand-total footer.
func dimensionTable(dimensionHeader string, owner *entity.OwnerNode, window []time.Time, dayKeys []string) entity.TableSpec {
	header := make([]string, 0, len(window)+2)
	header = append(header, dimensionHeader)
	for _, day := range window {
		header = append(header, day.Format(tableDateLayout))
	}
	header = append(header, "Total")

	rows := make([][]string, 0, len(owner.Dimensions()))
	for _, dim := range owner.Dimensions() {
		row := make([]string, 0, len(header))
		row = append(row, dim.DisplayName+" ($)")
		for _, key := range dayKeys {
			row = append(row, format.Decimal(dim.DayCost(key), 2))
		}
		row = append(row, format.Decimal(dim.Total(), 2))
		rows = append(rows, row)
	}

	return entity.TableSpec{
		Header: header,
		Rows:   rows,
		Footer: "Total: $" + format.Decimal(owner.Total(), 2),
	}
}
