package usecase

import (
	"context"
	"fmt"

	"github.com/finreport/aws-spend-report-go/internal/domain/entity"
	"github.com/finreport/aws-spend-report-go/pkg/format"
)

const totalSpendSQL = `
SELECT user_owner, start_date, SUM(cost) AS cost
FROM databasename.tablename
WHERE start_date >= date_format(date_add('day', -daysback, current_date), '%Y-%m-%d')
GROUP BY user_owner, start_date`

// TotalSpendPerEmployee is the single-level variant: one unlabelled line per
// owner with the aggregate daily spend, chart only. Part of the admin report
// set.
type TotalSpendPerEmployee struct {
	deps Dependencies
	cfg  ReportConfig
	sql  string
}

// NewTotalSpendPerEmployee creates the total-spend report variant.
func NewTotalSpendPerEmployee(deps Dependencies, cfg ReportConfig) *TotalSpendPerEmployee {
	return &TotalSpendPerEmployee{deps: deps, cfg: cfg, sql: injectSQLConfig(totalSpendSQL, cfg)}
}

func (s *TotalSpendPerEmployee) Name() string {
	return "total-spend-per-employee"
}

// Reports queries the billing table and emits one chart report per owner at
// or above the threshold.
func (s *TotalSpendPerEmployee) Reports(ctx context.Context) ([]*entity.Report, error) {
	rows, err := s.deps.Query.ExecuteQuery(ctx, s.sql)
	if err != nil {
		return nil, fmt.Errorf("total spend query: %w", err)
	}

	records := make([]entity.UsageRecord, 0, len(rows))
	for _, row := range rows {
		cost, ok := parseCost(row["cost"], s.deps.Console)
		if !ok {
			continue
		}
		records = append(records, entity.UsageRecord{
			Owner: row["user_owner"],
			Date:  row["start_date"],
			Cost:  cost,
		})
	}

	tree := buildTree(records, s.cfg.OwnerPattern, s.deps.Console)
	window := DaysBack(s.deps.Clock(), s.cfg.DaysBack)
	keys := dateKeys(window)
	s.deps.Console.LogInfo("Generating reports for total spend per employee the last %d days", len(window))

	reports := make([]*entity.Report, 0, tree.Len())
	for _, owner := range tree.Owners() {
		total := owner.Total()
		if s.cfg.belowThreshold(total) {
			s.deps.Console.LogInfo("Owner %s fell beneath the report threshold of %.2f (total: %.2f)", owner.Name, s.cfg.Threshold, total)
			continue
		}

		scale := entity.SelectScale(ownerDailySeries(owner, keys))
		title := fmt.Sprintf("Total spend for %s the past %d days %s USD",
			owner.Name, len(window), format.Decimal(total, 2))
		spec := buildChartSpec(owner, keys, xAxisLabels(window), scale, title, false)

		url, err := s.deps.Charts.RenderChartURL(spec)
		if err != nil {
			return nil, fmt.Errorf("render chart for %s: %w", owner.Name, err)
		}

		reports = append(reports, &entity.Report{
			Owner:    owner.Name,
			Variant:  s.Name(),
			Total:    total,
			Chart:    &spec,
			ChartURL: url,
		})
		s.deps.Console.LogInfo("Report generated for %s", owner.Name)
	}
	s.deps.Console.LogInfo("Reports generated: %d", len(reports))
	return reports, nil
}
