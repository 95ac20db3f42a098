package usecase

import (
	"context"
	"fmt"

	"github.com/finreport/aws-spend-report-go/internal/domain/entity"
	"github.com/finreport/aws-spend-report-go/pkg/format"
)

const spendByAccountSQL = `
SELECT user_owner, account_id, product_name, start_date, SUM(cost) AS cost
FROM databasename.tablename
WHERE start_date >= date_format(date_add('day', -daysback, current_date), '%Y-%m-%d')
GROUP BY user_owner, account_id, product_name, start_date`

// SpendPerEmployeeByAccount is the two-level variant keyed by billing
// account. Account ids are replaced with their friendly names from the
// accounts file when one is known; unknown ids fall back to the raw id.
// Part of both the employee and the admin report sets.
type SpendPerEmployeeByAccount struct {
	deps Dependencies
	cfg  ReportConfig
	sql  string
}

// NewSpendPerEmployeeByAccount creates the by-account report variant.
func NewSpendPerEmployeeByAccount(deps Dependencies, cfg ReportConfig) *SpendPerEmployeeByAccount {
	return &SpendPerEmployeeByAccount{deps: deps, cfg: cfg, sql: injectSQLConfig(spendByAccountSQL, cfg)}
}

func (s *SpendPerEmployeeByAccount) Name() string {
	return "spend-per-employee-by-account"
}

// Reports queries the billing table and emits one chart-and-table report per
// owner at or above the threshold.
func (s *SpendPerEmployeeByAccount) Reports(ctx context.Context) ([]*entity.Report, error) {
	rows, err := s.deps.Query.ExecuteQuery(ctx, s.sql)
	if err != nil {
		return nil, fmt.Errorf("spend by account query: %w", err)
	}

	records := make([]entity.UsageRecord, 0, len(rows))
	for _, row := range rows {
		cost, ok := parseCost(row["cost"], s.deps.Console)
		if !ok {
			continue
		}
		records = append(records, entity.UsageRecord{
			Owner:         row["user_owner"],
			DimensionID:   row["account_id"],
			DimensionName: s.cfg.Accounts[row["account_id"]],
			Date:          row["start_date"],
			Cost:          cost,
		})
	}

	tree := buildTree(records, s.cfg.OwnerPattern, s.deps.Console)
	window := DaysBack(s.deps.Clock(), s.cfg.DaysBack)
	keys := dateKeys(window)
	s.deps.Console.LogInfo("Generating reports for spend per employee listed by account the last %d days", len(window))

	reports := make([]*entity.Report, 0, tree.Len())
	for _, owner := range tree.Owners() {
		total := owner.Total()
		if s.cfg.belowThreshold(total) {
			s.deps.Console.LogInfo("Owner %s fell beneath the report threshold of %.2f (total: %.2f)", owner.Name, s.cfg.Threshold, total)
			continue
		}

		scale := entity.SelectScale(ownerDailySeries(owner, keys))
		title := fmt.Sprintf("Total spend for %s by account the past %d days. %s USD",
			owner.Name, len(window), format.Decimal(total, 2))
		spec := buildChartSpec(owner, keys, xAxisLabels(window), scale, title, true)

		url, err := s.deps.Charts.RenderChartURL(spec)
		if err != nil {
			return nil, fmt.Errorf("render chart for %s: %w", owner.Name, err)
		}

		table := dimensionTable("Account", owner, window, keys)
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
