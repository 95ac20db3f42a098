package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/finreport/aws-spend-report-go/internal/domain/entity"
	"github.com/finreport/aws-spend-report-go/pkg/format"
)

const startedLastWeekSQL = `
SELECT account_id, user_owner, product_name, resource_id, start_date, SUM(cost) AS cost
FROM databasename.tablename
WHERE start_date >= date_format(date_add('day', -7, current_date), '%Y-%m-%d')
GROUP BY account_id, user_owner, product_name, resource_id, start_date`

const startedLastWeekDays = 7

// ResourceStartedLastWeek lists the resources that first appeared during the
// last week, one table per owner. It tracks new resource identifiers rather
// than spend, so it is never threshold-filtered and renders no chart. Part of
// the employee report set.
type ResourceStartedLastWeek struct {
	deps Dependencies
	cfg  ReportConfig
	sql  string
}

// NewResourceStartedLastWeek creates the started-last-week report variant.
func NewResourceStartedLastWeek(deps Dependencies, cfg ReportConfig) *ResourceStartedLastWeek {
	return &ResourceStartedLastWeek{deps: deps, cfg: cfg, sql: injectSQLConfig(startedLastWeekSQL, cfg)}
}

func (s *ResourceStartedLastWeek) Name() string {
	return "resource-started-last-week"
}

// Reports queries the billing table and emits one table report per owner with
// at least one newly started resource.
func (s *ResourceStartedLastWeek) Reports(ctx context.Context) ([]*entity.Report, error) {
	rows, err := s.deps.Query.ExecuteQuery(ctx, s.sql)
	if err != nil {
		return nil, fmt.Errorf("resources started last week query: %w", err)
	}
	s.deps.Console.LogInfo("Generating reports for resources started the last %d days", startedLastWeekDays)

	var ownerOrder []string
	ownerRows := make(map[string][][]string)

	for _, row := range rows {
		owner := row["user_owner"]
		if !s.cfg.OwnerPattern.MatchString(owner) {
			continue
		}
		started, err := time.Parse(entity.DateLayout, row["start_date"])
		if err != nil {
			s.deps.Console.LogWarning("Skipping row for %s: unparseable start date %q", owner, row["start_date"])
			continue
		}
		cost, ok := parseCost(row["cost"], s.deps.Console)
		if !ok {
			continue
		}

		accountID := row["account_id"]
		account := s.cfg.Accounts[accountID]
		if account == "" {
			account = accountID
		}

		if _, ok := ownerRows[owner]; !ok {
			ownerOrder = append(ownerOrder, owner)
		}
		ownerRows[owner] = append(ownerRows[owner], []string{
			account,
			row["product_name"],
			row["resource_id"],
			started.Format(tableDateLayout),
			format.Decimal(cost, 2),
		})
	}

	reports := make([]*entity.Report, 0, len(ownerOrder))
	for _, owner := range ownerOrder {
		table := entity.TableSpec{
			Header: []string{"Account", "Product", "Resource ID", "Started", "Cost ($)"},
			Rows:   ownerRows[owner],
			Footer: fmt.Sprintf("Resources started the last %d days: %d", startedLastWeekDays, len(ownerRows[owner])),
		}
		html, err := s.deps.Tables.RenderHTMLTable(table)
		if err != nil {
			return nil, fmt.Errorf("render table for %s: %w", owner, err)
		}

		reports = append(reports, &entity.Report{
			Owner:     owner,
			Variant:   s.Name(),
			Table:     &table,
			HTMLTable: html,
		})
		s.deps.Console.LogInfo("Report generated for %s", owner)
	}
	s.deps.Console.LogInfo("Reports generated: %d", len(reports))
	return reports, nil
}
