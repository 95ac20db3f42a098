package usecase

import (
	"context"

	"github.com/finreport/aws-spend-report-go/internal/domain/entity"
	"github.com/finreport/aws-spend-report-go/internal/shared/types"
)

// CostReportGenerator runs the report variant pipelines and folds their
// reports into per-owner groups. Each variant owns its own rollup tree, so a
// failing variant is logged and skipped without touching the others.
type CostReportGenerator struct {
	employeeServices []ReportService
	adminServices    []ReportService
	console          types.ConsoleInterface
}

// NewCostReportGenerator wires the standard variant sets: employees get the
// by-resource, by-account and started-last-week reports; admins get the
// total-spend and by-account reports.
func NewCostReportGenerator(deps Dependencies, cfg ReportConfig) *CostReportGenerator {
	byResource := NewSpendPerEmployeeByResource(deps, cfg)
	byAccount := NewSpendPerEmployeeByAccount(deps, cfg)
	startedLastWeek := NewResourceStartedLastWeek(deps, cfg)
	totalSpend := NewTotalSpendPerEmployee(deps, cfg)

	return &CostReportGenerator{
		employeeServices: []ReportService{byResource, byAccount, startedLastWeek},
		adminServices:    []ReportService{totalSpend, byAccount},
		console:          deps.Console,
	}
}

// GenerateEmployeeReports produces the per-owner report groups for the
// employee variant set.
func (g *CostReportGenerator) GenerateEmployeeReports(ctx context.Context) []*entity.Employee {
	g.console.LogInfo("Generating employee reports")
	reports := g.collect(ctx, g.employeeServices)
	g.console.LogInfo("Total employee reports generated: %d", len(reports))
	return groupByOwner(reports)
}

// GenerateAdminReports produces the per-owner report groups for the admin
// variant set.
func (g *CostReportGenerator) GenerateAdminReports(ctx context.Context) []*entity.Employee {
	g.console.LogInfo("Generating admin reports")
	reports := g.collect(ctx, g.adminServices)
	g.console.LogInfo("Admin reports generated: %d", len(reports))
	return groupByOwner(reports)
}

// collect runs each variant in turn. A failed variant aborts only its own
// report generation.
func (g *CostReportGenerator) collect(ctx context.Context, services []ReportService) []*entity.Report {
	var reports []*entity.Report
	for _, service := range services {
		serviceReports, err := service.Reports(ctx)
		if err != nil {
			g.console.LogError("Report variant %s failed: %s", service.Name(), err)
			continue
		}
		reports = append(reports, serviceReports...)
	}
	return reports
}

// groupByOwner folds reports into one Employee per owner, in the order the
// owners were first seen.
func groupByOwner(reports []*entity.Report) []*entity.Employee {
	var order []string
	byOwner := make(map[string]*entity.Employee)
	for _, report := range reports {
		employee, ok := byOwner[report.Owner]
		if !ok {
			employee = &entity.Employee{UserName: report.Owner}
			byOwner[report.Owner] = employee
			order = append(order, report.Owner)
		}
		employee.Reports = append(employee.Reports, report)
	}

	employees := make([]*entity.Employee, 0, len(order))
	for _, owner := range order {
		employees = append(employees, byOwner[owner])
	}
	return employees
}
