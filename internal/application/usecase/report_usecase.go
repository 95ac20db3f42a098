package usecase

import (
	"context"
	"fmt"

	"github.com/finreport/aws-spend-report-go/internal/domain/entity"
	"github.com/finreport/aws-spend-report-go/internal/domain/repository"
	"github.com/finreport/aws-spend-report-go/internal/shared/types"
)

// AWSServices bundles the AWS-backed collaborators a report run needs.
type AWSServices struct {
	Query   repository.QueryRepository
	Email   repository.EmailRepository
	Archive repository.ArchiveRepository
}

// AWSFactory builds the AWS-backed collaborators from a loaded configuration.
// Injected from main so the use case stays free of SDK wiring and tests can
// substitute fakes.
type AWSFactory func(ctx context.Context, cfg *types.Config, console types.ConsoleInterface) (AWSServices, error)

// ReportUseCase drives one full report run: archive conversion, report
// generation, delivery, and optional file export.
type ReportUseCase struct {
	configRepo repository.ConfigRepository
	exportRepo repository.ExportRepository
	charts     repository.ChartRenderer
	tables     repository.TableRenderer
	console    types.ConsoleInterface
	awsFactory AWSFactory
	clock      Clock
}

// NewReportUseCase creates a new report use case.
func NewReportUseCase(
	configRepo repository.ConfigRepository,
	exportRepo repository.ExportRepository,
	charts repository.ChartRenderer,
	tables repository.TableRenderer,
	console types.ConsoleInterface,
	awsFactory AWSFactory,
	clock Clock,
) *ReportUseCase {
	return &ReportUseCase{
		configRepo: configRepo,
		exportRepo: exportRepo,
		charts:     charts,
		tables:     tables,
		console:    console,
		awsFactory: awsFactory,
		clock:      clock,
	}
}

// Run executes one report run with the given CLI arguments.
func (uc *ReportUseCase) Run(ctx context.Context, args *types.CLIArgs) error {
	cfg, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	uc.mergeArgs(cfg, args)

	accounts, err := uc.loadAccounts(cfg.AccountsFile)
	if err != nil {
		return err
	}

	// Contract errors surface here, before any row is processed.
	reportCfg, err := NewReportConfig(cfg.UserOwnerRegexp, cfg.ReportThreshold, cfg.DaysBack, accounts, cfg.Database, cfg.TableName)
	if err != nil {
		return err
	}

	services, err := uc.awsFactory(ctx, cfg, uc.console)
	if err != nil {
		return fmt.Errorf("initialize AWS clients: %w", err)
	}

	if !args.SkipConversion && cfg.ZipSourceBucket != "" && cfg.GzDestinationBucket != "" {
		status := uc.console.Status("Converting billing archives")
		err := services.Archive.ConvertZipToGz(ctx, cfg.ZipSourceBucket, cfg.GzDestinationBucket)
		status.Stop()
		if err != nil {
			return fmt.Errorf("convert billing archives: %w", err)
		}
	}

	generator := NewCostReportGenerator(Dependencies{
		Query:   services.Query,
		Charts:  uc.charts,
		Tables:  uc.tables,
		Console: uc.console,
		Clock:   uc.clock,
	}, reportCfg)

	var employees []*entity.Employee
	if !cfg.AdminReportOnly {
		employees = generator.GenerateEmployeeReports(ctx)
	}
	adminGroups := generator.GenerateAdminReports(ctx)

	if len(employees) > 0 {
		if err := services.Email.SendEmployeeReports(ctx, employees); err != nil {
			return fmt.Errorf("send employee reports: %w", err)
		}
	}
	if len(cfg.Admins) == 0 {
		uc.console.LogInfo("No admins specified in the configuration file")
	} else if len(adminGroups) > 0 {
		if err := services.Email.SendAdminReports(ctx, cfg.Admins, adminGroups); err != nil {
			return fmt.Errorf("send admin reports: %w", err)
		}
	}

	if args.ReportName != "" {
		uc.exportReports(adminGroups, args)
	}
	return nil
}

// mergeArgs overlays CLI arguments onto the loaded configuration.
func (uc *ReportUseCase) mergeArgs(cfg *types.Config, args *types.CLIArgs) {
	if args.AccountsFile != "" {
		cfg.AccountsFile = args.AccountsFile
	}
	if args.DaysBack > 0 {
		cfg.DaysBack = args.DaysBack
	}
	if args.DryRun {
		cfg.DryRun = true
	}
	if args.AdminOnly {
		cfg.AdminReportOnly = true
	}
}

// loadAccounts reads the account-id -> friendly-name map. A missing file is
// informational, a malformed one is an error.
func (uc *ReportUseCase) loadAccounts(path string) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}
	accounts, err := uc.configRepo.LoadAccountsFile(path)
	if err != nil {
		return nil, fmt.Errorf("load accounts file: %w", err)
	}
	if accounts == nil {
		accounts = map[string]string{}
	}
	return accounts, nil
}

// exportReports writes the grouped reports to the requested file formats.
func (uc *ReportUseCase) exportReports(employees []*entity.Employee, args *types.CLIArgs) {
	for _, reportType := range args.ReportType {
		var (
			path string
			err  error
		)
		switch reportType {
		case "csv":
			path, err = uc.exportRepo.ExportToCSV(employees, args.ReportName, args.Dir)
		case "json":
			path, err = uc.exportRepo.ExportToJSON(employees, args.ReportName, args.Dir)
		case "pdf":
			path, err = uc.exportRepo.ExportToPDF(employees, args.ReportName, args.Dir)
		default:
			uc.console.LogWarning("Unknown report type: %s", reportType)
			continue
		}
		if err != nil {
			uc.console.LogError("Failed to export %s report: %s", reportType, err)
			continue
		}
		uc.console.LogSuccess("Exported %s report to %s", reportType, path)
	}
}
