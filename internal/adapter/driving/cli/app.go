package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/finreport/aws-spend-report-go/internal/application/usecase"
	"github.com/finreport/aws-spend-report-go/internal/shared/types"
	"github.com/finreport/aws-spend-report-go/pkg/version"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd       *cobra.Command
	reportUseCase *usecase.ReportUseCase
	version       string
}

// NewCLIApp creates a new CLI application.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "aws-spend-report",
		Short:   "Per-employee AWS spend reports from billing data",
		Version: formattedVersion,
		RunE:    app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "AWS Spend Report version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().String("accounts-file", "", "Path to a CSV file mapping account ids to display names")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", []string{"csv"}, "Specify report types: csv, json, pdf")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	rootCmd.PersistentFlags().IntP("days-back", "t", 0, "Number of days of cost data to report on (default: 30)")
	rootCmd.PersistentFlags().Bool("dry-run", false, "Compose reports but log mails instead of sending them")
	rootCmd.PersistentFlags().Bool("admin-only", false, "Send the admin digest only, skip per-employee mails")
	rootCmd.PersistentFlags().Bool("skip-conversion", false, "Skip the billing archive zip to gz conversion step")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	configFile, _ := app.rootCmd.Flags().GetString("config-file")
	accountsFile, _ := app.rootCmd.Flags().GetString("accounts-file")
	reportName, _ := app.rootCmd.Flags().GetString("report-name")
	reportType, _ := app.rootCmd.Flags().GetStringSlice("report-type")
	dir, _ := app.rootCmd.Flags().GetString("dir")
	daysBack, _ := app.rootCmd.Flags().GetInt("days-back")
	dryRun, _ := app.rootCmd.Flags().GetBool("dry-run")
	adminOnly, _ := app.rootCmd.Flags().GetBool("admin-only")
	skipConversion, _ := app.rootCmd.Flags().GetBool("skip-conversion")

	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = cwd
	} else {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	args := &types.CLIArgs{
		ConfigFile:     configFile,
		AccountsFile:   accountsFile,
		ReportName:     reportName,
		ReportType:     reportType,
		Dir:            dir,
		DaysBack:       daysBack,
		DryRun:         dryRun,
		AdminOnly:      adminOnly,
		SkipConversion: skipConversion,
	}

	return args, nil
}

// runCommand is the main entry point for the CLI command.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	displayWelcomeBanner(app.version)

	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	ctx := context.Background()
	return app.reportUseCase.Run(ctx, cliArgs)
}

// SetReportUseCase sets the report use case for the CLI app.
func (app *CLIApp) SetReportUseCase(useCase *usecase.ReportUseCase) {
	app.reportUseCase = useCase
}
