package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile     string
	AccountsFile   string
	ReportName     string
	ReportType     []string
	Dir            string
	DaysBack       int
	DryRun         bool
	AdminOnly      bool
	SkipConversion bool
}
