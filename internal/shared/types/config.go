package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	Profile        string `json:"profile" yaml:"profile" toml:"profile"`
	Region         string `json:"region" yaml:"region" toml:"region"`
	Database       string `json:"database" yaml:"database" toml:"database"`
	TableName      string `json:"table_name" yaml:"table_name" toml:"table_name"`
	OutputLocation string `json:"output_location" yaml:"output_location" toml:"output_location"`

	UserOwnerRegexp string  `json:"user_owner_regexp" yaml:"user_owner_regexp" toml:"user_owner_regexp"`
	ReportThreshold float64 `json:"report_threshold" yaml:"report_threshold" toml:"report_threshold"`
	DaysBack        int     `json:"days_back" yaml:"days_back" toml:"days_back"`

	FromAddress     string   `json:"from_address" yaml:"from_address" toml:"from_address"`
	ToEmailDomain   string   `json:"to_email_domain" yaml:"to_email_domain" toml:"to_email_domain"`
	DryRun          bool     `json:"dry_run" yaml:"dry_run" toml:"dry_run"`
	AdminReportOnly bool     `json:"admin_report_only" yaml:"admin_report_only" toml:"admin_report_only"`
	Admins          []string `json:"admins" yaml:"admins" toml:"admins"`

	ZipSourceBucket     string `json:"zip_source_bucket" yaml:"zip_source_bucket" toml:"zip_source_bucket"`
	GzDestinationBucket string `json:"gz_destination_bucket" yaml:"gz_destination_bucket" toml:"gz_destination_bucket"`
	AccountsFile        string `json:"accounts_file" yaml:"accounts_file" toml:"accounts_file"`
}
