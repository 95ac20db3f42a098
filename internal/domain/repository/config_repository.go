package repository

import (
	"github.com/finreport/aws-spend-report-go/internal/shared/types"
)

// ConfigRepository defines the interface for loading configuration files.
type ConfigRepository interface {
	LoadConfigFile(filePath string) (*types.Config, error)
	LoadAccountsFile(filePath string) (map[string]string, error)
}
