package config

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"

	"github.com/finreport/aws-spend-report-go/internal/domain/repository"
	"github.com/finreport/aws-spend-report-go/internal/shared/types"
)

// ConfigRepository loads configuration and account mappings from local files.
type ConfigRepository struct {
	console types.ConsoleInterface
}

func NewConfigRepository(console types.ConsoleInterface) repository.ConfigRepository {
	return &ConfigRepository{console: console}
}

// LoadConfigFile reads the configuration at path, decoding it by extension
// (.yaml, .yml, .toml or .json).
func (r *ConfigRepository) LoadConfigFile(path string) (*types.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg types.Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse YAML config %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse TOML config %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse JSON config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
	}

	return &cfg, nil
}

// LoadAccountsFile reads a two-column CSV of account id to display name.
// Rows with the wrong number of columns are skipped with a warning.
func (r *ConfigRepository) LoadAccountsFile(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open accounts file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse accounts file %s: %w", path, err)
	}

	accounts := make(map[string]string, len(records))
	for i, record := range records {
		if len(record) != 2 {
			r.console.LogWarning("Skipping accounts row %d: expected 2 columns, got %d", i+1, len(record))
			continue
		}
		id := strings.TrimSpace(record[0])
		name := strings.TrimSpace(record[1])
		if id == "" || name == "" {
			r.console.LogWarning("Skipping accounts row %d: empty column", i+1)
			continue
		}
		accounts[id] = name
	}
	return accounts, nil
}
