package repository

import (
	"github.com/finreport/aws-spend-report-go/internal/domain/entity"
)

// ExportRepository defines the interface for writing report artifacts to
// local files.
type ExportRepository interface {
	ExportToCSV(employees []*entity.Employee, filename string, outputDir string) (string, error)
	ExportToJSON(employees []*entity.Employee, filename string, outputDir string) (string, error)
	ExportToPDF(employees []*entity.Employee, filename string, outputDir string) (string, error)
}
