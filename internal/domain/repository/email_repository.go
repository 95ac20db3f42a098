package repository

import (
	"context"

	"github.com/finreport/aws-spend-report-go/internal/domain/entity"
)

// EmailRepository defines the interface for report delivery.
type EmailRepository interface {
	// SendEmployeeReports mails each employee their own report bundle.
	SendEmployeeReports(ctx context.Context, employees []*entity.Employee) error
	// SendAdminReports mails every employee's report bundle to each admin.
	SendAdminReports(ctx context.Context, admins []string, employees []*entity.Employee) error
}
