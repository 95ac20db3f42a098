package aws

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	sesTypes "github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"github.com/finreport/aws-spend-report-go/internal/domain/entity"
	"github.com/finreport/aws-spend-report-go/internal/domain/repository"
	"github.com/finreport/aws-spend-report-go/internal/shared/types"
)

// SESRepository implements the EmailRepository on Amazon SES. In dry-run mode
// nothing is sent; the composed mails are logged instead.
type SESRepository struct {
	client   *sesv2.Client
	from     string
	toDomain string
	dryRun   bool
	console  types.ConsoleInterface
}

// NewSESRepository creates an EmailRepository backed by SES.
func NewSESRepository(clients *ClientSet, from, toDomain string, dryRun bool, console types.ConsoleInterface) repository.EmailRepository {
	return &SESRepository{
		client:   clients.sesv2(),
		from:     from,
		toDomain: toDomain,
		dryRun:   dryRun,
		console:  console,
	}
}

// SendEmployeeReports mails each employee their own report bundle.
func (r *SESRepository) SendEmployeeReports(ctx context.Context, employees []*entity.Employee) error {
	for _, employee := range employees {
		to := r.address(employee.UserName)
		subject := "Your AWS spend report"
		body := composeBody([]*entity.Employee{employee})
		if err := r.send(ctx, to, subject, body); err != nil {
			return fmt.Errorf("send report to %s: %w", to, err)
		}
	}
	return nil
}

// SendAdminReports mails the full report bundle to each admin.
func (r *SESRepository) SendAdminReports(ctx context.Context, admins []string, employees []*entity.Employee) error {
	subject := "AWS spend report for all employees"
	body := composeBody(employees)
	for _, admin := range admins {
		to := r.address(admin)
		if err := r.send(ctx, to, subject, body); err != nil {
			return fmt.Errorf("send admin report to %s: %w", to, err)
		}
	}
	return nil
}

// address appends the configured mail domain to bare user names.
func (r *SESRepository) address(user string) string {
	if strings.Contains(user, "@") {
		return user
	}
	return user + "@" + r.toDomain
}

func (r *SESRepository) send(ctx context.Context, to, subject, htmlBody string) error {
	if r.dryRun {
		r.console.LogInfo("Dry run: would send %q to %s (%d bytes)", subject, to, len(htmlBody))
		return nil
	}

	_, err := r.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(r.from),
		Destination: &sesTypes.Destination{
			ToAddresses: []string{to},
		},
		Content: &sesTypes.EmailContent{
			Simple: &sesTypes.Message{
				Subject: &sesTypes.Content{Data: aws.String(subject)},
				Body: &sesTypes.Body{
					Html: &sesTypes.Content{Data: aws.String(htmlBody)},
				},
			},
		},
	})
	if err != nil {
		return err
	}
	r.console.LogInfo("Mail sent to %s", to)
	return nil
}

// composeBody stitches every report's chart image and table into one HTML
// document.
func composeBody(employees []*entity.Employee) string {
	var sb strings.Builder
	sb.WriteString("<html><body>")
	for _, employee := range employees {
		fmt.Fprintf(&sb, "<h2>%s</h2>", employee.UserName)
		for _, report := range employee.Reports {
			if report.ChartURL != "" {
				fmt.Fprintf(&sb, `<p><img src=%q alt="spend chart"/></p>`, report.ChartURL)
			}
			if report.HTMLTable != "" {
				sb.WriteString(report.HTMLTable)
			}
		}
	}
	sb.WriteString("</body></html>")
	return sb.String()
}
