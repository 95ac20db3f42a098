package aws

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/athena"
	athenaTypes "github.com/aws/aws-sdk-go-v2/service/athena/types"

	"github.com/finreport/aws-spend-report-go/internal/domain/repository"
	"github.com/finreport/aws-spend-report-go/internal/shared/types"
)

const queryPollInterval = 2 * time.Second

// AthenaRepository implements the QueryRepository against Amazon Athena.
type AthenaRepository struct {
	client         *athena.Client
	database       string
	outputLocation string
	console        types.ConsoleInterface
}

// NewAthenaRepository creates a QueryRepository backed by Athena.
func NewAthenaRepository(clients *ClientSet, database, outputLocation string, console types.ConsoleInterface) repository.QueryRepository {
	return &AthenaRepository{
		client:         clients.athena(),
		database:       database,
		outputLocation: outputLocation,
		console:        console,
	}
}

// ExecuteQuery starts the query, waits for it to finish and returns every
// result row keyed by lower-cased column name.
func (r *AthenaRepository) ExecuteQuery(ctx context.Context, sql string) ([]map[string]string, error) {
	start, err := r.client.StartQueryExecution(ctx, &athena.StartQueryExecutionInput{
		QueryString: aws.String(sql),
		QueryExecutionContext: &athenaTypes.QueryExecutionContext{
			Database: aws.String(r.database),
		},
		ResultConfiguration: &athenaTypes.ResultConfiguration{
			OutputLocation: aws.String(r.outputLocation),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start query execution: %w", err)
	}

	queryID := aws.ToString(start.QueryExecutionId)
	if err := r.waitForQuery(ctx, queryID); err != nil {
		return nil, err
	}
	return r.fetchResults(ctx, queryID)
}

// waitForQuery polls the execution state until it reaches a terminal state.
func (r *AthenaRepository) waitForQuery(ctx context.Context, queryID string) error {
	for {
		out, err := r.client.GetQueryExecution(ctx, &athena.GetQueryExecutionInput{
			QueryExecutionId: aws.String(queryID),
		})
		if err != nil {
			return fmt.Errorf("failed to poll query %s: %w", queryID, err)
		}

		switch state := out.QueryExecution.Status.State; state {
		case athenaTypes.QueryExecutionStateSucceeded:
			return nil
		case athenaTypes.QueryExecutionStateFailed, athenaTypes.QueryExecutionStateCancelled:
			reason := aws.ToString(out.QueryExecution.Status.StateChangeReason)
			return fmt.Errorf("query %s finished in state %s: %s", queryID, state, reason)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(queryPollInterval):
		}
	}
}

// fetchResults pages through the result set. Athena returns the header as the
// first row of the first page; column names come from the result metadata.
func (r *AthenaRepository) fetchResults(ctx context.Context, queryID string) ([]map[string]string, error) {
	var (
		columns []string
		rows    []map[string]string
	)

	paginator := athena.NewGetQueryResultsPaginator(r.client, &athena.GetQueryResultsInput{
		QueryExecutionId: aws.String(queryID),
	})

	firstPage := true
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch results for query %s: %w", queryID, err)
		}

		if columns == nil {
			for _, info := range page.ResultSet.ResultSetMetadata.ColumnInfo {
				columns = append(columns, strings.ToLower(aws.ToString(info.Name)))
			}
		}

		data := page.ResultSet.Rows
		if firstPage && len(data) > 0 {
			data = data[1:] // header row
			firstPage = false
		}

		for _, raw := range data {
			row := make(map[string]string, len(columns))
			for i, datum := range raw.Data {
				if i >= len(columns) {
					break
				}
				row[columns[i]] = aws.ToString(datum.VarCharValue)
			}
			rows = append(rows, row)
		}
	}

	r.console.LogInfo("Query %s returned %d rows", queryID, len(rows))
	return rows, nil
}
