package repository

import "context"

// QueryRepository defines the interface for running analytic SQL against the
// billing data. Results are an opaque finite sequence of rows, each keyed by
// lower-cased column name. Retries and connection management stay behind this
// boundary.
type QueryRepository interface {
	ExecuteQuery(ctx context.Context, sql string) ([]map[string]string, error)
}
