package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpendByResourceReports(t *testing.T) {
	query := &fakeQuery{rows: []map[string]string{
		{"user_owner": "jane.doe", "product_name": "Amazon EC2", "start_date": "2017-09-01", "cost": "120.0"},
		{"user_owner": "jane.doe", "product_name": "Amazon EC2", "start_date": "2017-09-02", "cost": "30.0"},
		{"user_owner": "jane.doe", "product_name": "Amazon S3", "start_date": "2017-09-01", "cost": "50.0"},
	}}
	deps, _, charts, tables := testDeps(query)
	service := NewSpendPerEmployeeByResource(deps, testConfig(`[a-z]+\.[a-z]+`, 0, nil))

	reports, err := service.Reports(context.Background())
	require.NoError(t, err)
	require.Len(t, reports, 1)

	report := reports[0]
	assert.Equal(t, "jane.doe", report.Owner)
	assert.Equal(t, "spend-per-employee-by-resource", report.Variant)
	assert.InDelta(t, 200.0, report.Total, 1e-9)
	assert.Equal(t, "chart://1", report.ChartURL)
	assert.Equal(t, "<table data-n=1></table>", report.HTMLTable)

	require.Len(t, charts.specs, 1)
	spec := charts.specs[0]
	assert.Equal(t, "Total spend for jane.doe by resource the past 30 days. 200.00 USD", spec.Title)
	require.Len(t, spec.Lines, 2)
	assert.Equal(t, "Amazon EC2 150.00", spec.Lines[0].Label)
	assert.Equal(t, "Amazon S3 50.00", spec.Lines[1].Label)
	assert.Len(t, spec.Lines[0].Values, 30)

	require.Len(t, tables.specs, 1)
	table := tables.specs[0]
	assert.Equal(t, "Resource", table.Header[0])
	assert.Equal(t, "Total", table.Header[len(table.Header)-1])
	assert.Equal(t, "Amazon EC2 ($)", table.Rows[0][0])
	assert.Equal(t, "150.00", table.Rows[0][len(table.Rows[0])-1])
	assert.Equal(t, "Total: $200.00", table.Footer)
}

func TestSpendByResourceThresholdFiltersOwner(t *testing.T) {
	query := &fakeQuery{rows: []map[string]string{
		{"user_owner": "jane.doe", "product_name": "Amazon EC2", "start_date": "2017-09-01", "cost": "1.0"},
		{"user_owner": "john.doe", "product_name": "Amazon EC2", "start_date": "2017-09-01", "cost": "9.0"},
	}}
	deps, console, _, _ := testDeps(query)
	service := NewSpendPerEmployeeByResource(deps, testConfig(`[a-z]+\.[a-z]+`, 5.0, nil))

	reports, err := service.Reports(context.Background())
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "john.doe", reports[0].Owner)
	assert.Contains(t, console.infos, "Owner jane.doe fell beneath the report threshold of 5.00 (total: 1.00)")
}

func TestSpendByResourceQuerySubstitution(t *testing.T) {
	deps, _, _, _ := testDeps(&fakeQuery{})
	service := NewSpendPerEmployeeByResource(deps, testConfig(`[a-z]+\.[a-z]+`, 0, nil))

	assert.Contains(t, service.sql, "FROM billing.line_items")
	assert.Contains(t, service.sql, "-30")
	assert.NotContains(t, service.sql, "databasename")
	assert.NotContains(t, service.sql, "daysback")
}
