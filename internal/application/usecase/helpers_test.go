package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/finreport/aws-spend-report-go/internal/domain/entity"
	"github.com/finreport/aws-spend-report-go/internal/shared/types"
)

// fakeConsole records log lines instead of printing them.
type fakeConsole struct {
	warnings []string
	errors   []string
	infos    []string
}

func (c *fakeConsole) Print(a ...interface{})                  {}
func (c *fakeConsole) Printf(format string, a ...interface{})  {}
func (c *fakeConsole) Println(a ...interface{})                {}
func (c *fakeConsole) LogInfo(format string, a ...interface{}) {
	c.infos = append(c.infos, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogWarning(format string, a ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogError(format string, a ...interface{}) {
	c.errors = append(c.errors, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogSuccess(format string, a ...interface{}) {}
func (c *fakeConsole) Status(message string) types.StatusHandle  { return nopStatus{} }

type nopStatus struct{}

func (nopStatus) Update(string) {}
func (nopStatus) Stop()         {}

// fakeQuery returns canned rows, or an error.
type fakeQuery struct {
	rows []map[string]string
	err  error
}

func (q *fakeQuery) ExecuteQuery(ctx context.Context, sql string) ([]map[string]string, error) {
	if q.err != nil {
		return nil, q.err
	}
	return q.rows, nil
}

// fakeChartRenderer captures the last spec and returns a synthetic URL.
type fakeChartRenderer struct {
	specs []entity.ChartSpec
}

func (r *fakeChartRenderer) RenderChartURL(spec entity.ChartSpec) (string, error) {
	r.specs = append(r.specs, spec)
	return fmt.Sprintf("chart://%d", len(r.specs)), nil
}

// fakeTableRenderer captures the last spec and returns a synthetic document.
type fakeTableRenderer struct {
	specs []entity.TableSpec
}

func (r *fakeTableRenderer) RenderHTMLTable(spec entity.TableSpec) (string, error) {
	r.specs = append(r.specs, spec)
	return fmt.Sprintf("<table data-n=%d></table>", len(r.specs)), nil
}

// fixedClock anchors "now" for deterministic windows.
func fixedClock(date string) Clock {
	t, err := time.Parse(entity.DateLayout, date)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func testDeps(query *fakeQuery) (Dependencies, *fakeConsole, *fakeChartRenderer, *fakeTableRenderer) {
	console := &fakeConsole{}
	charts := &fakeChartRenderer{}
	tables := &fakeTableRenderer{}
	deps := Dependencies{
		Query:   query,
		Charts:  charts,
		Tables:  tables,
		Console: console,
		Clock:   fixedClock("2017-09-30"),
	}
	return deps, console, charts, tables
}

func testConfig(ownerRegexp string, threshold float64, accounts map[string]string) ReportConfig {
	cfg, err := NewReportConfig(ownerRegexp, threshold, 30, accounts, "billing", "line_items")
	if err != nil {
		panic(err)
	}
	return cfg
}
