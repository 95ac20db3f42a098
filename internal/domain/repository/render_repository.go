package repository

import (
	"github.com/finreport/aws-spend-report-go/internal/domain/entity"
)

// ChartRenderer turns a chart series description into an opaque URL.
type ChartRenderer interface {
	RenderChartURL(spec entity.ChartSpec) (string, error)
}

// TableRenderer turns a table payload into an HTML string.
type TableRenderer interface {
	RenderHTMLTable(spec entity.TableSpec) (string, error)
}
