package render

import (
	"html/template"
	"strings"

	"github.com/finreport/aws-spend-report-go/internal/domain/entity"
	"github.com/finreport/aws-spend-report-go/internal/domain/repository"
)

var tableTemplate = template.Must(template.New("table").Parse(`<table border="1" cellpadding="4" cellspacing="0">
<thead>
<tr>{{range .Header}}<th>{{.}}</th>{{end}}</tr>
</thead>
<tbody>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</tbody>
{{if .Footer}}<tfoot>
<tr><td colspan="{{len .Header}}">{{.Footer}}</td></tr>
</tfoot>
{{end}}</table>`))

// HTMLTableRenderer renders a table description as an HTML fragment for
// inclusion in mail bodies.
type HTMLTableRenderer struct{}

func NewHTMLTableRenderer() repository.TableRenderer {
	return &HTMLTableRenderer{}
}

func (r *HTMLTableRenderer) RenderHTMLTable(spec entity.TableSpec) (string, error) {
	var sb strings.Builder
	if err := tableTemplate.Execute(&sb, spec); err != nil {
		return "", err
	}
	return sb.String(), nil
}
