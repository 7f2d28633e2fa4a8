package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/bucketwise/bucketwise/internal/domain"
)

// HTMLFormatter produces a self-contained HTML report with the summary
// panel and the year-wise projection table.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"amount": FormatAmount,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	data := struct {
		*domain.SimulationResult
		Exhausted bool
	}{
		SimulationResult: result,
		Exhausted:        result.ExhaustionAge != nil,
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
