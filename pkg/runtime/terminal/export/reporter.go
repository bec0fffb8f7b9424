package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/leak-finder/pkg/models/domain"
)

type TableConfig struct {
	ResourceWidth int
	RegionWidth   int
	WasteWidth    int
	FindingWidth  int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		ResourceWidth: 24,
		RegionWidth:   16,
		WasteWidth:    12,
		FindingWidth:  60,
	}
}

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(result domain.AuditResult) error {
	funcMap := template.FuncMap{
		"formatRow": func(resource, region string, waste interface{}, finding string) string {
			if len(finding) > c.config.FindingWidth {
				finding = finding[:c.config.FindingWidth-3] + "..."
			}
			return fmt.Sprintf("| %-*s | %-*s | %-*v | %-*s |",
				c.config.ResourceWidth, resource,
				c.config.RegionWidth, region,
				c.config.WasteWidth, waste,
				c.config.FindingWidth, finding)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+",
				strings.Repeat("-", c.config.ResourceWidth+2),
				strings.Repeat("-", c.config.RegionWidth+2),
				strings.Repeat("-", c.config.WasteWidth+2),
				strings.Repeat("-", c.config.FindingWidth+2))
		},
		"money": func(v float64) string {
			return fmt.Sprintf("%.2f", v)
		},
	}

	tmpl := `
Cost Leakage Audit

Waste Score: {{printf "%.0f" .WasteScore}}/100
Potential Savings: USD {{money .TotalPotentialSavings}}/month
Forecasted Annual Waste: USD {{money .ForecastedAnnualWaste}}
Carbon Savings: {{money .CarbonSavingsKg}} kg CO2

{{.Summary}}

{{separator}}
{{formatRow "Resource" "Region" "Waste (USD)" "Finding"}}
{{separator}}
{{range .Leaks}}{{formatRow .ResourceName .Region (money .MonthlyWaste) .Finding}}
{{end}}{{separator}}
`

	t, err := template.New("audit").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, result)
}
