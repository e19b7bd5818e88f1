package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/compliance-atlas/pkg/format"
	"github.com/de-tools/compliance-atlas/pkg/models/domain"
	"github.com/de-tools/compliance-atlas/pkg/services/recommendation"
)

type TableConfig struct {
	LabelWidth int
	TierWidth  int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		LabelWidth: 28,
		TierWidth:  16,
	}
}

// Section is one requirement rendered as a tier comparison table.
type Section struct {
	ID     string
	Title  string
	Status string
	Rows   []domain.ComparisonRow
}

type Report struct {
	Title           string
	Currency        string
	Profile         domain.Profile
	Bundle          domain.RecommendationBundle
	SavingsProgress int
	Sections        []Section
	Guidance        []domain.TierGuidance
	Penalty         *domain.PenaltyRisk
}

// NewReport lays out a recommendation for the terminal. The penalty estimate
// is included only when the profile declares an annual revenue.
func NewReport(profile domain.Profile, bundle domain.RecommendationBundle, catalog *domain.Catalog, currency string) *Report {
	report := &Report{
		Title:           "Compliance cost estimate",
		Currency:        currency,
		Profile:         profile,
		Bundle:          bundle,
		SavingsProgress: recommendation.SavingsProgress(bundle.TotalSavings, catalog),
		Guidance:        recommendation.Guidance(),
	}

	for _, a := range bundle.Mandatory {
		report.Sections = append(report.Sections, newSection(a, "mandatory"))
	}
	for _, a := range bundle.Optional {
		report.Sections = append(report.Sections, newSection(a, "recommended"))
	}

	if profile.AnnualRevenue != nil {
		risk := recommendation.EstimatePenaltyRisk(*profile.AnnualRevenue)
		report.Penalty = &risk
	}
	return report
}

func newSection(a domain.Assessment, status string) Section {
	return Section{
		ID:     a.Requirement.ID,
		Title:  a.Requirement.Name,
		Status: status,
		Rows:   recommendation.ComparisonRows(a),
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

func (c *Reporter) funcs() template.FuncMap {
	return template.FuncMap{
		"money": format.Money,
		"formatRow": func(label, minimal, standard, maximal string) string {
			return fmt.Sprintf("| %-*s | %*s | %*s | %*s |",
				c.config.LabelWidth, label,
				c.config.TierWidth, minimal,
				c.config.TierWidth, standard,
				c.config.TierWidth, maximal)
		},
		"separator": func() string {
			tier := strings.Repeat("-", c.config.TierWidth+2)
			return fmt.Sprintf("+%s+%s+%s+%s+", strings.Repeat("-", c.config.LabelWidth+2), tier, tier, tier)
		},
		"cell":   cell,
		"budget": budgetCell,
		"join": func(infra []domain.Infrastructure) string {
			names := make([]string, len(infra))
			for i, v := range infra {
				names[i] = string(v)
			}
			return strings.Join(names, ", ")
		},
	}
}

func cell(kind domain.RowKind, v *float64) string {
	if v == nil {
		return "-"
	}
	switch kind {
	case domain.RowDeduction:
		return format.SignedMoney("-", *v)
	case domain.RowSurcharge:
		return format.SignedMoney("+", *v)
	default:
		return format.Money(*v)
	}
}

func budgetCell(b domain.BudgetComparison) string {
	if b.IsOverBudget {
		return format.SignedMoney("-", b.Remaining)
	}
	return format.Money(b.Remaining)
}

func (c *Reporter) Handle(report *Report) error {
	tmpl := `
{{.Title}} ({{.Currency}})

Sector: {{.Profile.Sector}}, size: {{.Profile.Size}}, maturity: {{.Profile.Maturity}}
Infrastructure: {{join .Profile.Infrastructure}}
Existing controls: {{money .Bundle.TotalSavings}} ({{.SavingsProgress}}% of attainable savings)
{{range .Sections}}
=== {{.Title}} [{{.Status}}] ===
{{separator}}
{{formatRow .ID "Economical" "Standard" "Premium"}}
{{separator}}
{{range .Rows}}{{formatRow .Label (cell .Kind .Minimal) (cell .Kind .Standard) (cell .Kind .Maximal)}}
{{end}}{{separator}}
{{end}}
=== Budget ({{.Profile.BudgetTier}}, ceiling {{money .Bundle.Budget.Ceiling}}) ===
{{separator}}
{{formatRow "" "Economical" "Standard" "Premium"}}
{{separator}}
{{with .Bundle}}{{formatRow "Mandatory total" (money .Totals.Minimal) (money .Totals.Standard) (money .Totals.Maximal)}}
{{formatRow "Remaining" (budget .Budget.Minimal) (budget .Budget.Standard) (budget .Budget.Maximal)}}
{{end}}{{separator}}
{{range .Guidance}}
=== {{.Title}} ===
{{.Approach}}:
{{range .Practices}}  - {{.}}
{{end}}Timeline: {{.TimelineMinMonths}}-{{.TimelineMaxMonths}} months
Resources: {{.Resources}}
Choose if: {{range $i, $c := .ChooseIf}}{{if $i}}; {{end}}{{$c}}{{end}}
{{end}}{{with .Penalty}}
=== Penalty risk ===
Annual revenue: {{money .AnnualRevenue}}
Administrative penalty: up to {{money .AdministrativePenalty}}
Penal fine: up to {{money .PenalFine}}
{{end}}`

	t, err := template.New("report").Funcs(c.funcs()).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}

// CatalogReport lists savings items grouped by category, followed by the
// requirements in catalog order.
type CatalogReport struct {
	Groups       []SavingsGroup
	MaxSavings   float64
	Requirements []domain.RequirementRecord
}

type SavingsGroup struct {
	Category domain.Category
	Items    []domain.SavingsItem
}

func NewCatalogReport(catalog *domain.Catalog) *CatalogReport {
	grouped := recommendation.GroupSavingsByCategory(catalog.Savings)

	report := &CatalogReport{
		MaxSavings:   catalog.MaxSavings(),
		Requirements: catalog.Requirements,
	}
	for _, category := range domain.Categories {
		if items := grouped[category]; len(items) > 0 {
			report.Groups = append(report.Groups, SavingsGroup{Category: category, Items: items})
		}
	}
	return report
}

func (c *Reporter) HandleCatalog(report *CatalogReport) error {
	tmpl := `
Existing controls (up to {{money .MaxSavings}})
{{range .Groups}}
=== {{.Category}} ===
{{range .Items}}- {{.ID}}: {{.Label}} ({{money .Amount}})
{{end}}{{end}}
Requirements
{{range .Requirements}}- {{.ID}}: {{.Name}}, {{if .Mandatory}}mandatory{{else}}recommended{{end}}, {{money .BaseCost}}{{if .CloudOnly}}, cloud only{{end}}
  sectors: {{range $i, $s := .Sectors}}{{if $i}}, {{end}}{{$s}}{{end}}
{{end}}`

	t, err := template.New("catalog").Funcs(c.funcs()).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
