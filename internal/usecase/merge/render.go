package merge

import (
	"html"
	"strconv"
	"strings"

	"construction_dashboard/internal/domain/entities"
)

// Budget split used when a project has no active estimation yet.
var fallbackShares = []struct {
	label   string
	percent int
}{
	{"Material Cost", 60},
	{"Labor Cost", 30},
	{"Other Expenses", 10},
}

// Input is everything Render needs. Active is nil when the project has no
// active estimation; LineItems must hold every line item Active references.
type Input struct {
	Project   entities.Project
	Active    *entities.ProjectEstimation
	LineItems map[string]entities.LineItem
	Template  string
}

// Render substitutes every known token in the template in a single pass.
// Tokens absent from the template are ignored, unknown tokens are left as is.
func Render(in Input, f Formatter) string {
	budget := in.Project.EstimatedBudget
	table := FallbackTable(budget, f)
	if in.Active != nil {
		budget = in.Active.TotalAmount
		table = EstimationTable(*in.Active, in.LineItems, f)
	}

	agreementDate := ""
	if !in.Project.AgreementDate.IsZero() {
		agreementDate = in.Project.AgreementDate.Format(AgreementDateLayout)
	}

	r := strings.NewReplacer(
		TokenProjectName, escape(in.Project.Name),
		TokenClientName, escape(in.Project.ClientName),
		TokenClientAddress, escape(in.Project.ClientAddress),
		TokenProjectDuration, escape(in.Project.ProjectDuration),
		TokenEstimatedBudget, escape(f.Currency(budget)),
		TokenAgreementDate, agreementDate,
		TokenNumberOfFloors, strconv.Itoa(in.Project.NumberOfFloors),
		TokenEstimationTable, table,
	)
	return r.Replace(in.Template)
}

// EstimationTable renders one row per estimation item plus a totals row.
func EstimationTable(e entities.ProjectEstimation, lineItems map[string]entities.LineItem, f Formatter) string {
	var b strings.Builder
	b.WriteString(`<table class="estimation-table" style="width:100%;border-collapse:collapse" border="1">`)
	b.WriteString(`<thead><tr><th>Item</th><th>Quantity</th><th>Unit</th><th>Rate</th><th>Amount</th><th>Notes</th></tr></thead><tbody>`)
	for _, it := range e.Items {
		name, unit := it.LineItemID, "-"
		if li, ok := lineItems[it.LineItemID]; ok {
			name, unit = li.Name, li.Unit
		}
		b.WriteString("<tr>")
		cell(&b, escape(name))
		cell(&b, f.Number(it.Quantity))
		cell(&b, escape(unit))
		cell(&b, f.Currency(it.Rate))
		cell(&b, f.Currency(it.Amount))
		cell(&b, escape(it.Notes))
		b.WriteString("</tr>")
	}
	b.WriteString(`</tbody><tfoot><tr><td colspan="4"><strong>Total</strong></td><td><strong>`)
	b.WriteString(f.Currency(e.TotalAmount))
	b.WriteString(`</strong></td><td></td></tr></tfoot></table>`)
	return b.String()
}

// FallbackTable splits the budget 60/30/10 into material, labor and other costs.
func FallbackTable(budget float64, f Formatter) string {
	var b strings.Builder
	b.WriteString(`<table class="estimation-table" style="width:100%;border-collapse:collapse" border="1">`)
	b.WriteString(`<thead><tr><th>Description</th><th>Share</th><th>Amount</th></tr></thead><tbody>`)
	for _, s := range fallbackShares {
		b.WriteString("<tr>")
		cell(&b, s.label)
		cell(&b, strconv.Itoa(s.percent)+"%")
		cell(&b, f.Currency(entities.LineAmount(budget, float64(s.percent)/100)))
		b.WriteString("</tr>")
	}
	b.WriteString(`</tbody><tfoot><tr><td colspan="2"><strong>Total</strong></td><td><strong>`)
	b.WriteString(f.Currency(budget))
	b.WriteString(`</strong></td></tr></tfoot></table>`)
	return b.String()
}

func cell(b *strings.Builder, v string) {
	b.WriteString("<td>")
	b.WriteString(v)
	b.WriteString("</td>")
}

// escape HTML-escapes data values and breaks "{{" so substituted text can never
// read as a placeholder.
func escape(s string) string {
	return strings.ReplaceAll(html.EscapeString(s), "{{", "&#123;&#123;")
}
