package merge

import (
	"strings"
	"testing"
	"time"

	"construction_dashboard/internal/domain/entities"
)

const fullTemplate = `<h1>{{PROJECT_NAME}}</h1><p>{{CLIENT_NAME}}, {{CLIENT_ADDRESS}}</p>` +
	`<p>{{PROJECT_DURATION}} / {{ESTIMATED_BUDGET}} / {{AGREEMENT_DATE}} / {{NUMBER_OF_FLOORS}}</p>` +
	`{{ESTIMATION_TABLE}}<footer>{{PROJECT_NAME}}</footer>`

func testProject() entities.Project {
	return entities.Project{
		ID:              "PRJ001",
		Name:            "Green Villa",
		ClientName:      "R. Sharma",
		ClientAddress:   "12 MG Road",
		ProjectDuration: "12 months",
		EstimatedBudget: 50000,
		NumberOfFloors:  2,
		AgreementDate:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	}
}

func englishFormatter() Formatter {
	return NewFormatter("₹", "en")
}

func TestRender_WithActiveEstimation(t *testing.T) {
	active := entities.ProjectEstimation{
		ID:          "PE001",
		TotalAmount: 75000,
		Items: []entities.ProjectEstimationItem{
			{ID: "i1", LineItemID: "LI001", Quantity: 100, Rate: 350, Amount: 35000},
			{ID: "i2", LineItemID: "LI002", Quantity: 5000, Rate: 8, Amount: 40000, Notes: "red <clay>"},
		},
	}
	lineItems := map[string]entities.LineItem{
		"LI001": {ID: "LI001", Name: "Cement", Unit: "bag"},
		"LI002": {ID: "LI002", Name: "Bricks", Unit: "nos"},
	}

	out := Render(Input{Project: testProject(), Active: &active, LineItems: lineItems, Template: fullTemplate}, englishFormatter())

	for _, tok := range KnownTokens {
		if strings.Contains(out, tok) {
			t.Fatalf("token %s left in output: %s", tok, out)
		}
	}
	for _, want := range []string{
		"<h1>Green Villa</h1>",
		"<footer>Green Villa</footer>",
		"R. Sharma, 12 MG Road",
		"12 months / ₹75,000 / 15/03/2024 / 2",
		"<td>Cement</td><td>100</td><td>bag</td><td>₹350</td><td>₹35,000</td>",
		"<td>Bricks</td><td>5,000</td><td>nos</td><td>₹8</td><td>₹40,000</td><td>red &lt;clay&gt;</td>",
		"<strong>₹75,000</strong>",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output: %s", want, out)
		}
	}
}

func TestRender_FallbackWithoutActiveEstimation(t *testing.T) {
	out := Render(Input{Project: testProject(), Template: "{{ESTIMATED_BUDGET}}|{{ESTIMATION_TABLE}}"}, englishFormatter())

	if !strings.HasPrefix(out, "₹50,000|") {
		t.Fatalf("expected budget from project: %s", out)
	}
	for _, want := range []string{
		"<td>Material Cost</td><td>60%</td><td>₹30,000</td>",
		"<td>Labor Cost</td><td>30%</td><td>₹15,000</td>",
		"<td>Other Expenses</td><td>10%</td><td>₹5,000</td>",
		"<strong>₹50,000</strong>",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output: %s", want, out)
		}
	}
}

func TestRender_TokensMissingAndUnknown(t *testing.T) {
	out := Render(Input{Project: testProject(), Template: "Hello {{UNKNOWN}} world"}, englishFormatter())
	if out != "Hello {{UNKNOWN}} world" {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestRender_ValuesCannotInjectTokens(t *testing.T) {
	p := testProject()
	p.Name = "{{CLIENT_NAME}}"
	out := Render(Input{Project: p, Template: "{{PROJECT_NAME}}"}, englishFormatter())
	if strings.Contains(out, "{{") {
		t.Fatalf("placeholder survived substitution: %s", out)
	}
}

func TestRender_ZeroAgreementDate(t *testing.T) {
	p := testProject()
	p.AgreementDate = time.Time{}
	if out := Render(Input{Project: p, Template: "[{{AGREEMENT_DATE}}]"}, englishFormatter()); out != "[]" {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestFormatter(t *testing.T) {
	f := englishFormatter()
	cases := map[float64]string{
		0:         "0",
		350:       "350",
		1234.5:    "1,234.5",
		110000:    "110,000",
		75000.25:  "75,000.25",
		1234567.8: "1,234,567.8",
	}
	for in, want := range cases {
		if got := f.Number(in); got != want {
			t.Fatalf("Number(%v) = %q, want %q", in, got, want)
		}
	}
	if got := f.Currency(35000); got != "₹35,000" {
		t.Fatalf("unexpected currency: %s", got)
	}
	if got := NewFormatter("$", "not a locale!!").Number(1000); got != "1,000" {
		t.Fatalf("expected english fallback, got %s", got)
	}
}

func TestNumberToWords(t *testing.T) {
	cases := map[int64]string{
		0:          "Zero",
		5:          "Five Only",
		19:         "Nineteen Only",
		40:         "Forty Only",
		99:         "Ninety Nine Only",
		100:        "One Hundred Only",
		101:        "One Hundred One Only",
		1000:       "One Thousand Only",
		75000:      "Seventy Five Thousand Only",
		110000:     "One Lakh Ten Thousand Only",
		2500000:    "Twenty Five Lakh Only",
		10000000:   "One Crore Only",
		12345678:   "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight Only",
		1500000000: "One Hundred Fifty Crore Only",
	}
	for in, want := range cases {
		if got := NumberToWords(in); got != want {
			t.Fatalf("NumberToWords(%d) = %q, want %q", in, got, want)
		}
	}
}
