package problemgen

import (
	"bytes"
	"text/template"

	"github.com/abhisek/mentalmath/internal/mathrand"
)

// wordData is the template context for word problems.
type wordData struct {
	A, B    string // operand strings
	Percent string // percent without the sign, e.g. "25"
	Name    string
}

var wordNames = []string{"Maya", "Leo", "Priya", "Sam", "Noor", "Kofi", "Ana", "Jun"}

var wordTemplates = map[string][]*template.Template{
	OpAdd: parseAll(
		"{{.Name}} buys a coffee for ${{.A}} and a muffin for ${{.B}}. How much is the total?",
		"{{.Name}} drove {{.A}} miles yesterday and {{.B}} miles today. What is the total distance?",
		"A book costs ${{.A}} and a pen costs ${{.B}}. What is the total cost?",
		"{{.Name}} has {{.A}} apples and picks {{.B}} more. How many apples are there now?",
		"Team A scored {{.A}} points and Team B scored {{.B}} points. How many points in total?",
	),
	OpSubtract: parseAll(
		"{{.Name}} has ${{.A}} and spends ${{.B}}. How much is left?",
		"A movie is {{.A}} minutes long. {{.Name}} has watched {{.B}} minutes. How many minutes are left?",
		"The temperature was {{.A}}° and dropped by {{.B}}°. What is it now?",
		"{{.Name}} needs {{.A}} points to win and has {{.B}}. How many more are needed?",
		"A book has {{.A}} pages. {{.Name}} has read {{.B}}. How many pages remain?",
	),
	OpMultiply: parseAll(
		"{{.Name}} buys {{.B}} items at ${{.A}} each. What is the total cost?",
		"A room is {{.A}} meters by {{.B}} meters. What is its area?",
		"{{.Name}} works {{.B}} hours at ${{.A}} an hour. How much is earned?",
		"There are {{.A}} rows of {{.B}} chairs. How many chairs are there?",
		"A car travels at {{.A}} mph for {{.B}} hours. How far does it go?",
	),
	OpDivide: parseAll(
		"{{.Name}} shares {{.A}} stickers equally among {{.B}} friends. How many does each friend get?",
		"{{.A}} students split into teams of {{.B}}. How many teams are there?",
		"A {{.A}} cm ribbon is cut into {{.B}} equal pieces. How long is each piece?",
	),
}

// percentTemplates phrase "P% of B" problems. The percent and the base
// are substituted separately so the sign never lands in the wrong place.
var percentTemplates = parseAll(
	"{{.Name}} leaves a {{.Percent}}% tip on a ${{.B}} bill. How much is the tip?",
	"A ${{.B}} jacket is {{.Percent}}% off. How many dollars is the discount?",
	"Sales tax is {{.Percent}}%. How much tax is charged on a ${{.B}} purchase?",
	"{{.Name}} answered {{.Percent}}% of {{.B}} questions correctly. How many questions is that?",
	"A tank holds {{.B}} liters and is {{.Percent}}% full. How many liters are in it?",
)

func parseAll(texts ...string) []*template.Template {
	out := make([]*template.Template, len(texts))
	for i, text := range texts {
		out[i] = template.Must(template.New("word").Parse(text))
	}
	return out
}

// ToWordProblem returns a copy of p phrased as a story. Problems with no
// matching template (fractions, powers, roots) are returned unchanged as a
// copy with IsWordProblem false.
func ToWordProblem(p *Problem, src mathrand.Source) *Problem {
	cp := *p

	var set []*template.Template
	switch {
	case p.Operand1.Kind == KindPercent && p.Operator == OpPercent:
		set = percentTemplates
	case p.Operand1.Kind == KindNumber && p.Operand2 != nil && p.Operand2.Kind == KindNumber:
		set = wordTemplates[p.Operator]
	}
	if len(set) == 0 {
		return &cp
	}

	data := wordData{
		A:       p.Operand1.String(),
		B:       p.B().String(),
		Percent: FormatNumber(p.Operand1.Value),
		Name:    mathrand.Pick(src, wordNames),
	}
	tmpl := mathrand.Pick(src, set)

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return &cp
	}
	cp.QuestionText = buf.String()
	cp.IsWordProblem = true
	return &cp
}
