package hints

// Protocol is one entry of the general mental-math manual.
type Protocol struct {
	Number  int
	Title   string
	Mission string
	Tactic  string
}

// Manual is the general-tips reference used when no specific hint applies.
type Manual struct {
	Mindset   string
	Protocols []Protocol
}

var manual = Manual{
	Mindset: "Be curious and confident. A mistake shows you exactly what to practice next.",
	Protocols: []Protocol{
		{Number: 1, Title: "General", Mission: "Know the core moves.", Tactic: "Break the problem into smaller pieces you can do in one step."},
		{Number: 2, Title: "Estimation", Mission: "Get close fast.", Tactic: "Round to the nearest 10 or 100 first so you know roughly where the answer lands."},
		{Number: 3, Title: "Patterns", Mission: "Spot the shortcut.", Tactic: "Look for numbers ending in 0 or 5, doubles and near-hundreds."},
		{Number: 4, Title: "Inverse Operations", Mission: "Check your work.", Tactic: "Check subtraction with addition and division with multiplication."},
	},
}

// GeneralManual returns a copy of the general-tips manual.
func GeneralManual() Manual {
	m := manual
	m.Protocols = append([]Protocol(nil), manual.Protocols...)
	return m
}
