package generate

// Scenario describes the circulation activity generated for one patron:
// how many holds, overdues and almost-overdues they carry. The list is
// fixed in code; it is the developer-controlled input of the pipeline.
type Scenario struct {
	Holds          int
	Overdues       int
	AlmostOverdues int
	Description    string
}

// DefaultScenarios returns the fixed patron mix, modeled on activity
// patterns observed in the production system: a few heavy users, a band of
// mixed-activity patrons, many single-item patrons and a tail with no
// current activity.
func DefaultScenarios() []Scenario {
	scenarios := []Scenario{
		// High-volume users.
		{Holds: 0, Overdues: 7, AlmostOverdues: 0, Description: "Music enthusiast (7 overdues)"},
		{Holds: 0, Overdues: 5, AlmostOverdues: 0, Description: "Heavy borrower (5 overdues)"},
		{Holds: 0, Overdues: 4, AlmostOverdues: 1, Description: "Series collector (4 overdues)"},

		// Multi-hold users.
		{Holds: 3, Overdues: 0, AlmostOverdues: 0, Description: "Topic collector (3 holds)"},
		{Holds: 2, Overdues: 0, AlmostOverdues: 1, Description: "Movie fan (2 holds)"},
		{Holds: 2, Overdues: 0, AlmostOverdues: 0, Description: "Fiction reader (2 holds)"},

		// Mixed activity.
		{Holds: 2, Overdues: 1, AlmostOverdues: 0, Description: "Mixed patron (2 holds, 1 overdue)"},
		{Holds: 1, Overdues: 2, AlmostOverdues: 1, Description: "Mixed patron (1 hold, 2 overdues)"},
		{Holds: 1, Overdues: 3, AlmostOverdues: 0, Description: "Mixed patron (1 hold, 3 overdues)"},
		{Holds: 3, Overdues: 1, AlmostOverdues: 1, Description: "Active reader (3 holds, 1 overdue)"},
	}

	// Single-item users.
	for i := 0; i < 4; i++ {
		scenarios = append(scenarios, Scenario{Holds: 1, Description: "Single hold patron"})
	}
	scenarios = append(scenarios, Scenario{AlmostOverdues: 1, Description: "Almost overdue only"})
	for i := 0; i < 4; i++ {
		scenarios = append(scenarios, Scenario{Overdues: 1, Description: "Single overdue patron"})
	}
	scenarios = append(scenarios, Scenario{AlmostOverdues: 2, Description: "Two almost overdues"})

	// No current activity.
	for i := 0; i < 5; i++ {
		scenarios = append(scenarios, Scenario{Description: "Inactive patron"})
	}

	return scenarios
}
