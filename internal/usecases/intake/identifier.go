package intake

import (
	"fmt"
	"regexp"

	"github.com/vfg2006/business-doctor-api/internal/domain"
)

// painPattern describes one recognizable operational pain. Weekly hours and
// automation potential are conservative defaults for the pattern; the cost
// side comes from the industry hourly rate at identification time.
type painPattern struct {
	name                string
	category            string
	description         string
	pattern             *regexp.Regexp
	weeklyHours         float64
	automationPotential float64
}

// Identifier detects operational bottlenecks in transcript text.
type Identifier struct {
	patterns []painPattern
}

func NewIdentifier() *Identifier {
	return &Identifier{
		patterns: []painPattern{
			{
				name:                "Manual process overhead",
				category:            "operations",
				description:         "Work performed by hand that software could carry end to end",
				pattern:             regexp.MustCompile(`(?i)\bmanual(?:ly)?\b|\bby hand\b`),
				weeklyHours:         8,
				automationPotential: 0.80,
			},
			{
				name:                "Spreadsheet-based tracking",
				category:            "data_management",
				description:         "Core records kept in spreadsheets instead of a system of record",
				pattern:             regexp.MustCompile(`(?i)\b(?:excel|spreadsheets?)\b`),
				weeklyHours:         6,
				automationPotential: 0.85,
			},
			{
				name:                "Revenue leakage",
				category:            "sales",
				description:         "Leads, follow-ups or billable work slipping through the cracks",
				pattern:             regexp.MustCompile(`(?i)\b(?:miss(?:ed|ing|es)?|los(?:e|es|ing|t)|forg(?:et|ets|etting|ot|otten))\b`),
				weeklyHours:         5,
				automationPotential: 0.70,
			},
			{
				name:                "Slow turnaround",
				category:            "operations",
				description:         "Delays and waiting time built into the delivery process",
				pattern:             regexp.MustCompile(`(?i)\b(?:slow(?:ly)?|delays?|delayed|waiting|backlog(?:ged)?)\b`),
				weeklyHours:         4,
				automationPotential: 0.60,
			},
			{
				name:                "Duplicate data entry",
				category:            "data_management",
				description:         "The same information typed into more than one place",
				pattern:             regexp.MustCompile(`(?i)\b(?:re-?enter(?:ing)?|re-?typ(?:e|ing)|double entry|copy(?:ing)?[\s-]*past(?:e|ing))\b`),
				weeklyHours:         5,
				automationPotential: 0.90,
			},
			{
				name:                "Chasing and follow-up",
				category:            "communication",
				description:         "Time spent reminding clients or staff instead of automated nudges",
				pattern:             regexp.MustCompile(`(?i)\b(?:chas(?:e|es|ing)|remind(?:er|ers|ing)?|follow(?:ing)?[\s-]*up)\b`),
				weeklyHours:         4,
				automationPotential: 0.75,
			},
			{
				name:                "Scheduling friction",
				category:            "communication",
				description:         "Back and forth to book meetings or coordinate calendars",
				pattern:             regexp.MustCompile(`(?i)\b(?:schedul\w*|calendar|booking|appointments?)\b[^.!?]{0,40}\b(?:back and forth|hard|difficult|mess\w*|nightmare|juggl\w*)\b`),
				weeklyHours:         3,
				automationPotential: 0.80,
			},
		},
	}
}

// Identify returns the bottleneck candidates found in the text, at most one
// per pattern. Candidates carry impact figures but no identity; the caller
// assigns IDs and deduplicates across the consultation.
func (i *Identifier) Identify(text string, hourlyRate float64) []domain.Bottleneck {
	text = SanitizeInput(text)
	if text == "" {
		return nil
	}

	found := make([]domain.Bottleneck, 0)
	for _, p := range i.patterns {
		if !p.pattern.MatchString(text) {
			continue
		}

		weeklyCost := p.weeklyHours * hourlyRate
		found = append(found, domain.Bottleneck{
			Name:                p.name,
			Description:         fmt.Sprintf("%s, estimated at %.0f hours per week", p.description, p.weeklyHours),
			Category:            p.category,
			TimeImpactHours:     p.weeklyHours,
			CostImpact:          weeklyCost,
			AutomationPotential: p.automationPotential,
			Priority:            domain.PriorityForAnnualCost(weeklyCost * 52),
		})
	}

	return found
}
