package domain

import "time"

// ReportType selects which sections of the analysis a report carries.
type ReportType string

const (
	ReportDiagnostic ReportType = "diagnostic"
	ReportProposal   ReportType = "proposal"
	ReportExecutive  ReportType = "executive"
)

// ValidReportType reports whether t is one of the known report types.
func ValidReportType(t ReportType) bool {
	return t == ReportDiagnostic || t == ReportProposal || t == ReportExecutive
}

// Report is a generated analysis document. Generated once per type per
// consultation and immutable afterwards.
type Report struct {
	ID             string        `json:"id"`
	ConsultationID string        `json:"consultation_id"`
	Type           ReportType    `json:"type"`
	Payload        ReportPayload `json:"payload"`
	GeneratedAt    time.Time     `json:"generated_at"`
}

// ReportPayload is the full structured report body. Report types populate
// different subsets of it.
type ReportPayload struct {
	ExecutiveSummary   *ExecutiveSummary   `json:"executive_summary,omitempty"`
	CompanyOverview    *CompanyMetrics     `json:"company_overview,omitempty"`
	Bottlenecks        []BottleneckFinding `json:"bottlenecks,omitempty"`
	Insights           []Insight           `json:"insights,omitempty"`
	Recommendations    []string            `json:"recommendations,omitempty"`
	Roadmap            []RoadmapPhase      `json:"implementation_roadmap,omitempty"`
	IndustryComparison *IndustryComparison `json:"industry_comparison,omitempty"`
	Portfolio          *PortfolioSummary   `json:"portfolio,omitempty"`
}

// BottleneckFinding is a bottleneck annotated with its annualized impact for
// report output.
type BottleneckFinding struct {
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	Category            string   `json:"category"`
	AnnualHoursImpact   float64  `json:"annual_hours_impact"`
	AnnualCostImpact    float64  `json:"annual_cost_impact"`
	AutomationPotential float64  `json:"automation_potential"`
	Priority            Priority `json:"priority"`
}
