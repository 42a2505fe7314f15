package domain

import "fmt"

// NotComputed is the sentinel shown when a ratio has no defined value, e.g. the
// payback period of a portfolio with zero projected savings.
const NotComputed = "not computed"

// RatioMetric is a computed ratio (ROI percentage, payback months) that may be
// undefined for degenerate inputs. Undefined values are reported, never raised.
type RatioMetric struct {
	Value    float64 `json:"value,omitempty"`
	Computed bool    `json:"computed"`
	Display  string  `json:"display"`
}

func ComputedRatio(value float64, format string) RatioMetric {
	return RatioMetric{
		Value:    value,
		Computed: true,
		Display:  fmt.Sprintf(format, value),
	}
}

func NotComputedRatio() RatioMetric {
	return RatioMetric{Display: NotComputed}
}

// BenchmarkRow holds the static reference values for one industry.
type BenchmarkRow struct {
	Industry           string  `json:"industry"`
	RevenuePerEmployee float64 `json:"revenue_per_employee"`
	BillableHoursPct   float64 `json:"billable_hours_percentage"`
	AdminOverheadPct   float64 `json:"admin_overhead_percentage"`
	TypicalHourlyRate  float64 `json:"typical_hourly_rate"`
}

// IndustryComparison benchmarks a company against its industry row.
type IndustryComparison struct {
	Industry             string  `json:"industry"`
	RevenuePerEmployee   float64 `json:"revenue_per_employee"`
	IndustryAverage      float64 `json:"industry_average"`
	DifferencePercentage float64 `json:"difference_percentage"`
	PerformanceRating    string  `json:"performance_rating"`
	ImprovementPotential float64 `json:"improvement_potential"`
	EstimatedBillablePct float64 `json:"estimated_billable_percentage"`
	EstimatedOverheadPct float64 `json:"estimated_overhead_percentage"`
	IndustryHourlyRate   float64 `json:"industry_hourly_rate"`
}

// ROICalculation is the return-on-investment analysis for one improvement.
type ROICalculation struct {
	Description         string      `json:"description"`
	CurrentCost         float64     `json:"current_cost"`
	ImprovedCost        float64     `json:"improved_cost"`
	ImplementationCost  float64     `json:"implementation_cost"`
	TimeToImplementDays int         `json:"time_to_implement_days"`
	AnnualSavings       float64     `json:"annual_savings"`
	ROIPercentage       RatioMetric `json:"roi_percentage"`
	PaybackMonths       RatioMetric `json:"payback_period_months"`
	Confidence          float64     `json:"confidence"`
}

// PortfolioSummary aggregates ROI across all improvements of a consultation.
type PortfolioSummary struct {
	TotalCurrentCost        float64     `json:"total_current_cost"`
	TotalImprovedCost       float64     `json:"total_improved_cost"`
	TotalImplementationCost float64     `json:"total_implementation_cost"`
	TotalAnnualSavings      float64     `json:"total_annual_savings"`
	ROIPercentage           RatioMetric `json:"portfolio_roi_percentage"`
	PaybackMonths           RatioMetric `json:"portfolio_payback_months"`
	ImprovementCount        int         `json:"number_of_improvements"`
}

// Opportunity is one ranked improvement shown in the executive summary.
type Opportunity struct {
	Rank             int         `json:"rank"`
	Bottleneck       string      `json:"bottleneck"`
	AnnualSavings    float64     `json:"annual_savings"`
	AnnualCostImpact float64     `json:"annual_cost_impact"`
	ROIPercentage    RatioMetric `json:"roi_percentage"`
	PaybackMonths    RatioMetric `json:"payback_months"`
	Confidence       float64     `json:"confidence"`
}

// RoadmapPhase is one phase of the implementation roadmap.
type RoadmapPhase struct {
	Phase           int      `json:"phase"`
	Name            string   `json:"name"`
	Duration        string   `json:"duration"`
	Projects        []string `json:"projects"`
	Investment      float64  `json:"investment"`
	ExpectedSavings float64  `json:"expected_savings"`
}

// CompanySnapshot is the header block of the executive summary.
type CompanySnapshot struct {
	Name          string  `json:"name"`
	Employees     int     `json:"employees"`
	AnnualRevenue float64 `json:"annual_revenue"`
	Industry      string  `json:"industry"`
	SizeCategory  string  `json:"size_category"`
}

// KeyFindings summarizes the inefficiencies discovered during intake.
type KeyFindings struct {
	TotalAnnualHoursWasted float64 `json:"total_inefficiency_hours_annual"`
	TotalAnnualCostImpact  float64 `json:"total_inefficiency_cost_annual"`
	BottleneckCount        int     `json:"number_of_bottlenecks"`
	AutomationOpportunity  float64 `json:"automation_opportunity"`
	AutomationReadiness    string  `json:"automation_readiness"`
	GrowthPotential        string  `json:"growth_potential"`
}

// ROIHighlights carries the headline investment numbers.
type ROIHighlights struct {
	TotalInvestmentRequired float64     `json:"total_investment_required"`
	AnnualSavingsPotential  float64     `json:"annual_savings_potential"`
	ROIPercentage           RatioMetric `json:"roi_percentage"`
	PaybackMonths           RatioMetric `json:"payback_period_months"`
}

// ExecutiveSummary combines all analysis output for decision makers.
type ExecutiveSummary struct {
	CompanySnapshot    CompanySnapshot    `json:"company_snapshot"`
	KeyFindings        KeyFindings        `json:"key_findings"`
	ROIHighlights      ROIHighlights      `json:"roi_highlights"`
	IndustryComparison IndustryComparison `json:"industry_comparison"`
	TopOpportunities   []Opportunity      `json:"top_opportunities"`
	Recommendation     string             `json:"executive_recommendation"`
}
