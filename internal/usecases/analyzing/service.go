// Package analyzing turns the raw intake findings of a consultation into
// financial analysis: per-bottleneck ROI, portfolio totals, industry
// comparison, insights and the executive summary.
package analyzing

import (
	"fmt"
	"sort"

	"github.com/vfg2006/business-doctor-api/internal/config"
	"github.com/vfg2006/business-doctor-api/internal/domain"
	"github.com/vfg2006/business-doctor-api/pkg/utils"
)

type Analyzer interface {
	AnalyzeROI(bottleneck *domain.Bottleneck, employeeCount int) domain.ROICalculation
	Portfolio(calculations []domain.ROICalculation) domain.PortfolioSummary
	CompareToIndustry(metrics domain.CompanyMetrics) domain.IndustryComparison
	DeriveInsights(bottlenecks []*domain.Bottleneck) []domain.Insight
	BuildRoadmap(bottlenecks []*domain.Bottleneck, employeeCount int) []domain.RoadmapPhase
	Recommendations(metrics domain.CompanyMetrics, bottlenecks []*domain.Bottleneck) []string
	BuildExecutiveSummary(metrics domain.CompanyMetrics, bottlenecks []*domain.Bottleneck) domain.ExecutiveSummary
}

type analyzer struct {
	cfg config.Analysis
}

func NewAnalyzer(cfg config.Analysis) Analyzer {
	return &analyzer{cfg: cfg}
}

// AnalyzeROI projects the return of fixing one bottleneck. The improved cost
// assumes the automation potential is fully realized; the implementation cost
// comes from the savings tier scaled by the company's headcount band.
func (a *analyzer) AnalyzeROI(bottleneck *domain.Bottleneck, employeeCount int) domain.ROICalculation {
	currentCost := bottleneck.AnnualCostImpact()
	improvedCost := currentCost * (1 - bottleneck.AutomationPotential)
	annualSavings := currentCost - improvedCost

	implementationCost, durationDays := a.implementationTier(annualSavings, employeeCount)

	return domain.ROICalculation{
		Description:         fmt.Sprintf("Automate: %s", bottleneck.Name),
		CurrentCost:         utils.RoundWithTwoDecimalPlace(currentCost),
		ImprovedCost:        utils.RoundWithTwoDecimalPlace(improvedCost),
		ImplementationCost:  implementationCost,
		TimeToImplementDays: durationDays,
		AnnualSavings:       utils.RoundWithTwoDecimalPlace(annualSavings),
		ROIPercentage:       roiPercentage(annualSavings, implementationCost),
		PaybackMonths:       paybackMonths(annualSavings, implementationCost),
		Confidence:          bottleneck.AutomationPotential,
	}
}

// Portfolio aggregates the individual calculations. The portfolio ratios are
// computed over the totals, with the same degenerate-input handling as the
// per-item ratios.
func (a *analyzer) Portfolio(calculations []domain.ROICalculation) domain.PortfolioSummary {
	summary := domain.PortfolioSummary{
		ImprovementCount: len(calculations),
	}

	for _, calc := range calculations {
		summary.TotalCurrentCost += calc.CurrentCost
		summary.TotalImprovedCost += calc.ImprovedCost
		summary.TotalImplementationCost += calc.ImplementationCost
		summary.TotalAnnualSavings += calc.AnnualSavings
	}

	summary.ROIPercentage = roiPercentage(summary.TotalAnnualSavings, summary.TotalImplementationCost)
	summary.PaybackMonths = paybackMonths(summary.TotalAnnualSavings, summary.TotalImplementationCost)

	return summary
}

// CompareToIndustry benchmarks revenue per employee against the industry row.
// Without an employee count there is nothing to divide by and the comparison
// reports insufficient data instead of guessing.
func (a *analyzer) CompareToIndustry(metrics domain.CompanyMetrics) domain.IndustryComparison {
	row := BenchmarkFor(metrics.Industry)

	comparison := domain.IndustryComparison{
		Industry:             row.Industry,
		IndustryAverage:      row.RevenuePerEmployee,
		EstimatedBillablePct: row.BillableHoursPct,
		EstimatedOverheadPct: row.AdminOverheadPct,
		IndustryHourlyRate:   row.TypicalHourlyRate,
	}

	if metrics.EmployeeCount <= 0 || metrics.AnnualRevenue <= 0 {
		comparison.PerformanceRating = "insufficient data"
		return comparison
	}

	revenuePerEmployee := metrics.AnnualRevenue / float64(metrics.EmployeeCount)
	differencePct := (revenuePerEmployee - row.RevenuePerEmployee) / row.RevenuePerEmployee * 100

	comparison.RevenuePerEmployee = utils.RoundWithTwoDecimalPlace(revenuePerEmployee)
	comparison.DifferencePercentage = utils.RoundWithTwoDecimalPlace(differencePct)
	comparison.PerformanceRating = performanceRating(differencePct)

	if gap := row.RevenuePerEmployee - revenuePerEmployee; gap > 0 {
		comparison.ImprovementPotential = utils.RoundWithTwoDecimalPlace(gap * float64(metrics.EmployeeCount))
	}

	return comparison
}

// DeriveInsights converts bottlenecks into actionable insights. The potential
// value is the projected annual savings and the effort follows the
// implementation tier of those savings.
func (a *analyzer) DeriveInsights(bottlenecks []*domain.Bottleneck) []domain.Insight {
	insights := make([]domain.Insight, 0, len(bottlenecks))

	for _, bottleneck := range bottlenecks {
		savings := bottleneck.AnnualCostImpact() * bottleneck.AutomationPotential

		insights = append(insights, domain.Insight{
			ConsultationID: bottleneck.ConsultationID,
			Category:       bottleneck.Category,
			Text: fmt.Sprintf("Automating %q could recover about %.0f hours and $%.0f per year",
				bottleneck.Name, bottleneck.AnnualHoursImpact()*bottleneck.AutomationPotential, savings),
			Confidence:     bottleneck.AutomationPotential,
			PotentialValue: utils.RoundWithTwoDecimalPlace(savings),
			Effort:         a.effortForSavings(savings),
		})
	}

	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].PriorityScore() > insights[j].PriorityScore()
	})

	return insights
}

// BuildRoadmap splits the improvements into three phases: quick wins first,
// ranked by automation potential, then core systems, then scale work.
func (a *analyzer) BuildRoadmap(bottlenecks []*domain.Bottleneck, employeeCount int) []domain.RoadmapPhase {
	ranked := make([]*domain.Bottleneck, len(bottlenecks))
	copy(ranked, bottlenecks)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AutomationPotential > ranked[j].AutomationPotential
	})

	phases := []domain.RoadmapPhase{
		{Phase: 1, Name: "Quick wins", Duration: "1-2 months"},
		{Phase: 2, Name: "Core systems", Duration: "3-6 months"},
		{Phase: 3, Name: "Scale and optimize", Duration: "6-12 months"},
	}

	for i, bottleneck := range ranked {
		phase := &phases[min(i*3/max(len(ranked), 1), 2)]

		savings := bottleneck.AnnualCostImpact() * bottleneck.AutomationPotential
		investment, _ := a.implementationTier(savings, employeeCount)

		phase.Projects = append(phase.Projects, bottleneck.Name)
		phase.Investment += investment
		phase.ExpectedSavings += utils.RoundWithTwoDecimalPlace(savings)
	}

	return phases
}

// BuildExecutiveSummary assembles the decision-maker view of the whole
// consultation. A consultation with no bottlenecks still yields a complete,
// internally consistent summary with zeroed findings.
func (a *analyzer) BuildExecutiveSummary(metrics domain.CompanyMetrics, bottlenecks []*domain.Bottleneck) domain.ExecutiveSummary {
	calculations := make([]domain.ROICalculation, 0, len(bottlenecks))
	for _, bottleneck := range bottlenecks {
		calculations = append(calculations, a.AnalyzeROI(bottleneck, metrics.EmployeeCount))
	}
	portfolio := a.Portfolio(calculations)

	findings := domain.KeyFindings{
		BottleneckCount: len(bottlenecks),
	}
	for _, bottleneck := range bottlenecks {
		findings.TotalAnnualHoursWasted += bottleneck.AnnualHoursImpact()
		findings.TotalAnnualCostImpact += bottleneck.AnnualCostImpact()
		findings.AutomationOpportunity += bottleneck.AnnualCostImpact() * bottleneck.AutomationPotential
	}
	findings.TotalAnnualCostImpact = utils.RoundWithTwoDecimalPlace(findings.TotalAnnualCostImpact)
	findings.AutomationOpportunity = utils.RoundWithTwoDecimalPlace(findings.AutomationOpportunity)
	findings.AutomationReadiness = automationReadiness(metrics, bottlenecks)
	findings.GrowthPotential = growthPotential(metrics, bottlenecks)

	return domain.ExecutiveSummary{
		CompanySnapshot: domain.CompanySnapshot{
			Name:          metrics.CompanyName,
			Employees:     metrics.EmployeeCount,
			AnnualRevenue: metrics.AnnualRevenue,
			Industry:      metrics.Industry,
			SizeCategory:  SizeCategory(metrics.EmployeeCount),
		},
		KeyFindings: findings,
		ROIHighlights: domain.ROIHighlights{
			TotalInvestmentRequired: portfolio.TotalImplementationCost,
			AnnualSavingsPotential:  portfolio.TotalAnnualSavings,
			ROIPercentage:           portfolio.ROIPercentage,
			PaybackMonths:           portfolio.PaybackMonths,
		},
		IndustryComparison: a.CompareToIndustry(metrics),
		TopOpportunities:   topOpportunities(bottlenecks, calculations),
		Recommendation:     recommendation(portfolio, bottlenecks),
	}
}

// Recommendations produces the action list for the proposal report, ordered
// from most to least urgent.
func (a *analyzer) Recommendations(metrics domain.CompanyMetrics, bottlenecks []*domain.Bottleneck) []string {
	recommendations := make([]string, 0, len(bottlenecks)+2)

	ranked := make([]*domain.Bottleneck, len(bottlenecks))
	copy(ranked, bottlenecks)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AnnualCostImpact() > ranked[j].AnnualCostImpact()
	})

	for _, bottleneck := range ranked {
		switch bottleneck.Priority {
		case domain.PriorityCritical:
			recommendations = append(recommendations, fmt.Sprintf(
				"Address %q immediately: it drains an estimated $%.0f per year.",
				bottleneck.Name, bottleneck.AnnualCostImpact()))
		case domain.PriorityHigh:
			recommendations = append(recommendations, fmt.Sprintf(
				"Plan automation for %q this quarter (estimated $%.0f per year at stake).",
				bottleneck.Name, bottleneck.AnnualCostImpact()))
		default:
			recommendations = append(recommendations, fmt.Sprintf(
				"Schedule %q for a later phase once the bigger items are under control.",
				bottleneck.Name))
		}
	}

	if len(metrics.Technologies) == 0 {
		recommendations = append(recommendations,
			"Document the current tool stack; no systems were mentioned during intake.")
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations,
			"No immediate action required. Re-run the assessment after the next growth phase.")
	}

	return recommendations
}

// implementationTier maps projected annual savings to an investment size and
// duration. Bigger prizes justify bigger builds, and the same build costs more
// to land in a bigger organization, so the tier base is scaled by the
// headcount band.
func (a *analyzer) implementationTier(annualSavings float64, employeeCount int) (cost float64, days int) {
	multiplier := sizeCostMultiplier(employeeCount)

	switch {
	case annualSavings < 25_000:
		return utils.RoundWithTwoDecimalPlace(a.cfg.LowTierCost * multiplier), 30
	case annualSavings < 75_000:
		return utils.RoundWithTwoDecimalPlace(a.cfg.MediumTierCost * multiplier), 60
	default:
		return utils.RoundWithTwoDecimalPlace(a.cfg.HighTierCost * multiplier), 90
	}
}

// sizeCostMultiplier scales implementation cost by headcount band, following
// the SizeCategory buckets. An unknown headcount gets no surcharge.
func sizeCostMultiplier(employeeCount int) float64 {
	switch {
	case employeeCount < 20:
		return 1.0
	case employeeCount < 50:
		return 1.25
	case employeeCount < 250:
		return 1.5
	case employeeCount < 500:
		return 2.0
	default:
		return 2.5
	}
}

func (a *analyzer) effortForSavings(annualSavings float64) domain.Effort {
	switch {
	case annualSavings < 25_000:
		return domain.EffortLow
	case annualSavings < 75_000:
		return domain.EffortMedium
	default:
		return domain.EffortHigh
	}
}

// roiPercentage is (savings - cost) / cost. Undefined when nothing is invested.
func roiPercentage(annualSavings, implementationCost float64) domain.RatioMetric {
	if implementationCost <= 0 {
		return domain.NotComputedRatio()
	}
	roi := (annualSavings - implementationCost) / implementationCost * 100
	return domain.ComputedRatio(utils.RoundWithTwoDecimalPlace(roi), "%.2f%%")
}

// paybackMonths is cost / monthly savings. Undefined when nothing is saved.
func paybackMonths(annualSavings, implementationCost float64) domain.RatioMetric {
	if annualSavings <= 0 {
		return domain.NotComputedRatio()
	}
	months := implementationCost / (annualSavings / 12)
	return domain.ComputedRatio(utils.RoundWithTwoDecimalPlace(months), "%.1f months")
}

func performanceRating(differencePct float64) string {
	switch {
	case differencePct > 20:
		return "above average"
	case differencePct > -20:
		return "average"
	default:
		return "below average"
	}
}

// SizeCategory buckets a company by headcount.
func SizeCategory(employees int) string {
	switch {
	case employees <= 0:
		return "unknown"
	case employees < 20:
		return "Micro"
	case employees < 50:
		return "Small"
	case employees < 250:
		return "Medium"
	case employees < 500:
		return "Mid-Market"
	default:
		return "Enterprise"
	}
}

// automationReadiness scores how prepared the company is to absorb automation,
// from the tooling already in place and the average automation potential of
// its bottlenecks.
func automationReadiness(metrics domain.CompanyMetrics, bottlenecks []*domain.Bottleneck) string {
	score := 0.0

	if len(metrics.Technologies) >= 3 {
		score += 0.4
	} else if len(metrics.Technologies) > 0 {
		score += 0.2
	}

	if len(bottlenecks) > 0 {
		total := 0.0
		for _, bottleneck := range bottlenecks {
			total += bottleneck.AutomationPotential
		}
		score += 0.6 * (total / float64(len(bottlenecks)))
	}

	switch {
	case score >= 0.7:
		return "high"
	case score >= 0.4:
		return "medium"
	default:
		return "low"
	}
}

// growthPotential is high when the company underperforms its industry revenue
// benchmark while carrying automatable bottlenecks, i.e. there is headroom.
func growthPotential(metrics domain.CompanyMetrics, bottlenecks []*domain.Bottleneck) string {
	if metrics.EmployeeCount <= 0 || metrics.AnnualRevenue <= 0 {
		if len(bottlenecks) >= 3 {
			return "medium"
		}
		return "unknown"
	}

	row := BenchmarkFor(metrics.Industry)
	revenuePerEmployee := metrics.AnnualRevenue / float64(metrics.EmployeeCount)

	switch {
	case revenuePerEmployee < row.RevenuePerEmployee*0.8 && len(bottlenecks) >= 2:
		return "high"
	case revenuePerEmployee < row.RevenuePerEmployee || len(bottlenecks) >= 2:
		return "medium"
	default:
		return "low"
	}
}

func topOpportunities(bottlenecks []*domain.Bottleneck, calculations []domain.ROICalculation) []domain.Opportunity {
	type pair struct {
		bottleneck  *domain.Bottleneck
		calculation domain.ROICalculation
	}

	pairs := make([]pair, 0, len(bottlenecks))
	for i, bottleneck := range bottlenecks {
		pairs = append(pairs, pair{bottleneck: bottleneck, calculation: calculations[i]})
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].calculation.AnnualSavings > pairs[j].calculation.AnnualSavings
	})

	limit := 3
	if len(pairs) < limit {
		limit = len(pairs)
	}

	opportunities := make([]domain.Opportunity, 0, limit)
	for rank, p := range pairs[:limit] {
		opportunities = append(opportunities, domain.Opportunity{
			Rank:             rank + 1,
			Bottleneck:       p.bottleneck.Name,
			AnnualSavings:    p.calculation.AnnualSavings,
			AnnualCostImpact: utils.RoundWithTwoDecimalPlace(p.bottleneck.AnnualCostImpact()),
			ROIPercentage:    p.calculation.ROIPercentage,
			PaybackMonths:    p.calculation.PaybackMonths,
			Confidence:       p.calculation.Confidence,
		})
	}

	return opportunities
}

func recommendation(portfolio domain.PortfolioSummary, bottlenecks []*domain.Bottleneck) string {
	if len(bottlenecks) == 0 {
		return "No significant operational bottlenecks were identified. Revisit after the next growth phase."
	}

	critical := 0
	for _, bottleneck := range bottlenecks {
		if bottleneck.Priority == domain.PriorityCritical {
			critical++
		}
	}

	if critical > 0 {
		return fmt.Sprintf(
			"Immediate action recommended: %d critical bottleneck(s) are draining an estimated $%.0f per year. Start with the quick-wins phase this quarter.",
			critical, portfolio.TotalCurrentCost)
	}

	if portfolio.ROIPercentage.Computed && portfolio.ROIPercentage.Value > 100 {
		return fmt.Sprintf(
			"Strong automation case: a $%.0f investment projects $%.0f in annual savings. Prioritize the top opportunities.",
			portfolio.TotalImplementationCost, portfolio.TotalAnnualSavings)
	}

	return "Moderate automation opportunity. Address the highest-priority bottleneck first and reassess after implementation."
}
