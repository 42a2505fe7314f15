package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/business-doctor-api/internal/config"
	"github.com/vfg2006/business-doctor-api/internal/domain"
)

func newTestAnalyzer() Analyzer {
	return NewAnalyzer(config.Analysis{
		LowTierCost:    10000,
		MediumTierCost: 25000,
		HighTierCost:   50000,
	})
}

func TestAnalyzer_AnalyzeROI(t *testing.T) {
	analyzer := newTestAnalyzer()

	t.Run("projects savings from automation potential", func(t *testing.T) {
		calc := analyzer.AnalyzeROI(&domain.Bottleneck{
			Name:                "Manual process overhead",
			TimeImpactHours:     8,
			CostImpact:          600,
			AutomationPotential: 0.8,
		}, 8)

		assert.Equal(t, float64(31200), calc.CurrentCost)
		assert.Equal(t, float64(6240), calc.ImprovedCost)
		assert.Equal(t, float64(24960), calc.AnnualSavings)
		assert.Equal(t, float64(10000), calc.ImplementationCost)
		assert.Equal(t, 30, calc.TimeToImplementDays)

		require.True(t, calc.ROIPercentage.Computed)
		assert.Equal(t, 149.6, calc.ROIPercentage.Value)

		require.True(t, calc.PaybackMonths.Computed)
		assert.Equal(t, 4.81, calc.PaybackMonths.Value)
	})

	t.Run("zero automation potential yields no payback period", func(t *testing.T) {
		calc := analyzer.AnalyzeROI(&domain.Bottleneck{
			Name:       "Slow turnaround",
			CostImpact: 300,
		}, 0)

		assert.Equal(t, float64(0), calc.AnnualSavings)
		assert.False(t, calc.PaybackMonths.Computed)
		assert.Equal(t, domain.NotComputed, calc.PaybackMonths.Display)
	})

	t.Run("bigger savings land in bigger implementation tiers", func(t *testing.T) {
		calc := analyzer.AnalyzeROI(&domain.Bottleneck{
			Name:                "Duplicate data entry",
			CostImpact:          2400,
			AutomationPotential: 0.9,
		}, 10)

		// 2400 * 52 * 0.9 > 75k
		assert.Equal(t, float64(50000), calc.ImplementationCost)
		assert.Equal(t, 90, calc.TimeToImplementDays)
	})

	t.Run("implementation cost scales with the headcount band", func(t *testing.T) {
		bottleneck := &domain.Bottleneck{
			Name:                "Manual process overhead",
			TimeImpactHours:     8,
			CostImpact:          600,
			AutomationPotential: 0.8,
		}

		tests := []struct {
			employees int
			wantCost  float64
		}{
			{employees: 5, wantCost: 10000},
			{employees: 30, wantCost: 12500},
			{employees: 100, wantCost: 15000},
			{employees: 300, wantCost: 20000},
			{employees: 5000, wantCost: 25000},
		}

		for _, tt := range tests {
			calc := analyzer.AnalyzeROI(bottleneck, tt.employees)
			assert.Equal(t, tt.wantCost, calc.ImplementationCost, "employees=%d", tt.employees)
		}
	})
}

func TestAnalyzer_Portfolio(t *testing.T) {
	analyzer := newTestAnalyzer()

	t.Run("aggregates totals across calculations", func(t *testing.T) {
		summary := analyzer.Portfolio([]domain.ROICalculation{
			{CurrentCost: 31200, ImprovedCost: 6240, ImplementationCost: 10000, AnnualSavings: 24960},
			{CurrentCost: 23400, ImprovedCost: 3510, ImplementationCost: 10000, AnnualSavings: 19890},
		})

		assert.Equal(t, 2, summary.ImprovementCount)
		assert.Equal(t, float64(54600), summary.TotalCurrentCost)
		assert.Equal(t, float64(20000), summary.TotalImplementationCost)
		assert.Equal(t, float64(44850), summary.TotalAnnualSavings)
		assert.True(t, summary.ROIPercentage.Computed)
		assert.True(t, summary.PaybackMonths.Computed)
	})

	t.Run("empty portfolio reports undefined ratios", func(t *testing.T) {
		summary := analyzer.Portfolio(nil)

		assert.Equal(t, 0, summary.ImprovementCount)
		assert.False(t, summary.ROIPercentage.Computed)
		assert.False(t, summary.PaybackMonths.Computed)
		assert.Equal(t, domain.NotComputed, summary.ROIPercentage.Display)
	})
}

func TestAnalyzer_CompareToIndustry(t *testing.T) {
	analyzer := newTestAnalyzer()

	t.Run("underperformer against the legal benchmark", func(t *testing.T) {
		comparison := analyzer.CompareToIndustry(domain.CompanyMetrics{
			Industry:      "legal",
			EmployeeCount: 50,
			AnnualRevenue: 8_000_000,
		})

		assert.Equal(t, "legal", comparison.Industry)
		assert.Equal(t, float64(160000), comparison.RevenuePerEmployee)
		assert.Equal(t, float64(-20), comparison.DifferencePercentage)
		assert.Equal(t, "below average", comparison.PerformanceRating)
		assert.Equal(t, float64(2_000_000), comparison.ImprovementPotential)
	})

	t.Run("a moderate shortfall still rates average", func(t *testing.T) {
		comparison := analyzer.CompareToIndustry(domain.CompanyMetrics{
			Industry:      "legal",
			EmployeeCount: 10,
			AnnualRevenue: 1_700_000,
		})

		// 170k against the 200k benchmark is -15%, inside the ±20% band.
		assert.Equal(t, float64(-15), comparison.DifferencePercentage)
		assert.Equal(t, "average", comparison.PerformanceRating)
	})

	t.Run("unknown industry falls back to the default row", func(t *testing.T) {
		comparison := analyzer.CompareToIndustry(domain.CompanyMetrics{
			Industry:      "aerospace",
			EmployeeCount: 10,
			AnnualRevenue: 1_500_000,
		})

		assert.Equal(t, "default", comparison.Industry)
		assert.Equal(t, float64(100000), comparison.IndustryAverage)
		assert.Equal(t, "above average", comparison.PerformanceRating)
	})

	t.Run("missing employee count reports insufficient data", func(t *testing.T) {
		comparison := analyzer.CompareToIndustry(domain.CompanyMetrics{
			Industry:      "msp",
			AnnualRevenue: 2_000_000,
		})

		assert.Equal(t, "insufficient data", comparison.PerformanceRating)
		assert.Zero(t, comparison.RevenuePerEmployee)
	})
}

func TestBenchmarkFor(t *testing.T) {
	tests := []struct {
		industry string
		wantRow  string
		wantRate float64
	}{
		{industry: "legal", wantRow: "legal", wantRate: 300},
		{industry: "accounting", wantRow: "accounting", wantRate: 200},
		{industry: "consulting", wantRow: "consulting", wantRate: 250},
		{industry: "msp", wantRow: "msp", wantRate: 150},
		{industry: "retail", wantRow: "default", wantRate: 75},
		{industry: "", wantRow: "default", wantRate: 75},
	}

	for _, tt := range tests {
		t.Run("industry "+tt.industry, func(t *testing.T) {
			row := BenchmarkFor(tt.industry)
			assert.Equal(t, tt.wantRow, row.Industry)
			assert.Equal(t, tt.wantRate, row.TypicalHourlyRate)
		})
	}
}

func TestAnalyzer_DeriveInsights(t *testing.T) {
	analyzer := newTestAnalyzer()

	bottlenecks := []*domain.Bottleneck{
		{ConsultationID: "cons-1", Name: "Slow turnaround", Category: "operations", TimeImpactHours: 4, CostImpact: 300, AutomationPotential: 0.6},
		{ConsultationID: "cons-1", Name: "Duplicate data entry", Category: "data_management", TimeImpactHours: 5, CostImpact: 1500, AutomationPotential: 0.9},
	}

	insights := analyzer.DeriveInsights(bottlenecks)

	require.Len(t, insights, 2)
	assert.GreaterOrEqual(t, insights[0].PriorityScore(), insights[1].PriorityScore())
	for _, insight := range insights {
		assert.Equal(t, "cons-1", insight.ConsultationID)
		assert.NotEmpty(t, insight.Text)
		assert.Greater(t, insight.PotentialValue, 0.0)
	}
}

func TestAnalyzer_BuildRoadmap(t *testing.T) {
	analyzer := newTestAnalyzer()

	bottlenecks := []*domain.Bottleneck{
		{Name: "Duplicate data entry", CostImpact: 375, AutomationPotential: 0.9},
		{Name: "Manual process overhead", CostImpact: 600, AutomationPotential: 0.8},
		{Name: "Slow turnaround", CostImpact: 300, AutomationPotential: 0.6},
	}

	phases := analyzer.BuildRoadmap(bottlenecks, 10)

	require.Len(t, phases, 3)
	assert.Equal(t, "Quick wins", phases[0].Name)

	totalProjects := 0
	for _, phase := range phases {
		totalProjects += len(phase.Projects)
	}
	assert.Equal(t, len(bottlenecks), totalProjects)

	// Highest automation potential lands in the first phase.
	require.NotEmpty(t, phases[0].Projects)
	assert.Equal(t, "Duplicate data entry", phases[0].Projects[0])
}

func TestAnalyzer_BuildExecutiveSummary(t *testing.T) {
	analyzer := newTestAnalyzer()

	t.Run("no bottlenecks still yields a consistent summary", func(t *testing.T) {
		summary := analyzer.BuildExecutiveSummary(domain.CompanyMetrics{
			CompanyName:   "Quiet Co",
			Industry:      "consulting",
			EmployeeCount: 15,
			AnnualRevenue: 3_000_000,
		}, nil)

		assert.Equal(t, "Micro", summary.CompanySnapshot.SizeCategory)
		assert.Zero(t, summary.KeyFindings.BottleneckCount)
		assert.Zero(t, summary.KeyFindings.TotalAnnualCostImpact)
		assert.False(t, summary.ROIHighlights.ROIPercentage.Computed)
		assert.Empty(t, summary.TopOpportunities)
		assert.Contains(t, summary.Recommendation, "No significant operational bottlenecks")
	})

	t.Run("critical findings drive the recommendation", func(t *testing.T) {
		summary := analyzer.BuildExecutiveSummary(domain.CompanyMetrics{
			CompanyName:   "Meridian Legal",
			Industry:      "legal",
			EmployeeCount: 50,
			AnnualRevenue: 8_000_000,
			Technologies:  []string{"excel", "outlook", "quickbooks"},
		}, []*domain.Bottleneck{
			{Name: "Manual process overhead", TimeImpactHours: 8, CostImpact: 2400, AutomationPotential: 0.8, Priority: domain.PriorityCritical},
			{Name: "Spreadsheet-based tracking", TimeImpactHours: 6, CostImpact: 1800, AutomationPotential: 0.85, Priority: domain.PriorityCritical},
		})

		assert.Equal(t, 2, summary.KeyFindings.BottleneckCount)
		assert.Equal(t, float64(14*52), summary.KeyFindings.TotalAnnualHoursWasted)
		assert.Equal(t, "high", summary.KeyFindings.AutomationReadiness)
		assert.Contains(t, summary.Recommendation, "Immediate action")
		assert.Len(t, summary.TopOpportunities, 2)
		assert.Equal(t, 1, summary.TopOpportunities[0].Rank)
	})

	t.Run("investment requirement grows with company size", func(t *testing.T) {
		bottlenecks := []*domain.Bottleneck{
			{Name: "Manual process overhead", TimeImpactHours: 8, CostImpact: 600, AutomationPotential: 0.8},
		}

		small := analyzer.BuildExecutiveSummary(domain.CompanyMetrics{
			Industry: "legal", EmployeeCount: 5, AnnualRevenue: 1_000_000,
		}, bottlenecks)
		enterprise := analyzer.BuildExecutiveSummary(domain.CompanyMetrics{
			Industry: "legal", EmployeeCount: 5000, AnnualRevenue: 1_000_000_000,
		}, bottlenecks)

		assert.Equal(t, float64(10000), small.ROIHighlights.TotalInvestmentRequired)
		assert.Equal(t, float64(25000), enterprise.ROIHighlights.TotalInvestmentRequired)
		assert.NotEqual(t, small.ROIHighlights.TotalInvestmentRequired, enterprise.ROIHighlights.TotalInvestmentRequired)
	})
}

func TestSizeCategory(t *testing.T) {
	tests := []struct {
		employees int
		want      string
	}{
		{employees: 0, want: "unknown"},
		{employees: 5, want: "Micro"},
		{employees: 20, want: "Small"},
		{employees: 50, want: "Medium"},
		{employees: 250, want: "Mid-Market"},
		{employees: 600, want: "Enterprise"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, SizeCategory(tt.employees))
		})
	}
}
