package consulting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	advisormocks "github.com/vfg2006/business-doctor-api/infrastructure/integrator/advisor/mocks"
	"github.com/vfg2006/business-doctor-api/infrastructure/repository/mocks"
	"github.com/vfg2006/business-doctor-api/internal/config"
	"github.com/vfg2006/business-doctor-api/internal/domain"
	"github.com/vfg2006/business-doctor-api/internal/usecases/analyzing"
	"github.com/vfg2006/business-doctor-api/internal/usecases/intake"
)

type serviceMocks struct {
	consultationRepo *mocks.MockConsultationRepository
	bottleneckRepo   *mocks.MockBottleneckRepository
	insightRepo      *mocks.MockInsightRepository
	reportRepo       *mocks.MockReportRepository
	advisor          *advisormocks.MockClient
}

func newTestService(t *testing.T) (*Service, serviceMocks) {
	ctrl := gomock.NewController(t)

	m := serviceMocks{
		consultationRepo: mocks.NewMockConsultationRepository(ctrl),
		bottleneckRepo:   mocks.NewMockBottleneckRepository(ctrl),
		insightRepo:      mocks.NewMockInsightRepository(ctrl),
		reportRepo:       mocks.NewMockReportRepository(ctrl),
		advisor:          advisormocks.NewMockClient(ctrl),
	}

	service := NewService(
		m.consultationRepo,
		m.bottleneckRepo,
		m.insightRepo,
		m.reportRepo,
		intake.NewExtractor(),
		intake.NewIdentifier(),
		intake.NewStageMachine(config.Intake{MinInformativeExchanges: 2, StageTurnCeiling: 6}),
		analyzing.NewAnalyzer(config.Analysis{LowTierCost: 10000, MediumTierCost: 25000, HighTierCost: 50000}),
		m.advisor,
	).(*Service)

	return service, m
}

func inProgressConsultation(stage domain.Stage) *domain.Consultation {
	return &domain.Consultation{
		ID:        "cons-1",
		ClientID:  "client-1",
		Status:    domain.StatusInProgress,
		Stage:     stage,
		StartTime: time.Now().Add(-10 * time.Minute),
	}
}

func TestService_Start(t *testing.T) {
	service, m := newTestService(t)

	m.consultationRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(c *domain.Consultation) error {
			assert.NotEmpty(t, c.ID)
			assert.Equal(t, domain.StatusInProgress, c.Status)
			assert.Equal(t, domain.StageOpening, c.Stage)
			require.Len(t, c.Transcript, 1)
			assert.Equal(t, domain.RoleAssistant, c.Transcript[0].Role)
			return nil
		})

	consultation, err := service.Start("client-1", "Meridian Legal")

	require.NoError(t, err)
	assert.Equal(t, "Meridian Legal", consultation.Metrics.CompanyName)
}

func TestService_ProcessTurn(t *testing.T) {
	ctx := context.Background()

	t.Run("informative message extracts facts and records bottlenecks", func(t *testing.T) {
		service, m := newTestService(t)
		consultation := inProgressConsultation(domain.StageDiscovery)

		m.consultationRepo.EXPECT().GetByID("cons-1").Return(consultation, nil)
		m.bottleneckRepo.EXPECT().ListByConsultationID("cons-1").Return(nil, nil)
		m.bottleneckRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(3)
		m.advisor.EXPECT().Enabled().Return(false)
		m.consultationRepo.EXPECT().Update(consultation).Return(nil)

		result, err := service.ProcessTurn(ctx, "cons-1",
			"We have 50 employees and lose leads because we track everything in Excel manually")

		require.NoError(t, err)
		assert.Equal(t, 50, consultation.Metrics.EmployeeCount)
		assert.GreaterOrEqual(t, result.FactsFound, 1)
		assert.Equal(t, 3, result.BottlenecksNew)
		assert.Equal(t, 3, result.BottleneckCount)
		assert.Equal(t, domain.StageDiscovery, result.Stage)
		assert.False(t, result.Completed)
		assert.NotEmpty(t, result.Prompt)
	})

	t.Run("already recorded bottlenecks are not duplicated", func(t *testing.T) {
		service, m := newTestService(t)
		consultation := inProgressConsultation(domain.StageDeepDive)

		m.consultationRepo.EXPECT().GetByID("cons-1").Return(consultation, nil)
		m.bottleneckRepo.EXPECT().ListByConsultationID("cons-1").Return([]*domain.Bottleneck{
			{ID: "b-1", Name: "Spreadsheet-based tracking"},
		}, nil)
		m.advisor.EXPECT().Enabled().Return(false)
		m.consultationRepo.EXPECT().Update(consultation).Return(nil)

		result, err := service.ProcessTurn(ctx, "cons-1", "Yes, the spreadsheets again")

		require.NoError(t, err)
		assert.Equal(t, 0, result.BottlenecksNew)
		assert.Equal(t, 1, result.BottleneckCount)
	})

	t.Run("stage advances once enough informative exchanges happened", func(t *testing.T) {
		service, m := newTestService(t)
		consultation := inProgressConsultation(domain.StageOpening)
		consultation.StageInformative = 1
		consultation.StageTurns = 1

		m.consultationRepo.EXPECT().GetByID("cons-1").Return(consultation, nil)
		m.bottleneckRepo.EXPECT().ListByConsultationID("cons-1").Return(nil, nil)
		m.advisor.EXPECT().Enabled().Return(false)
		m.consultationRepo.EXPECT().Update(consultation).Return(nil)

		result, err := service.ProcessTurn(ctx, "cons-1", "We are a law firm with 12 employees")

		require.NoError(t, err)
		assert.Equal(t, domain.StageDiscovery, result.Stage)
		assert.Equal(t, 0, consultation.StageTurns)
		assert.Equal(t, 0, consultation.StageInformative)
	})

	t.Run("turn ceiling forces advancement on uninformative exchanges", func(t *testing.T) {
		service, m := newTestService(t)
		consultation := inProgressConsultation(domain.StageDiscovery)
		consultation.StageTurns = 5

		m.consultationRepo.EXPECT().GetByID("cons-1").Return(consultation, nil)
		m.bottleneckRepo.EXPECT().ListByConsultationID("cons-1").Return(nil, nil)
		m.advisor.EXPECT().Enabled().Return(false)
		m.consultationRepo.EXPECT().Update(consultation).Return(nil)

		result, err := service.ProcessTurn(ctx, "cons-1", "ok")

		require.NoError(t, err)
		assert.Equal(t, 0, result.FactsFound)
		assert.Equal(t, domain.StageDeepDive, result.Stage)
	})

	t.Run("advancing past synthesis completes the consultation", func(t *testing.T) {
		service, m := newTestService(t)
		consultation := inProgressConsultation(domain.StageSynthesis)
		consultation.StageInformative = 1

		m.consultationRepo.EXPECT().GetByID("cons-1").Return(consultation, nil)
		m.bottleneckRepo.EXPECT().ListByConsultationID("cons-1").Return(nil, nil).Times(2)
		m.consultationRepo.EXPECT().Update(consultation).Return(nil)

		result, err := service.ProcessTurn(ctx, "cons-1", "Fixing invoicing would be the magic wand, we have 30 employees")

		require.NoError(t, err)
		assert.True(t, result.Completed)
		assert.Equal(t, domain.StageCompleted, result.Stage)
		assert.Equal(t, domain.StatusCompleted, consultation.Status)
		require.NotNil(t, consultation.EndTime)
	})

	t.Run("advisor question is preferred when the gateway is configured", func(t *testing.T) {
		service, m := newTestService(t)
		consultation := inProgressConsultation(domain.StageDiscovery)

		m.consultationRepo.EXPECT().GetByID("cons-1").Return(consultation, nil)
		m.bottleneckRepo.EXPECT().ListByConsultationID("cons-1").Return(nil, nil)
		m.advisor.EXPECT().Enabled().Return(true)
		m.advisor.EXPECT().NextQuestion(gomock.Any(), consultation).Return("How do you handle client intake today?", nil)
		m.consultationRepo.EXPECT().Update(consultation).Return(nil)

		result, err := service.ProcessTurn(ctx, "cons-1", "We are an accounting firm")

		require.NoError(t, err)
		assert.Equal(t, "How do you handle client intake today?", result.Prompt)
	})

	t.Run("completed consultation rejects further turns", func(t *testing.T) {
		service, m := newTestService(t)
		consultation := inProgressConsultation(domain.StageCompleted)
		consultation.Status = domain.StatusCompleted

		m.consultationRepo.EXPECT().GetByID("cons-1").Return(consultation, nil)

		_, err := service.ProcessTurn(ctx, "cons-1", "one more thing")

		assert.ErrorIs(t, err, ErrConsultationCompleted)
	})

	t.Run("unknown consultation", func(t *testing.T) {
		service, m := newTestService(t)

		m.consultationRepo.EXPECT().GetByID("missing").Return(nil, nil)

		_, err := service.ProcessTurn(ctx, "missing", "hello")

		assert.ErrorIs(t, err, ErrConsultationNotFound)
	})
}

func TestService_Complete(t *testing.T) {
	t.Run("derives insights from recorded bottlenecks", func(t *testing.T) {
		service, m := newTestService(t)
		consultation := inProgressConsultation(domain.StageDeepDive)

		bottlenecks := []*domain.Bottleneck{
			{
				ID:                  "b-1",
				ConsultationID:      "cons-1",
				Name:                "Manual process overhead",
				Category:            "operations",
				TimeImpactHours:     8,
				CostImpact:          600,
				AutomationPotential: 0.8,
				Priority:            domain.PriorityMedium,
			},
		}

		m.consultationRepo.EXPECT().GetByID("cons-1").Return(consultation, nil)
		m.consultationRepo.EXPECT().Update(consultation).Return(nil)
		m.bottleneckRepo.EXPECT().ListByConsultationID("cons-1").Return(bottlenecks, nil)
		m.insightRepo.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(insight *domain.Insight) error {
				assert.Equal(t, "cons-1", insight.ConsultationID)
				assert.Equal(t, "operations", insight.Category)
				assert.Greater(t, insight.PotentialValue, 0.0)
				return nil
			})

		completed, err := service.Complete("cons-1")

		require.NoError(t, err)
		assert.Equal(t, domain.StatusCompleted, completed.Status)
		assert.Equal(t, domain.StageCompleted, completed.Stage)
	})

	t.Run("completing twice fails", func(t *testing.T) {
		service, m := newTestService(t)
		consultation := inProgressConsultation(domain.StageCompleted)
		consultation.Status = domain.StatusCompleted

		m.consultationRepo.EXPECT().GetByID("cons-1").Return(consultation, nil)

		_, err := service.Complete("cons-1")

		assert.ErrorIs(t, err, ErrConsultationCompleted)
	})
}

func TestService_GenerateReport(t *testing.T) {
	completedConsultation := func() *domain.Consultation {
		c := inProgressConsultation(domain.StageCompleted)
		c.Status = domain.StatusCompleted
		c.Metrics = domain.CompanyMetrics{
			CompanyName:   "Meridian Legal",
			Industry:      "legal",
			EmployeeCount: 50,
			AnnualRevenue: 8_000_000,
		}
		return c
	}

	t.Run("rejects unknown report types", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.GenerateReport("cons-1", domain.ReportType("quarterly"))

		assert.ErrorIs(t, err, ErrInvalidReportType)
	})

	t.Run("rejects open consultations", func(t *testing.T) {
		service, m := newTestService(t)

		m.consultationRepo.EXPECT().GetByID("cons-1").Return(inProgressConsultation(domain.StageDiscovery), nil)

		_, err := service.GenerateReport("cons-1", domain.ReportExecutive)

		assert.ErrorIs(t, err, ErrConsultationOpen)
	})

	t.Run("returns the stored report on repeated generation", func(t *testing.T) {
		service, m := newTestService(t)
		stored := &domain.Report{ID: "rep-1", ConsultationID: "cons-1", Type: domain.ReportExecutive}

		m.consultationRepo.EXPECT().GetByID("cons-1").Return(completedConsultation(), nil)
		m.reportRepo.EXPECT().GetByConsultationAndType("cons-1", domain.ReportExecutive).Return(stored, nil)

		report, err := service.GenerateReport("cons-1", domain.ReportExecutive)

		require.NoError(t, err)
		assert.Equal(t, "rep-1", report.ID)
	})

	t.Run("builds the executive summary payload", func(t *testing.T) {
		service, m := newTestService(t)

		bottlenecks := []*domain.Bottleneck{
			{
				Name:                "Manual process overhead",
				Category:            "operations",
				TimeImpactHours:     8,
				CostImpact:          2400,
				AutomationPotential: 0.8,
				Priority:            domain.PriorityCritical,
			},
		}

		m.consultationRepo.EXPECT().GetByID("cons-1").Return(completedConsultation(), nil)
		m.reportRepo.EXPECT().GetByConsultationAndType("cons-1", domain.ReportExecutive).Return(nil, nil)
		m.bottleneckRepo.EXPECT().ListByConsultationID("cons-1").Return(bottlenecks, nil)
		m.reportRepo.EXPECT().Create(gomock.Any()).Return(nil)

		report, err := service.GenerateReport("cons-1", domain.ReportExecutive)

		require.NoError(t, err)
		require.NotNil(t, report.Payload.ExecutiveSummary)
		summary := report.Payload.ExecutiveSummary
		assert.Equal(t, "Meridian Legal", summary.CompanySnapshot.Name)
		assert.Equal(t, "Medium", summary.CompanySnapshot.SizeCategory)
		assert.Equal(t, 1, summary.KeyFindings.BottleneckCount)
		assert.NotEmpty(t, summary.Recommendation)
	})

	t.Run("builds the proposal payload with roadmap and portfolio", func(t *testing.T) {
		service, m := newTestService(t)

		bottlenecks := []*domain.Bottleneck{
			{Name: "Spreadsheet-based tracking", TimeImpactHours: 6, CostImpact: 450, AutomationPotential: 0.85},
			{Name: "Revenue leakage", TimeImpactHours: 5, CostImpact: 375, AutomationPotential: 0.7},
		}

		m.consultationRepo.EXPECT().GetByID("cons-1").Return(completedConsultation(), nil)
		m.reportRepo.EXPECT().GetByConsultationAndType("cons-1", domain.ReportProposal).Return(nil, nil)
		m.bottleneckRepo.EXPECT().ListByConsultationID("cons-1").Return(bottlenecks, nil)
		m.reportRepo.EXPECT().Create(gomock.Any()).Return(nil)

		report, err := service.GenerateReport("cons-1", domain.ReportProposal)

		require.NoError(t, err)
		require.NotNil(t, report.Payload.Portfolio)
		assert.Equal(t, 2, report.Payload.Portfolio.ImprovementCount)
		assert.Len(t, report.Payload.Roadmap, 3)
		assert.NotEmpty(t, report.Payload.Recommendations)
	})

	t.Run("builds the diagnostic payload with findings and insights", func(t *testing.T) {
		service, m := newTestService(t)

		bottlenecks := []*domain.Bottleneck{
			{Name: "Chasing and follow-up", Category: "communication", TimeImpactHours: 4, CostImpact: 300, AutomationPotential: 0.75},
		}
		insights := []*domain.Insight{
			{ID: "i-1", ConsultationID: "cons-1", Category: "communication", PotentialValue: 11700, Confidence: 0.75, Effort: domain.EffortLow},
		}

		m.consultationRepo.EXPECT().GetByID("cons-1").Return(completedConsultation(), nil)
		m.reportRepo.EXPECT().GetByConsultationAndType("cons-1", domain.ReportDiagnostic).Return(nil, nil)
		m.bottleneckRepo.EXPECT().ListByConsultationID("cons-1").Return(bottlenecks, nil)
		m.insightRepo.EXPECT().ListByConsultationID("cons-1").Return(insights, nil)
		m.reportRepo.EXPECT().Create(gomock.Any()).Return(nil)

		report, err := service.GenerateReport("cons-1", domain.ReportDiagnostic)

		require.NoError(t, err)
		require.Len(t, report.Payload.Bottlenecks, 1)
		assert.Equal(t, float64(4*52), report.Payload.Bottlenecks[0].AnnualHoursImpact)
		require.Len(t, report.Payload.Insights, 1)
		require.NotNil(t, report.Payload.IndustryComparison)
		assert.Equal(t, "legal", report.Payload.IndustryComparison.Industry)
	})
}

func TestService_CloseIdle(t *testing.T) {
	service, m := newTestService(t)

	idleSince := time.Now().Add(-2 * time.Hour)
	stale := inProgressConsultation(domain.StageDiscovery)

	m.consultationRepo.EXPECT().ListIdleInProgress(idleSince).Return([]*domain.Consultation{stale}, nil)
	m.consultationRepo.EXPECT().Update(stale).Return(nil)
	m.bottleneckRepo.EXPECT().ListByConsultationID("cons-1").Return(nil, nil)

	closed, err := service.CloseIdle(idleSince)

	require.NoError(t, err)
	assert.Equal(t, 1, closed)
	assert.Equal(t, domain.StatusCompleted, stale.Status)
}
