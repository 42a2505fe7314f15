// Package consulting orchestrates the consultation lifecycle: starting a
// session, processing conversation turns, completing the session and
// generating reports from its findings.
package consulting

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/vfg2006/business-doctor-api/infrastructure/integrator/advisor/advisorclient"
	"github.com/vfg2006/business-doctor-api/infrastructure/repository"
	"github.com/vfg2006/business-doctor-api/internal/domain"
	"github.com/vfg2006/business-doctor-api/internal/usecases/analyzing"
	"github.com/vfg2006/business-doctor-api/internal/usecases/intake"
	"github.com/vfg2006/business-doctor-api/pkg/log"
	"github.com/vfg2006/business-doctor-api/pkg/utils"
)

type Consulting interface {
	Start(clientID, companyName string) (*domain.Consultation, error)
	Get(consultationID string) (*domain.Consultation, error)
	ListByClient(clientID string) ([]*domain.Consultation, error)
	ProcessTurn(ctx context.Context, consultationID, message string) (*domain.TurnResult, error)
	Complete(consultationID string) (*domain.Consultation, error)
	GenerateReport(consultationID string, reportType domain.ReportType) (*domain.Report, error)
	Bottlenecks(consultationID string) ([]*domain.Bottleneck, error)
	Insights(consultationID string) ([]*domain.Insight, error)
	Reports(consultationID string) ([]*domain.Report, error)
	CloseIdle(idleSince time.Time) (int, error)
}

type Service struct {
	consultationRepo repository.ConsultationRepository
	bottleneckRepo   repository.BottleneckRepository
	insightRepo      repository.InsightRepository
	reportRepo       repository.ReportRepository

	extractor  *intake.Extractor
	identifier *intake.Identifier
	stages     *intake.StageMachine
	analyzer   analyzing.Analyzer
	advisor    advisorclient.Client
}

func NewService(
	consultationRepo repository.ConsultationRepository,
	bottleneckRepo repository.BottleneckRepository,
	insightRepo repository.InsightRepository,
	reportRepo repository.ReportRepository,
	extractor *intake.Extractor,
	identifier *intake.Identifier,
	stages *intake.StageMachine,
	analyzer analyzing.Analyzer,
	advisor advisorclient.Client,
) Consulting {
	return &Service{
		consultationRepo: consultationRepo,
		bottleneckRepo:   bottleneckRepo,
		insightRepo:      insightRepo,
		reportRepo:       reportRepo,
		extractor:        extractor,
		identifier:       identifier,
		stages:           stages,
		analyzer:         analyzer,
		advisor:          advisor,
	}
}

// Start opens a new consultation in the opening stage and seeds the transcript
// with the first consultant question.
func (s *Service) Start(clientID, companyName string) (*domain.Consultation, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "generating consultation id")
	}

	now := time.Now()
	consultation := &domain.Consultation{
		ID:          id,
		ClientID:    clientID,
		CompanyName: companyName,
		Status:      domain.StatusInProgress,
		Stage:       domain.StageOpening,
		StartTime:   now,
		Transcript: []domain.Message{{
			Role:      domain.RoleAssistant,
			Content:   s.stages.Prompt(domain.StageOpening, 0),
			Timestamp: now,
		}},
	}

	if companyName != "" {
		consultation.Metrics.CompanyName = companyName
	}

	if err := s.consultationRepo.Create(consultation); err != nil {
		return nil, errors.Wrap(err, "creating consultation")
	}

	return consultation, nil
}

func (s *Service) Get(consultationID string) (*domain.Consultation, error) {
	consultation, err := s.consultationRepo.GetByID(consultationID)
	if err != nil {
		return nil, err
	}
	if consultation == nil {
		return nil, ErrConsultationNotFound
	}
	return consultation, nil
}

func (s *Service) ListByClient(clientID string) ([]*domain.Consultation, error) {
	return s.consultationRepo.ListByClientID(clientID)
}

// ProcessTurn ingests one client message: extracts facts, identifies new
// bottlenecks, advances the stage when it has done its job and returns the
// next consultant question. An uninformative or even empty message is a valid
// turn; it just brings the stage closer to its turn ceiling.
func (s *Service) ProcessTurn(ctx context.Context, consultationID, message string) (*domain.TurnResult, error) {
	consultation, err := s.Get(consultationID)
	if err != nil {
		return nil, err
	}
	if consultation.Status == domain.StatusCompleted {
		return nil, ErrConsultationCompleted
	}

	now := time.Now()
	sanitized := intake.SanitizeInput(message)
	consultation.Transcript = append(consultation.Transcript, domain.Message{
		Role:      domain.RoleUser,
		Content:   sanitized,
		Timestamp: now,
	})

	update := s.extractor.Extract(sanitized)
	consultation.Metrics.Apply(update)

	rate := analyzing.BenchmarkFor(consultation.Metrics.Industry).TypicalHourlyRate
	candidates := s.identifier.Identify(sanitized, rate)

	newBottlenecks, total, err := s.persistNewBottlenecks(consultation.ID, candidates)
	if err != nil {
		return nil, err
	}

	consultation.StageTurns++
	if update.FieldCount() > 0 || newBottlenecks > 0 {
		consultation.StageInformative++
	}

	if s.stages.ShouldAdvance(consultation.StageInformative, consultation.StageTurns) {
		consultation.Stage = s.stages.Advance(consultation.Stage)
		consultation.StageTurns = 0
		consultation.StageInformative = 0
	}

	result := &domain.TurnResult{
		ConsultationID:  consultation.ID,
		Stage:           consultation.Stage,
		FactsFound:      update.FieldCount(),
		BottlenecksNew:  newBottlenecks,
		BottleneckCount: total,
	}

	if consultation.Stage == domain.StageCompleted {
		if err := s.finish(consultation); err != nil {
			return nil, err
		}
		result.Completed = true
		result.Prompt = "Thank you, that gives me a complete picture. I will prepare your analysis now."
		return result, nil
	}

	result.Prompt = s.nextPrompt(ctx, consultation)
	consultation.Transcript = append(consultation.Transcript, domain.Message{
		Role:      domain.RoleAssistant,
		Content:   result.Prompt,
		Timestamp: time.Now(),
	})

	if err := s.consultationRepo.Update(consultation); err != nil {
		return nil, errors.Wrap(err, "updating consultation")
	}

	return result, nil
}

// persistNewBottlenecks stores the candidates that are not already recorded
// for the consultation. Identity is the case-insensitive name; the identifier
// reports the same finding on every matching turn and only the first sighting
// is kept.
func (s *Service) persistNewBottlenecks(consultationID string, candidates []domain.Bottleneck) (created, total int, err error) {
	existing, err := s.bottleneckRepo.ListByConsultationID(consultationID)
	if err != nil {
		return 0, 0, errors.Wrap(err, "listing bottlenecks")
	}

	known := make(map[string]bool, len(existing))
	for _, bottleneck := range existing {
		known[strings.ToLower(bottleneck.Name)] = true
	}

	for _, candidate := range candidates {
		key := strings.ToLower(candidate.Name)
		if known[key] {
			continue
		}

		candidate.ID, err = utils.GenerateID()
		if err != nil {
			return created, len(existing) + created, errors.Wrap(err, "generating bottleneck id")
		}
		candidate.ConsultationID = consultationID

		if err := s.bottleneckRepo.Create(&candidate); err != nil {
			return created, len(existing) + created, errors.Wrap(err, "creating bottleneck")
		}

		known[key] = true
		created++
	}

	return created, len(existing) + created, nil
}

// nextPrompt asks the advisor service for the next question when configured
// and falls back to the built-in stage pool on any failure.
func (s *Service) nextPrompt(ctx context.Context, consultation *domain.Consultation) string {
	if s.advisor != nil && s.advisor.Enabled() {
		question, err := s.advisor.NextQuestion(ctx, consultation)
		if err == nil && question != "" {
			return question
		}
		if err != nil {
			log.ForContext(ctx).WithError(err).Warn("advisor unavailable, using stage prompt")
		}
	}

	return s.stages.Prompt(consultation.Stage, consultation.StageTurns)
}

// Complete force-finishes a consultation regardless of its current stage.
func (s *Service) Complete(consultationID string) (*domain.Consultation, error) {
	consultation, err := s.Get(consultationID)
	if err != nil {
		return nil, err
	}
	if consultation.Status == domain.StatusCompleted {
		return nil, ErrConsultationCompleted
	}

	if err := s.finish(consultation); err != nil {
		return nil, err
	}

	return consultation, nil
}

// finish marks the consultation completed and derives its insights. The
// update goes through the status guard, so a concurrent completion loses and
// no insight is written twice.
func (s *Service) finish(consultation *domain.Consultation) error {
	now := time.Now()
	consultation.Status = domain.StatusCompleted
	consultation.Stage = domain.StageCompleted
	consultation.EndTime = &now

	if err := s.consultationRepo.Update(consultation); err != nil {
		if errors.Is(err, repository.ErrConsultationImmutable) {
			return ErrConsultationCompleted
		}
		return errors.Wrap(err, "completing consultation")
	}

	bottlenecks, err := s.bottleneckRepo.ListByConsultationID(consultation.ID)
	if err != nil {
		return errors.Wrap(err, "listing bottlenecks")
	}

	for _, insight := range s.analyzer.DeriveInsights(bottlenecks) {
		insight.ID, err = utils.GenerateID()
		if err != nil {
			return errors.Wrap(err, "generating insight id")
		}
		insight.ConsultationID = consultation.ID

		if err := s.insightRepo.Create(&insight); err != nil {
			return errors.Wrap(err, "creating insight")
		}
	}

	return nil
}

// GenerateReport builds the requested report from the consultation findings.
// Generation is idempotent per (consultation, type): repeated calls return the
// stored document.
func (s *Service) GenerateReport(consultationID string, reportType domain.ReportType) (*domain.Report, error) {
	if !domain.ValidReportType(reportType) {
		return nil, ErrInvalidReportType
	}

	consultation, err := s.Get(consultationID)
	if err != nil {
		return nil, err
	}
	if consultation.Status != domain.StatusCompleted {
		return nil, ErrConsultationOpen
	}

	if existing, err := s.reportRepo.GetByConsultationAndType(consultationID, reportType); err != nil {
		return nil, err
	} else if existing != nil {
		return existing, nil
	}

	bottlenecks, err := s.bottleneckRepo.ListByConsultationID(consultationID)
	if err != nil {
		return nil, errors.Wrap(err, "listing bottlenecks")
	}

	payload, err := s.buildPayload(consultation, bottlenecks, reportType)
	if err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "generating report id")
	}

	report := &domain.Report{
		ID:             id,
		ConsultationID: consultationID,
		Type:           reportType,
		Payload:        payload,
		GeneratedAt:    time.Now(),
	}

	if err := s.reportRepo.Create(report); err != nil {
		if errors.Is(err, repository.ErrReportExists) {
			// Lost the race to another generator; the stored report wins.
			return s.reportRepo.GetByConsultationAndType(consultationID, reportType)
		}
		return nil, errors.Wrap(err, "creating report")
	}

	return report, nil
}

func (s *Service) buildPayload(consultation *domain.Consultation, bottlenecks []*domain.Bottleneck, reportType domain.ReportType) (domain.ReportPayload, error) {
	payload := domain.ReportPayload{}

	switch reportType {
	case domain.ReportDiagnostic:
		findings := make([]domain.BottleneckFinding, 0, len(bottlenecks))
		for _, bottleneck := range bottlenecks {
			findings = append(findings, domain.BottleneckFinding{
				Name:                bottleneck.Name,
				Description:         bottleneck.Description,
				Category:            bottleneck.Category,
				AnnualHoursImpact:   bottleneck.AnnualHoursImpact(),
				AnnualCostImpact:    utils.RoundWithTwoDecimalPlace(bottleneck.AnnualCostImpact()),
				AutomationPotential: bottleneck.AutomationPotential,
				Priority:            bottleneck.Priority,
			})
		}

		insights, err := s.insightRepo.ListByConsultationID(consultation.ID)
		if err != nil {
			return payload, errors.Wrap(err, "listing insights")
		}
		insightValues := make([]domain.Insight, 0, len(insights))
		for _, insight := range insights {
			insightValues = append(insightValues, *insight)
		}

		comparison := s.analyzer.CompareToIndustry(consultation.Metrics)

		payload.CompanyOverview = &consultation.Metrics
		payload.Bottlenecks = findings
		payload.Insights = insightValues
		payload.IndustryComparison = &comparison

	case domain.ReportProposal:
		calculations := make([]domain.ROICalculation, 0, len(bottlenecks))
		for _, bottleneck := range bottlenecks {
			calculations = append(calculations, s.analyzer.AnalyzeROI(bottleneck, consultation.Metrics.EmployeeCount))
		}
		portfolio := s.analyzer.Portfolio(calculations)

		payload.Roadmap = s.analyzer.BuildRoadmap(bottlenecks, consultation.Metrics.EmployeeCount)
		payload.Recommendations = s.analyzer.Recommendations(consultation.Metrics, bottlenecks)
		payload.Portfolio = &portfolio

	case domain.ReportExecutive:
		summary := s.analyzer.BuildExecutiveSummary(consultation.Metrics, bottlenecks)
		payload.ExecutiveSummary = &summary
	}

	return payload, nil
}

func (s *Service) Bottlenecks(consultationID string) ([]*domain.Bottleneck, error) {
	if _, err := s.Get(consultationID); err != nil {
		return nil, err
	}
	return s.bottleneckRepo.ListByConsultationID(consultationID)
}

func (s *Service) Insights(consultationID string) ([]*domain.Insight, error) {
	if _, err := s.Get(consultationID); err != nil {
		return nil, err
	}
	return s.insightRepo.ListByConsultationID(consultationID)
}

func (s *Service) Reports(consultationID string) ([]*domain.Report, error) {
	if _, err := s.Get(consultationID); err != nil {
		return nil, err
	}
	return s.reportRepo.ListByConsultationID(consultationID)
}

// CloseIdle completes in_progress consultations idle since the given instant
// and returns how many were closed. Used by the abandonment sweeper.
func (s *Service) CloseIdle(idleSince time.Time) (int, error) {
	idle, err := s.consultationRepo.ListIdleInProgress(idleSince)
	if err != nil {
		return 0, errors.Wrap(err, "listing idle consultations")
	}

	closed := 0
	for _, consultation := range idle {
		if err := s.finish(consultation); err != nil {
			if errors.Is(err, ErrConsultationCompleted) {
				continue
			}
			return closed, err
		}
		closed++
	}

	return closed, nil
}
