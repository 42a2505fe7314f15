// Package advisorclient talks to an external language-model advisor service
// that can phrase the consultant's next question. The service is optional:
// when it is not configured or fails, consultations fall back to the built-in
// stage prompt pools.
package advisorclient

import (
	"context"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/business-doctor-api/internal/config"
	"github.com/vfg2006/business-doctor-api/internal/domain"
	"github.com/vfg2006/business-doctor-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	NextQuestion(ctx context.Context, consultation *domain.Consultation) (string, error)
	Enabled() bool
}

type AdvisorClient struct {
	httpClient *http.Client
	cfg        config.Gateway
}

func NewClient(cfg config.Gateway) Client {
	return &AdvisorClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		cfg: cfg,
	}
}

func (c *AdvisorClient) Enabled() bool {
	return c.cfg.Enabled()
}

type nextQuestionRequest struct {
	Stage      domain.Stage          `json:"stage"`
	Metrics    domain.CompanyMetrics `json:"metrics"`
	Transcript []domain.Message      `json:"transcript"`
}

type nextQuestionResponse struct {
	Question string `json:"question"`
}

// NextQuestion sends the conversation state and returns the advisor's
// suggested question.
func (c *AdvisorClient) NextQuestion(ctx context.Context, consultation *domain.Consultation) (string, error) {
	payload, err := json.Marshal(nextQuestionRequest{
		Stage:      consultation.Stage,
		Metrics:    consultation.Metrics,
		Transcript: consultation.Transcript,
	})
	if err != nil {
		return "", err
	}

	body, err := utils.PostJSON(ctx, c.httpClient, c.cfg.BaseURL+"/v1/next-question", c.cfg.APIKey, payload)
	if err != nil {
		return "", err
	}

	var response nextQuestionResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", err
	}

	return response.Question, nil
}
