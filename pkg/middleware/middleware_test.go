package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/business-doctor-api/internal/domain"
	"github.com/vfg2006/business-doctor-api/internal/usecases/authenticating/mocks"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name       string
		path       string
		authHeader string
		setup      func(authService *mocks.MockAuthenticator)
		wantStatus int
		wantNext   bool
	}{
		{
			name:       "login stays open",
			path:       "/v1/login",
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "healthcheck stays open",
			path:       "/healthcheck",
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "register requires authentication",
			path:       "/v1/register",
			wantStatus: http.StatusUnauthorized,
			wantNext:   false,
		},
		{
			name:       "protected route without header",
			path:       "/v1/consultations",
			wantStatus: http.StatusUnauthorized,
			wantNext:   false,
		},
		{
			name:       "malformed header without bearer prefix",
			path:       "/v1/consultations",
			authHeader: "token-123",
			wantStatus: http.StatusUnauthorized,
			wantNext:   false,
		},
		{
			name:       "invalid token",
			path:       "/v1/consultations",
			authHeader: "Bearer bad-token",
			setup: func(authService *mocks.MockAuthenticator) {
				authService.EXPECT().ValidateToken("bad-token").Return(nil, assert.AnError)
			},
			wantStatus: http.StatusUnauthorized,
			wantNext:   false,
		},
		{
			name:       "valid token reaches the handler",
			path:       "/v1/consultations",
			authHeader: "Bearer good-token",
			setup: func(authService *mocks.MockAuthenticator) {
				authService.EXPECT().ValidateToken("good-token").Return(&domain.Claims{UserID: 7}, nil)
			},
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authService := mocks.NewMockAuthenticator(ctrl)
			if tt.setup != nil {
				tt.setup(authService)
			}

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			})

			req := httptest.NewRequest(http.MethodPost, tt.path, nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(authService)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		middleware func(http.Handler) http.Handler
		claims     *domain.Claims
		wantStatus int
		wantNext   bool
	}{
		{
			name:       "operator passes an operator-only route",
			middleware: OperatorOnly(),
			claims:     &domain.Claims{UserID: 1, UserRoleID: domain.RoleOperator},
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "client is rejected from an operator-only route",
			middleware: OperatorOnly(),
			claims:     &domain.Claims{UserID: 2, UserRoleID: domain.RoleClient},
			wantStatus: http.StatusForbidden,
			wantNext:   false,
		},
		{
			name:       "client passes an all-roles route",
			middleware: AllRoles(),
			claims:     &domain.Claims{UserID: 2, UserRoleID: domain.RoleClient},
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "missing claims are rejected",
			middleware: AllRoles(),
			wantStatus: http.StatusUnauthorized,
			wantNext:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			})

			req := httptest.NewRequest(http.MethodGet, "/v1/consultations", nil)
			if tt.claims != nil {
				req = req.WithContext(context.WithValue(req.Context(), ContextKeyUser, tt.claims))
			}
			rec := httptest.NewRecorder()

			tt.middleware(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
		})
	}
}
