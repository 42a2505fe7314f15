package handler

import (
	"net/http"

	"github.com/vfg2006/business-doctor-api/internal/api/handler/router"
	"github.com/vfg2006/business-doctor-api/internal/usecases/authenticating"
	"github.com/vfg2006/business-doctor-api/internal/usecases/consulting"
	"github.com/vfg2006/business-doctor-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/register",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.OperatorOnly()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Consultations(service consulting.Consulting) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/consultations",
			Method:      http.MethodPost,
			Handler:     StartConsultation(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/consultations",
			Method:      http.MethodGet,
			Handler:     ListConsultations(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.OperatorOnly()},
		},
		{
			Path:        "/v1/consultations/:id",
			Method:      http.MethodGet,
			Handler:     GetConsultation(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/consultations/:id/turns",
			Method:      http.MethodPost,
			Handler:     SubmitTurn(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/consultations/:id/complete",
			Method:      http.MethodPost,
			Handler:     CompleteConsultation(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/consultations/:id/bottlenecks",
			Method:      http.MethodGet,
			Handler:     ListBottlenecks(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.OperatorOnly()},
		},
		{
			Path:        "/v1/consultations/:id/insights",
			Method:      http.MethodGet,
			Handler:     ListInsights(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.OperatorOnly()},
		},
	}
}

func Reports(service consulting.Consulting) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/consultations/:id/reports/:type",
			Method:      http.MethodPost,
			Handler:     GenerateReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/consultations/:id/reports",
			Method:      http.MethodGet,
			Handler:     ListReports(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Benchmarks() []router.Route {
	return []router.Route{
		{
			Path:        "/v1/benchmarks",
			Method:      http.MethodGet,
			Handler:     ListBenchmarks(),
			Middlewares: []func(http.Handler) http.Handler{middleware.OperatorOnly()},
		},
	}
}
