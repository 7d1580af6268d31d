package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/adamanr/workforce_service/internal/entity"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

type callerKey struct{}

// Authenticate resolves the bearer token into the caller of the request.
func (s *Server) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := s.Auth.CheckUserToken(r.Context(), r.Header.Get("Authorization"))
		if err != nil {
			s.Logger.Warn("Unauthorized request",
				slog.String("error", err.Error()),
				slog.String("path", r.URL.Path),
			)
			s.httpResponse(w, http.StatusUnauthorized, entity.Response{Message: "Unauthorized"})
			return
		}

		ctx := context.WithValue(r.Context(), callerKey{}, claims.Caller())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func callerFrom(ctx context.Context) entity.Caller {
	caller, _ := ctx.Value(callerKey{}).(entity.Caller)
	return caller
}

func requestMeta(r *http.Request) entity.RequestMeta {
	return entity.RequestMeta{
		URL:       r.URL.RequestURI(),
		RequestID: middleware.GetReqID(r.Context()),
		UserAgent: r.UserAgent(),
	}
}

// CountRequests increments requests by path, method and status.
func CountRequests(requests *prometheus.CounterVec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			requests.WithLabelValues(r.URL.Path, r.Method, strconv.Itoa(ww.Status())).Inc()
		})
	}
}
