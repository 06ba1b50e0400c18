package controllers

import (
	"net/http"
	"strings"

	"github.com/buyyourkawa/kawa-backend/api/responses"
	analyticssvc "github.com/buyyourkawa/kawa-backend/internal/analytics"
	"github.com/buyyourkawa/kawa-backend/pkg/enums"
	pkgerrors "github.com/buyyourkawa/kawa-backend/pkg/errors"
	"github.com/buyyourkawa/kawa-backend/pkg/logger"
)

// SalesAnalytics recomputes the sales summary for the requested period.
func SalesAnalytics(svc analyticssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "analytics service unavailable"))
			return
		}

		period := enums.AnalyticsPeriodToday
		if raw := strings.TrimSpace(r.URL.Query().Get("period")); raw != "" {
			parsed, err := enums.ParseAnalyticsPeriod(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid period"))
				return
			}
			period = parsed
		}

		summary, err := svc.Summarize(r.Context(), period)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, summary)
	}
}
