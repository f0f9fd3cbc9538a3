package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/rogerio-castellano/vigilio-gateway/docs"
	"github.com/rogerio-castellano/vigilio-gateway/internal/http/handlers"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// NewRouter wires every route. Trailing slashes are optional.
func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(RealIP)
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)

	r.Get("/healthz", handlers.HealthHandler)
	r.Get("/readyz", handlers.ReadyHandler)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Group(func(r chi.Router) {
		r.Use(RateLimit)

		r.Get("/fund-types", handlers.GetFundTypesHandler)

		r.Route("/shareholders", func(r chi.Router) {
			r.Get("/", handlers.ListShareHoldersHandler)
			r.Get("/summary", handlers.ShareHoldersSummaryHandler)
			r.Get("/summary_excel", handlers.ShareHoldersSummaryExcelHandler)
			r.Get("/{id}", handlers.GetShareHolderDetailHandler)
			r.Get("/{id}/for_date", handlers.GetShareHolderForDateHandler)
			r.Get("/{id}/excel", handlers.ExportShareHolderExcelHandler)
		})

		r.Get("/cashflow", handlers.ListCashFlowsHandler)
		r.Get("/cashflow/{id}/detail", handlers.GetCashFlowDetailHandler)
		r.Get("/total_return", handlers.ListTotalReturnsHandler)
		r.Get("/etf_return", handlers.ListEtfReturnsHandler)

		r.Route("/watchlist", func(r chi.Router) {
			r.Get("/nav_trend", handlers.GetNavTrendHandler)
			r.Get("/splits", handlers.GetSplitsHandler)
			r.Get("/profits", handlers.GetProfitsHandler)
			r.Get("/{id}/prices", handlers.GetPricesHandler)
		})
	})

	return r
}
