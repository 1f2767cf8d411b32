package bootstrap

import (
	"NovedadesAPI/internal/config"
	"NovedadesAPI/internal/controller"
	"NovedadesAPI/internal/middleware"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Route struct {
	cfg                  *config.AppConfig
	chi                  *chi.Mux
	authMiddleware       *middleware.AuthMiddleware
	rateLimitMiddleware  *middleware.RateLimitMiddleware
	reportController     *controller.ReportController
	lawController        *controller.LawController
	curriculumController *controller.CurriculumController
}

func NewRoute(
	cfg *config.AppConfig,
	chiMux *chi.Mux,
	authMiddleware *middleware.AuthMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
	reportController *controller.ReportController,
	lawController *controller.LawController,
	curriculumController *controller.CurriculumController,
) *Route {
	return &Route{
		cfg:                  cfg,
		chi:                  chiMux,
		authMiddleware:       authMiddleware,
		rateLimitMiddleware:  rateLimitMiddleware,
		reportController:     reportController,
		lawController:        lawController,
		curriculumController: curriculumController,
	}
}

func (route *Route) Register() {
	route.chi.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Welcome to NovedadesAPI"))
	})

	route.chi.Route("/api", func(r chi.Router) {
		r.Use(route.authMiddleware.Identify)

		r.Route("/reportes", func(r chi.Router) {
			r.With(route.rateLimitMiddleware.Limit("submit")).Post("/", route.reportController.CreateReport)
			r.Get("/", route.reportController.ListReports)
			r.Get("/buscar", route.reportController.SearchReports)
			r.Get("/estadisticas", route.reportController.Stats)

			r.Route("/{reportID}", func(r chi.Router) {
				r.Get("/", route.reportController.GetReport)
				r.Patch("/", route.reportController.UpdateReport)
				r.Delete("/", route.reportController.DeleteReport)

				r.Get("/referencias", route.reportController.ListLegalReferences)
				r.Post("/referencias", route.reportController.LinkLegalReference)
				r.Delete("/referencias/{leyID}", route.reportController.UnlinkLegalReference)
			})
		})

		r.Route("/leyes", func(r chi.Router) {
			r.Get("/", route.lawController.ListLaws)
			r.Get("/{lawID}", route.lawController.GetLaw)
		})

		r.With(route.rateLimitMiddleware.Limit("curriculum")).
			Post("/hojas-de-vida", route.curriculumController.GenerateCurriculum)
	})
}
