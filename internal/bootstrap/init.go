package bootstrap

import (
	"NovedadesAPI/ent"
	"NovedadesAPI/internal/adapter"
	"NovedadesAPI/internal/config"
	"NovedadesAPI/internal/controller"
	"NovedadesAPI/internal/document"
	"NovedadesAPI/internal/middleware"
	"NovedadesAPI/internal/queue"
	"NovedadesAPI/internal/repository"
	"NovedadesAPI/internal/service"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

func Init(
	appConfig *config.AppConfig,
	client *ent.Client,
	validate *validator.Validate,
	s3Client *s3.Client,
	httpClient *http.Client,
	redisAdapter *adapter.RedisAdapter,
	chiMux *chi.Mux,
) {
	storageAdapter := adapter.NewStorageAdapter(appConfig, s3Client)
	captchaAdapter := adapter.NewCaptchaAdapter(appConfig, httpClient)
	renderQueue := queue.NewRenderQueue(redisAdapter, appConfig)

	repos := repository.NewRepository(client)

	pdfRenderer := document.NewPDFRenderer()
	docxRenderer := document.NewDocxRenderer()

	reportService := service.NewReportService(
		repos.Report,
		repos.Legal,
		repos.Law,
		storageAdapter,
		renderQueue,
		captchaAdapter,
		appConfig,
		validate,
	)
	lawService := service.NewLawService(repos.Law)
	curriculumService := service.NewCurriculumService(pdfRenderer, docxRenderer)

	reportController := controller.NewReportController(reportService, appConfig)
	lawController := controller.NewLawController(lawService)
	curriculumController := controller.NewCurriculumController(curriculumService)

	authMiddleware := middleware.NewAuthMiddleware(appConfig)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(config.NewRateLimiter(appConfig), appConfig)

	route := NewRoute(appConfig, chiMux, authMiddleware, rateLimitMiddleware, reportController, lawController, curriculumController)
	route.Register()
}
