package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mlops-lab/churn-predictor/api/handlers"
	"github.com/mlops-lab/churn-predictor/api/middleware"
	"github.com/mlops-lab/churn-predictor/api/websocket"
	"github.com/mlops-lab/churn-predictor/internal/events"
	"github.com/mlops-lab/churn-predictor/internal/metrics"
	"github.com/mlops-lab/churn-predictor/internal/predictor"
	"github.com/mlops-lab/churn-predictor/pkg/config"
)

type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	config     config.APIConfig
	app        config.AppConfig
	svc        *predictor.Service
	wsHub      *websocket.Hub
	wsBridge   *websocket.EventBridge
}

// NewServer wires the HTTP surface around an explicitly constructed
// prediction service. bus may be nil when no event streaming is wanted
// (tests mostly pass nil).
func NewServer(cfg config.APIConfig, app config.AppConfig, svc *predictor.Service, bus *events.EventBus, wsCfg config.WebSocketConfig) *Server {
	if app.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		router: gin.New(),
		config: cfg,
		app:    app,
		svc:    svc,
		wsHub:  websocket.NewHub(wsCfg.BroadcastBuffer),
	}

	s.setupMiddleware()
	s.setupRoutes()

	go s.wsHub.Run()

	if bus != nil {
		s.wsBridge = websocket.NewEventBridge(s.wsHub, bus.SubscribeAll())
		s.wsBridge.Start()
	}

	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(gin.Recovery())
	s.router.Use(middleware.SecurityHeaders())
	s.router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	s.router.Use(middleware.RequestLogger())
	s.router.Use(middleware.TraceID())

	rateLimiter := middleware.NewRateLimiter(s.config.RateLimit, time.Minute)
	s.router.Use(middleware.RateLimit(rateLimiter))
}

func (s *Server) setupRoutes() {
	healthHandler := handlers.NewHealthHandler(s.svc, s.app.Version)
	predictHandler := handlers.NewPredictHandler(s.svc, s.config.MaxBatchSize)
	infoHandler := handlers.NewInfoHandler(s.svc, s.app.Name, s.app.Version)

	s.router.GET("/", infoHandler.Root)
	s.router.GET("/health", healthHandler.Health)
	s.router.POST("/predict", predictHandler.Predict)
	s.router.POST("/batch_predict", predictHandler.BatchPredict)
	s.router.GET("/model/info", infoHandler.ModelInfo)
	s.router.GET("/metrics", gin.WrapH(metrics.Handler()))
	s.router.GET("/ws", websocket.ServeWebSocket(s.wsHub))
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.wsBridge != nil {
		s.wsBridge.Stop()
	}

	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) Router() *gin.Engine {
	return s.router
}
