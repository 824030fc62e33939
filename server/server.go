// Package server hosts the upload page. Each submitted form is passed through
// the submission handler and the outcome is rendered back into the page.
package server

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-memdb"
	"github.com/rs/zerolog"

	"github.com/CorrelAid/compress_uploader/configs"
	"github.com/CorrelAid/compress_uploader/display"
	"github.com/CorrelAid/compress_uploader/metrics"
	"github.com/CorrelAid/compress_uploader/middleware"
	"github.com/CorrelAid/compress_uploader/models"
	"github.com/CorrelAid/compress_uploader/operations"
	"github.com/CorrelAid/compress_uploader/routines"
	"github.com/CorrelAid/compress_uploader/submitter"
)

//go:embed templates/index.html
var templates embed.FS

var page = template.Must(template.ParseFS(templates, "templates/index.html"))

const shutdownTimeout = 10 * time.Second

type Server struct {
	cfg     *configs.AppConfig
	client  submitter.Doer
	db      *memdb.MemDB
	metrics *metrics.Metrics
	logger  zerolog.Logger
	engine  *gin.Engine
}

// New wires the router. client is used for the outgoing call to the
// compression endpoint.
func New(cfg *configs.AppConfig, client submitter.Doer, db *memdb.MemDB, m *metrics.Metrics, logger zerolog.Logger) *Server {
	s := &Server{
		cfg:     cfg,
		client:  client,
		db:      db,
		metrics: m,
		logger:  logger,
	}

	router := gin.New()
	router.MaxMultipartMemory = cfg.Server.MaxMultipartBytes()
	router.Use(
		gin.Recovery(),
		middleware.LoggerMiddleware(logger),
		middleware.DomainWhitelistMiddleware(cfg.Server.AllowedHosts, logger),
	)

	router.GET("/", s.index)
	router.POST("/submit", middleware.RateLimitMiddleware(cfg.Server.RateLimitPerMinute), s.submit)
	router.GET("/submissions", s.listSubmissions)
	router.GET("/submissions/:id", s.getSubmission)
	router.GET("/metrics", gin.WrapH(m.Handler()))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.engine = router

	return s
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully. The history
// cleanup routine runs for the lifetime of the server.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr(),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go routines.StartCleanupRoutine(ctx, s.db, s.cfg.History.Interval(), s.logger)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", srv.Addr).Str("endpoint", s.cfg.Client.Endpoint).Msg("starting page host")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.logger.Info().Msg("shutting down page host")

	return srv.Shutdown(shutdownCtx)
}

type pageData struct {
	Region template.HTML
}

func (s *Server) index(c *gin.Context) {
	s.renderPage(c, display.NewRegion())
}

func (s *Server) renderPage(c *gin.Context, region *display.Region) {
	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := page.Execute(c.Writer, pageData{Region: region.HTML()}); err != nil {
		_ = c.Error(err)
	}
}

// submissionView is the JSON answer to a submit with Accept: application/json.
type submissionView struct {
	ID      string `json:"id"`
	Outcome string `json:"outcome"`
	Status  int    `json:"status"`
	Message string `json:"message,omitempty"`
	File    string `json:"file,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (s *Server) submit(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.Server.MaxMultipartBytes())

	region := display.NewRegion()

	var record models.Submission
	h, err := submitter.New(requestForm{c: c}, region, s.client,
		submitter.WithEndpoint(s.cfg.Client.Endpoint),
		submitter.WithAbsoluteLinks(),
		submitter.WithLogger(s.logger),
		submitter.WithObserver(func(res submitter.Result) {
			record = s.record(res)
		}))
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	h.Submit(c.Request.Context(), submitter.NewSubmitEvent())

	if c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON {
		c.JSON(http.StatusOK, submissionView{
			ID:      record.ID,
			Outcome: record.Outcome,
			Status:  record.Status,
			Message: record.Message,
			File:    record.File,
			Error:   record.Error,
		})
		return
	}

	s.renderPage(c, region)
}

func (s *Server) record(res submitter.Result) models.Submission {
	s.metrics.ObserveSubmission(res.Outcome.String(), res.StatusCode, res.Duration)

	sub, err := operations.InsertSubmission(s.db, models.Submission{
		Outcome: res.Outcome.String(),
		Status:  res.StatusCode,
		Message: res.Message,
		File:    res.File,
		Error:   res.Error,
	}, time.Now(), s.cfg.History.TTL())
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to record submission")
	}

	return sub
}

func (s *Server) listSubmissions(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = n
	}

	subs, err := operations.ListSubmissions(s.db, c.Query("outcome"), limit)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, subs)
}

func (s *Server) getSubmission(c *gin.Context) {
	sub, found, err := operations.GetSubmission(s.db, c.Param("id"))
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "submission not found"})
		return
	}

	c.JSON(http.StatusOK, sub)
}
