package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
	"github.com/gin-gonic/gin"

	"github.com/AetherPulse/PulseGuard/internal/alerts"
	"github.com/AetherPulse/PulseGuard/internal/analysis"
	"github.com/AetherPulse/PulseGuard/internal/export"
	"github.com/AetherPulse/PulseGuard/internal/fetch"
	"github.com/AetherPulse/PulseGuard/internal/models"
	"github.com/AetherPulse/PulseGuard/internal/notify"
	"github.com/AetherPulse/PulseGuard/internal/repository"
)

// PipelineRunner triggers a pipeline run.
type PipelineRunner interface {
	Run(ctx context.Context) (*models.PipelineResult, error)
}

type Handler struct {
	runs     repository.RunRepository
	runner   PipelineRunner
	analyzer analysis.Analyzer
	store    *alerts.Store
	fetcher  *fetch.Service
	exporter *export.Exporter
	queue    *notify.Queue
}

func NewHandler(runs repository.RunRepository, runner PipelineRunner, analyzer analysis.Analyzer, store *alerts.Store, fetcher *fetch.Service, exporter *export.Exporter, queue *notify.Queue) *Handler {
	return &Handler{
		runs:     runs,
		runner:   runner,
		analyzer: analyzer,
		store:    store,
		fetcher:  fetcher,
		exporter: exporter,
		queue:    queue,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/api/data", h.getData)
	r.POST("/api/run-pipeline", h.runPipeline)
	r.GET("/api/predictions/:region", h.getPredictions)
	r.GET("/api/risk/:region", h.getRisk)
	r.GET("/api/alerts", h.getAlerts)
	r.POST("/api/alerts/:id/read", h.markAlertRead)
	r.DELETE("/api/alerts/:id", h.deleteAlert)
	r.GET("/api/dashboard", h.getDashboard)
	r.GET("/api/analytics", h.getAnalytics)
	r.POST("/api/export", h.exportView)
	r.GET("/api/notifications", h.getNotifications)
	r.DELETE("/api/notifications/:id", h.dismissNotification)
	r.GET("/health", h.health)
}

func (h *Handler) getData(c *gin.Context) {
	rec, err := h.runs.LatestRun(c.Request.Context())
	if err != nil {
		if errors.Is(err, repository.ErrNoRuns) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No data available yet"})
			return
		}
		slog.Error("error fetching latest run", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch data"})
		return
	}
	c.JSON(http.StatusOK, rec.Result)
}

func (h *Handler) runPipeline(c *gin.Context) {
	slog.Info("manually triggering data pipeline")

	if _, err := h.runner.Run(c.Request.Context()); err != nil {
		slog.Error("error running pipeline", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to run pipeline"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Pipeline executed successfully",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) getPredictions(c *gin.Context) {
	region := c.Param("region")

	data := historicalData(region)
	preds, err := h.analyzer.PredictOutbreaks(c.Request.Context(), data)
	if err != nil {
		slog.Error("error fetching predictions", "region", region, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch predictions"})
		return
	}

	filtered := make([]models.Prediction, 0, len(preds))
	for _, p := range preds {
		if strings.EqualFold(p.Region, region) {
			filtered = append(filtered, p)
		}
	}

	c.JSON(http.StatusOK, filtered)
}

func (h *Handler) getRisk(c *gin.Context) {
	region := c.Param("region")
	ctx := c.Request.Context()

	data := historicalData(region)
	an, err := h.analyzer.AnalyzeOutbreaks(ctx, data)
	if err != nil {
		slog.Error("error analyzing data", "region", region, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch risk assessment"})
		return
	}
	preds, err := h.analyzer.PredictOutbreaks(ctx, data)
	if err != nil {
		slog.Error("error predicting outbreaks", "region", region, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch risk assessment"})
		return
	}
	report, err := h.analyzer.GenerateRiskReport(ctx, data, an, preds)
	if err != nil {
		slog.Error("error generating risk report", "region", region, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch risk assessment"})
		return
	}

	filtered := make([]models.RegionalRisk, 0, len(report.RegionalRiskAssessments))
	for _, r := range report.RegionalRiskAssessments {
		if strings.EqualFold(r.Region, region) {
			filtered = append(filtered, r)
		}
	}
	report.RegionalRiskAssessments = filtered

	c.JSON(http.StatusOK, report)
}

func (h *Handler) getAlerts(c *gin.Context) {
	window, err := alerts.ParseWindow(c.DefaultQuery("window", string(alerts.WindowAll)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown time window"})
		return
	}

	if err := h.ensureAlerts(c.Request.Context()); err != nil {
		slog.Error("error loading alerts", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch alerts"})
		return
	}

	criteria := alerts.Criteria{
		Search:   c.Query("search"),
		Severity: c.DefaultQuery("severity", alerts.FilterAll),
		Status:   c.DefaultQuery("status", alerts.FilterAll),
		Window:   window,
	}

	view := h.store.View(criteria, time.Now())
	c.JSON(http.StatusOK, gin.H{
		"alerts": view,
		"total":  h.store.Len(),
	})
}

// ensureAlerts populates the store on first use. The commit token makes a
// concurrent first load harmless: only the newest response commits.
func (h *Handler) ensureAlerts(ctx context.Context) error {
	if h.store.Len() > 0 {
		return nil
	}
	token := h.store.NextToken()
	items, err := h.fetcher.Alerts(ctx)
	if err != nil {
		return err
	}
	h.store.Replace(items, token)
	return nil
}

func (h *Handler) markAlertRead(c *gin.Context) {
	id := c.Param("id")
	changed := h.store.MarkRead(id)
	c.JSON(http.StatusOK, gin.H{"id": id, "changed": changed})
}

func (h *Handler) deleteAlert(c *gin.Context) {
	id := c.Param("id")
	removed := h.store.Delete(id)
	c.JSON(http.StatusOK, gin.H{"id": id, "removed": removed})
}

func (h *Handler) getDashboard(c *gin.Context) {
	data, err := h.fetcher.Dashboard(c.Request.Context())
	if err != nil {
		slog.Error("error fetching dashboard", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard"})
		return
	}
	c.JSON(http.StatusOK, data)
}

func (h *Handler) getAnalytics(c *gin.Context) {
	q := fetch.AnalyticsQuery{
		Region:    c.DefaultQuery("region", "global"),
		TimeRange: c.DefaultQuery("time_range", "30d"),
		Disease:   c.DefaultQuery("disease", "all"),
	}

	data, err := h.fetcher.Analytics(c.Request.Context(), q)
	if err != nil {
		slog.Error("error fetching analytics", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analytics"})
		return
	}
	c.JSON(http.StatusOK, data)
}

type exportRequest struct {
	Format  string `json:"format"`
	Section string `json:"section"`
}

var exportRequestSchema = z.Struct(z.Shape{
	"Format":  z.String().Required(),
	"Section": z.String().Default("alerts"),
})

var errUnknownSection = errors.New("unknown export section")

// sectionPayload builds the export payload for the requested section out of
// that section's own data.
func (h *Handler) sectionPayload(ctx context.Context, section string) (export.Payload, error) {
	switch section {
	case "alerts":
		if err := h.ensureAlerts(ctx); err != nil {
			return export.Payload{}, err
		}
		return export.AlertsPayload(section, h.store.Snapshot()), nil
	case "dashboard":
		d, err := h.fetcher.Dashboard(ctx)
		if err != nil {
			return export.Payload{}, err
		}
		return export.DashboardPayload(d), nil
	case "analytics":
		a, err := h.fetcher.Analytics(ctx, fetch.AnalyticsQuery{Region: "global", TimeRange: "30d", Disease: "all"})
		if err != nil {
			return export.Payload{}, err
		}
		return export.AnalyticsPayload(a), nil
	default:
		return export.Payload{}, fmt.Errorf("%w: %q", errUnknownSection, section)
	}
}

func (h *Handler) exportView(c *gin.Context) {
	var req exportRequest
	if err := exportRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	format, err := export.ParseFormat(req.Format)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown export format"})
		return
	}

	payload, err := h.sectionPayload(c.Request.Context(), req.Section)
	if err != nil {
		if errors.Is(err, errUnknownSection) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown export section"})
			return
		}
		slog.Error("error building export payload", "section", req.Section, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export"})
		return
	}

	path, err := h.exporter.Export(c.Request.Context(), format, payload)
	if err != nil {
		if errors.Is(err, export.ErrNoData) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no data to export"})
			return
		}
		slog.Error("export failed", "format", format, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "format": format, "path": path})
}

func (h *Handler) getNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"notifications": h.queue.Active(time.Now())})
}

func (h *Handler) dismissNotification(c *gin.Context) {
	id := c.Param("id")
	c.JSON(http.StatusOK, gin.H{"id": id, "dismissed": h.queue.Dismiss(id)})
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// historicalData is the stand-in dataset handed to the analyzer for
// per-region queries, mirroring what a store of past runs would provide.
func historicalData(region string) models.ProcessedData {
	return models.ProcessedData{
		ScrapedData: models.ScrapedData{
			LastUpdated: time.Now().UTC(),
			Sources: []models.SourceReport{
				{
					Source:      "history",
					LastUpdated: time.Now().UTC(),
					Outbreaks: []models.Outbreak{
						{Disease: "Respiratory Infection", Region: region, Cases: 1245, LastUpdated: "2024-05-15"},
						{Disease: "Vector-borne Disease", Region: region, Cases: 567, LastUpdated: "2024-05-20"},
					},
				},
			},
		},
		Preprocessed: true,
	}
}
