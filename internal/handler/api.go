package handler

import (
	"embed"
	"errors"
	"html/template"
	"io"
	"net/http"

	"comment-sentiment/internal/models"
	"comment-sentiment/internal/report"
	"comment-sentiment/internal/service"
	"comment-sentiment/internal/youtube"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	invalidLinkMessage = "Invalid Youtube Link or Video ID not found"
	fetchFailedMessage = "Could not fetch comments for this video"
)

// Handler handles HTTP requests
type Handler struct {
	analyzer *service.Analyzer
	logger   *zap.Logger
}

// dashboardPage is the data of dashboard.html
type dashboardPage struct {
	Link      string
	Error     string
	Dashboard *models.Dashboard
}

// NewHandler creates a new HTTP handler
func NewHandler(analyzer *service.Analyzer, logger *zap.Logger) *Handler {
	return &Handler{
		analyzer: analyzer,
		logger:   logger,
	}
}

// RegisterRoutes registers templates and all routes
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	r.GET("/", h.Dashboard)

	charts := r.Group("/charts/:id")
	{
		charts.GET("/bar", h.BarChart)
		charts.GET("/pie", h.PieChart)
	}

	api := r.Group("/api/v1")
	{
		api.GET("/analyze", h.Analyze)
		api.GET("/videos/:id/comments.csv", h.DownloadCSV)
	}

	// Health check
	r.GET("/health", h.HealthCheck)
}

// Dashboard renders the input form and, when a link is given, the analysis
func (h *Handler) Dashboard(c *gin.Context) {
	link, submitted := c.GetQuery("link")
	page := dashboardPage{Link: link}

	if !submitted {
		c.HTML(http.StatusOK, "dashboard.html", page)
		return
	}

	dashboard, err := h.analyzer.Analyze(c.Request.Context(), link)
	if err != nil {
		status, message := h.errorStatus(err, link)
		page.Error = message
		c.HTML(status, "dashboard.html", page)
		return
	}

	page.Dashboard = dashboard
	c.HTML(http.StatusOK, "dashboard.html", page)
}

// Analyze returns the analysis as JSON
func (h *Handler) Analyze(c *gin.Context) {
	link := c.Query("link")

	dashboard, err := h.analyzer.Analyze(c.Request.Context(), link)
	if err != nil {
		status, message := h.errorStatus(err, link)
		c.JSON(status, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// BarChart renders the bar chart of the cached video
func (h *Handler) BarChart(c *gin.Context) {
	h.renderChart(c, report.RenderBar)
}

// PieChart renders the pie chart of the cached video
func (h *Handler) PieChart(c *gin.Context) {
	h.renderChart(c, report.RenderPie)
}

func (h *Handler) renderChart(c *gin.Context, render func(io.Writer, models.SentimentSummary) error) {
	videoID := c.Param("id")
	if !youtube.ValidVideoID(videoID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid video ID"})
		return
	}

	summary, ok, err := h.analyzer.Summary(c.Request.Context(), videoID)
	if err != nil {
		h.logger.Error("Failed to summarize comments", zap.String("video_id", videoID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "chart failed"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "video not analyzed"})
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := render(c.Writer, summary); err != nil {
		h.logger.Error("Failed to render chart", zap.String("video_id", videoID), zap.Error(err))
	}
}

// DownloadCSV sends the cached comments as a CSV attachment
func (h *Handler) DownloadCSV(c *gin.Context) {
	videoID := c.Param("id")
	if !youtube.ValidVideoID(videoID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid video ID"})
		return
	}

	data, ok, err := h.analyzer.CommentsCSV(videoID)
	if err != nil {
		h.logger.Error("Failed to export CSV", zap.String("video_id", videoID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "video not analyzed"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+videoID+".csv")
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// HealthCheck returns service health
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "comment-sentiment",
		"version": "1.0.0",
	})
}

func (h *Handler) errorStatus(err error, link string) (int, string) {
	switch {
	case errors.Is(err, service.ErrInvalidLink):
		return http.StatusBadRequest, invalidLinkMessage
	case errors.Is(err, service.ErrFetchComments):
		return http.StatusBadGateway, fetchFailedMessage
	default:
		h.logger.Error("Analysis failed", zap.String("link", link), zap.Error(err))
		return http.StatusInternalServerError, "analysis failed"
	}
}
