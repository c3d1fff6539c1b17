package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"rss-summarizer/api/dto"
	"rss-summarizer/feeder"
	"rss-summarizer/internal/logger"
	"rss-summarizer/internal/trace"
	"rss-summarizer/models"
	"rss-summarizer/services"
)

const (
	MessageEnterURL   = "Enter a rss feed url"
	messageInvalidURL = "Enter a valid http(s) rss feed url"
	messageFeedFailed = "Could not load the rss feed. Check the url and try again."
	messageBadForm    = "Could not read the submitted form."
)

// SummaryRunner is implemented by services.SummaryService.
type SummaryRunner interface {
	Run(ctx context.Context, feedURL string, creativity models.Creativity) (*services.Report, error)
}

// PageOptions controls what the page shows.
type PageOptions struct {
	DefaultURL   string
	ShowFailures bool
}

type pageData struct {
	URL          string
	Creativity   string
	Creativities []string
	Message      string
	Error        string
	Posts        []dto.SummarizedPostDTO
	Failures     []dto.FailedPostDTO
	ShowFailures bool
}

func newPageData(url, creativity string, opts PageOptions) pageData {
	creativities := make([]string, 0, len(models.Creativities))
	for _, c := range models.Creativities {
		creativities = append(creativities, string(c))
	}
	if creativity == "" {
		creativity = string(models.CreativityMedium)
	}
	return pageData{
		URL:          url,
		Creativity:   creativity,
		Creativities: creativities,
		ShowFailures: opts.ShowFailures,
	}
}

// IndexPageHandler renders the empty form.
func IndexPageHandler(opts PageOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", newPageData(opts.DefaultURL, "", opts))
	}
}

// SubmitPageHandler runs the pipeline for the submitted form and renders one
// panel per summarized post.
func SubmitPageHandler(runner SummaryRunner, opts PageOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SummaryRequestDTO
		if err := c.ShouldBind(&req); err != nil {
			data := newPageData(opts.DefaultURL, "", opts)
			data.Error = messageBadForm
			c.HTML(http.StatusBadRequest, "index.html", data)
			return
		}
		req.URL = strings.TrimSpace(req.URL)
		data := newPageData(req.URL, req.Creativity, opts)

		if req.URL == "" {
			data.Message = MessageEnterURL
			c.HTML(http.StatusOK, "index.html", data)
			return
		}

		creativity, err := models.ParseCreativity(req.Creativity)
		if err != nil {
			data.Error = err.Error()
			c.HTML(http.StatusBadRequest, "index.html", data)
			return
		}
		data.Creativity = string(creativity)

		report, err := runner.Run(c.Request.Context(), req.URL, creativity)
		if err != nil {
			status, msg := feedErrorStatus(err)
			logRunError(c, req.URL, err)
			data.Error = msg
			c.HTML(status, "index.html", data)
			return
		}

		for _, p := range report.Succeeded() {
			data.Posts = append(data.Posts, dto.NewSummarizedPostDTO(p))
		}
		if opts.ShowFailures {
			for _, f := range report.Failed() {
				data.Failures = append(data.Failures, dto.NewFailedPostDTO(f))
			}
		}
		c.HTML(http.StatusOK, "index.html", data)
	}
}

// CreateSummaryHandler godoc
// @Summary      Summarize a feed
// @Description  Fetch a feed, keep the 10 newest entries and summarize and classify each article
// @Tags         summaries
// @Accept       json
// @Produce      json
// @Param        request  body      dto.SummaryRequestDTO  true  "Feed url and creativity (Low, Medium, High)"
// @Success      200      {object}  dto.SummaryResponseDTO
// @Failure      400      {object}  dto.ErrorResponseDTO
// @Failure      502      {object}  dto.ErrorResponseDTO
// @Router       /summaries [post]
func CreateSummaryHandler(runner SummaryRunner) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SummaryRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid request body"})
			return
		}
		req.URL = strings.TrimSpace(req.URL)
		if req.URL == "" {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: strings.ToLower(MessageEnterURL)})
			return
		}
		creativity, err := models.ParseCreativity(req.Creativity)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}

		report, err := runner.Run(c.Request.Context(), req.URL, creativity)
		if err != nil {
			status, msg := feedErrorStatus(err)
			logRunError(c, req.URL, err)
			c.JSON(status, dto.ErrorResponseDTO{Error: msg})
			return
		}
		c.JSON(http.StatusOK, dto.NewSummaryResponseDTO(report))
	}
}

func feedErrorStatus(err error) (int, string) {
	if errors.Is(err, feeder.ErrInvalidFeedURL) {
		return http.StatusBadRequest, messageInvalidURL
	}
	return http.StatusBadGateway, messageFeedFailed
}

func logRunError(c *gin.Context, feedURL string, err error) {
	logger.ErrorWithFields("feed summary request failed", logger.Fields{
		"request_id": trace.RequestIDFromContext(c.Request.Context()),
		"feed_url":   feedURL,
		"error":      err.Error(),
	})
}
