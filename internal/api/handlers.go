package api

import (
	"errors"
	"net/url"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/softnews/softnews/internal/ai"
	"github.com/softnews/softnews/internal/cache"
	"github.com/softnews/softnews/internal/config"
	"github.com/softnews/softnews/internal/extract"
	"github.com/softnews/softnews/internal/logger"
	"github.com/softnews/softnews/internal/models"
	"github.com/softnews/softnews/internal/news"
	"github.com/softnews/softnews/internal/youtube"
)

type Handlers struct {
	config    *config.Config
	news      *news.Service
	videos    *youtube.Service
	extractor *extract.Extractor
	validate  *validator.Validate
}

func NewHandlers(cfg *config.Config, store cache.Store) *Handlers {
	return &Handlers{
		config:    cfg,
		news:      news.NewService(cfg, store),
		videos:    youtube.NewService(cfg, store),
		extractor: extract.NewExtractor(cfg.ExtractTimeout),
		validate:  validator.New(),
	}
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": "1.0.0",
		"time":    time.Now().Format(time.RFC3339),
	})
}

// GetNews handles GET /api/news. Upstream failures degrade to a smaller or
// empty feed; only a configuration defect produces an error response.
func (h *Handlers) GetNews(c *fiber.Ctx) error {
	result, err := h.news.Latest(c.Context())
	if err != nil {
		return newsError(c, err)
	}
	return c.JSON(newsBody(result))
}

// RefreshNews handles POST /api/news/refresh (admin). Drops the cached feed
// and re-runs the pipeline.
func (h *Handlers) RefreshNews(c *fiber.Ctx) error {
	result, err := h.news.Refresh(c.Context())
	if err != nil {
		return newsError(c, err)
	}
	return c.JSON(newsBody(result))
}

func newsError(c *fiber.Ctx, err error) error {
	logger.Get().Error().Err(err).Msg("News pipeline failed")
	if errors.Is(err, news.ErrConfig) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Failed to load news",
	})
}

func newsBody(result news.Result) fiber.Map {
	articles := result.Articles
	if articles == nil {
		articles = []models.Article{}
	}
	return fiber.Map{
		"ok":       true,
		"articles": articles,
		"sources":  result.Sources,
	}
}

// GetArticle handles GET /api/article?url=. Extraction is best-effort: an
// unreachable or unreadable page still answers 200 with empty title/text.
func (h *Handlers) GetArticle(c *fiber.Ctx) error {
	target := c.Query("url")
	if target == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "url query parameter is required",
		})
	}

	parsed, err := url.Parse(target)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "url must be an absolute http(s) URL",
		})
	}

	return c.JSON(h.extractor.Extract(c.Context(), target))
}

// GetVideos handles GET /api/youtube?q=&max=. Never errors: a missing key or
// a failed search serves the curated fallback list.
func (h *Handlers) GetVideos(c *fiber.Ctx) error {
	max, _ := strconv.Atoi(c.Query("max", "0"))
	return c.JSON(h.videos.Search(c.Context(), c.Query("q"), max))
}

// ChatCompletion handles POST /api/ai: validates the body, forwards it to
// the configured provider and passes the upstream response through, status
// included. A missing key is a 500; there is no silent empty substitute for
// a failed AI call.
func (h *Handlers) ChatCompletion(c *fiber.Ctx) error {
	var req ai.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body: " + err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		fields := make(map[string]string)
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fields[fe.Field()] = fe.Tag()
			}
		}
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": fields,
		})
	}

	client, err := ai.NewClient(h.config)
	if err != nil {
		logger.Get().Error().Err(err).Msg("AI client configuration error")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	resp, err := client.Complete(c.Context(), req)
	if err != nil {
		logger.Get().Error().Err(err).Msg("AI completion failed")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Upstream AI provider unreachable",
		})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(resp.Status).Send(resp.Body)
}
