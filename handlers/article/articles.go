package article

import (
	"strconv"

	"github.com/alinasr783/studyabroad-buddy/database"
	"github.com/alinasr783/studyabroad-buddy/model"
	"github.com/alinasr783/studyabroad-buddy/utils/response"
	"github.com/alinasr783/studyabroad-buddy/utils/sanitize"
	"github.com/alinasr783/studyabroad-buddy/utils/validation"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ArticleHandler handles article-related requests
type ArticleHandler struct {
	db        *gorm.DB
	repo      *database.Repository[model.Article]
	validator *validation.Validator
}

// NewArticleHandler creates a new article handler
func NewArticleHandler(db *gorm.DB) *ArticleHandler {
	return &ArticleHandler{
		db:        db,
		repo:      database.NewRepository[model.Article](db),
		validator: validation.NewValidator(),
	}
}

// ArticleRequest represents the request body for creating or updating an article
type ArticleRequest struct {
	TitleEN    string `json:"title_en" validate:"required,min=2,max=500"`
	TitleAR    string `json:"title_ar" validate:"required,min=2,max=500"`
	ExcerptEN  string `json:"excerpt_en" validate:"omitempty"`
	ExcerptAR  string `json:"excerpt_ar" validate:"omitempty"`
	ContentEN  string `json:"content_en" validate:"omitempty"`
	ContentAR  string `json:"content_ar" validate:"omitempty"`
	ImageURL   string `json:"image_url" validate:"omitempty,url,max=500"`
	AuthorName string `json:"author_name" validate:"omitempty,max=255"`
	Featured   bool   `json:"featured"`
	Published  bool   `json:"published"`
}

func (r *ArticleRequest) apply(a *model.Article) {
	a.TitleEN = validation.SanitizeString(r.TitleEN)
	a.TitleAR = validation.SanitizeString(r.TitleAR)
	a.ExcerptEN = validation.SanitizeString(r.ExcerptEN)
	a.ExcerptAR = validation.SanitizeString(r.ExcerptAR)
	// Rich content is stored as HTML; strip scripts and friends on write
	a.ContentEN = sanitize.HTML(r.ContentEN)
	a.ContentAR = sanitize.HTML(r.ContentAR)
	a.ImageURL = validation.SanitizeString(r.ImageURL)
	a.AuthorName = validation.SanitizeString(r.AuthorName)
	a.Featured = r.Featured
	a.Published = r.Published
}

// ListArticles handles GET /api/v1/articles
// Only published articles are visible publicly; featured affects ordering,
// never visibility.
func (h *ArticleHandler) ListArticles(c *fiber.Ctx) error {
	articles, err := h.repo.List(c.Context(),
		database.Where("published = ?", true),
		database.Order("featured DESC"),
		database.Order("created_at DESC"),
	)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch articles")
	}

	return response.Success(c, articles)
}

// ListAllArticles handles GET /api/v1/admin/articles (admin)
// Includes unpublished drafts.
func (h *ArticleHandler) ListAllArticles(c *fiber.Ctx) error {
	articles, err := h.repo.List(c.Context(),
		database.Order("featured DESC"),
		database.Order("created_at DESC"),
	)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch articles")
	}

	return response.Success(c, articles)
}

// GetArticle handles GET /api/v1/articles/:id
// The published filter is part of the fetch, so unpublished articles 404
// even when the id is known.
func (h *ArticleHandler) GetArticle(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid article id")
	}

	article, err := h.repo.Get(c.Context(), uint(id),
		database.Where("published = ?", true),
	)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Article not found")
		}
		return response.InternalServerError(c, "Failed to fetch article")
	}

	return response.Success(c, article)
}

// CreateArticle handles POST /api/v1/articles (admin)
func (h *ArticleHandler) CreateArticle(c *fiber.Ctx) error {
	var req ArticleRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var article model.Article
	req.apply(&article)

	if err := h.repo.Create(c.Context(), &article); err != nil {
		return response.InternalServerError(c, "Failed to create article")
	}

	return response.Created(c, article)
}

// UpdateArticle handles PUT /api/v1/articles/:id (admin)
func (h *ArticleHandler) UpdateArticle(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid article id")
	}

	var req ArticleRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	article, err := h.repo.Get(c.Context(), uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Article not found")
		}
		return response.InternalServerError(c, "Failed to fetch article")
	}

	req.apply(article)

	if err := h.repo.Save(c.Context(), article); err != nil {
		return response.InternalServerError(c, "Failed to update article")
	}

	return response.SuccessWithMessage(c, "Article updated successfully", article)
}

// DeleteArticle handles DELETE /api/v1/articles/:id (admin)
func (h *ArticleHandler) DeleteArticle(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid article id")
	}

	if err := h.repo.Delete(c.Context(), uint(id)); err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Article not found")
		}
		return response.InternalServerError(c, "Failed to delete article")
	}

	return response.SuccessWithMessage(c, "Article deleted successfully", nil)
}
