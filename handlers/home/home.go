package home

import (
	"sync"

	"github.com/alinasr783/studyabroad-buddy/database"
	"github.com/alinasr783/studyabroad-buddy/model"
	"github.com/alinasr783/studyabroad-buddy/utils/response"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const featuredLimit = 3

// HomeHandler serves the aggregated landing-page payload
type HomeHandler struct {
	db           *gorm.DB
	countries    *database.Repository[model.Country]
	universities *database.Repository[model.University]
	programs     *database.Repository[model.Program]
	articles     *database.Repository[model.Article]
}

// NewHomeHandler creates a new home handler
func NewHomeHandler(db *gorm.DB) *HomeHandler {
	return &HomeHandler{
		db:           db,
		countries:    database.NewRepository[model.Country](db),
		universities: database.NewRepository[model.University](db),
		programs:     database.NewRepository[model.Program](db),
		articles:     database.NewRepository[model.Article](db),
	}
}

// HomeResponse bundles the featured rows of each section
type HomeResponse struct {
	Countries    []model.Country    `json:"countries"`
	Universities []model.University `json:"universities"`
	Programs     []model.Program    `json:"programs"`
	Articles     []model.Article    `json:"articles"`
}

// GetHome handles GET /api/v1/home
// Sections are fetched concurrently; each is capped at featuredLimit rows
// with featured entries first.
func (h *HomeHandler) GetHome(c *fiber.Ctx) error {
	ctx := c.Context()
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		res  HomeResponse
		errs []error
	)

	fail := func(err error) {
		mu.Lock()
		errs = append(errs, err)
		mu.Unlock()
	}

	wg.Add(4)
	go func() {
		defer wg.Done()
		countries, err := h.countries.List(ctx,
			database.Order("featured DESC"),
			database.Order("name_en ASC"),
			database.Limit(featuredLimit),
		)
		if err != nil {
			fail(err)
			return
		}
		res.Countries = countries
	}()
	go func() {
		defer wg.Done()
		universities, err := h.universities.List(ctx,
			database.Order("featured DESC"),
			database.Order("ranking ASC"),
			database.Limit(featuredLimit),
		)
		if err != nil {
			fail(err)
			return
		}
		res.Universities = universities
	}()
	go func() {
		defer wg.Done()
		programs, err := h.programs.List(ctx,
			database.Order("featured DESC"),
			database.Order("name_en ASC"),
			database.Limit(featuredLimit),
		)
		if err != nil {
			fail(err)
			return
		}
		res.Programs = programs
	}()
	go func() {
		defer wg.Done()
		articles, err := h.articles.List(ctx,
			database.Where("published = ?", true),
			database.Order("featured DESC"),
			database.Order("created_at DESC"),
			database.Limit(featuredLimit),
		)
		if err != nil {
			fail(err)
			return
		}
		res.Articles = articles
	}()
	wg.Wait()

	if len(errs) > 0 {
		return response.InternalServerError(c, "Failed to build home feed")
	}

	return response.Success(c, res)
}
