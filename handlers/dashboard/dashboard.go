package dashboard

import (
	"sync"

	"github.com/alinasr783/studyabroad-buddy/database"
	"github.com/alinasr783/studyabroad-buddy/model"
	"github.com/alinasr783/studyabroad-buddy/utils/response"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// DashboardHandler serves the admin dashboard summary
type DashboardHandler struct {
	db           *gorm.DB
	countries    *database.Repository[model.Country]
	universities *database.Repository[model.University]
	programs     *database.Repository[model.Program]
	articles     *database.Repository[model.Article]
	applications *database.Repository[model.Application]
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{
		db:           db,
		countries:    database.NewRepository[model.Country](db),
		universities: database.NewRepository[model.University](db),
		programs:     database.NewRepository[model.Program](db),
		articles:     database.NewRepository[model.Article](db),
		applications: database.NewRepository[model.Application](db),
	}
}

// DashboardStats holds the per-entity totals
type DashboardStats struct {
	Countries           int64 `json:"countries"`
	Universities        int64 `json:"universities"`
	Programs            int64 `json:"programs"`
	Articles            int64 `json:"articles"`
	Applications        int64 `json:"applications"`
	PendingApplications int64 `json:"pending_applications"`
}

// DashboardResponse is the full dashboard payload
type DashboardResponse struct {
	Stats              DashboardStats      `json:"stats"`
	RecentApplications []model.Application `json:"recent_applications"`
}

// GetDashboard handles GET /api/v1/admin/dashboard (admin)
// Counts run concurrently; the recent list is the 10 newest applications.
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	ctx := c.Context()
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		res  DashboardResponse
		errs []error
	)

	fail := func(err error) {
		mu.Lock()
		errs = append(errs, err)
		mu.Unlock()
	}

	count := func(dst *int64, run func() (int64, error)) {
		defer wg.Done()
		n, err := run()
		if err != nil {
			fail(err)
			return
		}
		*dst = n
	}

	wg.Add(7)
	go count(&res.Stats.Countries, func() (int64, error) { return h.countries.Count(ctx) })
	go count(&res.Stats.Universities, func() (int64, error) { return h.universities.Count(ctx) })
	go count(&res.Stats.Programs, func() (int64, error) { return h.programs.Count(ctx) })
	go count(&res.Stats.Articles, func() (int64, error) { return h.articles.Count(ctx) })
	go count(&res.Stats.Applications, func() (int64, error) { return h.applications.Count(ctx) })
	go count(&res.Stats.PendingApplications, func() (int64, error) {
		return h.applications.Count(ctx, database.Where("status = ?", model.StatusPending))
	})
	go func() {
		defer wg.Done()
		recent, err := h.applications.List(ctx,
			database.Order("created_at DESC"),
			database.Preload("Program"),
			database.Limit(10),
		)
		if err != nil {
			fail(err)
			return
		}
		res.RecentApplications = recent
	}()
	wg.Wait()

	if len(errs) > 0 {
		return response.InternalServerError(c, "Failed to build dashboard")
	}

	return response.Success(c, res)
}
