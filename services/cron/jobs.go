package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/alinasr783/studyabroad-buddy/model"
)

// RefreshCountryCounts recomputes the cached universities_count column for
// every country from the live universities table. The column is denormalized
// for the public listing and can drift when universities are added or
// removed.
func (m *CronManager) RefreshCountryCounts() {
	jobName := "refresh_country_counts"

	var countries []model.Country
	if err := m.db.Find(&countries).Error; err != nil {
		m.logJobError(jobName, fmt.Errorf("failed to query countries: %w", err))
		return
	}

	updated := 0
	for _, country := range countries {
		var count int64
		if err := m.db.Model(&model.University{}).
			Where("country_id = ?", country.ID).
			Count(&count).Error; err != nil {
			m.logJobError(jobName, fmt.Errorf("failed to count universities for country %d: %w", country.ID, err))
			return
		}

		if int(count) == country.UniversitiesCount {
			continue
		}

		if err := m.db.Model(&model.Country{}).
			Where("id = ?", country.ID).
			Update("universities_count", count).Error; err != nil {
			m.logJobError(jobName, fmt.Errorf("failed to update country %d: %w", country.ID, err))
			return
		}
		updated++
	}

	m.logJobComplete(jobName, fmt.Sprintf("Refreshed counts for %d of %d countries", updated, len(countries)))
}

// CleanupTokenBlacklist removes blacklist rows for tokens that have passed
// their natural expiry. Expired tokens fail signature validation anyway, so
// the rows only waste lookups.
func (m *CronManager) CleanupTokenBlacklist() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	jobName := "cleanup_token_blacklist"

	removed, err := m.blacklist.CleanupExpiredTokens(ctx)
	if err != nil {
		m.logJobError(jobName, fmt.Errorf("failed to cleanup token blacklist: %w", err))
		return
	}

	m.logJobComplete(jobName, fmt.Sprintf("Removed %d expired blacklist entries", removed))
}
