package repository

import (
	"context"
	"fmt"

	"study-group-service/internal/database"
	"study-group-service/internal/domain"
)

// StatsRepository реализует domain.StatsRepository для работы со статистикой.
type StatsRepository struct {
	queries *database.Queries
}

// NewStatsRepository создает новый экземпляр StatsRepository.
func NewStatsRepository(queries *database.Queries) domain.StatsRepository {
	return &StatsRepository{
		queries: queries,
	}
}

// GetMembershipStats возвращает число членств группы в каждом статусе.
func (r *StatsRepository) GetMembershipStats(ctx context.Context, groupID string) ([]*domain.StatusCount, error) {
	stats, err := r.queries.GetMembershipStats(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get membership stats: %w", err)
	}

	result := make([]*domain.StatusCount, len(stats))
	for i, stat := range stats {
		result[i] = &domain.StatusCount{
			Status: stat.Status,
			Count:  stat.Count,
		}
	}

	return result, nil
}

// GetTaskStats возвращает число задач группы в каждом статусе.
func (r *StatsRepository) GetTaskStats(ctx context.Context, groupID string) ([]*domain.StatusCount, error) {
	stats, err := r.queries.GetTaskStats(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get task stats: %w", err)
	}

	result := make([]*domain.StatusCount, len(stats))
	for i, stat := range stats {
		result[i] = &domain.StatusCount{
			Status: stat.Status,
			Count:  stat.Count,
		}
	}

	return result, nil
}
