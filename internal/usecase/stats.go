package usecase

import (
	"context"

	"study-group-service/internal/domain"
)

// StatsUseCase реализует бизнес-логику для работы со статистикой.
type StatsUseCase struct {
	groupRepo domain.GroupRepository
	statsRepo domain.StatsRepository
}

// NewStatsUseCase создает новый экземпляр StatsUseCase.
func NewStatsUseCase(groupRepo domain.GroupRepository, statsRepo domain.StatsRepository) domain.StatsUseCase {
	return &StatsUseCase{
		groupRepo: groupRepo,
		statsRepo: statsRepo,
	}
}

// GetGroupStats возвращает сводку по группе. Доступно только активным участникам.
func (uc *StatsUseCase) GetGroupStats(ctx context.Context, actor domain.Actor, groupID string) (*domain.GroupStats, error) {
	if groupID == "" {
		return nil, domain.ErrInvalidGroupID
	}

	group, err := uc.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if _, ok := roleIn(actor, groupID); !ok {
		return nil, domain.ErrNotActiveMember
	}

	memberships, err := uc.statsRepo.GetMembershipStats(ctx, groupID)
	if err != nil {
		return nil, err
	}
	tasks, err := uc.statsRepo.GetTaskStats(ctx, groupID)
	if err != nil {
		return nil, err
	}

	return &domain.GroupStats{
		GroupID:     groupID,
		Capacity:    group.Capacity,
		Memberships: memberships,
		Tasks:       tasks,
	}, nil
}
