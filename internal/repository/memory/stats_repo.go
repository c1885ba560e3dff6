package memory

import (
	"context"
	"sort"

	"study-group-service/internal/domain"
)

// StatsRepository in-memory реализация domain.StatsRepository.
type StatsRepository struct {
	store *Store
}

// Stats возвращает репозиторий статистики поверх хранилища.
func (s *Store) Stats() domain.StatsRepository {
	return &StatsRepository{store: s}
}

func (r *StatsRepository) GetMembershipStats(_ context.Context, groupID string) ([]*domain.StatusCount, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[string]int64)
	for k, m := range s.memberships {
		if k.groupID == groupID {
			counts[string(m.Status)]++
		}
	}
	return sortedCounts(counts), nil
}

func (r *StatsRepository) GetTaskStats(_ context.Context, groupID string) ([]*domain.StatusCount, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[string]int64)
	for _, t := range s.tasks {
		if t.GroupID == groupID {
			counts[string(t.Status)]++
		}
	}
	return sortedCounts(counts), nil
}

// sortedCounts упорядочивает статусы так же, как ORDER BY status.
func sortedCounts(counts map[string]int64) []*domain.StatusCount {
	result := make([]*domain.StatusCount, 0, len(counts))
	for status, n := range counts {
		result = append(result, &domain.StatusCount{Status: status, Count: n})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Status < result[j].Status
	})
	return result
}
