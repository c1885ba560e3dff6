package domain

import "context"

// StatusCount число записей в одном статусе.
type StatusCount struct {
	Status string
	Count  int64
}

// GroupStats сводка по участникам и задачам группы.
type GroupStats struct {
	GroupID     string
	Capacity    int
	Memberships []*StatusCount
	Tasks       []*StatusCount
}

// ActiveCount возвращает число ACTIVE членств.
func (s *GroupStats) ActiveCount() int {
	for _, c := range s.Memberships {
		if c.Status == string(StatusActive) {
			return int(c.Count)
		}
	}
	return 0
}

// FreeSeats возвращает число свободных мест.
func (s *GroupStats) FreeSeats() int {
	free := s.Capacity - s.ActiveCount()
	if free < 0 {
		return 0
	}
	return free
}

// StatsRepository определяет контракт для работы со статистическими данными.
type StatsRepository interface {
	GetMembershipStats(ctx context.Context, groupID string) ([]*StatusCount, error)
	GetTaskStats(ctx context.Context, groupID string) ([]*StatusCount, error)
}
