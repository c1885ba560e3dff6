package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"study-group-service/internal/database"
	"study-group-service/internal/domain"
)

// GroupRepository реализует взаимодействие с данными групп в PostgreSQL.
type GroupRepository struct {
	db      *sql.DB
	queries *database.Queries
}

// NewGroupRepository создает новый экземпляр GroupRepository.
func NewGroupRepository(db *sql.DB, queries *database.Queries) domain.GroupRepository {
	return &GroupRepository{
		db:      db,
		queries: queries,
	}
}

// CreateWithOwner создает группу и членство владельца.
func (r *GroupRepository) CreateWithOwner(ctx context.Context, group *domain.Group, owner *domain.Membership) error {
	err := withTx(ctx, r.db, r.queries, func(q *database.Queries) error {
		// 1. Создаем группу
		err := q.CreateGroup(ctx, database.CreateGroupParams{
			GroupID:          group.ID,
			Name:             group.Name,
			OwnerID:          group.OwnerID,
			Capacity:         int32(group.Capacity),
			Recruiting:       group.Recruiting,
			RequiresApproval: group.RequiresApproval,
			CreatedAt:        group.CreatedAt,
		})
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrGroupAlreadyExists
			}
			return fmt.Errorf("failed to create group: %w", err)
		}

		// 2. Владелец становится активным участником
		_, err = q.UpsertMembership(ctx, database.UpsertMembershipParams{
			GroupID:     owner.GroupID,
			UserID:      owner.UserID,
			Role:        string(owner.Role),
			Status:      string(owner.Status),
			RequestedAt: owner.RequestedAt,
			ApprovedAt:  nullTime(owner.ApprovedAt),
		})
		if err != nil {
			return fmt.Errorf("failed to create owner membership: %w", err)
		}

		return nil
	})

	return err
}

// GetByID возвращает группу по ID.
func (r *GroupRepository) GetByID(ctx context.Context, groupID string) (*domain.Group, error) {
	g, err := r.queries.GetGroupByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	return toDomainGroup(g), nil
}

// ExistsGroup проверяет существование группы.
func (r *GroupRepository) ExistsGroup(ctx context.Context, groupID string) (bool, error) {
	count, err := r.queries.GroupExists(ctx, groupID)
	if err != nil {
		return false, fmt.Errorf("failed to check group existence: %w", err)
	}
	return count > 0, nil
}
