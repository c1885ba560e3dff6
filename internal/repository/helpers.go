package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"study-group-service/internal/database"
	"study-group-service/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// withTx выполняет fn в транзакции. Транзакция откатывается при любой ошибке и при панике.
func withTx(ctx context.Context, db *sql.DB, queries *database.Queries, fn func(q *database.Queries) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(queries.WithTx(tx)); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

// Конвертируем NullTime → *time.Time
func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func toDomainMembership(m database.Membership) *domain.Membership {
	return &domain.Membership{
		GroupID:     m.GroupID,
		UserID:      m.UserID,
		Role:        domain.Role(m.Role),
		Status:      domain.MembershipStatus(m.Status),
		RequestedAt: m.RequestedAt,
		ApprovedAt:  timePtr(m.ApprovedAt),
		LeftAt:      timePtr(m.LeftAt),
	}
}

func toDomainGroup(g database.StudyGroup) *domain.Group {
	return &domain.Group{
		ID:               g.GroupID,
		Name:             g.Name,
		OwnerID:          g.OwnerID,
		Capacity:         int(g.Capacity),
		Recruiting:       g.Recruiting,
		RequiresApproval: g.RequiresApproval,
		CreatedAt:        g.CreatedAt,
	}
}

func toDomainTask(t database.Task, assignees []string) *domain.Task {
	if assignees == nil {
		assignees = []string{}
	}
	return &domain.Task{
		ID:          t.TaskID,
		GroupID:     t.GroupID,
		OwnerID:     t.OwnerID,
		CreatorID:   t.CreatorID,
		Title:       t.Title,
		Assignees:   assignees,
		Status:      domain.TaskStatus(t.Status),
		CompletedAt: timePtr(t.CompletedAt),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// lockGroup блокирует строку группы до конца транзакции.
func lockGroup(ctx context.Context, q *database.Queries, groupID string) (database.StudyGroup, error) {
	g, err := q.LockGroup(ctx, groupID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return g, domain.ErrGroupNotFound
		}
		return g, fmt.Errorf("failed to lock group: %w", err)
	}
	return g, nil
}
