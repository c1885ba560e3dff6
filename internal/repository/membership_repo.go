package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"study-group-service/internal/database"
	"study-group-service/internal/domain"
)

// MembershipRepository реализует взаимодействие с членствами в PostgreSQL.
// Операции над вместимостью и владельцем сериализуются блокировкой строки группы.
type MembershipRepository struct {
	db      *sql.DB
	queries *database.Queries
}

// NewMembershipRepository создает новый экземпляр MembershipRepository.
func NewMembershipRepository(db *sql.DB, queries *database.Queries) domain.MembershipRepository {
	return &MembershipRepository{
		db:      db,
		queries: queries,
	}
}

// GetByKey возвращает членство по паре (группа, пользователь).
func (r *MembershipRepository) GetByKey(ctx context.Context, groupID, userID string) (*domain.Membership, error) {
	m, err := r.queries.GetMembership(ctx, database.GetMembershipParams{
		GroupID: groupID,
		UserID:  userID,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return toDomainMembership(m), nil
}

// ListByGroup возвращает все членства группы.
func (r *MembershipRepository) ListByGroup(ctx context.Context, groupID string) ([]*domain.Membership, error) {
	rows, err := r.queries.ListMembershipsByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}

	members := make([]*domain.Membership, 0, len(rows))
	for _, row := range rows {
		members = append(members, toDomainMembership(row))
	}
	return members, nil
}

func (r *MembershipRepository) CountActive(ctx context.Context, groupID string) (int, error) {
	count, err := r.queries.CountActiveMemberships(ctx, groupID)
	if err != nil {
		return 0, fmt.Errorf("failed to count active memberships: %w", err)
	}
	return int(count), nil
}

func (r *MembershipRepository) CountActiveAdmins(ctx context.Context, groupID, excludeUserID string) (int, error) {
	count, err := r.queries.CountActiveAdmins(ctx, database.CountActiveAdminsParams{
		GroupID: groupID,
		UserID:  excludeUserID,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count active admins: %w", err)
	}
	return int(count), nil
}

// Request создает PENDING заявку. Существующая PENDING или ACTIVE запись не перезаписывается.
func (r *MembershipRepository) Request(ctx context.Context, m *domain.Membership) error {
	rows, err := r.queries.UpsertMembership(ctx, upsertParams(m))
	if err != nil {
		return fmt.Errorf("failed to create join request: %w", err)
	}
	if rows == 0 {
		return domain.ErrAlreadyMember
	}
	return nil
}

// JoinActive вступление в открытую группу, потребляющее место.
func (r *MembershipRepository) JoinActive(ctx context.Context, m *domain.Membership) error {
	return withTx(ctx, r.db, r.queries, func(q *database.Queries) error {
		// 1. Блокируем группу, чтобы параллельные вступления видели актуальный счетчик
		group, err := lockGroup(ctx, q, m.GroupID)
		if err != nil {
			return err
		}

		// 2. Проверяем вместимость под блокировкой
		if err := checkCapacity(ctx, q, group); err != nil {
			return err
		}

		// 3. Пишем ACTIVE членство
		rows, err := q.UpsertMembership(ctx, upsertParams(m))
		if err != nil {
			return fmt.Errorf("failed to create membership: %w", err)
		}
		if rows == 0 {
			return domain.ErrAlreadyMember
		}
		return nil
	})
}

// Approve переводит заявку в ACTIVE, повторно проверяя вместимость в той же транзакции.
func (r *MembershipRepository) Approve(ctx context.Context, groupID, userID string, at time.Time) (*domain.Membership, error) {
	var approved *domain.Membership

	err := withTx(ctx, r.db, r.queries, func(q *database.Queries) error {
		group, err := lockGroup(ctx, q, groupID)
		if err != nil {
			return err
		}

		current, err := q.GetMembership(ctx, database.GetMembershipParams{GroupID: groupID, UserID: userID})
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrMembershipNotFound
			}
			return fmt.Errorf("failed to get membership: %w", err)
		}
		if current.Status != string(domain.StatusPending) {
			return domain.ErrNotPending
		}

		if err := checkCapacity(ctx, q, group); err != nil {
			return err
		}

		row, err := q.ApproveMembership(ctx, database.ApproveMembershipParams{
			GroupID:    groupID,
			UserID:     userID,
			ApprovedAt: nullTime(&at),
		})
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrNotPending
			}
			return fmt.Errorf("failed to approve membership: %w", err)
		}

		approved = toDomainMembership(row)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return approved, nil
}

// Delete удаляет заявку или завершенную запись.
func (r *MembershipRepository) Delete(ctx context.Context, groupID, userID string) error {
	rows, err := r.queries.DeleteInactiveMembership(ctx, database.DeleteInactiveMembershipParams{
		GroupID: groupID,
		UserID:  userID,
	})
	if err != nil {
		return fmt.Errorf("failed to delete membership: %w", err)
	}
	if rows > 0 {
		return nil
	}

	// Ничего не удалено: либо записи нет, либо она ACTIVE
	if _, err := r.GetByKey(ctx, groupID, userID); err != nil {
		return err
	}
	return domain.ErrMembershipActive
}

// Terminate переводит ACTIVE не-владельца в KICKED или LEFT.
func (r *MembershipRepository) Terminate(ctx context.Context, groupID, userID string, status domain.MembershipStatus, at time.Time) (*domain.Membership, error) {
	if !status.Terminal() {
		return nil, domain.NewError(domain.KindValidation, "terminal status expected")
	}

	row, err := r.queries.TerminateMembership(ctx, database.TerminateMembershipParams{
		GroupID: groupID,
		UserID:  userID,
		Status:  string(status),
		LeftAt:  nullTime(&at),
	})
	if err == nil {
		return toDomainMembership(row), nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to terminate membership: %w", err)
	}

	// Условие UPDATE не выполнено, уточняем причину
	current, getErr := r.GetByKey(ctx, groupID, userID)
	if getErr != nil {
		return nil, getErr
	}
	if current.Role == domain.RoleOwner {
		return nil, domain.ErrOwnerRemoval
	}
	return nil, domain.ErrNotActive
}

// UpdateRole меняет роль ACTIVE членства, если она не изменилась с момента чтения.
func (r *MembershipRepository) UpdateRole(ctx context.Context, groupID, userID string, from, to domain.Role) (*domain.Membership, error) {
	row, err := r.queries.UpdateMembershipRole(ctx, database.UpdateMembershipRoleParams{
		GroupID: groupID,
		UserID:  userID,
		Role:    string(from),
		Role_2:  string(to),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMembershipChanged
		}
		return nil, fmt.Errorf("failed to update membership role: %w", err)
	}

	return toDomainMembership(row), nil
}

// LeaveAsOwner выводит владельца из группы и назначает преемником старейшего ACTIVE админа.
func (r *MembershipRepository) LeaveAsOwner(ctx context.Context, groupID, ownerID string, at time.Time) (*domain.Membership, error) {
	var successor *domain.Membership

	err := withTx(ctx, r.db, r.queries, func(q *database.Queries) error {
		// 1. Блокируем группу и проверяем владельца
		group, err := lockGroup(ctx, q, groupID)
		if err != nil {
			return err
		}
		if group.OwnerID != ownerID {
			return domain.ErrNotOwner
		}

		// 2. Выбираем преемника
		next, err := q.OldestActiveAdmin(ctx, database.OldestActiveAdminParams{GroupID: groupID, UserID: ownerID})
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrOwnerWithoutAdmin
			}
			return fmt.Errorf("failed to find successor: %w", err)
		}

		// 3. Сначала снимаем текущего владельца, иначе сработает уникальный индекс
		rows, err := q.LeaveAsFormerOwner(ctx, database.LeaveAsFormerOwnerParams{
			GroupID: groupID,
			UserID:  ownerID,
			LeftAt:  nullTime(&at),
		})
		if err != nil {
			return fmt.Errorf("failed to remove owner: %w", err)
		}
		if rows == 0 {
			return domain.ErrMembershipChanged
		}

		// 4. Повышаем преемника и переносим ссылку на владельца
		promoted, err := q.UpdateMembershipRole(ctx, database.UpdateMembershipRoleParams{
			GroupID: groupID,
			UserID:  next.UserID,
			Role:    string(domain.RoleAdmin),
			Role_2:  string(domain.RoleOwner),
		})
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrMembershipChanged
			}
			return fmt.Errorf("failed to promote successor: %w", err)
		}

		if err := moveOwner(ctx, q, groupID, ownerID, next.UserID); err != nil {
			return err
		}

		successor = toDomainMembership(promoted)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return successor, nil
}

// TransferOwnership атомарно меняет роли владельца и админа и владельца группы.
func (r *MembershipRepository) TransferOwnership(ctx context.Context, groupID, fromUserID, toUserID string) error {
	return withTx(ctx, r.db, r.queries, func(q *database.Queries) error {
		// 1. Повторяем проверки под блокировкой группы
		group, err := lockGroup(ctx, q, groupID)
		if err != nil {
			return err
		}
		if group.OwnerID == toUserID {
			return domain.ErrTransferToSelf
		}
		if group.OwnerID != fromUserID {
			return domain.ErrNotOwner
		}

		target, err := q.GetMembership(ctx, database.GetMembershipParams{GroupID: groupID, UserID: toUserID})
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrMembershipNotFound
			}
			return fmt.Errorf("failed to get transfer target: %w", err)
		}
		if target.Status != string(domain.StatusActive) {
			return domain.ErrNotActive
		}
		if target.Role != string(domain.RoleAdmin) {
			return domain.ErrTransferTargetRole
		}

		// 2. Понижаем текущего владельца
		if _, err := q.UpdateMembershipRole(ctx, database.UpdateMembershipRoleParams{
			GroupID: groupID,
			UserID:  fromUserID,
			Role:    string(domain.RoleOwner),
			Role_2:  string(domain.RoleAdmin),
		}); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrMembershipChanged
			}
			return fmt.Errorf("failed to demote owner: %w", err)
		}

		// 3. Повышаем нового владельца
		if _, err := q.UpdateMembershipRole(ctx, database.UpdateMembershipRoleParams{
			GroupID: groupID,
			UserID:  toUserID,
			Role:    string(domain.RoleAdmin),
			Role_2:  string(domain.RoleOwner),
		}); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrMembershipChanged
			}
			return fmt.Errorf("failed to promote new owner: %w", err)
		}

		// 4. Переносим ссылку на владельца
		return moveOwner(ctx, q, groupID, fromUserID, toUserID)
	})
}

func upsertParams(m *domain.Membership) database.UpsertMembershipParams {
	return database.UpsertMembershipParams{
		GroupID:     m.GroupID,
		UserID:      m.UserID,
		Role:        string(m.Role),
		Status:      string(m.Status),
		RequestedAt: m.RequestedAt,
		ApprovedAt:  nullTime(m.ApprovedAt),
	}
}

// checkCapacity должна вызываться только под блокировкой группы.
func checkCapacity(ctx context.Context, q *database.Queries, group database.StudyGroup) error {
	active, err := q.CountActiveMemberships(ctx, group.GroupID)
	if err != nil {
		return fmt.Errorf("failed to count active memberships: %w", err)
	}
	if active >= int64(group.Capacity) {
		return domain.ErrGroupFull
	}
	return nil
}

func moveOwner(ctx context.Context, q *database.Queries, groupID, fromUserID, toUserID string) error {
	rows, err := q.UpdateGroupOwner(ctx, database.UpdateGroupOwnerParams{
		GroupID:   groupID,
		OwnerID:   toUserID,
		OwnerID_2: fromUserID,
	})
	if err != nil {
		return fmt.Errorf("failed to update group owner: %w", err)
	}
	if rows != 1 {
		return domain.ErrMembershipChanged
	}
	return nil
}
