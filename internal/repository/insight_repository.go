package repository

import (
	"context"
	"fmt"

	"fintrack/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type InsightRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewInsightRepository(db *pgxpool.Pool, logger *zap.Logger) *InsightRepository {
	return &InsightRepository{
		db:     db,
		logger: logger,
	}
}

// ReplaceForUser swaps the user's insight snapshot for a freshly
// generated one in a single transaction.
func (r *InsightRepository) ReplaceForUser(ctx context.Context, userID uuid.UUID, insights []*models.AiInsight) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	delSQL, delArgs, err := squirrel.Delete("ai_insights").
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, delSQL, delArgs...); err != nil {
		return fmt.Errorf("delete stale insights: %w", err)
	}

	if len(insights) > 0 {
		builder := squirrel.Insert("ai_insights").
			Columns("id", "user_id", "type", "title", "content", "priority", "is_read", "created_at").
			PlaceholderFormat(squirrel.Dollar)
		for _, in := range insights {
			builder = builder.Values(in.ID, in.UserID, in.Type, in.Title, in.Content, in.Priority, in.IsRead, in.CreatedAt)
		}
		insSQL, insArgs, err := builder.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, insSQL, insArgs...); err != nil {
			return fmt.Errorf("insert insights: %w", err)
		}
	}

	return tx.Commit(ctx)
}

func (r *InsightRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*models.AiInsight, error) {
	query := squirrel.Select("id", "user_id", "type", "title", "content", "priority", "is_read", "created_at").
		From("ai_insights").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("priority DESC", "created_at DESC").
		PlaceholderFormat(squirrel.Dollar)
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var insights []*models.AiInsight
	for rows.Next() {
		var in models.AiInsight
		if err := rows.Scan(
			&in.ID, &in.UserID, &in.Type, &in.Title, &in.Content, &in.Priority, &in.IsRead, &in.CreatedAt,
		); err != nil {
			return nil, err
		}
		insights = append(insights, &in)
	}

	return insights, rows.Err()
}

func (r *InsightRepository) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	query := squirrel.Update("ai_insights").
		Set("is_read", true).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
