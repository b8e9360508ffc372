package suggestion

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store persists refined suggestions for auditing and the org's recent
// history view.
type rowQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type Store struct {
	pool rowQuerier
}

// StoredSuggestion is one persisted refinement result.
type StoredSuggestion struct {
	ID        uuid.UUID  `json:"id"`
	OrgID     string     `json:"orgId"`
	UserInput string     `json:"userInput"`
	Refined   Suggestion `json:"refined"`
	CreatedAt time.Time  `json:"createdAt"`
}

func NewStore(pool *pgxpool.Pool) *Store {
	if pool == nil {
		panic("suggestion: pgx pool required")
	}
	return &Store{pool: pool}
}

func newStoreWithExec(exec rowQuerier) *Store {
	if exec == nil {
		panic("suggestion: exec required")
	}
	return &Store{pool: exec}
}

// Save inserts a refined suggestion row and returns its id.
func (s *Store) Save(ctx context.Context, orgID, userInput string, refined Suggestion) (uuid.UUID, error) {
	payload, err := json.Marshal(refined)
	if err != nil {
		return uuid.Nil, fmt.Errorf("suggestion: encode payload: %w", err)
	}
	id := uuid.New()
	query := `INSERT INTO refined_suggestions (id, org_id, user_input, payload, created_at)
		VALUES ($1, $2, $3, $4, now())`
	if _, err := s.pool.Exec(ctx, query, id, orgID, userInput, payload); err != nil {
		return uuid.Nil, fmt.Errorf("suggestion: insert refined: %w", err)
	}
	return id, nil
}

// ListRecentForOrg returns the org's most recent refinements, newest first.
func (s *Store) ListRecentForOrg(ctx context.Context, orgID string, limit int) ([]StoredSuggestion, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `SELECT id, org_id, user_input, payload, created_at
		FROM refined_suggestions
		WHERE org_id = $1
		ORDER BY created_at DESC
		LIMIT $2`
	rows, err := s.pool.Query(ctx, query, orgID, limit)
	if err != nil {
		return nil, fmt.Errorf("suggestion: list recent: %w", err)
	}
	defer rows.Close()

	var out []StoredSuggestion
	for rows.Next() {
		var (
			rec     StoredSuggestion
			payload []byte
		)
		if err := rows.Scan(&rec.ID, &rec.OrgID, &rec.UserInput, &payload, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("suggestion: scan refined: %w", err)
		}
		if err := json.Unmarshal(payload, &rec.Refined); err != nil {
			return nil, fmt.Errorf("suggestion: decode payload: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("suggestion: iterate refined: %w", err)
	}
	return out, nil
}
