package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-match/internal/types"
)

// MatchRecord is a stored match report with its metadata row.
type MatchRecord struct {
	ID         uuid.UUID          `json:"id"`
	UserID     uuid.UUID          `json:"user_id"`
	ResumeName string             `json:"resume_name,omitempty"`
	JobName    string             `json:"job_name,omitempty"`
	Overall    float64            `json:"overall"`
	Level      string             `json:"level"`
	Report     *types.MatchReport `json:"report,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
}

// MatchSummary is a lightweight view of a stored match for listing
type MatchSummary struct {
	ID         uuid.UUID `json:"id"`
	ResumeName string    `json:"resume_name,omitempty"`
	JobName    string    `json:"job_name,omitempty"`
	Overall    float64   `json:"overall"`
	Level      string    `json:"level"`
	CreatedAt  time.Time `json:"created_at"`
}

// SaveMatch stores a match report for a user and returns the record ID
func (db *DB) SaveMatch(ctx context.Context, userID uuid.UUID, resumeName, jobName string, report *types.MatchReport) (uuid.UUID, error) {
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal report: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO match_history (user_id, resume_name, job_name, overall, level, report)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		userID, resumeName, jobName, report.Result.Overall, report.Interpretation.Level, reportJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save match: %w", err)
	}
	return id, nil
}

// GetMatch retrieves a stored match by ID, scoped to a user. Returns nil
// when no such record exists for that user.
func (db *DB) GetMatch(ctx context.Context, userID, matchID uuid.UUID) (*MatchRecord, error) {
	var rec MatchRecord
	var reportJSON []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, resume_name, job_name, overall, level, report, created_at
		 FROM match_history WHERE id = $1 AND user_id = $2`,
		matchID, userID,
	).Scan(&rec.ID, &rec.UserID, &rec.ResumeName, &rec.JobName, &rec.Overall, &rec.Level, &reportJSON, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	if len(reportJSON) > 0 {
		var report types.MatchReport
		if err := json.Unmarshal(reportJSON, &report); err != nil {
			return nil, fmt.Errorf("failed to unmarshal stored report: %w", err)
		}
		rec.Report = &report
	}
	return &rec, nil
}

// ListMatches retrieves a user's recent matches, newest first
func (db *DB) ListMatches(ctx context.Context, userID uuid.UUID, limit int) ([]MatchSummary, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, resume_name, job_name, overall, level, created_at
		 FROM match_history WHERE user_id = $1
		 ORDER BY created_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	defer rows.Close()

	var matches []MatchSummary
	for rows.Next() {
		var m MatchSummary
		if err := rows.Scan(&m.ID, &m.ResumeName, &m.JobName, &m.Overall, &m.Level, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, m)
	}
	return matches, nil
}

// DeleteMatch deletes a stored match, scoped to a user
func (db *DB) DeleteMatch(ctx context.Context, userID, matchID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM match_history WHERE id = $1 AND user_id = $2`,
		matchID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("match not found: %s", matchID)
	}
	return nil
}
