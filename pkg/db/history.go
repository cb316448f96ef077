package db

import (
	"database/sql"
	"fmt"
	"time"
)

// ActionRecord represents one completed menu action.
type ActionRecord struct {
	ID          int64
	SessionID   string
	Action      string
	WorkDir     string
	Detail      string
	PerformedAt time.Time
}

// QuizResult represents one finished quiz game.
type QuizResult struct {
	SessionID string
	Correct   int
	Total     int
}

// History manages action history operations.
type History struct {
	conn *Connection
}

// NewHistory creates a new History instance.
func NewHistory(conn *Connection) *History {
	return &History{conn: conn}
}

// RecordAction records a completed action.
func (h *History) RecordAction(record ActionRecord) error {
	query := `
		INSERT INTO action_history (session_id, action, work_dir, detail)
		VALUES (?, ?, ?, ?)
	`

	_, err := h.conn.Exec(query,
		record.SessionID,
		record.Action,
		record.WorkDir,
		record.Detail,
	)
	if err != nil {
		return fmt.Errorf("failed to record action: %w", err)
	}

	return nil
}

// RecentActions returns the latest actions, newest first.
func (h *History) RecentActions(limit int) ([]ActionRecord, error) {
	query := `
		SELECT id, session_id, action, work_dir, detail, performed_at
		FROM action_history
		ORDER BY id DESC
		LIMIT ?
	`

	rows, err := h.conn.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent actions: %w", err)
	}
	defer rows.Close()

	var records []ActionRecord
	for rows.Next() {
		var record ActionRecord
		if err := rows.Scan(
			&record.ID,
			&record.SessionID,
			&record.Action,
			&record.WorkDir,
			&record.Detail,
			&record.PerformedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan action record: %w", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// RecordQuizResult records a finished quiz game.
func (h *History) RecordQuizResult(result QuizResult) error {
	query := `INSERT INTO quiz_results (session_id, correct, total) VALUES (?, ?, ?)`

	if _, err := h.conn.Exec(query, result.SessionID, result.Correct, result.Total); err != nil {
		return fmt.Errorf("failed to record quiz result: %w", err)
	}
	return nil
}

// Stats represents action history statistics.
type Stats struct {
	TotalActions  int
	TotalSessions int
	ByAction      map[string]int
	QuizGames     int
	BestQuizScore sql.NullString
	LastAction    sql.NullString
}

// GetStats retrieves action history statistics.
func (h *History) GetStats() (*Stats, error) {
	stats := Stats{ByAction: make(map[string]int)}

	err := h.conn.QueryRow(`SELECT COUNT(*), COUNT(DISTINCT session_id) FROM action_history`).
		Scan(&stats.TotalActions, &stats.TotalSessions)
	if err != nil {
		return nil, fmt.Errorf("failed to get action count: %w", err)
	}

	rows, err := h.conn.Query(`SELECT action, COUNT(*) FROM action_history GROUP BY action`)
	if err != nil {
		return nil, fmt.Errorf("failed to get per-action counts: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var action string
		var count int
		if err := rows.Scan(&action, &count); err != nil {
			return nil, fmt.Errorf("failed to scan per-action count: %w", err)
		}
		stats.ByAction[action] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to get per-action counts: %w", err)
	}

	err = h.conn.QueryRow(`SELECT COUNT(*) FROM quiz_results`).Scan(&stats.QuizGames)
	if err != nil {
		return nil, fmt.Errorf("failed to get quiz count: %w", err)
	}

	err = h.conn.QueryRow(`
		SELECT correct || '/' || total FROM quiz_results
		ORDER BY CAST(correct AS REAL) / total DESC, id ASC
		LIMIT 1
	`).Scan(&stats.BestQuizScore)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to get best quiz score: %w", err)
	}

	err = h.conn.QueryRow(`SELECT MAX(performed_at) FROM action_history`).Scan(&stats.LastAction)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to get last action time: %w", err)
	}

	return &stats, nil
}

// GetMetadata retrieves a metadata value.
func (h *History) GetMetadata(key string) (string, error) {
	query := `SELECT value FROM history_metadata WHERE key = ?`

	var value string
	err := h.conn.QueryRow(query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get metadata: %w", err)
	}

	return value, nil
}

// SetMetadata sets a metadata value.
func (h *History) SetMetadata(key, value string) error {
	query := `
		INSERT INTO history_metadata (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP
	`

	if _, err := h.conn.Exec(query, key, value); err != nil {
		return fmt.Errorf("failed to set metadata: %w", err)
	}

	return nil
}
