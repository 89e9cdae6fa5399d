package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/apex/internal/db"
	"github.com/alexanderramin/apex/internal/domain"
	"github.com/google/uuid"
)

// SQLiteSessionLogRepo implements SessionLogRepo using a SQLite database.
type SQLiteSessionLogRepo struct {
	db db.DBTX
}

func NewSQLiteSessionLogRepo(conn db.DBTX) *SQLiteSessionLogRepo {
	return &SQLiteSessionLogRepo{db: conn}
}

const sessionLogColumns = `id, date, week, day, name, type, mode, readiness_score,
	xp, duration_min, exercises_json, notes, created_at`

// Create inserts l, assigning a fresh id when l.ID is empty.
func (r *SQLiteSessionLogRepo) Create(ctx context.Context, l *domain.SessionLog) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	exercises := l.Exercises
	if exercises == nil {
		exercises = []domain.PrescribedExercise{}
	}
	exJSON, err := json.Marshal(exercises)
	if err != nil {
		return fmt.Errorf("encoding session log exercises: %w", err)
	}

	query := `INSERT INTO session_logs (` + sessionLogColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		l.ID,
		l.Date,
		l.Week,
		l.Day,
		l.Name,
		string(l.Type),
		string(l.Mode),
		nullableFloat(l.ReadinessScore),
		l.XP,
		l.DurationMin,
		string(exJSON),
		l.Notes,
		l.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting session log: %w", err)
	}
	return nil
}

// GetByID returns the entry whose id equals id or, failing that, the only
// entry whose id starts with id.
func (r *SQLiteSessionLogRepo) GetByID(ctx context.Context, id string) (*domain.SessionLog, error) {
	if id == "" {
		return nil, fmt.Errorf("session log: %w", ErrNotFound)
	}
	query := `SELECT ` + sessionLogColumns + ` FROM session_logs
		WHERE id = ? OR id LIKE ? ESCAPE '\'
		ORDER BY id = ? DESC, id LIMIT 2`
	rows, err := r.db.QueryContext(ctx, query, id, likePrefix(id), id)
	if err != nil {
		return nil, fmt.Errorf("getting session log: %w", err)
	}
	defer rows.Close()
	logs, err := scanSessionLogs(rows)
	if err != nil {
		return nil, err
	}
	switch {
	case len(logs) == 0:
		return nil, fmt.Errorf("session log %q: %w", id, ErrNotFound)
	case len(logs) == 1 || logs[0].ID == id:
		return logs[0], nil
	default:
		return nil, fmt.Errorf("session log %q: %w", id, ErrAmbiguousID)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePrefix(s string) string {
	return likeEscaper.Replace(s) + "%"
}

// ListRecent returns up to limit entries, newest first.
func (r *SQLiteSessionLogRepo) ListRecent(ctx context.Context, limit int) ([]*domain.SessionLog, error) {
	query := `SELECT ` + sessionLogColumns + ` FROM session_logs
		ORDER BY created_at DESC, week DESC, day DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent session logs: %w", err)
	}
	defer rows.Close()
	return scanSessionLogs(rows)
}

func (r *SQLiteSessionLogRepo) ListByWeek(ctx context.Context, week int) ([]*domain.SessionLog, error) {
	query := `SELECT ` + sessionLogColumns + ` FROM session_logs
		WHERE week = ? ORDER BY day, created_at`
	rows, err := r.db.QueryContext(ctx, query, week)
	if err != nil {
		return nil, fmt.Errorf("listing session logs for week %d: %w", week, err)
	}
	defer rows.Close()
	return scanSessionLogs(rows)
}

func (r *SQLiteSessionLogRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM session_logs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting session logs: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSessionLog(row rowScanner) (*domain.SessionLog, error) {
	var l domain.SessionLog
	var typ, mode, exJSON, createdAt string
	var score sql.NullFloat64

	err := row.Scan(
		&l.ID, &l.Date, &l.Week, &l.Day, &l.Name, &typ, &mode, &score,
		&l.XP, &l.DurationMin, &exJSON, &l.Notes, &createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning session log: %w", err)
	}

	l.Type = domain.SessionType(typ)
	l.Mode = domain.ReadinessMode(mode)
	if score.Valid {
		v := score.Float64
		l.ReadinessScore = &v
	}
	if err := json.Unmarshal([]byte(exJSON), &l.Exercises); err != nil {
		return nil, fmt.Errorf("decoding session log %s exercises: %w", l.ID, err)
	}
	if l.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing session log %s created_at: %w", l.ID, err)
	}
	return &l, nil
}

func scanSessionLogs(rows *sql.Rows) ([]*domain.SessionLog, error) {
	var logs []*domain.SessionLog
	for rows.Next() {
		l, err := scanSessionLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating session logs: %w", err)
	}
	return logs, nil
}

// nullableFloat converts a *float64 to a value suitable for SQLite storage.
func nullableFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
