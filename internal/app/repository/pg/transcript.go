package pg

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"meetscribe/internal/app/model"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS transcripts (
	id BIGSERIAL PRIMARY KEY,
	title TEXT NOT NULL,
	content TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

// PostgresDB is the postgres-backed transcript store. BIGSERIAL sequences
// never reissue an id after deletion.
type PostgresDB struct {
	db *sql.DB
}

// NewPostgresDB connects using a lib/pq connection string and ensures the
// transcripts table exists.
func NewPostgresDB(connStr string) (*PostgresDB, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create transcripts table: %w", err)
	}

	return &PostgresDB{db: db}, nil
}

func (p *PostgresDB) Close() error {
	return p.db.Close()
}

func (p *PostgresDB) Create(ctx context.Context, title, content string) (int64, error) {
	insertSQL := `INSERT INTO transcripts (title, content, created_at) VALUES ($1, $2, $3) RETURNING id`
	var id int64
	if err := p.db.QueryRowContext(ctx, insertSQL, title, content, time.Now().UTC()).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert transcript: %w", err)
	}
	return id, nil
}

func (p *PostgresDB) ListAll(ctx context.Context) ([]model.Transcript, error) {
	querySQL := `
		SELECT id, title, content, created_at
		FROM transcripts
		ORDER BY created_at DESC, id DESC`
	rows, err := p.db.QueryContext(ctx, querySQL)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	transcripts := make([]model.Transcript, 0)
	for rows.Next() {
		var t model.Transcript
		if err := rows.Scan(&t.ID, &t.Title, &t.Content, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("db scan failed: %w", err)
		}
		transcripts = append(transcripts, t)
	}
	return transcripts, rows.Err()
}

func (p *PostgresDB) FetchContents(ctx context.Context, ids []int64) ([]string, error) {
	if len(ids) == 0 {
		return []string{}, nil
	}

	querySQL := `SELECT content FROM transcripts WHERE id = ANY($1)`
	rows, err := p.db.QueryContext(ctx, querySQL, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	contents := make([]string, 0, len(ids))
	for rows.Next() {
		var content string
		if err := rows.Scan(&content); err != nil {
			return nil, fmt.Errorf("db scan failed: %w", err)
		}
		contents = append(contents, content)
	}
	return contents, rows.Err()
}

func (p *PostgresDB) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := p.db.ExecContext(ctx, `DELETE FROM transcripts WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete transcript %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
