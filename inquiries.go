package siteworks

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Inquiry is one contact form submission.
type Inquiry struct {
	ID        int64
	Name      string
	Email     string
	Company   string
	Message   string
	CreatedAt string
}

// InquiryStore wraps a SQLite database holding contact form submissions.
type InquiryStore struct {
	db *sql.DB
}

// NewInquiryStore opens (or creates) the SQLite database at path, ensures
// the data directory exists, and runs schema migrations.
func NewInquiryStore(path string) (*InquiryStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL plus a busy timeout so concurrent submissions wait instead of
	// returning SQLITE_BUSY.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &InquiryStore{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *InquiryStore) Close() error {
	return s.db.Close()
}

func (s *InquiryStore) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS inquiries (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    company TEXT NOT NULL DEFAULT '',
    message TEXT NOT NULL,
    created_at TEXT NOT NULL
);
`)
	return err
}

// Save stores a new inquiry, stamping it with the current UTC time.
func (s *InquiryStore) Save(inq Inquiry) error {
	createdAt := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(
		`INSERT INTO inquiries (name, email, company, message, created_at) VALUES (?, ?, ?, ?, ?)`,
		inq.Name, inq.Email, inq.Company, inq.Message, createdAt,
	)
	return err
}

// Recent returns the newest inquiries, at most limit of them.
func (s *InquiryStore) Recent(limit int) ([]Inquiry, error) {
	rows, err := s.db.Query(
		`SELECT id, name, email, company, message, created_at FROM inquiries ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var inquiries []Inquiry
	for rows.Next() {
		var inq Inquiry
		if err := rows.Scan(&inq.ID, &inq.Name, &inq.Email, &inq.Company, &inq.Message, &inq.CreatedAt); err != nil {
			return nil, err
		}
		inquiries = append(inquiries, inq)
	}
	return inquiries, rows.Err()
}
