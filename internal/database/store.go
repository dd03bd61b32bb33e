// Package database provides the catalog store for chasecards.
//
// It implements the Store interface using SQLite. The embedded
// schema creates the cards table and seeds the built-in catalog, so
// an in-memory database (":memory:") is fully populated on open and
// nothing is written to disk.
package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaFS embed.FS

// ErrCardNotFound is returned by GetCard for an unknown card id.
var ErrCardNotFound = errors.New("card not found")

// Store defines read access to the card catalog.
// This abstraction allows catalog loading to be tested against
// fixtures without SQLite.
type Store interface {
	// QueryCards returns every card ordered by display position.
	QueryCards() ([]*CardRow, error)
	// GetCard returns a single card by id.
	GetCard(cardID string) (*CardRow, error)
	// CountCards returns the number of cards in the catalog.
	CountCards() (int, error)

	// Close gracefully shuts down the database connection.
	Close() error
}

// CardRow is a card as stored in the cards table.
type CardRow struct {
	CardID      string `json:"card_id"`
	Position    int    `json:"position"`
	Name        string `json:"name"`
	ElementType string `json:"element_type"`
	Rarity      string `json:"rarity"`
	HP          string `json:"hp"`
	AttackName  string `json:"attack_name"`
	Image       string `json:"image"`
	IsChase     bool   `json:"is_chase"`
}

// DBService implements the Store interface using SQLite.
type DBService struct {
	db *sql.DB
	mu sync.RWMutex

	stmtQueryCards *sql.Stmt
	stmtGetCard    *sql.Stmt
}

// NewDBService opens the database at path, initializes the schema
// and prepares the catalog queries.
//
// Use ":memory:" for a throwaway database; that is what the
// application does.
func NewDBService(path string) (*DBService, error) {
	dsn := fmt.Sprintf("%s?_foreign_keys=ON", path)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database at %s: %w", path, err)
	}

	// Each :memory: connection is its own database.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	svc := &DBService{db: db}

	if err := svc.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	if err := svc.prepareStatements(); err != nil {
		db.Close()
		return nil, fmt.Errorf("preparing statements: %w", err)
	}

	return svc, nil
}

// initSchema executes the embedded schema.sql.
func (s *DBService) initSchema() error {
	schema, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("reading embedded schema: %w", err)
	}

	if _, err := s.db.Exec(string(schema)); err != nil {
		return fmt.Errorf("executing schema: %w", err)
	}

	return nil
}

func (s *DBService) prepareStatements() error {
	var err error

	s.stmtQueryCards, err = s.db.Prepare(`
		SELECT card_id, position, name, element_type, rarity, hp, attack_name, image, is_chase
		FROM cards
		ORDER BY position ASC
	`)
	if err != nil {
		return fmt.Errorf("preparing QueryCards: %w", err)
	}

	s.stmtGetCard, err = s.db.Prepare(`
		SELECT card_id, position, name, element_type, rarity, hp, attack_name, image, is_chase
		FROM cards
		WHERE card_id = ?
	`)
	if err != nil {
		return fmt.Errorf("preparing GetCard: %w", err)
	}

	return nil
}

// QueryCards returns all cards ordered by position.
func (s *DBService) QueryCards() ([]*CardRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.stmtQueryCards.Query()
	if err != nil {
		return nil, fmt.Errorf("querying cards: %w", err)
	}
	defer rows.Close()

	var cards []*CardRow
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

// GetCard returns the card with the given id, or an error wrapping
// ErrCardNotFound.
func (s *DBService) GetCard(cardID string) (*CardRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, err := scanCard(s.stmtGetCard.QueryRow(cardID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("card %s: %w", cardID, ErrCardNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting card %s: %w", cardID, err)
	}
	return c, nil
}

// CountCards returns the number of catalog rows.
func (s *DBService) CountCards() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM cards`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting cards: %w", err)
	}
	return n, nil
}

// Close closes the prepared statements and the connection pool.
func (s *DBService) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, stmt := range []*sql.Stmt{s.stmtQueryCards, s.stmtGetCard} {
		if stmt != nil {
			stmt.Close()
		}
	}

	return s.db.Close()
}

// ── Scan helpers ──

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCard(r rowScanner) (*CardRow, error) {
	c := &CardRow{}
	if err := r.Scan(
		&c.CardID, &c.Position, &c.Name, &c.ElementType, &c.Rarity,
		&c.HP, &c.AttackName, &c.Image, &c.IsChase,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning card row: %w", err)
	}
	return c, nil
}
