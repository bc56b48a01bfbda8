package registry

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/Oichkatzelesfrettschen/CoinSorter/coins"
)

//go:embed schema.sql
var schemaSQL string

// Store persists user-defined coin systems in a SQLite database. Systems
// are validated both before save and after load, so a Store never hands a
// malformed table to a solver. A Store is safe for use from one process;
// SQLite serializes writers underneath.
type Store struct {
	db *sql.DB
}

// OpenStore opens the database at path, creating file and schema as
// needed. Close releases it.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	// The schema relies on ON DELETE CASCADE; SQLite keeps it off by default.
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()

		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()

		return nil, fmt.Errorf("apply schema: %w", err)
	}
	Logger().Debug("store opened", zap.String("path", path))

	return &Store{db: db}, nil
}

// Close releases the underlying database. Idempotent.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil

	return err
}

// Save upserts sys by name, replacing any previous denomination rows.
// The system is validated first; nothing is written on a validation error.
func (s *Store) Save(sys *coins.System) error {
	if err := sys.Validate(); err != nil {
		return err
	}
	if sys.Name == "" {
		return ErrUnnamedSystem
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339)

	// Keep the row id stable across upserts so denomination rows re-parent
	// cleanly instead of accumulating.
	var systemID string
	err = tx.QueryRow(`SELECT system_id FROM systems WHERE name = ?`, sys.Name).Scan(&systemID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		systemID = newRowID()
		_, err = tx.Exec(
			`INSERT INTO systems (system_id, name, smallest_unit, canonical_hint, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			systemID, sys.Name, sys.SmallestUnit, boolToInt(sys.CanonicalHint), now, now)
	case err == nil:
		_, err = tx.Exec(
			`UPDATE systems SET smallest_unit = ?, canonical_hint = ?, updated_at = ? WHERE system_id = ?`,
			sys.SmallestUnit, boolToInt(sys.CanonicalHint), now, systemID)
		if err == nil {
			_, err = tx.Exec(`DELETE FROM denominations WHERE system_id = ?`, systemID)
		}
	}
	if err != nil {
		return fmt.Errorf("save system %q: %w", sys.Name, err)
	}

	for i, d := range sys.Coins {
		if _, err := tx.Exec(
			`INSERT INTO denominations
			 (denomination_id, system_id, position, value, code, name, mass_g, diameter_mm, composition)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			newRowID(), systemID, i, d.Value, d.Code, d.Name, d.MassGrams, d.DiameterMM, d.Composition); err != nil {
			return fmt.Errorf("save denomination %d of %q: %w", i, sys.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	Logger().Info("system saved",
		zap.String("name", sys.Name),
		zap.Int("denominations", len(sys.Coins)))

	return nil
}

// Load returns the stored system with the given name, or ErrUnknownSystem.
// A row set that no longer validates is reported as an error, not handed
// to a solver.
func (s *Store) Load(name string) (*coins.System, error) {
	sys := &coins.System{Name: name}
	var systemID string
	var hint int
	err := s.db.QueryRow(
		`SELECT system_id, smallest_unit, canonical_hint FROM systems WHERE name = ?`, name).
		Scan(&systemID, &sys.SmallestUnit, &hint)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUnknownSystem
	}
	if err != nil {
		return nil, fmt.Errorf("load system %q: %w", name, err)
	}
	sys.CanonicalHint = hint != 0

	rows, err := s.db.Query(
		`SELECT value, code, name, mass_g, diameter_mm, composition
		 FROM denominations WHERE system_id = ? ORDER BY position`, systemID)
	if err != nil {
		return nil, fmt.Errorf("load denominations of %q: %w", name, err)
	}
	defer rows.Close()

	for rows.Next() {
		var d coins.Denomination
		if err := rows.Scan(&d.Value, &d.Code, &d.Name, &d.MassGrams, &d.DiameterMM, &d.Composition); err != nil {
			return nil, fmt.Errorf("scan denomination of %q: %w", name, err)
		}
		sys.Coins = append(sys.Coins, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate denominations of %q: %w", name, err)
	}

	if err := sys.Validate(); err != nil {
		return nil, fmt.Errorf("stored system %q: %w", name, err)
	}

	return sys, nil
}

// Delete removes the stored system with the given name, cascading to its
// denomination rows. Deleting an absent name returns ErrUnknownSystem.
func (s *Store) Delete(name string) error {
	res, err := s.db.Exec(`DELETE FROM systems WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete system %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete system %q: %w", name, err)
	}
	if n == 0 {
		return ErrUnknownSystem
	}
	Logger().Info("system deleted", zap.String("name", name))

	return nil
}

// StoredNames lists stored system names in alphabetical order.
func (s *Store) StoredNames() ([]string, error) {
	rows, err := s.db.Query(`SELECT name FROM systems ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list stored systems: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan stored system name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stored systems: %w", err)
	}

	return names, nil
}

// newRowID generates a UUID v7 row id for time-ordered inserts.
func newRowID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}

	return id.String()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}

	return 0
}
