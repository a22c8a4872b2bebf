package commands

import (
	"context"
	"database/sql"
	"fmt"
	"maps"
	"slices"
)

// Seeder populates one kind of reference data. Seeds must be idempotent.
type Seeder interface {
	Name() string
	Description() string
	Seed(ctx context.Context, tx *sql.Tx, data *SeedData) error
}

var seeders = map[string]Seeder{}

// registerSeeder adds a seeder to the registry. Seeders self-register via init.
func registerSeeder(s Seeder) {
	seeders[s.Name()] = s
}

func listSeeders() []Seeder {
	result := make([]Seeder, 0, len(seeders))
	for _, name := range slices.Sorted(maps.Keys(seeders)) {
		result = append(result, seeders[name])
	}
	return result
}

// runSeeders executes the named seeders, in the given order, within a single
// transaction. Any failure rolls back every seeder.
func runSeeders(ctx context.Context, db *sql.DB, data *SeedData, names ...string) error {
	selected := make([]Seeder, 0, len(names))
	for _, name := range names {
		s, ok := seeders[name]
		if !ok {
			return fmt.Errorf("seeder not found: %s", name)
		}
		selected = append(selected, s)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	for _, s := range selected {
		if err := s.Seed(ctx, tx, data); err != nil {
			tx.Rollback()
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
