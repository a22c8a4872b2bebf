package commands

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/discvault/internal/genres"
	"github.com/JaimeStill/discvault/internal/locations"
	"github.com/JaimeStill/discvault/pkg/database"
)

//go:embed seeds/*.json
var seedFiles embed.FS

func init() {
	registerSeeder(genreSeeder{})
	registerSeeder(locationSeeder{})
}

// SeedData is the JSON structure of a seed file.
type SeedData struct {
	Genres    []genres.CreateCommand `json:"genres"`
	Locations []locations.Command    `json:"locations"`
}

// LoadSeedData reads path, or the embedded catalog when path is empty.
func LoadSeedData(path string) (*SeedData, error) {
	var (
		content []byte
		err     error
	)

	if path != "" {
		content, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
	} else {
		content, err = seedFiles.ReadFile("seeds/catalog.json")
		if err != nil {
			return nil, fmt.Errorf("read embedded seed file: %w", err)
		}
	}

	var data SeedData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}

	return &data, nil
}

func seedCmd() *cobra.Command {
	var (
		file string
		list bool
	)

	cmd := &cobra.Command{
		Use:   "seed [seeder...]",
		Short: "Seed reference data (all seeders when none are named)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				fmt.Fprintln(cmd.OutOrStdout(), "Available seeders:")
				for _, s := range listSeeders() {
					fmt.Fprintf(cmd.OutOrStdout(), "  - %s: %s\n", s.Name(), s.Description())
				}
				return nil
			}

			data, err := LoadSeedData(file)
			if err != nil {
				return err
			}

			names := args
			if len(names) == 0 {
				for _, s := range listSeeders() {
					names = append(names, s.Name())
				}
			}

			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}

			db, err := database.New(&cfg.Database, logger)
			if err != nil {
				return err
			}
			defer db.Connection().Close()

			if err := runSeeders(cmd.Context(), db.Connection(), data, names...); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "seeded: %v\n", names)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "external seed file (overrides embedded)")
	cmd.Flags().BoolVar(&list, "list", false, "list available seeders")
	return cmd
}

type genreSeeder struct{}

func (genreSeeder) Name() string        { return "genres" }
func (genreSeeder) Description() string { return "Seeds the primary genre list" }

// Seed inserts genres by name, refreshing descriptions of existing rows.
func (genreSeeder) Seed(ctx context.Context, tx *sql.Tx, data *SeedData) error {
	const query = `
		INSERT INTO genres (name, description)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET
			description = EXCLUDED.description,
			updated_at = NOW()`

	for _, g := range data.Genres {
		if _, err := tx.ExecContext(ctx, query, g.Name, g.Description); err != nil {
			return fmt.Errorf("save genre %s: %w", g.Name, err)
		}
	}
	return nil
}

type locationSeeder struct{}

func (locationSeeder) Name() string        { return "locations" }
func (locationSeeder) Description() string { return "Seeds storage locations not already present by name" }

// Seed inserts locations whose name is not yet taken. Location names are not
// unique in the schema, so existing rows are left untouched.
func (locationSeeder) Seed(ctx context.Context, tx *sql.Tx, data *SeedData) error {
	const query = `
		INSERT INTO locations (name, storage_type, section, shelf, position)
		SELECT $1::text, $2::text, $3::text, $4::text, $5::text
		WHERE NOT EXISTS (SELECT 1 FROM locations WHERE name = $1::text)`

	for _, l := range data.Locations {
		if _, err := tx.ExecContext(ctx, query, l.Name, l.StorageType, l.Section, l.Shelf, l.Position); err != nil {
			return fmt.Errorf("save location %s: %w", l.Name, err)
		}
	}
	return nil
}
