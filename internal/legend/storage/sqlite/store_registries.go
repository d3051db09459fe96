package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/louisbranch/legend/internal/legend/registry"
	"github.com/louisbranch/legend/internal/legend/storage"
)

// LoadRegistries reads every stored definition into fresh registries.
// Entries keep their first insertion order.
func (s *Store) LoadRegistries(ctx context.Context) (*registry.Registries, error) {
	if err := s.validate(ctx); err != nil {
		return nil, err
	}
	regs := registry.NewRegistries()

	if err := s.eachRow(ctx, `SELECT id, label, icon, description, tags_json FROM resources ORDER BY rowid`, func(rows *sql.Rows) error {
		def, err := scanResource(rows)
		if err != nil {
			return err
		}
		return regs.Resources.Add(def)
	}); err != nil {
		return nil, fmt.Errorf("load resources: %w", err)
	}

	for _, domain := range storage.DefinitionDomains {
		reg := storage.Registry(regs, domain)
		if err := s.eachRow(ctx, `SELECT id, name, icon, description FROM definitions WHERE domain = ? ORDER BY rowid`, func(rows *sql.Rows) error {
			var def registry.Definition
			if err := rows.Scan(&def.ID, &def.Name, &def.Icon, &def.Description); err != nil {
				return err
			}
			return reg.Add(def)
		}, string(domain)); err != nil {
			return nil, fmt.Errorf("load %s: %w", domain, err)
		}
	}

	if err := s.eachRow(ctx, `SELECT id, label, icon, action, steps_json FROM phases ORDER BY rowid`, func(rows *sql.Rows) error {
		def, err := scanPhase(rows)
		if err != nil {
			return err
		}
		return regs.Phases.Add(def)
	}); err != nil {
		return nil, fmt.Errorf("load phases: %w", err)
	}

	if err := s.eachRow(ctx, `SELECT id, label, icon, future, past FROM triggers ORDER BY rowid`, func(rows *sql.Rows) error {
		var def registry.TriggerDefinition
		if err := rows.Scan(&def.ID, &def.Label, &def.Icon, &def.Future, &def.Past); err != nil {
			return err
		}
		return regs.Triggers.Add(def)
	}); err != nil {
		return nil, fmt.Errorf("load triggers: %w", err)
	}

	return regs, nil
}

func (s *Store) eachRow(ctx context.Context, query string, fn func(*sql.Rows) error, args ...any) error {
	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		if err := fn(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}
