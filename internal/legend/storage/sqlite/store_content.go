package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/louisbranch/legend/internal/legend/registry"
	"github.com/louisbranch/legend/internal/legend/storage"
)

type stepRecord struct {
	ID          string   `json:"id"`
	Title       string   `json:"title,omitempty"`
	Icon        string   `json:"icon,omitempty"`
	Description string   `json:"description,omitempty"`
	Triggers    []string `json:"triggers,omitempty"`
}

// PutResource upserts a resource definition.
func (s *Store) PutResource(ctx context.Context, def registry.ResourceDefinition) error {
	if err := s.validate(ctx); err != nil {
		return err
	}
	if err := requireEntryID(def.Key, "resource"); err != nil {
		return err
	}
	tags := def.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return fmt.Errorf("marshal resource tags: %w", err)
	}
	_, err = s.sqlDB.ExecContext(ctx, `
INSERT INTO resources (id, label, icon, description, tags_json, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    label = excluded.label,
    icon = excluded.icon,
    description = excluded.description,
    tags_json = excluded.tags_json,
    updated_at = excluded.updated_at`,
		def.Key, def.Label, def.Icon, def.Description, string(tagsJSON), s.nowMillis())
	if err != nil {
		return fmt.Errorf("put resource %s: %w", def.Key, err)
	}
	return nil
}

// GetResource retrieves a resource definition.
func (s *Store) GetResource(ctx context.Context, id string) (registry.ResourceDefinition, error) {
	if err := s.validate(ctx); err != nil {
		return registry.ResourceDefinition{}, err
	}
	if err := requireEntryID(id, "resource"); err != nil {
		return registry.ResourceDefinition{}, err
	}
	row := s.sqlDB.QueryRowContext(ctx, `SELECT id, label, icon, description, tags_json FROM resources WHERE id = ?`, id)
	def, err := scanResource(row)
	if errors.Is(err, sql.ErrNoRows) {
		return registry.ResourceDefinition{}, storage.ErrNotFound
	}
	if err != nil {
		return registry.ResourceDefinition{}, fmt.Errorf("get resource %s: %w", id, err)
	}
	return def, nil
}

// PutDefinition upserts a plain definition in domain.
func (s *Store) PutDefinition(ctx context.Context, domain storage.DefinitionDomain, def registry.Definition) error {
	if err := s.validate(ctx); err != nil {
		return err
	}
	if !domain.Valid() {
		return fmt.Errorf("unknown definition domain %q", domain)
	}
	if err := requireEntryID(def.ID, string(domain)); err != nil {
		return err
	}
	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO definitions (domain, id, name, icon, description, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(domain, id) DO UPDATE SET
    name = excluded.name,
    icon = excluded.icon,
    description = excluded.description,
    updated_at = excluded.updated_at`,
		string(domain), def.ID, def.Name, def.Icon, def.Description, s.nowMillis())
	if err != nil {
		return fmt.Errorf("put %s %s: %w", domain, def.ID, err)
	}
	return nil
}

// GetDefinition retrieves a plain definition from domain.
func (s *Store) GetDefinition(ctx context.Context, domain storage.DefinitionDomain, id string) (registry.Definition, error) {
	if err := s.validate(ctx); err != nil {
		return registry.Definition{}, err
	}
	if err := requireEntryID(id, string(domain)); err != nil {
		return registry.Definition{}, err
	}
	var def registry.Definition
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT id, name, icon, description FROM definitions WHERE domain = ? AND id = ?`,
		string(domain), id,
	).Scan(&def.ID, &def.Name, &def.Icon, &def.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return registry.Definition{}, storage.ErrNotFound
	}
	if err != nil {
		return registry.Definition{}, fmt.Errorf("get %s %s: %w", domain, id, err)
	}
	return def, nil
}

// PutPhase upserts a phase definition with its steps.
func (s *Store) PutPhase(ctx context.Context, def registry.PhaseDefinition) error {
	if err := s.validate(ctx); err != nil {
		return err
	}
	if err := requireEntryID(def.ID, "phase"); err != nil {
		return err
	}
	steps := make([]stepRecord, 0, len(def.Steps))
	for _, step := range def.Steps {
		steps = append(steps, stepRecord(step))
	}
	stepsJSON, err := json.Marshal(steps)
	if err != nil {
		return fmt.Errorf("marshal phase steps: %w", err)
	}
	_, err = s.sqlDB.ExecContext(ctx, `
INSERT INTO phases (id, label, icon, action, steps_json, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    label = excluded.label,
    icon = excluded.icon,
    action = excluded.action,
    steps_json = excluded.steps_json,
    updated_at = excluded.updated_at`,
		def.ID, def.Label, def.Icon, boolToInt(def.Action), string(stepsJSON), s.nowMillis())
	if err != nil {
		return fmt.Errorf("put phase %s: %w", def.ID, err)
	}
	return nil
}

// GetPhase retrieves a phase definition.
func (s *Store) GetPhase(ctx context.Context, id string) (registry.PhaseDefinition, error) {
	if err := s.validate(ctx); err != nil {
		return registry.PhaseDefinition{}, err
	}
	if err := requireEntryID(id, "phase"); err != nil {
		return registry.PhaseDefinition{}, err
	}
	row := s.sqlDB.QueryRowContext(ctx, `SELECT id, label, icon, action, steps_json FROM phases WHERE id = ?`, id)
	def, err := scanPhase(row)
	if errors.Is(err, sql.ErrNoRows) {
		return registry.PhaseDefinition{}, storage.ErrNotFound
	}
	if err != nil {
		return registry.PhaseDefinition{}, fmt.Errorf("get phase %s: %w", id, err)
	}
	return def, nil
}

// PutTrigger upserts a trigger definition.
func (s *Store) PutTrigger(ctx context.Context, def registry.TriggerDefinition) error {
	if err := s.validate(ctx); err != nil {
		return err
	}
	if err := requireEntryID(def.ID, "trigger"); err != nil {
		return err
	}
	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO triggers (id, label, icon, future, past, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    label = excluded.label,
    icon = excluded.icon,
    future = excluded.future,
    past = excluded.past,
    updated_at = excluded.updated_at`,
		def.ID, def.Label, def.Icon, def.Future, def.Past, s.nowMillis())
	if err != nil {
		return fmt.Errorf("put trigger %s: %w", def.ID, err)
	}
	return nil
}

// GetTrigger retrieves a trigger definition.
func (s *Store) GetTrigger(ctx context.Context, id string) (registry.TriggerDefinition, error) {
	if err := s.validate(ctx); err != nil {
		return registry.TriggerDefinition{}, err
	}
	if err := requireEntryID(id, "trigger"); err != nil {
		return registry.TriggerDefinition{}, err
	}
	var def registry.TriggerDefinition
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT id, label, icon, future, past FROM triggers WHERE id = ?`, id,
	).Scan(&def.ID, &def.Label, &def.Icon, &def.Future, &def.Past)
	if errors.Is(err, sql.ErrNoRows) {
		return registry.TriggerDefinition{}, storage.ErrNotFound
	}
	if err != nil {
		return registry.TriggerDefinition{}, fmt.Errorf("get trigger %s: %w", id, err)
	}
	return def, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResource(row rowScanner) (registry.ResourceDefinition, error) {
	var def registry.ResourceDefinition
	var tagsJSON string
	if err := row.Scan(&def.Key, &def.Label, &def.Icon, &def.Description, &tagsJSON); err != nil {
		return registry.ResourceDefinition{}, err
	}
	if err := json.Unmarshal([]byte(tagsJSON), &def.Tags); err != nil {
		return registry.ResourceDefinition{}, fmt.Errorf("decode resource tags: %w", err)
	}
	return def, nil
}

func scanPhase(row rowScanner) (registry.PhaseDefinition, error) {
	var def registry.PhaseDefinition
	var action int64
	var stepsJSON string
	if err := row.Scan(&def.ID, &def.Label, &def.Icon, &action, &stepsJSON); err != nil {
		return registry.PhaseDefinition{}, err
	}
	var steps []stepRecord
	if err := json.Unmarshal([]byte(stepsJSON), &steps); err != nil {
		return registry.PhaseDefinition{}, fmt.Errorf("decode phase steps: %w", err)
	}
	def.Action = action != 0
	for _, step := range steps {
		def.Steps = append(def.Steps, registry.StepDefinition(step))
	}
	return def, nil
}

func boolToInt(value bool) int64 {
	if value {
		return 1
	}
	return 0
}
