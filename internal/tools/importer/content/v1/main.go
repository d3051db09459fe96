// Package contentimporter loads game content payload files into the SQLite
// content store.
package contentimporter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/louisbranch/legend/internal/legend/storage"
	storagesqlite "github.com/louisbranch/legend/internal/legend/storage/sqlite"
	apperrors "github.com/louisbranch/legend/internal/platform/errors"
)

// Config holds configuration for the content importer.
type Config struct {
	Dir    string
	DBPath string
	DryRun bool
}

// ParseConfig parses CLI flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{
		DBPath: filepath.Join("data", "legend-content.db"),
	}

	fs.StringVar(&cfg.Dir, "dir", "", "directory containing content payload files")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "content database path")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "validate without writing to the database")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if strings.TrimSpace(cfg.Dir) == "" {
		return Config{}, errors.New("dir is required")
	}
	return cfg, nil
}

// Run executes the importer using the provided Config.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if out == nil {
		out = io.Discard
	}

	dir := strings.TrimSpace(cfg.Dir)
	if dir == "" {
		return errors.New("dir is required")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("read content dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	payloads, err := readPayloads(dir)
	if err != nil {
		return err
	}
	if payloads.empty() {
		return fmt.Errorf("no content payloads found in %s", dir)
	}
	if err := validatePayloads(payloads); err != nil {
		return err
	}

	if cfg.DryRun {
		_, err = fmt.Fprintf(out, "validated %d item(s)\n", payloads.count())
		return err
	}

	store, err := storagesqlite.OpenContent(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open content store: %w", err)
	}
	defer store.Close()

	if err := upsertPayloads(ctx, store, payloads); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "imported %d item(s) into %s\n", payloads.count(), cfg.DBPath)
	return err
}

type contentPayloads struct {
	Resources   *resourcePayload
	Definitions map[storage.DefinitionDomain]*definitionPayload
	Phases      *phasePayload
	Triggers    *triggerPayload
}

func (p contentPayloads) empty() bool {
	return p.Resources == nil && len(p.Definitions) == 0 && p.Phases == nil && p.Triggers == nil
}

func (p contentPayloads) count() int {
	total := 0
	if p.Resources != nil {
		total += len(p.Resources.Items)
	}
	for _, payload := range p.Definitions {
		total += len(payload.Items)
	}
	if p.Phases != nil {
		total += len(p.Phases.Items)
	}
	if p.Triggers != nil {
		total += len(p.Triggers.Items)
	}
	return total
}

func readPayloads(dir string) (contentPayloads, error) {
	payloads := contentPayloads{Definitions: make(map[storage.DefinitionDomain]*definitionPayload)}
	var err error
	payloads.Resources, err = readPayload[resourcePayload](dir, "resources")
	if err != nil {
		return payloads, err
	}
	for _, domain := range storage.DefinitionDomains {
		payload, err := readPayload[definitionPayload](dir, string(domain))
		if err != nil {
			return payloads, err
		}
		if payload != nil {
			payloads.Definitions[domain] = payload
		}
	}
	payloads.Phases, err = readPayload[phasePayload](dir, "phases")
	if err != nil {
		return payloads, err
	}
	payloads.Triggers, err = readPayload[triggerPayload](dir, "triggers")
	if err != nil {
		return payloads, err
	}
	return payloads, nil
}

// readPayload reads name.json, name.yaml or name.yml, in that order. A
// missing file yields a nil payload.
func readPayload[T any](dir string, name string) (*T, error) {
	for _, ext := range []string{".json", ".yaml", ".yml"} {
		file := name + ext
		data, err := os.ReadFile(filepath.Join(dir, file))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}

		var value T
		if ext == ".json" {
			decoder := json.NewDecoder(bytes.NewReader(data))
			decoder.DisallowUnknownFields()
			err = decoder.Decode(&value)
		} else {
			err = yaml.Unmarshal(data, &value)
		}
		if err != nil {
			return nil, apperrors.Wrap(apperrors.CodeInvalidContent, fmt.Sprintf("decode %s: %v", file, err), err)
		}
		return &value, nil
	}
	return nil, nil
}
