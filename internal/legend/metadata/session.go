package metadata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	apperrors "github.com/louisbranch/legend/internal/platform/errors"
)

// Asset keys every consumer requires.
const (
	AssetLand    = "land"
	AssetSlot    = "slot"
	AssetPassive = "passive"
)

// Session is the validated session metadata payload.
type Session struct {
	Resources    map[string]Override        `json:"resources,omitempty" yaml:"resources,omitempty"`
	Populations  map[string]Override        `json:"populations,omitempty" yaml:"populations,omitempty"`
	Buildings    map[string]Override        `json:"buildings,omitempty" yaml:"buildings,omitempty"`
	Developments map[string]Override        `json:"developments,omitempty" yaml:"developments,omitempty"`
	Actions      map[string]Override        `json:"actions,omitempty" yaml:"actions,omitempty"`
	Stats        map[string]Override        `json:"stats,omitempty" yaml:"stats,omitempty"`
	Phases       map[string]PhaseOverride   `json:"phases,omitempty" yaml:"phases,omitempty"`
	Triggers     map[string]TriggerOverride `json:"triggers,omitempty" yaml:"triggers,omitempty"`
	Assets       map[string]Override        `json:"assets,omitempty" yaml:"assets,omitempty"`

	ResourceMetadata        map[string]Resource `json:"resourceMetadata,omitempty" yaml:"resourceMetadata,omitempty"`
	ResourceGroups          map[string]Group    `json:"resourceGroups,omitempty" yaml:"resourceGroups,omitempty"`
	ResourceGroupParents    map[string]Parent   `json:"resourceGroupParents,omitempty" yaml:"resourceGroupParents,omitempty"`
	OrderedResourceIDs      []string            `json:"orderedResourceIds,omitempty" yaml:"orderedResourceIds,omitempty"`
	OrderedResourceGroupIDs []string            `json:"orderedResourceGroupIds,omitempty" yaml:"orderedResourceGroupIds,omitempty"`
	ParentIDByResourceID    map[string]string   `json:"parentIdByResourceId,omitempty" yaml:"parentIdByResourceId,omitempty"`
}

// Decode reads a JSON session payload and validates it.
func Decode(r io.Reader) (*Session, error) {
	var session Session
	if err := json.NewDecoder(r).Decode(&session); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInvalidMetadata, fmt.Sprintf("decode session metadata: %v", err), err)
	}
	if err := session.Normalize(); err != nil {
		return nil, err
	}
	return &session, nil
}

// DecodeYAML reads a YAML session payload and validates it.
func DecodeYAML(r io.Reader) (*Session, error) {
	var session Session
	if err := yaml.NewDecoder(r).Decode(&session); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInvalidMetadata, fmt.Sprintf("decode session metadata: %v", err), err)
	}
	if err := session.Normalize(); err != nil {
		return nil, err
	}
	return &session, nil
}

// Load reads a session payload from path; .yaml and .yml files are decoded as
// YAML, everything else as JSON.
func Load(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read session metadata %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return DecodeYAML(bytes.NewReader(data))
	default:
		return Decode(bytes.NewReader(data))
	}
}

// HasAsset reports whether the payload declares the asset key.
func (s *Session) HasAsset(key string) bool {
	if s == nil {
		return false
	}
	_, ok := s.Assets[key]
	return ok
}

// Normalize fills ids from map keys and validates ResourceV2 relations.
func (s *Session) Normalize() error {
	for id, resource := range s.ResourceMetadata {
		if strings.TrimSpace(resource.ID) == "" {
			resource.ID = id
		} else if resource.ID != id {
			return invalidf("resource %q declares mismatched id %q", id, resource.ID)
		}
		s.ResourceMetadata[id] = resource
	}

	for id, parent := range s.ResourceGroupParents {
		if strings.TrimSpace(parent.ID) == "" {
			parent.ID = id
		}
		if err := validateParent(parent); err != nil {
			return err
		}
		s.ResourceGroupParents[id] = parent
	}

	parentOwners := make(map[string]string)
	for _, id := range SortedKeys(s.ResourceGroups) {
		group := s.ResourceGroups[id]
		if strings.TrimSpace(group.ID) == "" {
			group.ID = id
		}
		for _, child := range group.Children {
			if strings.TrimSpace(child) == "" {
				return invalidf("resource group %q declares a blank child id", id)
			}
		}
		if group.Parent != nil {
			parent := *group.Parent
			if strings.TrimSpace(parent.ID) == "" {
				return invalidf("resource group %q declares a parent without id", id)
			}
			if err := validateParent(parent); err != nil {
				return err
			}
			if owner, exists := parentOwners[parent.ID]; exists {
				return invalidf("parent %q is declared by groups %q and %q", parent.ID, owner, id)
			}
			parentOwners[parent.ID] = id
			group.Parent = &parent
		}
		s.ResourceGroups[id] = group
	}
	return nil
}

func validateParent(parent Parent) error {
	if parent.Relation == "" {
		return invalidf("parent %q is missing a relation", parent.ID)
	}
	if !parent.Relation.Valid() {
		return invalidf("parent %q has unsupported relation %q", parent.ID, parent.Relation)
	}
	return nil
}

func invalidf(format string, args ...any) error {
	return apperrors.New(apperrors.CodeInvalidMetadata, fmt.Sprintf(format, args...))
}

// SortedKeys returns the keys of a map in lexical order.
func SortedKeys[V any](values map[string]V) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
