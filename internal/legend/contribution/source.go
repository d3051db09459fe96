package contribution

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	apperrors "github.com/louisbranch/legend/internal/platform/errors"
)

// DependencyLink points from a contribution to the entity that caused it.
type DependencyLink struct {
	Kind    Kind
	RawKind string
	ID      string
	Detail  string
}

// Meta describes where one contribution comes from.
type Meta struct {
	Key       string
	Longevity Longevity
	Kind      Kind
	RawKind   string
	ID        string
	Detail    string
	DependsOn []DependencyLink
}

// Source is one named contribution to a value.
type Source struct {
	Key    string
	Amount float64
	Meta   Meta
}

// SourceMap is the ordered set of contributions to one value. Order follows
// the key order of the decoded payload.
type SourceMap []Source

type wireLink struct {
	Type   string `json:"type"`
	ID     string `json:"id,omitempty"`
	Detail string `json:"detail,omitempty"`
}

type wireMeta struct {
	Key       string     `json:"key"`
	Longevity string     `json:"longevity"`
	Kind      string     `json:"kind"`
	ID        string     `json:"id"`
	Detail    string     `json:"detail,omitempty"`
	DependsOn []wireLink `json:"dependsOn,omitempty"`
}

type wireSource struct {
	Amount float64  `json:"amount"`
	Meta   wireMeta `json:"meta"`
}

// UnmarshalJSON decodes a JSON object keyed by source key, keeping key order.
func (m *SourceMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("contribution sources must be a JSON object")
	}
	out := SourceMap{}
	seen := make(map[string]struct{})
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("contribution source key must be a string")
		}
		var wire wireSource
		if err := dec.Decode(&wire); err != nil {
			return fmt.Errorf("source %q: %w", key, err)
		}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("source %q appears twice", key)
		}
		seen[key] = struct{}{}
		source, err := wire.toSource(key)
		if err != nil {
			return err
		}
		out = append(out, source)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*m = out
	return nil
}

// MarshalJSON encodes the map as a JSON object in source order.
func (m SourceMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, source := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(source.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(fromSource(source))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// DecodeSources reads a contribution source payload.
func DecodeSources(r io.Reader) (SourceMap, error) {
	var sources SourceMap
	if err := json.NewDecoder(r).Decode(&sources); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInvalidSources, fmt.Sprintf("decode contribution sources: %v", err), err)
	}
	return sources, nil
}

func (w wireSource) toSource(key string) (Source, error) {
	longevity := Longevity(w.Meta.Longevity)
	if !longevity.Valid() {
		return Source{}, fmt.Errorf("source %q has invalid longevity %q", key, w.Meta.Longevity)
	}
	metaKey := w.Meta.Key
	if metaKey == "" {
		metaKey = key
	}
	links := make([]DependencyLink, 0, len(w.Meta.DependsOn))
	for _, link := range w.Meta.DependsOn {
		links = append(links, DependencyLink{
			Kind:    ParseKind(link.Type),
			RawKind: link.Type,
			ID:      link.ID,
			Detail:  link.Detail,
		})
	}
	return Source{
		Key:    key,
		Amount: w.Amount,
		Meta: Meta{
			Key:       metaKey,
			Longevity: longevity,
			Kind:      ParseKind(w.Meta.Kind),
			RawKind:   w.Meta.Kind,
			ID:        w.Meta.ID,
			Detail:    w.Meta.Detail,
			DependsOn: links,
		},
	}, nil
}

func fromSource(source Source) wireSource {
	links := make([]wireLink, 0, len(source.Meta.DependsOn))
	for _, link := range source.Meta.DependsOn {
		links = append(links, wireLink{Type: rawKind(link.Kind, link.RawKind), ID: link.ID, Detail: link.Detail})
	}
	return wireSource{
		Amount: source.Amount,
		Meta: wireMeta{
			Key:       source.Meta.Key,
			Longevity: string(source.Meta.Longevity),
			Kind:      rawKind(source.Meta.Kind, source.Meta.RawKind),
			ID:        source.Meta.ID,
			Detail:    source.Meta.Detail,
			DependsOn: links,
		},
	}
}

func rawKind(kind Kind, raw string) string {
	if raw != "" {
		return raw
	}
	return kind.String()
}
