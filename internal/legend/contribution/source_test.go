package contribution

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	apperrors "github.com/louisbranch/legend/internal/platform/errors"
)

const payload = `{
  "zeta": {"amount": 2, "meta": {"key": "zeta", "longevity": "ongoing", "kind": "building", "id": "farm",
    "dependsOn": [{"type": "phase", "id": "growth", "detail": "gain-income"}, {"type": "mystery", "id": "x"}]}},
  "alpha": {"amount": -1, "meta": {"longevity": "permanent", "kind": "gold", "id": ""}}
}`

func TestDecodeSourcesKeepsKeyOrder(t *testing.T) {
	sources, err := DecodeSources(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(sources) != 2 || sources[0].Key != "zeta" || sources[1].Key != "alpha" {
		t.Fatalf("sources = %+v", sources)
	}
	zeta := sources[0]
	if zeta.Meta.Kind != KindBuilding || zeta.Meta.Longevity != LongevityOngoing || zeta.Amount != 2 {
		t.Fatalf("zeta meta = %+v", zeta.Meta)
	}
	if len(zeta.Meta.DependsOn) != 2 {
		t.Fatalf("links = %+v", zeta.Meta.DependsOn)
	}
	if link := zeta.Meta.DependsOn[1]; link.Kind != KindUnknown || link.RawKind != "mystery" {
		t.Fatalf("unknown link = %+v", link)
	}
	alpha := sources[1]
	if alpha.Meta.Key != "alpha" {
		t.Fatalf("meta key = %q, want key fallback", alpha.Meta.Key)
	}
	if alpha.Meta.Kind != KindUnknown || alpha.Meta.RawKind != "gold" {
		t.Fatalf("alpha kind = %v %q", alpha.Meta.Kind, alpha.Meta.RawKind)
	}
}

func TestDecodeSourcesRejectsBadLongevity(t *testing.T) {
	_, err := DecodeSources(strings.NewReader(`{"a": {"amount": 1, "meta": {"longevity": "forever"}}}`))
	if apperrors.GetCode(err) != apperrors.CodeInvalidSources {
		t.Fatalf("err = %v", err)
	}
}

func TestDecodeSourcesRejectsNonObject(t *testing.T) {
	if _, err := DecodeSources(strings.NewReader(`[1,2]`)); err == nil {
		t.Fatal("expected error")
	}
}

func TestSourceMapMarshalKeepsOrder(t *testing.T) {
	sources, err := DecodeSources(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	data, err := json.Marshal(sources)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if bytes.Index(data, []byte(`"zeta"`)) > bytes.Index(data, []byte(`"alpha"`)) {
		t.Fatalf("order lost: %s", data)
	}
	if !bytes.Contains(data, []byte(`"type":"mystery"`)) {
		t.Fatalf("raw kind lost: %s", data)
	}
}

func TestParseKind(t *testing.T) {
	tests := map[string]Kind{
		"resource":    KindResource,
		"Building":    KindBuilding,
		" phase ":     KindPhase,
		"start":       KindStart,
		"land":        KindLand,
		"mystery":     KindUnknown,
		"":            KindUnknown,
		"development": KindDevelopment,
	}
	for raw, want := range tests {
		if got := ParseKind(raw); got != want {
			t.Fatalf("ParseKind(%q) = %v, want %v", raw, got, want)
		}
	}
	if KindTrigger.String() != "trigger" || KindTrigger.Noun() != "Trigger" {
		t.Fatal("unexpected trigger names")
	}
}
