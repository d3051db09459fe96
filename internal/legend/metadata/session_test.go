package metadata

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "github.com/louisbranch/legend/internal/platform/errors"
)

const sessionJSON = `{
  "resources": {"gold": {"label": "Gold Coins", "icon": "🪙"}},
  "assets": {
    "land": {"label": "Land", "icon": "🗺️"},
    "slot": {"label": "Slot"},
    "passive": {"label": "Passive", "icon": "♾️"}
  },
  "resourceMetadata": {
    "happiness": {"display": {"name": "Happiness", "order": 1}, "groupId": "mood"}
  },
  "resourceGroups": {
    "mood": {"order": 2, "children": ["happiness"], "parent": {"id": "mood-total", "relation": "sumOfAll", "display": {"name": "Mood"}}}
  },
  "resourceGroupParents": {
    "mood-total": {"relation": "sumOfAll", "display": {"name": "Mood"}}
  },
  "orderedResourceIds": ["happiness"]
}`

func TestDecodeFillsIDsFromKeys(t *testing.T) {
	session, err := Decode(strings.NewReader(sessionJSON))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := session.ResourceMetadata["happiness"].ID; got != "happiness" {
		t.Fatalf("resource id = %q, want happiness", got)
	}
	if got := session.ResourceGroups["mood"].ID; got != "mood" {
		t.Fatalf("group id = %q, want mood", got)
	}
	if got := session.ResourceGroupParents["mood-total"].ID; got != "mood-total" {
		t.Fatalf("parent id = %q, want mood-total", got)
	}
	if !session.HasAsset(AssetLand) || session.HasAsset("upkeep") {
		t.Fatal("unexpected asset presence")
	}
	if session.Resources["gold"].Label != "Gold Coins" {
		t.Fatalf("override = %+v", session.Resources["gold"])
	}
}

func TestDecodeRejectsUnknownRelation(t *testing.T) {
	payload := `{"resourceGroupParents": {"p": {"relation": "productOfAll"}}}`
	_, err := Decode(strings.NewReader(payload))
	if err == nil {
		t.Fatal("expected error")
	}
	if apperrors.GetCode(err) != apperrors.CodeInvalidMetadata {
		t.Fatalf("code = %q", apperrors.GetCode(err))
	}
	if !strings.Contains(err.Error(), "productOfAll") {
		t.Fatalf("error = %v", err)
	}
}

func TestDecodeRejectsSharedParent(t *testing.T) {
	payload := `{"resourceGroups": {
	  "a": {"parent": {"id": "p", "relation": "sumOfAll"}},
	  "b": {"parent": {"id": "p", "relation": "sumOfAll"}}
	}}`
	if _, err := Decode(strings.NewReader(payload)); err == nil {
		t.Fatal("expected error for parent declared by two groups")
	}
}

func TestDecodeRejectsMismatchedResourceID(t *testing.T) {
	payload := `{"resourceMetadata": {"gold": {"id": "silver"}}}`
	if _, err := Decode(strings.NewReader(payload)); err == nil {
		t.Fatal("expected error")
	}
}

func TestDecodeRejectsMalformedJSON(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"resources": [}`))
	if apperrors.GetCode(err) != apperrors.CodeInvalidMetadata {
		t.Fatalf("err = %v", err)
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session.yaml")
	content := `assets:
  land:
    label: Land
stats:
  growth:
    displayAsPercent: true
resourceGroups:
  mood:
    children: [happiness, unrest]
    parent:
      id: mood-total
      relation: sumOfAll
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	session, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	growth := session.Stats["growth"]
	if growth.DisplayAsPercent == nil || !*growth.DisplayAsPercent {
		t.Fatalf("growth override = %+v", growth)
	}
	group := session.ResourceGroups["mood"]
	if len(group.Children) != 2 || group.Parent == nil || group.Parent.ID != "mood-total" {
		t.Fatalf("group = %+v", group)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error")
	}
}

func TestSortedKeys(t *testing.T) {
	keys := SortedKeys(map[string]int{"b": 1, "a": 2})
	if keys[0] != "a" || keys[1] != "b" {
		t.Fatalf("keys = %v", keys)
	}
}
