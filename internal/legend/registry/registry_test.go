package registry

import (
	"strings"
	"testing"
)

func TestRegistryPreservesRegistrationOrder(t *testing.T) {
	reg := New[Definition]("building")
	reg.Register(Definition{ID: "mill", Name: "Mill"})
	reg.Register(Definition{ID: "farm", Name: "Farm"})

	keys := reg.Keys()
	if len(keys) != 2 || keys[0] != "mill" || keys[1] != "farm" {
		t.Fatalf("keys = %v, want [mill farm]", keys)
	}
	list := reg.List()
	if list[1].Name != "Farm" {
		t.Fatalf("list[1] = %+v", list[1])
	}
	if reg.Len() != 2 {
		t.Fatalf("len = %d", reg.Len())
	}
}

func TestRegistryGet(t *testing.T) {
	reg := New[ResourceDefinition]("resource")
	reg.Register(ResourceDefinition{Key: "gold", Label: "Gold"})

	def, ok := reg.Get("gold")
	if !ok || def.Label != "Gold" {
		t.Fatalf("Get(gold) = %+v, %v", def, ok)
	}
	if reg.Has("wood") {
		t.Fatal("expected wood to be missing")
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	reg := New[Definition]("stat")
	reg.Register(Definition{ID: "armyStrength"})

	err := reg.Add(Definition{ID: "armyStrength"})
	if err == nil || !strings.Contains(err.Error(), "already registered") {
		t.Fatalf("Add duplicate error = %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for duplicate id")
		}
	}()
	reg.Register(Definition{ID: "armyStrength"})
}

func TestRegistryRejectsBlankID(t *testing.T) {
	reg := New[TriggerDefinition]("trigger")
	if err := reg.Add(TriggerDefinition{ID: "  "}); err == nil {
		t.Fatal("expected error for blank id")
	}
}

func TestNewRegistriesNamesDomains(t *testing.T) {
	regs := NewRegistries()
	if regs.Phases.Name() != "phase" || regs.Resources.Name() != "resource" {
		t.Fatalf("unexpected names %q %q", regs.Phases.Name(), regs.Resources.Name())
	}
}
