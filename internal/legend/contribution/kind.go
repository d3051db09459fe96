// Package contribution defines the contribution source payload: the named
// sources of one value, their longevity, and the dependency links explaining
// why each source exists.
package contribution

import "strings"

// Kind is the closed taxonomy of contribution origins.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindResource
	KindBuilding
	KindDevelopment
	KindPhase
	KindAction
	KindTrigger
	KindPassive
	KindLand
	KindStart
)

var kindNames = map[Kind]string{
	KindUnknown:     "unknown",
	KindResource:    "resource",
	KindBuilding:    "building",
	KindDevelopment: "development",
	KindPhase:       "phase",
	KindAction:      "action",
	KindTrigger:     "trigger",
	KindPassive:     "passive",
	KindLand:        "land",
	KindStart:       "start",
}

// ParseKind maps a raw kind string onto the taxonomy. Unrecognized strings
// map to KindUnknown.
func ParseKind(raw string) Kind {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	for kind, name := range kindNames {
		if kind != KindUnknown && name == normalized {
			return kind
		}
	}
	return KindUnknown
}

// String returns the wire name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnknown]
}

// Noun returns the capitalized display noun of the kind.
func (k Kind) Noun() string {
	switch k {
	case KindResource:
		return "Resource"
	case KindBuilding:
		return "Building"
	case KindDevelopment:
		return "Development"
	case KindPhase:
		return "Phase"
	case KindAction:
		return "Action"
	case KindTrigger:
		return "Trigger"
	case KindPassive:
		return "Passive"
	case KindLand:
		return "Land"
	case KindStart:
		return "Start"
	default:
		return "Unknown"
	}
}

// Longevity classifies a contribution as conditional or permanent.
type Longevity string

const (
	LongevityOngoing   Longevity = "ongoing"
	LongevityPermanent Longevity = "permanent"
)

// Valid reports whether l is a known longevity.
func (l Longevity) Valid() bool {
	return l == LongevityOngoing || l == LongevityPermanent
}
