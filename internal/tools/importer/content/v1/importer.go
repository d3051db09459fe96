package contentimporter

import (
	"context"
	"fmt"
	"strings"

	"github.com/louisbranch/legend/internal/legend/factory"
	"github.com/louisbranch/legend/internal/legend/registry"
	"github.com/louisbranch/legend/internal/legend/storage"
	apperrors "github.com/louisbranch/legend/internal/platform/errors"
)

func invalid(format string, args ...any) error {
	return apperrors.New(apperrors.CodeInvalidContent, fmt.Sprintf(format, args...))
}

func validateEnvelope(name string, env envelope) error {
	if strings.TrimSpace(env.GameID) == "" {
		return invalid("%s: game_id is required", name)
	}
	if env.Version != payloadVersion {
		return invalid("%s: unsupported version %q", name, env.Version)
	}
	if strings.TrimSpace(env.Source) == "" {
		return invalid("%s: source is required", name)
	}
	return nil
}

type idSet map[string]struct{}

func (s idSet) add(name, id string) error {
	if strings.TrimSpace(id) == "" {
		return invalid("%s: item id is required", name)
	}
	if _, dup := s[id]; dup {
		return invalid("%s: duplicate id %q", name, id)
	}
	s[id] = struct{}{}
	return nil
}

func validatePayloads(payloads contentPayloads) error {
	gameID := ""
	checkGame := func(name string, env envelope) error {
		if err := validateEnvelope(name, env); err != nil {
			return err
		}
		if gameID == "" {
			gameID = env.GameID
		} else if env.GameID != gameID {
			return invalid("%s: game_id %q does not match %q", name, env.GameID, gameID)
		}
		return nil
	}

	if payloads.Resources != nil {
		if err := checkGame("resources", payloads.Resources.envelope); err != nil {
			return err
		}
		ids := idSet{}
		for _, item := range payloads.Resources.Items {
			if err := ids.add("resources", item.ID); err != nil {
				return err
			}
		}
	}
	for _, domain := range storage.DefinitionDomains {
		payload, ok := payloads.Definitions[domain]
		if !ok {
			continue
		}
		if err := checkGame(string(domain), payload.envelope); err != nil {
			return err
		}
		ids := idSet{}
		for _, item := range payload.Items {
			if err := ids.add(string(domain), item.ID); err != nil {
				return err
			}
		}
	}

	triggers := idSet{}
	if payloads.Triggers != nil {
		if err := checkGame("triggers", payloads.Triggers.envelope); err != nil {
			return err
		}
		for _, item := range payloads.Triggers.Items {
			if err := triggers.add("triggers", item.ID); err != nil {
				return err
			}
			if strings.TrimSpace(item.Label) == "" {
				return invalid("triggers: %q requires a label", item.ID)
			}
		}
	}

	if payloads.Phases != nil {
		if err := checkGame("phases", payloads.Phases.envelope); err != nil {
			return err
		}
		phases := idSet{}
		for _, item := range payloads.Phases.Items {
			if err := phases.add("phases", item.ID); err != nil {
				return err
			}
			if err := validateSteps(item, triggers); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateSteps(phase phaseRecord, triggers idSet) error {
	steps := idSet{}
	name := "phases." + phase.ID
	for _, step := range phase.Steps {
		if err := steps.add(name, step.ID); err != nil {
			return err
		}
		for _, trigger := range step.Triggers {
			if _, ok := triggers[trigger]; ok {
				continue
			}
			known := make([]string, 0, len(triggers))
			for id := range triggers {
				known = append(known, id)
			}
			message := fmt.Sprintf("%s: step %q references unknown trigger %q", name, step.ID, trigger)
			if suggestion := factory.SuggestID(trigger, known); suggestion != "" {
				message += fmt.Sprintf(" (did you mean %q?)", suggestion)
			}
			return invalid("%s", message)
		}
	}
	return nil
}

func upsertPayloads(ctx context.Context, store storage.ContentWriter, payloads contentPayloads) error {
	if store == nil {
		return fmt.Errorf("content store is required")
	}
	if payloads.Resources != nil {
		if err := upsertResources(ctx, store, payloads.Resources.Items); err != nil {
			return err
		}
	}
	for _, domain := range storage.DefinitionDomains {
		if payload, ok := payloads.Definitions[domain]; ok {
			if err := upsertDefinitions(ctx, store, domain, payload.Items); err != nil {
				return err
			}
		}
	}
	if payloads.Triggers != nil {
		if err := upsertTriggers(ctx, store, payloads.Triggers.Items); err != nil {
			return err
		}
	}
	if payloads.Phases != nil {
		if err := upsertPhases(ctx, store, payloads.Phases.Items); err != nil {
			return err
		}
	}
	return nil
}

func upsertResources(ctx context.Context, store storage.ContentWriter, items []resourceRecord) error {
	for _, item := range items {
		def := registry.ResourceDefinition{
			Key:         item.ID,
			Label:       item.Label,
			Icon:        item.Icon,
			Description: item.Description,
			Tags:        append([]string{}, item.Tags...),
		}
		if err := store.PutResource(ctx, def); err != nil {
			return fmt.Errorf("put resource %s: %w", item.ID, err)
		}
	}
	return nil
}

func upsertDefinitions(ctx context.Context, store storage.ContentWriter, domain storage.DefinitionDomain, items []definitionRecord) error {
	for _, item := range items {
		def := registry.Definition{
			ID:          item.ID,
			Name:        item.Name,
			Icon:        item.Icon,
			Description: item.Description,
		}
		if err := store.PutDefinition(ctx, domain, def); err != nil {
			return fmt.Errorf("put %s %s: %w", domain, item.ID, err)
		}
	}
	return nil
}

func upsertPhases(ctx context.Context, store storage.ContentWriter, items []phaseRecord) error {
	for _, item := range items {
		def := registry.PhaseDefinition{
			ID:     item.ID,
			Label:  item.Label,
			Icon:   item.Icon,
			Action: item.Action,
			Steps:  toStepDefinitions(item.Steps),
		}
		if err := store.PutPhase(ctx, def); err != nil {
			return fmt.Errorf("put phase %s: %w", item.ID, err)
		}
	}
	return nil
}

func upsertTriggers(ctx context.Context, store storage.ContentWriter, items []triggerRecord) error {
	for _, item := range items {
		def := registry.TriggerDefinition{
			ID:     item.ID,
			Label:  item.Label,
			Icon:   item.Icon,
			Future: item.Future,
			Past:   item.Past,
		}
		if err := store.PutTrigger(ctx, def); err != nil {
			return fmt.Errorf("put trigger %s: %w", item.ID, err)
		}
	}
	return nil
}

func toStepDefinitions(steps []stepRecord) []registry.StepDefinition {
	out := make([]registry.StepDefinition, 0, len(steps))
	for _, step := range steps {
		out = append(out, registry.StepDefinition{
			ID:          step.ID,
			Title:       step.Title,
			Icon:        step.Icon,
			Description: step.Description,
			Triggers:    append([]string{}, step.Triggers...),
		})
	}
	return out
}
