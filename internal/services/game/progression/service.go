package progression

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	apperrors "github.com/louisbranch/levelup/internal/platform/errors"
	"github.com/louisbranch/levelup/internal/platform/otel"
	"github.com/louisbranch/levelup/internal/services/game/domain/systems/daggerheart/levelup"
	"github.com/louisbranch/levelup/internal/services/game/storage"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ErrCharacterIDRequired indicates a call without a character id.
var ErrCharacterIDRequired = apperrors.New(apperrors.CodeLevelUpCharacterIDRequired, "character id is required")

// Progression is the decoded state of one character.
type Progression struct {
	CharacterID string            `json:"character_id"`
	Version     int64             `json:"version"`
	Character   levelup.Character `json:"character"`
	History     levelup.History   `json:"level_up_choices"`
	Derived     levelup.Derived   `json:"derived"`
}

// Options is the preview of a selection together with the stored state it
// was evaluated against.
type Options struct {
	CharacterID string          `json:"character_id"`
	Version     int64           `json:"version"`
	Preview     levelup.Preview `json:"preview"`
}

// LevelUpResult is the stored outcome of a confirmed level-up.
type LevelUpResult struct {
	Progression Progression         `json:"progression"`
	Level       int                 `json:"level"`
	Record      levelup.LevelRecord `json:"record"`
	StatChanges map[string]int      `json:"stat_changes"`
}

// Service applies level-ups to stored characters.
type Service struct {
	content      storage.DaggerheartContentReadStore
	progressions storage.ProgressionStore
	tracer       trace.Tracer
}

// NewService builds a Service over the content and progression stores.
func NewService(content storage.DaggerheartContentReadStore, progressions storage.ProgressionStore) (*Service, error) {
	if content == nil {
		return nil, errors.New("content store is required")
	}
	if progressions == nil {
		return nil, errors.New("progression store is required")
	}
	return &Service{
		content:      content,
		progressions: progressions,
		tracer:       otel.Tracer(),
	}, nil
}

// Get loads the progression of characterID.
func (s *Service) Get(ctx context.Context, characterID string) (_ Progression, err error) {
	ctx, span := s.start(ctx, "progression.Get", characterID)
	defer func() { endSpan(span, err) }()

	current, err := s.load(ctx, characterID)
	if err != nil {
		return Progression{}, err
	}
	return current, nil
}

// Create stores the starting snapshot of characterID with an empty history.
// The class must be in the catalog. When the snapshot names no domains, the
// class domains are used.
func (s *Service) Create(ctx context.Context, characterID string, character levelup.Character) (_ Progression, err error) {
	ctx, span := s.start(ctx, "progression.Create", characterID)
	defer func() { endSpan(span, err) }()

	characterID, err = requireCharacterID(characterID)
	if err != nil {
		return Progression{}, err
	}
	if err := character.Validate(); err != nil {
		return Progression{}, err
	}
	character = character.Clone()
	character.ClassID = strings.TrimSpace(character.ClassID)
	if character.ClassID == "" {
		return Progression{}, apperrors.New(apperrors.CodeLevelUpCharacterInvalid, "character class is required")
	}
	class, err := s.content.GetDaggerheartClass(ctx, character.ClassID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return Progression{}, apperrors.WithMetadata(
				apperrors.CodeLevelUpCharacterInvalid,
				fmt.Sprintf("class %q is not in the catalog", character.ClassID),
				map[string]string{"Class": character.ClassID},
			)
		}
		return Progression{}, fmt.Errorf("get class %s: %w", character.ClassID, err)
	}
	if len(character.DomainIDs) == 0 {
		character.DomainIDs = append([]string(nil), class.DomainIDs...)
	}

	profile, err := json.Marshal(character)
	if err != nil {
		return Progression{}, fmt.Errorf("encode character profile: %w", err)
	}
	history := levelup.History{}
	choices, err := json.Marshal(history)
	if err != nil {
		return Progression{}, fmt.Errorf("encode level-up choices: %w", err)
	}
	record, err := s.progressions.CreateProgression(ctx, storage.DaggerheartProgression{
		CharacterID:        characterID,
		Level:              character.Level,
		ProfileJSON:        profile,
		LevelUpChoicesJSON: choices,
	})
	if err != nil {
		return Progression{}, err
	}
	return newProgression(record.CharacterID, record.Version, character, history), nil
}

// Options previews sel against the stored state of characterID.
func (s *Service) Options(ctx context.Context, characterID string, sel levelup.Selection) (_ Options, err error) {
	ctx, span := s.start(ctx, "progression.Options", characterID)
	defer func() { endSpan(span, err) }()

	current, err := s.load(ctx, characterID)
	if err != nil {
		return Options{}, err
	}
	in, err := s.input(ctx, current)
	if err != nil {
		return Options{}, err
	}
	preview := in.Preview(sel)
	span.SetAttributes(attribute.Bool("levelup.ready", preview.Ready))
	return Options{
		CharacterID: current.CharacterID,
		Version:     current.Version,
		Preview:     preview,
	}, nil
}

// Toggle flips t in sel for characterID and previews the result.
func (s *Service) Toggle(ctx context.Context, characterID string, sel levelup.Selection, t levelup.UpgradeType) (_ levelup.Selection, _ Options, err error) {
	ctx, span := s.start(ctx, "progression.Toggle", characterID)
	defer func() { endSpan(span, err) }()

	current, err := s.load(ctx, characterID)
	if err != nil {
		return levelup.Selection{}, Options{}, err
	}
	in, err := s.input(ctx, current)
	if err != nil {
		return levelup.Selection{}, Options{}, err
	}
	next := in.Toggle(sel, t)
	return next, Options{
		CharacterID: current.CharacterID,
		Version:     current.Version,
		Preview:     in.Preview(next),
	}, nil
}

// LevelUp validates sel, commits it, and stores the new snapshot and history
// in one compare-and-swap write. Nothing is stored when any step fails.
func (s *Service) LevelUp(ctx context.Context, characterID string, sel levelup.Selection) (_ LevelUpResult, err error) {
	ctx, span := s.start(ctx, "progression.LevelUp", characterID)
	defer func() { endSpan(span, err) }()

	current, err := s.load(ctx, characterID)
	if err != nil {
		return LevelUpResult{}, err
	}
	in, err := s.input(ctx, current)
	if err != nil {
		return LevelUpResult{}, err
	}
	span.SetAttributes(attribute.Int("levelup.target_level", in.TargetLevel()))

	result, err := in.Commit(sel)
	if err != nil {
		return LevelUpResult{}, err
	}

	profile, err := json.Marshal(result.Character)
	if err != nil {
		return LevelUpResult{}, fmt.Errorf("encode character profile: %w", err)
	}
	choices, err := json.Marshal(result.History)
	if err != nil {
		return LevelUpResult{}, fmt.Errorf("encode level-up choices: %w", err)
	}
	stored, err := s.progressions.UpdateProgression(ctx, storage.DaggerheartProgression{
		CharacterID:        current.CharacterID,
		Level:              result.Character.Level,
		ProfileJSON:        profile,
		LevelUpChoicesJSON: choices,
	}, current.Version)
	if err != nil {
		return LevelUpResult{}, err
	}

	return LevelUpResult{
		Progression: newProgression(stored.CharacterID, stored.Version, result.Character, result.History),
		Level:       result.Level,
		Record:      result.Record,
		StatChanges: result.StatChanges,
	}, nil
}

func (s *Service) load(ctx context.Context, characterID string) (Progression, error) {
	characterID, err := requireCharacterID(characterID)
	if err != nil {
		return Progression{}, err
	}
	record, err := s.progressions.GetProgression(ctx, characterID)
	if err != nil {
		return Progression{}, err
	}
	var character levelup.Character
	if err := json.Unmarshal(record.ProfileJSON, &character); err != nil {
		return Progression{}, apperrors.Wrap(apperrors.CodeLevelUpCharacterInvalid, "decode character profile", err)
	}
	history := levelup.History{}
	if err := json.Unmarshal(record.LevelUpChoicesJSON, &history); err != nil {
		return Progression{}, err
	}
	return newProgression(record.CharacterID, record.Version, character, history), nil
}

// input builds the rule input. Only cards from the domains the character can
// draw from are loaded.
func (s *Service) input(ctx context.Context, current Progression) (levelup.Input, error) {
	in := levelup.Input{Character: current.Character, History: current.History}
	catalog, err := s.catalog(ctx, in.Domains())
	if err != nil {
		return levelup.Input{}, err
	}
	in.Catalog = catalog
	return in, nil
}

func (s *Service) catalog(ctx context.Context, domainIDs []string) (levelup.Catalog, error) {
	var catalog levelup.Catalog
	for _, domainID := range domainIDs {
		cards, err := s.content.ListDaggerheartDomainCardsByDomain(ctx, domainID)
		if err != nil {
			return levelup.Catalog{}, fmt.Errorf("list domain cards for %s: %w", domainID, err)
		}
		for _, card := range cards {
			catalog.DomainCards = append(catalog.DomainCards, levelup.DomainCard{
				ID:       card.ID,
				Level:    card.Level,
				DomainID: card.DomainID,
				Type:     card.Type,
			})
		}
	}

	classes, err := s.content.ListDaggerheartClasses(ctx)
	if err != nil {
		return levelup.Catalog{}, fmt.Errorf("list classes: %w", err)
	}
	for _, class := range classes {
		catalog.Classes = append(catalog.Classes, levelup.Class{
			ID:        class.ID,
			DomainIDs: append([]string(nil), class.DomainIDs...),
		})
	}

	subclasses, err := s.content.ListDaggerheartSubclasses(ctx)
	if err != nil {
		return levelup.Catalog{}, fmt.Errorf("list subclasses: %w", err)
	}
	for _, subclass := range subclasses {
		catalog.Subclasses = append(catalog.Subclasses, levelup.Subclass{ID: subclass.ID, ClassID: subclass.ClassID})
	}
	return catalog, nil
}

func newProgression(characterID string, version int64, character levelup.Character, history levelup.History) Progression {
	return Progression{
		CharacterID: characterID,
		Version:     version,
		Character:   character,
		History:     history,
		Derived:     levelup.Derive(character, history),
	}
}

func requireCharacterID(characterID string) (string, error) {
	characterID = strings.TrimSpace(characterID)
	if characterID == "" {
		return "", ErrCharacterIDRequired
	}
	return characterID, nil
}

func (s *Service) start(ctx context.Context, name, characterID string) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, name, trace.WithAttributes(attribute.String("character.id", characterID)))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(apperrors.GetCode(err)))
	}
	span.End()
}
