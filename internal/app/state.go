package app

import (
	"encoding/json"
	"fmt"

	"clockface/internal/errors"
	"clockface/internal/log"

	"fyne.io/fyne/v2"
)

// KeyBackgroundColor is the only entry a clock saves: its face color as
// 0xAARRGGBB.
const KeyBackgroundColor = "backgroundColor"

// Widget identities used as preference keys.
const (
	LargeClockID = "clockViewState"
	SmallClockID = "smallClockViewState"
)

// WidgetState is the small keyed blob one clock saves.
type WidgetState map[string]uint32

// StateStore keeps WidgetState values in Fyne preferences, one JSON
// string per widget identity.
type StateStore struct {
	prefs fyne.Preferences
}

// NewStateStore creates a store over prefs.
func NewStateStore(prefs fyne.Preferences) *StateStore {
	return &StateStore{prefs: prefs}
}

// Save stores state under id, replacing any previous value.
func (s *StateStore) Save(id string, state WidgetState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return errors.NewStateError(id, err)
	}
	s.prefs.SetString(id, string(data))
	log.Debug("state saved", log.String("id", id), log.Int("entries", len(state)))
	return nil
}

// Load returns the state saved under id. It fails with ErrMissingState
// when nothing was saved and ErrCorruptState when the value does not
// decode.
func (s *StateStore) Load(id string) (WidgetState, error) {
	raw := s.prefs.String(id)
	if raw == "" {
		return nil, errors.NewStateError(id, errors.ErrMissingState)
	}
	var state WidgetState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, errors.NewStateError(id, fmt.Errorf("%w: %v", errors.ErrCorruptState, err))
	}
	return state, nil
}

// Remove forgets the state saved under id.
func (s *StateStore) Remove(id string) {
	s.prefs.RemoveValue(id)
}
