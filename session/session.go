// Copyright (c) 2026 Hinolugi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"

	"github.com/hinolugi/scoreboard/codec"
	"github.com/hinolugi/scoreboard/models"
	"github.com/hinolugi/scoreboard/scoring"
)

// Saver persists the session blob between runs. Save is called
// synchronously inside every mutation, before observers are notified.
type Saver interface {
	Save(data []byte) error
	Load() ([]byte, error)
}

// Remote is the cloud store seen from the session: save an export, load
// the last ongoing one.
type Remote interface {
	Save(ctx context.Context, export models.Export) (filename string, err error)
	Load(ctx context.Context) ([]byte, error)
}

// Observer receives a snapshot after every committed mutation. This is the
// render request: the presentation layer derives its view from the
// snapshot, never from the live state.
type Observer func(models.GameSession)

// Session owns the mutable game state. All mutation entry points funnel
// through one update path: mutate, recalculate affected scores, persist
// locally, then notify the observer. Operations are serialized by the
// session mutex, so multi-step mutations like the victory-type reset are
// never observable half-applied.
type Session struct {
	mu       sync.Mutex
	state    models.GameSession
	saver    Saver
	observer Observer
}

// New creates a session around a saver. The observer may be nil.
func New(saver Saver, observer Observer) *Session {
	return &Session{
		saver:    saver,
		observer: observer,
		state: models.GameSession{
			Game:            models.GameGeneric,
			Status:          models.StatusOngoing,
			AutoSort:        true,
			CelebrationLink: models.DefaultCelebrationLink,
		},
	}
}

// Bootstrap loads the locally persisted session, falling back to a fresh
// default roster when nothing valid is stored.
func (s *Session) Bootstrap() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if data, err := s.saver.Load(); err == nil {
		if loaded, err := codec.Import(data); err == nil {
			s.state = loaded
		} else {
			slog.Warn("discarding unreadable saved state", "error", err)
		}
	}
	if s.state.Game == "" {
		s.state.Game = models.GameGeneric
	}
	if s.state.Status == "" {
		s.state.Status = models.StatusOngoing
	}
	if s.state.CelebrationLink == "" {
		s.state.CelebrationLink = models.DefaultCelebrationLink
	}
	if len(s.state.Players) == 0 {
		s.state.Players = defaultRoster()
	}
	s.commitLocked()
}

func defaultRoster() []models.Player {
	players := make([]models.Player, len(models.DefaultNames))
	for i, name := range models.DefaultNames {
		players[i] = models.Player{Name: name, PlayDetails: models.PlayDetails{}}
	}
	return players
}

// Snapshot returns a deep copy of the current state.
func (s *Session) Snapshot() models.GameSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// SetPlayers replaces the roster. Names are trimmed, empties dropped and
// duplicates removed preserving first occurrence; every kept player starts
// at score 0 with empty play details. An empty result is accepted — the
// caller guards the active-session invariant.
func (s *Session) SetPlayers(names []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]bool, len(names))
	players := make([]models.Player, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		key := strings.ToLower(name)
		if name == "" || seen[key] {
			continue
		}
		seen[key] = true
		players = append(players, models.Player{Name: name, PlayDetails: models.PlayDetails{}})
	}
	s.state.Players = players
	s.commitLocked()
}

// SetScore sets a player's score, clamped to zero. Unknown names are a
// silent no-op.
func (s *Session) SetScore(name string, value int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.playerLocked(name)
	if p == nil {
		return
	}
	if value < 0 {
		value = 0
	}
	p.Score = value
	s.commitLocked()
}

// AdjustScore applies a delta to a player's score, never going below zero.
func (s *Session) AdjustScore(name string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.playerLocked(name)
	if p == nil {
		return
	}
	p.Score = max(0, p.Score+delta)
	s.commitLocked()
}

// SetCategoryValue writes one category input for the player at index and
// recalculates that player's total under the active registry. An index out
// of range is a silent no-op; negative values clamp to zero.
func (s *Session) SetCategoryValue(index int, key string, value int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.state.Players) {
		return
	}
	if value < 0 {
		value = 0
	}
	p := &s.state.Players[index]
	if p.PlayDetails == nil {
		p.PlayDetails = models.PlayDetails{}
	}
	p.PlayDetails[key] = value
	s.recalculateLocked()
	s.commitLocked()
}

// SetVictoryType records a duel victory type for the player at index. At
// most one player may hold a domination victory: activating one resets
// every other player back to points, and all totals are recalculated
// before the change becomes observable.
func (s *Session) SetVictoryType(index int, victoryType string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.state.Players) {
		return
	}
	if victoryType != models.VictoryPoints {
		for i := range s.state.Players {
			if i == index {
				continue
			}
			if s.state.Players[i].PlayDetails.VictoryType() != models.VictoryPoints {
				s.state.Players[i].PlayDetails[models.VictoryTypeKey] = models.VictoryPoints
			}
		}
	}
	p := &s.state.Players[index]
	if p.PlayDetails == nil {
		p.PlayDetails = models.PlayDetails{}
	}
	p.PlayDetails[models.VictoryTypeKey] = victoryType
	s.recalculateLocked()
	s.commitLocked()
}

// SetAutoSort toggles automatic ordering of the board.
func (s *Session) SetAutoSort(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.AutoSort = on
	s.commitLocked()
}

// SetCelebrationLink replaces the configured celebration URL template.
func (s *Session) SetCelebrationLink(link string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if link == "" {
		link = models.DefaultCelebrationLink
	}
	s.state.CelebrationLink = link
	s.commitLocked()
}

// ResetScores zeroes every score and clears play details, preserving the
// roster and settings.
func (s *Session) ResetScores() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Players {
		s.state.Players[i].Score = 0
		s.state.Players[i].PlayDetails = models.PlayDetails{}
	}
	s.commitLocked()
}

// NewGame starts a fresh session of the given kind with the current
// roster: scores and play details cleared, status back to ongoing, play
// date dropped.
func (s *Session) NewGame(game string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Game = game
	s.state.Status = models.StatusOngoing
	s.state.PlayDate = ""
	for i := range s.state.Players {
		s.state.Players[i].Score = 0
		s.state.Players[i].PlayDetails = models.PlayDetails{}
	}
	s.commitLocked()
}

// playerLocked finds a roster entry by name. Callers hold the mutex.
func (s *Session) playerLocked(name string) *models.Player {
	for i := range s.state.Players {
		if s.state.Players[i].Name == name {
			return &s.state.Players[i]
		}
	}
	return nil
}

// recalculateLocked recomputes every score from play details under the
// active registry. Generic sessions keep their authoritative scores.
func (s *Session) recalculateLocked() {
	reg := scoring.RegistryFor(s.state.Game)
	if reg == nil {
		return
	}
	for i := range s.state.Players {
		s.state.Players[i].Score = scoring.Recalculate(s.state.Players[i].PlayDetails, reg)
	}
}

// commitLocked runs the tail of the update path: persist locally, then
// notify. Persistence happens first so a crash between the two can never
// leave saved state behind the last user action.
func (s *Session) commitLocked() {
	data, err := json.Marshal(codec.Export(s.state, s.state.Status, false))
	if err != nil {
		slog.Error("failed to encode state", "error", err)
	} else if err := s.saver.Save(data); err != nil {
		slog.Warn("failed to save state", "error", err)
	}
	if s.observer != nil {
		s.observer(s.state.Clone())
	}
}
