// Copyright (c) 2026 Hinolugi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/hinolugi/scoreboard/codec"
	"github.com/hinolugi/scoreboard/models"
	"github.com/hinolugi/scoreboard/ranking"
)

// SaveToCloud pushes the current session to the remote store as the
// ongoing record. A failure leaves local state untouched.
func (s *Session) SaveToCloud(ctx context.Context, remote Remote) error {
	export := codec.Export(s.Snapshot(), models.StatusOngoing, false)
	if _, err := remote.Save(ctx, export); err != nil {
		return fmt.Errorf("save to cloud: %w", err)
	}
	slog.Info("state saved to cloud")
	return nil
}

// LoadFromCloud replaces the session with the last-saved remote state.
// Last writer wins: local edits made while the request was in flight are
// overwritten on arrival. A transport or validation failure leaves the
// current state unmodified.
func (s *Session) LoadFromCloud(ctx context.Context, remote Remote) error {
	data, err := remote.Load(ctx)
	if err != nil {
		return fmt.Errorf("load from cloud: %w", err)
	}
	loaded, err := codec.Import(data)
	if err != nil {
		return fmt.Errorf("load from cloud: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if loaded.Game == "" {
		loaded.Game = s.state.Game
	}
	if loaded.CelebrationLink == "" {
		loaded.CelebrationLink = s.state.CelebrationLink
	}
	s.state = loaded
	s.recalculateLocked()
	s.commitLocked()
	slog.Info("state loaded from cloud")
	return nil
}

// Finish snapshots the session to the remote store as an immutable
// finished-game record: players reordered winner-first, top three ranked,
// play date stamped. Only after the remote save succeeds is the local
// session marked finished. Returns the stored filename.
func (s *Session) Finish(ctx context.Context, remote Remote) (string, error) {
	export := codec.Export(s.Snapshot(), models.StatusFinished, true)
	filename, err := remote.Save(ctx, export)
	if err != nil {
		return "", fmt.Errorf("finish game: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Status = models.StatusFinished
	s.state.PlayDate = export.PlayDate
	s.commitLocked()
	slog.Info("game finished", "filename", filename)
	return filename, nil
}

// Winners returns the names of every player tied for the maximum score.
func (s *Session) Winners() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ranking.Winners(s.state.Players)
}

// WinMessage builds the celebration announcement for the current winners.
func (s *Session) WinMessage() string {
	winners := s.Winners()
	switch len(winners) {
	case 0:
		return ""
	case 1:
		return winners[0] + " Has Won!"
	case 2:
		return winners[0] + " and " + winners[1] + " Have All Won!"
	default:
		return strings.Join(winners[:len(winners)-1], ", ") + " and " + winners[len(winners)-1] + " Have All Won!"
	}
}

// CelebrationURL resolves the configured link template for a message: all
// {{MESSAGE}} tokens are replaced with the URL-encoded message; a template
// without the token gets the message appended as a query parameter.
func (s *Session) CelebrationURL(message string) string {
	s.mu.Lock()
	template := s.state.CelebrationLink
	s.mu.Unlock()

	// QueryEscape uses + for spaces; the celebration page expects %20.
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	switch {
	case strings.Contains(template, "{{MESSAGE}}"):
		return strings.ReplaceAll(template, "{{MESSAGE}}", encoded)
	case template != "":
		sep := "?"
		if strings.Contains(template, "?") {
			sep = "&"
		}
		return template + sep + encoded
	default:
		return "celebration.html?s=10&msg=" + encoded
	}
}
