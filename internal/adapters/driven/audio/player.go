// Package audio implements driven.AudioPlayer by handing pronunciation
// recordings to an external command-line media player.
package audio

import (
	"context"
	"fmt"
	"net/url"
	"os/exec"
	"strings"
	"sync"

	"github.com/custodia-labs/lexi/internal/core/domain"
	"github.com/custodia-labs/lexi/internal/core/ports/driven"
	"github.com/custodia-labs/lexi/internal/logger"
)

// Ensure CommandPlayer implements the interface.
var _ driven.AudioPlayer = (*CommandPlayer)(nil)

// DefaultPlayers are tried in order when no player is configured.
// Each must accept an http(s) URL as its last argument.
var DefaultPlayers = [][]string{
	{"mpv", "--no-video", "--really-quiet"},
	{"ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet"},
	{"cvlc", "--play-and-exit", "--quiet"},
	{"mpg123", "-q"},
}

// CommandPlayer plays audio URLs with an external player process.
type CommandPlayer struct {
	mu      sync.RWMutex
	command []string

	lookPath func(string) (string, error)
	onExit   func(url string, err error)
}

// NewCommandPlayer creates a player. An empty command selects the first
// available entry of DefaultPlayers at play time.
func NewCommandPlayer(command string) *CommandPlayer {
	return &CommandPlayer{
		command:  strings.Fields(command),
		lookPath: exec.LookPath,
	}
}

// SetCommand changes the player command for subsequent playbacks.
func (p *CommandPlayer) SetCommand(command string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.command = strings.Fields(command)
}

// OnExit registers a callback invoked after each playback process exits.
func (p *CommandPlayer) OnExit(fn func(url string, err error)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onExit = fn
}

// Resolve returns the player command that would be used, with its path
// resolved. Returns domain.ErrNoPlayer if none is available.
func (p *CommandPlayer) Resolve() ([]string, error) {
	p.mu.RLock()
	configured := p.command
	p.mu.RUnlock()

	if len(configured) > 0 {
		path, err := p.lookPath(configured[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", domain.ErrNoPlayer, configured[0], err)
		}
		return append([]string{path}, configured[1:]...), nil
	}

	for _, candidate := range DefaultPlayers {
		if path, err := p.lookPath(candidate[0]); err == nil {
			return append([]string{path}, candidate[1:]...), nil
		}
	}
	return nil, domain.ErrNoPlayer
}

// Play starts playback of rawURL and returns without waiting for it to end.
// Failures of the player process are logged and reported to the OnExit callback.
func (p *CommandPlayer) Play(ctx context.Context, rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: unsupported audio url %q", domain.ErrInvalidInput, rawURL)
	}

	command, err := p.Resolve()
	if err != nil {
		return err
	}

	args := append(command[1:len(command):len(command)], rawURL)
	//nolint:gosec // G204: player command comes from local configuration
	cmd := exec.CommandContext(ctx, command[0], args...)

	logger.Debug("audio: %s %s", command[0], strings.Join(args, " "))

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: start %s: %w", domain.ErrPlaybackFailed, command[0], err)
	}

	p.mu.RLock()
	onExit := p.onExit
	p.mu.RUnlock()

	go func() {
		err := cmd.Wait()
		if err != nil {
			err = fmt.Errorf("%w: %s: %w", domain.ErrPlaybackFailed, rawURL, err)
			logger.Error("audio: %v", err)
		}
		if onExit != nil {
			onExit(rawURL, err)
		}
	}()

	return nil
}
