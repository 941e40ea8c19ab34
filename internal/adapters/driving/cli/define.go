package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/lexi/internal/adapters/driving/tui/components/entries"
	"github.com/custodia-labs/lexi/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/lexi/internal/core/domain"
)

// defaultWidth is the wrap width when stdout is not a terminal.
const defaultWidth = 80

var (
	defineJSON bool
	definePlay bool
)

var defineCmd = &cobra.Command{
	Use:   "define [word]",
	Short: "Look up a word",
	Long: `Looks up a word in the dictionary and prints its definitions.

A word without definitions prints the not-found message and exits cleanly.
Use --play to hear the pronunciation of the first entry that has audio.`,
	Args: cobra.ExactArgs(1),
	RunE: runDefine,
}

func init() {
	defineCmd.Flags().BoolVar(&defineJSON, "json", false, "output entries as JSON")
	defineCmd.Flags().BoolVar(&definePlay, "play", false, "play the pronunciation")
	rootCmd.AddCommand(defineCmd)
}

func runDefine(cmd *cobra.Command, args []string) error {
	if deps.Controller == nil {
		return errors.New("lookup controller not configured")
	}

	deps.Controller.SetTerm(args[0])
	state := deps.Controller.Submit(cmd.Context())

	if defineJSON {
		if err := outputDefineJSON(cmd, state); err != nil {
			return err
		}
	} else {
		outputDefineText(cmd, state)
	}

	if state.Status() == domain.StatusFailed {
		return fmt.Errorf("lookup failed: %w", state.Err())
	}

	if definePlay && state.Status() == domain.StatusLoaded {
		return playFirst(cmd, state.Entries())
	}
	return nil
}

func outputDefineJSON(cmd *cobra.Command, state domain.LookupState) error {
	list := state.Entries()
	if list == nil {
		list = []domain.DictionaryEntry{}
	}

	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal entries: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputDefineText(cmd *cobra.Command, state domain.LookupState) {
	s, width := outputStyle(cmd.OutOrStdout())
	renderer := entries.NewRenderer(s, width)

	switch state.Status() {
	case domain.StatusLoaded:
		if len(state.Entries()) == 0 {
			return
		}
		out, _ := renderer.Entries(state.Entries(), -1)
		cmd.Println(out)
	case domain.StatusNotFound:
		cmd.Println(renderer.NotFound())
	}
}

// outputStyle picks coloured styles and the terminal width when w is a
// terminal, and plain styles otherwise.
func outputStyle(w io.Writer) (*styles.Styles, int) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return styles.PlainStyles(), defaultWidth
	}

	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		width = defaultWidth
	}
	return styles.DefaultStyles(), width
}

// playFirst plays the first entry that has audio and waits for the player
// to finish.
func playFirst(cmd *cobra.Command, list []domain.DictionaryEntry) error {
	if deps.Pronunciation == nil {
		return errors.New("pronunciation service not configured")
	}

	done := make(chan error, 1)
	if deps.OnPlaybackExit != nil {
		deps.OnPlaybackExit(func(_ string, err error) {
			select {
			case done <- err:
			default:
			}
		})
		defer deps.OnPlaybackExit(nil)
	}

	for i := range list {
		if !list[i].HasAudio() {
			continue
		}

		played, err := deps.Pronunciation.Play(cmd.Context(), &list[i])
		if err != nil {
			return fmt.Errorf("playback failed: %w", err)
		}
		if !played || deps.OnPlaybackExit == nil {
			return nil
		}

		select {
		case err := <-done:
			if err != nil {
				return fmt.Errorf("playback failed: %w", err)
			}
			return nil
		case <-cmd.Context().Done():
			return cmd.Context().Err()
		}
	}

	cmd.PrintErrln("No pronunciation audio available.")
	return nil
}
