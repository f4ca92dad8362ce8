// Package clipboard copies text to the system clipboard via shell commands.
package clipboard

import (
	"errors"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// ErrClipboardUnavailable is returned when clipboard access is not available.
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// candidate is a clipboard program and the arguments that make it read stdin.
type candidate struct {
	wayland bool // only used under a Wayland session
	argv    []string
}

var candidates = map[string][]candidate{
	"darwin": {
		{argv: []string{"pbcopy"}},
	},
	"linux": {
		{wayland: true, argv: []string{"wl-copy"}},
		{argv: []string{"xclip", "-selection", "clipboard"}},
		{argv: []string{"xsel", "--clipboard", "--input"}},
	},
	"windows": {
		{argv: []string{"clip"}},
	},
}

// findCommand picks the first usable clipboard program for goos.
func findCommand(goos string, wayland bool, lookPath func(string) (string, error)) ([]string, error) {
	for _, c := range candidates[goos] {
		if c.wayland && !wayland {
			continue
		}
		if _, err := lookPath(c.argv[0]); err == nil {
			return c.argv, nil
		}
	}
	return nil, ErrClipboardUnavailable
}

func systemCommand() ([]string, error) {
	return findCommand(runtime.GOOS, os.Getenv("WAYLAND_DISPLAY") != "", exec.LookPath)
}

// IsAvailable checks if clipboard functionality is available on this system.
func IsAvailable() bool {
	_, err := systemCommand()
	return err == nil
}

// Copy copies the given text to the system clipboard.
// Returns ErrClipboardUnavailable if clipboard access is not available.
func Copy(text string) error {
	argv, err := systemCommand()
	if err != nil {
		return err
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}
