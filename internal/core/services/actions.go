package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"

	"github.com/custodia-labs/gsearch/internal/core/domain"
	"github.com/custodia-labs/gsearch/internal/core/ports/driving"
)

// Operating system identifiers.
const (
	osDarwin  = "darwin"
	osLinux   = "linux"
	osWindows = "windows"
)

// Ensure ResultActionService implements the interface.
var _ driving.ResultActionService = (*ResultActionService)(nil)

// ResultActionService provides actions on search results.
type ResultActionService struct {
	goos     string
	lookPath func(file string) (string, error)
	run      func(cmd *exec.Cmd) error
}

// NewResultActionService creates a new result action service for the
// current platform.
func NewResultActionService() *ResultActionService {
	return &ResultActionService{
		goos:     runtime.GOOS,
		lookPath: exec.LookPath,
		run:      runCommand,
	}
}

// CopyURL copies the result's URL to the system clipboard.
func (s *ResultActionService) CopyURL(_ context.Context, item domain.Item) error {
	target, err := itemURL(item)
	if err != nil {
		return err
	}

	cmd, err := s.clipboardCommand()
	if err != nil {
		return err
	}
	cmd.Stdin = strings.NewReader(target)
	return s.run(cmd)
}

// OpenURL opens the result's URL in the default browser.
func (s *ResultActionService) OpenURL(_ context.Context, item domain.Item) error {
	target, err := itemURL(item)
	if err != nil {
		return err
	}

	var cmd *exec.Cmd
	switch s.goos {
	case osDarwin:
		cmd = exec.Command("open", target)
	case osLinux:
		cmd = exec.Command("xdg-open", target)
	case osWindows:
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
	default:
		return fmt.Errorf("unsupported platform: %s", s.goos)
	}
	return s.run(cmd)
}

// clipboardCommand picks the OS-specific clipboard writer.
func (s *ResultActionService) clipboardCommand() (*exec.Cmd, error) {
	switch s.goos {
	case osDarwin:
		return exec.Command("pbcopy"), nil
	case osLinux:
		// Try xclip first, fall back to xsel
		if _, err := s.lookPath("xclip"); err == nil {
			return exec.Command("xclip", "-selection", "clipboard"), nil
		}
		if _, err := s.lookPath("xsel"); err == nil {
			return exec.Command("xsel", "--clipboard", "--input"), nil
		}
		return nil, errors.New("no clipboard utility found (install xclip or xsel)")
	case osWindows:
		return exec.Command("cmd", "/c", "clip"), nil
	default:
		return nil, fmt.Errorf("unsupported platform: %s", s.goos)
	}
}

// itemURL returns the item's URL when it is an absolute http(s) address.
func itemURL(item domain.Item) (string, error) {
	if item == nil {
		return "", errors.Join(domain.ErrInvalidArgument, errors.New("result is nil"))
	}

	raw := item.URL()
	if raw == "" {
		return "", errors.Join(domain.ErrInvalidArgument, errors.New("result has no URL"))
	}

	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return "", errors.Join(domain.ErrInvalidArgument, fmt.Errorf("not a web URL: %q", raw))
	}
	return u.String(), nil
}

// runCommand starts browsers detached and waits for clipboard writers.
func runCommand(cmd *exec.Cmd) error {
	if cmd.Stdin != nil {
		return cmd.Run()
	}
	return cmd.Start()
}
