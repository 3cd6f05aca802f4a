package cmd

import (
	"io"
	"os"

	"github.com/xolan/daylog/internal/config"
	"github.com/xolan/daylog/internal/service"
	"github.com/xolan/daylog/internal/transcribe"
)

// Deps holds external dependencies for CLI commands, enabling testability.
type Deps struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
	Exit   func(code int)

	// Services is the business logic layer shared by all commands
	Services *service.Services

	// NewTranscriber builds the speech transcription client. Tests
	// replace this to stub the external service.
	NewTranscriber func(cfg config.Config, language string) (service.Transcriber, error)
}

// DefaultDeps returns the default production dependencies.
func DefaultDeps() *Deps {
	services, _ := service.NewServices()

	return &Deps{
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Stdin:    os.Stdin,
		Exit:     os.Exit,
		Services: services,
		NewTranscriber: func(cfg config.Config, language string) (service.Transcriber, error) {
			if language == "" {
				language = cfg.Language
			}
			return transcribe.NewFromEnv(cfg.TranscriberURL, cfg.TranscriberModel, language)
		},
	}
}

// deps is the global dependencies instance used by commands.
// In production, this is DefaultDeps(). Tests can replace it.
var deps = DefaultDeps()

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps resets dependencies to defaults (for testing cleanup).
func ResetDeps() {
	deps = DefaultDeps()
}
