package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xolan/daylog/internal/cli"
	"github.com/xolan/daylog/internal/service"
	"github.com/xolan/daylog/internal/transcribe"
)

var voiceLanguageFlag string

// voiceCmd represents the voice command
var voiceCmd = &cobra.Command{
	Use:   "voice <audio-file>",
	Short: "Log an entry from recorded speech",
	Long: `Transcribe a recorded audio file and log the transcript as a session
entry. The transcript must start with a time of day, just like typed
input (e.g., say "9h30 studied statistics").

The transcription service endpoint and model come from the config file;
the API key is read from the ` + transcribe.APIKeyEnv + ` environment
variable.

Examples:
  daylog voice morning.wav
  daylog voice morning.wav --language fr`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		captureVoice(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(voiceCmd)
	voiceCmd.Flags().StringVarP(&voiceLanguageFlag, "language", "l", "", "spoken language override (BCP 47 tag, e.g. 'fr')")
}

// captureVoice transcribes an audio file and logs the result
func captureVoice(ctx context.Context, audioPath string) {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := deps.Services.Config.Get()
	transcriber, err := deps.NewTranscriber(cfg, voiceLanguageFlag)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to set up transcription")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Set %s and check transcriber_url in your config\n", transcribe.APIKeyEnv)
		deps.Exit(1)
		return
	}

	voice := service.NewVoiceService(transcriber, deps.Services.Entry)

	_, _ = fmt.Fprintln(deps.Stdout, "Transcribing...")
	result, err := voice.Capture(ctx, audioPath)
	if err != nil {
		switch {
		case errors.Is(err, transcribe.ErrAmbiguous):
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Could not understand the audio")
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Record again, speaking clearly and starting with the time")
		case errors.Is(err, transcribe.ErrUnavailable):
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Transcription service unavailable")
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check your network and the transcriber_url in your config")
		case errors.Is(err, service.ErrNoTime):
			_, _ = fmt.Fprintln(deps.Stderr, "Error: The transcript has no recognizable time")
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Start with a time like '9h30' or '09:30' (e.g., \"9h30 studied statistics\")")
		default:
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Voice capture failed")
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		}
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Heard: %s\n", result.Transcript)
	_, _ = fmt.Fprintf(deps.Stdout, "Logged: %s\n", cli.FormatEntry(*result.Entry))
}
