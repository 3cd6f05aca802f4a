package service

import (
	"context"
	"fmt"
)

// Transcriber converts a recorded audio file into text. Implemented by
// transcribe.Client; abstracted here so tests can stub the service.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// VoiceService turns recorded speech into session entries
type VoiceService struct {
	transcriber Transcriber
	entries     *EntryService
}

// NewVoiceService creates a new VoiceService
func NewVoiceService(t Transcriber, entries *EntryService) *VoiceService {
	return &VoiceService{
		transcriber: t,
		entries:     entries,
	}
}

// Capture transcribes the audio file at audioPath and adds the
// transcript to the current session as an entry. The transcription
// call blocks until the service answers, so it runs on a dedicated
// goroutine; Capture waits for its completion signal and stays
// cancellable through ctx.
//
// Errors pass through untranslated: callers can match
// transcribe.ErrAmbiguous, transcribe.ErrUnavailable, and ErrNoTime
// to tell the user what to retry.
func (s *VoiceService) Capture(ctx context.Context, audioPath string) (*VoiceResult, error) {
	type outcome struct {
		text string
		err  error
	}

	done := make(chan outcome, 1)
	go func() {
		text, err := s.transcriber.Transcribe(ctx, audioPath)
		done <- outcome{text: text, err: err}
	}()

	var transcript string
	select {
	case o := <-done:
		if o.err != nil {
			return nil, o.err
		}
		transcript = o.text
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	e, err := s.entries.Add(transcript)
	if err != nil {
		return nil, fmt.Errorf("transcribed %q: %w", transcript, err)
	}

	return &VoiceResult{
		Transcript: transcript,
		Entry:      e,
	}, nil
}
