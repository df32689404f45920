package ai

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	"github.com/cenkalti/backoff/v4"

	"github.com/lexintake/intake-service/internal/domain/entities"
	"github.com/lexintake/intake-service/pkg/config"
)

// ErrTranscriberNotConfigured is returned when transcription is requested
// without an AssemblyAI API key.
var ErrTranscriberNotConfigured = errors.New("assemblyai api key is not configured")

// AssemblyAIClient turns recorded intake calls into speaker-attributed
// transcript turns.
type AssemblyAIClient struct {
	client *aai.Client
	apiKey string
}

// NewAssemblyAIClient creates an AssemblyAI client using values from the
// provided config. Pass a nil config to fall back to environment variables.
func NewAssemblyAIClient(cfg *config.AssemblyAIConfig) *AssemblyAIClient {
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("ASSEMBLYAI_API_KEY")
	}
	return &AssemblyAIClient{
		client: aai.NewClient(apiKey),
		apiKey: apiKey,
	}
}

// TranscribeURL submits a publicly reachable audio URL, waits for the
// transcript to complete and maps each utterance to a transcript turn.
// Transient submission failures are retried with exponential backoff.
func (c *AssemblyAIClient) TranscribeURL(ctx context.Context, audioURL string) ([]entities.TranscriptTurn, error) {
	if c.apiKey == "" {
		return nil, ErrTranscriberNotConfigured
	}

	params := &aai.TranscriptOptionalParams{
		SpeakerLabels: aai.Bool(true),
	}

	var transcript aai.Transcript
	operation := func() error {
		var err error
		transcript, err = c.client.Transcripts.TranscribeFromURL(ctx, audioURL, params)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			return err
		}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, fmt.Errorf("assemblyai transcription: %w", err)
	}

	if transcript.Status == aai.TranscriptStatusError {
		reason := "unknown error"
		if transcript.Error != nil {
			reason = *transcript.Error
		}
		return nil, fmt.Errorf("assemblyai transcription failed: %s", reason)
	}

	turns := make([]entities.TranscriptTurn, 0, len(transcript.Utterances))
	for _, u := range transcript.Utterances {
		var text, speaker string
		if u.Text != nil {
			text = strings.TrimSpace(*u.Text)
		}
		if text == "" {
			continue
		}
		if u.Speaker != nil {
			speaker = *u.Speaker
		}
		if speaker == "" {
			speaker = "Unknown"
		}
		turns = append(turns, entities.TranscriptTurn{
			Speaker: "Speaker " + speaker,
			Text:    text,
		})
	}
	return turns, nil
}
