package hype

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/abhisek/grammiz/internal/drill"
)

// defaultTTSModel is the speech-capable Gemini model used for audio.
const defaultTTSModel = "gemini-2.5-flash-preview-tts"

// defaultVoice is pitched for stab-like synth sounds rather than speech.
const defaultVoice = "Kore"

// GeminiSource implements Source using the Gemini TTS modality.
type GeminiSource struct {
	client *genai.Client
	model  string
	voice  string
}

// NewGeminiSource creates an audio source from an API key.
func NewGeminiSource(ctx context.Context, apiKey string) (*GeminiSource, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}
	return &GeminiSource{
		client: client,
		model:  defaultTTSModel,
		voice:  defaultVoice,
	}, nil
}

// GenerateTrack synthesizes a ten-second instrumental phonk track for
// the stage.
func (s *GeminiSource) GenerateTrack(ctx context.Context, stage drill.Stage) ([]byte, error) {
	return s.synthesize(ctx, trackPrompt(stage))
}

// GenerateSFX synthesizes a one-shot effect.
func (s *GeminiSource) GenerateSFX(ctx context.Context, kind Kind) ([]byte, error) {
	return s.synthesize(ctx, sfxPrompt(kind))
}

func (s *GeminiSource) synthesize(ctx context.Context, prompt string) ([]byte, error) {
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: s.voice},
			},
		},
	}

	contents := []*genai.Content{
		{Role: "user", Parts: []*genai.Part{{Text: prompt}}},
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("synthesize audio: %w", err)
	}

	for _, cand := range result.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data, nil
			}
		}
	}
	return nil, fmt.Errorf("no audio data in response")
}

// trackPrompt builds the instrumental performance prompt for a stage.
// The model acts as a synthesizer and drum machine, not a narrator.
func trackPrompt(stage drill.Stage) string {
	return fmt.Sprintf(`Perform a 10-second HIGH-ENERGY INSTRUMENTAL ELECTRONIC / PHONK track for the stage: %s.

IMPORTANT RULES:
1. NO LYRICS. NO SPEAKING. NO EXPLAINING.
2. ONLY USE INSTRUMENTAL SOUNDS: 'DOOM-KAH-DOOM-DOOM-KAH' (Drums), 'BZZZT-vwoo' (Synths), 'Tink-tink' (Phonk Cowbells).
3. YOU MAY INCLUDE SHORT VOCAL STABS like "HEY!", "YEAH!", "GO!", or "WHAT!" rhythmically.
4. ACT AS A SYNTHESIZER AND DRUM MACHINE.

Structure:
- 0-3s: Heavy distorted kick and phonk cowbell melody (e.g., 'Tink-tink-tonk, Tink-tink-tonk').
- 3-7s: Add sharp snare and rapid hi-hats with a vocal stab 'GO!'.
- 7-10s: Glitchy electronic bass drop ('WUB-WUB-WUB-BRRR').`, stage)
}

// sfxPrompt builds the one-shot effect prompt for a kind.
func sfxPrompt(kind Kind) string {
	var sound string
	switch kind {
	case KindSuccess:
		sound = "a rising triumphant synth arpeggio, 'DING-DING-DIIING'"
	case KindError:
		sound = "a low distorted buzzer, 'BZZZZT'"
	default:
		sound = "a short clicky blip, 'TIK'"
	}
	return fmt.Sprintf(`Perform a single one-second sound effect: %s.
NO SPEAKING. Act as a synthesizer. One sound, then silence.`, sound)
}
