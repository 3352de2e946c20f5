package lore

import (
	"errors"
	"fmt"
)

const (
	OfflineText     = "ARCHIVE CONNECTION OFFLINE. UNABLE TO DECRYPT ANCIENT DATA STREAMS."
	InterruptedText = "ERROR: NEURAL LINK INTERRUPTED."
	CorruptedText   = "DATA CORRUPTED."
)

const promptTemplate = `You are the voice of the Lunar Machine Sanctum, an ancient alien machine buried in the moon.
The player has just activated Stage %d of the machine.

Generate a cryptic, atmospheric log entry (max 50 words) revealing a fragment of history about the "Architects".
Tone: Eerie, metallic, ancient, sci-fi.`

// Prompt returns the generation prompt for a stage.
func Prompt(stage int) string {
	return fmt.Sprintf(promptTemplate, stage)
}

// FallbackText returns the in-world message shown when generation fails.
func FallbackText(err error) string {
	switch {
	case err == nil:
		return CorruptedText
	case errors.Is(err, ErrNoCredential):
		return OfflineText
	default:
		return InterruptedText
	}
}
