package domain

import "time"

// Flashcard is a study card cut from a translated capture. The fields
// are denormalized at creation time, so later changes to the capture or
// word never reach the card. The id is deterministic per capture, so
// one capture yields at most one flashcard.
type Flashcard struct {
	OwnerID        string    `json:"ownerId"`
	FlashcardID    string    `json:"fcId"`
	CaptureID      string    `json:"captureId"`
	WordID         string    `json:"wordId"`
	OriginalText   string    `json:"originalText"`
	TranslatedText string    `json:"translatedText"`
	TargetLang     string    `json:"targetLang"`
	Description    string    `json:"description,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// NewFlashcardID derives the deterministic id of a flashcard.
func NewFlashcardID(captureID string) string {
	return "fc_" + captureID
}
