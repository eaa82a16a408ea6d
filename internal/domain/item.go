package domain

import "time"

// Item is one vocabulary entry inside a list, denormalized from the
// Word record at add time. Keyed by WordID within a list, so a repeated
// add of the same word is a duplicate, not a second row.
type Item struct {
	OwnerID        string    `json:"-"`
	ListID         string    `json:"-"`
	WordID         string    `json:"wordId"`
	OriginalWord   string    `json:"originalWord"`
	TranslatedWord string    `json:"translatedWord"`
	TranslatedLang string    `json:"translatedLang"`
	CaptureID      string    `json:"captureId,omitempty"`
	Note           string    `json:"note,omitempty"`
	AddedAt        time.Time `json:"addedAt"`
}
