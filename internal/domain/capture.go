package domain

import "time"

// Capture statuses.
const (
	CaptureStatusPending    = "pending_translation"
	CaptureStatusTranslated = "translated"
)

// Capture records a recognized object awaiting or holding a translation.
// The id is deterministic, so capturing the same object for the same
// target language twice returns the original capture.
type Capture struct {
	OwnerID        string    `json:"ownerId"`
	CaptureID      string    `json:"captureId"`
	ObjectName     string    `json:"objectName"`
	TargetLang     string    `json:"targetLang"`
	Accuracy       *float64  `json:"accuracy,omitempty"`
	ImageMimeType  string    `json:"imageMimeType,omitempty"`
	ImageSizeBytes int64     `json:"imageSizeBytes,omitempty"`
	Status         string    `json:"status"`
	WordID         string    `json:"wordId,omitempty"`
	TranslatedWord string    `json:"translatedWord,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// NewCaptureID derives the deterministic id of a capture.
func NewCaptureID(objectName, targetLang, ownerID string) string {
	return "cap_" + Slug(objectName) + "_" + targetLang + "_" + ownerID
}
