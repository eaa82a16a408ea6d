package domain

// Word is a translation-cache record shared across users. Translations
// are keyed by target language and merged in as new languages are
// requested.
type Word struct {
	WordID       string            `json:"wordId"`
	OriginalWord string            `json:"originalWord"`
	Translations map[string]string `json:"translations"`
}

// Translation is the result of looking up or performing a single
// translation.
type Translation struct {
	WordID         string `json:"wordId"`
	OriginalWord   string `json:"originalWord"`
	TranslatedWord string `json:"translatedWord"`
	TargetLang     string `json:"targetLang"`
	Cached         bool   `json:"cached"`
}

// NewWordID derives the deterministic id of a word record.
func NewWordID(text string) string {
	return "id_" + Slug(text)
}
