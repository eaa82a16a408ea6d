package domain

// Per-target outcome statuses for a multi-list add.
const (
	AddOutcomeSuccess   = "success"
	AddOutcomeNotFound  = "not_found"
	AddOutcomeDuplicate = "duplicate"
	AddOutcomeFailed    = "failed"
)

// ListOutcome is the result of attempting to add an item to one target
// list.
type ListOutcome struct {
	ListID string `json:"listId"`
	Status string `json:"status"`
}

// MultiAddResult covers every requested target of a multi-list add. A
// per-target failure lives here, never in the returned error.
type MultiAddResult struct {
	Outcomes      []ListOutcome `json:"outcomes"`
	SuccessCount  int           `json:"successCount"`
	FailedCount   int           `json:"failedCount"`
	LangItemAdded bool          `json:"langItemAdded"`
}
