package assessment

import "errors"

var (
	// ErrSessionNotFound means the referenced session ID is unknown.
	ErrSessionNotFound = errors.New("session not found")
	// ErrItemNotFound means the submitted item ID is not in the current
	// dimension's pool (stale client reference).
	ErrItemNotFound = errors.New("question not found")
	// ErrItemAlreadyAnswered means the item is already in the dimension's
	// response history; items are never re-administered.
	ErrItemAlreadyAnswered = errors.New("question already answered")
	// ErrInvalidResponse means the raw response is outside the 1-5 range.
	ErrInvalidResponse = errors.New("response must be between 1 and 5")
	// ErrSessionCompleted means a mutation was attempted on a completed session.
	ErrSessionCompleted = errors.New("session already completed")
	// ErrNoMoreQuestions means the assessment is finished; no further items.
	ErrNoMoreQuestions = errors.New("no more questions")
	// ErrNotCompleted means a report was requested before completion.
	ErrNotCompleted = errors.New("test not completed yet")
)
