package storage

import "errors"

// ErrValidation is returned when input is rejected before any write.
var ErrValidation = errors.New("validation failed")

// ErrNotFound is returned when a referenced account, quest, or reward does not exist.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when an operation targets an entity already in a terminal or incompatible state.
var ErrConflict = errors.New("conflict")

// ErrQuestNotReviewable is returned when a review targets a quest that is not pending, e.g. a retried or duplicate review call.
var ErrQuestNotReviewable = errors.New("quest not in a reviewable state")

// ErrInsufficientFunds is returned when a redemption's cost exceeds the account's coin balance at commit time.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrCommitConflict is returned when optimistic-concurrency retries are exhausted without a clean commit.
var ErrCommitConflict = errors.New("too many conflicting commits")
