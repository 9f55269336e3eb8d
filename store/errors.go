package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrCardNotFound     = fmt.Errorf("help card not found")
	ErrOwnCard          = fmt.Errorf("can not decide on your own help card")
	ErrCardNotOpen      = fmt.Errorf("help card is no longer open")
	ErrDecisionConflict = fmt.Errorf("a different decision was already recorded")
	ErrNotCardAuthor    = fmt.Errorf("only the author can change the help card status")

	ErrPostNotFound = fmt.Errorf("post not found")
	ErrDeckNotFound = fmt.Errorf("deck not found")
	ErrSelfFollow   = fmt.Errorf("can not follow yourself")

	ErrAccountNotFound = fmt.Errorf("account not found")
	ErrAccountTaken    = fmt.Errorf("account already registered")

	ErrInviteCodeExhausted = fmt.Errorf("unable to allocate a unique invite code")
)

// IsTransient reports whether err comes from a timeout or a network failure
// and the same call may succeed if attempted again
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && (cmdErr.HasErrorLabel("NetworkError") || cmdErr.HasErrorLabel("RetryableWriteError")) {
		return true
	}

	msg := err.Error()
	return strings.Contains(msg, "server selection") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "context deadline exceeded")
}

func isDuplicateKeyError(err error) bool {
	var writeErr mongo.WriteException
	if errors.As(err, &writeErr) {
		for _, e := range writeErr.WriteErrors {
			if e.Code == 11000 {
				return true
			}
		}
	}

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Code == 11000 {
		return true
	}

	return false
}
