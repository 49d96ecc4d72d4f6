// Package storage defines the persistence contract for accounts and messages.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/johndosdos/chirp/internal/model"
)

//go:generate mockgen -destination=../mocks/mock_store.go -package=mocks github.com/johndosdos/chirp/internal/storage Store

var (
	// ErrDuplicate is matched by errors that come from a unique constraint.
	ErrDuplicate = errors.New("duplicate key")
	// ErrForeignKey is matched by errors that reference a missing row.
	ErrForeignKey = errors.New("foreign key violation")
)

// Error wraps every failure returned by a Store.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap returns nil when err is nil.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}

// Store runs one statement per call. Lookups report a missing row through the
// bool result; the error is reserved for storage failures.
type Store interface {
	AccountByUsername(ctx context.Context, username string) (model.Account, bool, error)
	AccountByID(ctx context.Context, id int32) (model.Account, bool, error)
	CreateAccount(ctx context.Context, acct model.Account) (model.Account, error)

	CreateMessage(ctx context.Context, msg model.Message) (model.Message, error)
	Message(ctx context.Context, id int32) (model.Message, bool, error)
	MessagesByPoster(ctx context.Context, postedBy int32) ([]model.Message, error)
	Messages(ctx context.Context) ([]model.Message, error)
	UpdateMessageText(ctx context.Context, id int32, text string) error
	DeleteMessage(ctx context.Context, id int32) error

	Ping(ctx context.Context) error
}
