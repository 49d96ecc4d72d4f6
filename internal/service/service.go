// Package service validates account and message requests and sequences the
// storage calls for each operation.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/johndosdos/chirp/internal/auth"
	"github.com/johndosdos/chirp/internal/model"
	"github.com/johndosdos/chirp/internal/storage"
)

type Service struct {
	store    storage.Store
	hasher   auth.PasswordHasher
	validate *validator.Validate
}

func New(store storage.Store, hasher auth.PasswordHasher) *Service {
	if hasher == nil {
		hasher = auth.Plain{}
	}
	return &Service{
		store:    store,
		hasher:   hasher,
		validate: newValidator(),
	}
}

// RegisterAccount stores a new account and returns it with its id. The
// username lookup rejects the common duplicate case; the unique constraint
// decides concurrent registrations.
func (s *Service) RegisterAccount(ctx context.Context, acct model.Account) (model.Account, error) {
	slog.InfoContext(ctx, "registering account", slog.String("username", acct.Username))

	err := s.validate.Struct(registerRules{Username: acct.Username, Password: acct.Password})
	if err != nil {
		return model.Account{}, s.rejectRegistration(ctx, reason(err))
	}

	_, exists, err := s.store.AccountByUsername(ctx, acct.Username)
	if err != nil {
		return model.Account{}, fmt.Errorf("service: register: %w", err)
	}
	if exists {
		return model.Account{}, s.rejectRegistration(ctx, "account with given username already exists")
	}

	stored, err := s.hasher.Hash(acct.Password)
	if err != nil {
		return model.Account{}, fmt.Errorf("service: register: %w", err)
	}

	created, err := s.store.CreateAccount(ctx, model.Account{Username: acct.Username, Password: stored})
	if errors.Is(err, storage.ErrDuplicate) {
		return model.Account{}, s.rejectRegistration(ctx, "account with given username already exists")
	}
	if err != nil {
		return model.Account{}, fmt.Errorf("service: register: %w", err)
	}

	return created, nil
}

// Login returns the stored account when the credentials match. A blank or
// unknown username and a wrong password all report found == false.
func (s *Service) Login(ctx context.Context, acct model.Account) (model.Account, bool, error) {
	slog.InfoContext(ctx, "login attempt", slog.String("username", acct.Username))

	if s.validate.Var(acct.Username, "notblank") != nil {
		slog.WarnContext(ctx, "login rejected: username is blank")
		return model.Account{}, false, nil
	}

	actual, found, err := s.store.AccountByUsername(ctx, acct.Username)
	if err != nil {
		return model.Account{}, false, fmt.Errorf("service: login: %w", err)
	}
	if !found {
		slog.InfoContext(ctx, "login rejected: unknown username")
		return model.Account{}, false, nil
	}

	ok, err := s.hasher.Compare(acct.Password, actual.Password)
	if err != nil {
		return model.Account{}, false, fmt.Errorf("service: login: %w", err)
	}
	if !ok {
		slog.InfoContext(ctx, "login rejected: passwords do not match")
		return model.Account{}, false, nil
	}

	return actual, true, nil
}

func (s *Service) CreateMessage(ctx context.Context, msg model.Message) (model.Message, error) {
	slog.InfoContext(ctx, "creating message", slog.Int("posted_by", int(msg.PostedBy)))

	if err := s.validateText(ctx, msg.Text); err != nil {
		return model.Message{}, err
	}

	_, found, err := s.store.AccountByID(ctx, msg.PostedBy)
	if err != nil {
		return model.Message{}, fmt.Errorf("service: create message: %w", err)
	}
	if !found {
		return model.Message{}, s.rejectMessage(ctx, "invalid posted_by account id")
	}

	created, err := s.store.CreateMessage(ctx, model.Message{
		PostedBy: msg.PostedBy,
		Text:     msg.Text,
		PostedAt: msg.PostedAt,
	})
	if errors.Is(err, storage.ErrForeignKey) {
		return model.Message{}, s.rejectMessage(ctx, "invalid posted_by account id")
	}
	if err != nil {
		return model.Message{}, fmt.Errorf("service: create message: %w", err)
	}

	return created, nil
}

func (s *Service) GetMessage(ctx context.Context, id int32) (model.Message, bool, error) {
	slog.InfoContext(ctx, "fetching message", slog.Int("message_id", int(id)))

	msg, found, err := s.store.Message(ctx, id)
	if err != nil {
		return model.Message{}, false, fmt.Errorf("service: get message: %w", err)
	}
	return msg, found, nil
}

func (s *Service) GetAllMessages(ctx context.Context) ([]model.Message, error) {
	slog.InfoContext(ctx, "fetching all messages")

	msgs, err := s.store.Messages(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: list messages: %w", err)
	}
	return nonNil(msgs), nil
}

// GetMessagesByAccount returns an empty list for unknown accounts.
func (s *Service) GetMessagesByAccount(ctx context.Context, accountID int32) ([]model.Message, error) {
	slog.InfoContext(ctx, "fetching messages by poster", slog.Int("posted_by", int(accountID)))

	msgs, err := s.store.MessagesByPoster(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("service: list messages by poster: %w", err)
	}
	return nonNil(msgs), nil
}

// UpdateMessage replaces the text of message msg.ID. PostedBy and PostedAt
// of msg are ignored.
func (s *Service) UpdateMessage(ctx context.Context, msg model.Message) (model.Message, error) {
	slog.InfoContext(ctx, "updating message", slog.Int("message_id", int(msg.ID)))

	if err := s.validateText(ctx, msg.Text); err != nil {
		return model.Message{}, err
	}

	_, found, err := s.store.Message(ctx, msg.ID)
	if err != nil {
		return model.Message{}, fmt.Errorf("service: update message: %w", err)
	}
	if !found {
		return model.Message{}, s.rejectMessage(ctx, "message with specified id not found")
	}

	if err := s.store.UpdateMessageText(ctx, msg.ID, msg.Text); err != nil {
		return model.Message{}, fmt.Errorf("service: update message: %w", err)
	}

	updated, found, err := s.store.Message(ctx, msg.ID)
	if err != nil {
		return model.Message{}, fmt.Errorf("service: update message: %w", err)
	}
	if !found {
		return model.Message{}, s.rejectMessage(ctx, "message with specified id not found")
	}

	return updated, nil
}

// DeleteMessage removes the message and returns what was stored before the
// delete. Deleting a missing id is not an error.
func (s *Service) DeleteMessage(ctx context.Context, id int32) (model.Message, bool, error) {
	msg, found, err := s.store.Message(ctx, id)
	if err != nil {
		return model.Message{}, false, fmt.Errorf("service: delete message: %w", err)
	}

	slog.InfoContext(ctx, "deleting message", slog.Int("message_id", int(id)))
	if err := s.store.DeleteMessage(ctx, id); err != nil {
		return model.Message{}, false, fmt.Errorf("service: delete message: %w", err)
	}

	return msg, found, nil
}

// Ping reports whether the store is reachable.
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

func (s *Service) validateText(ctx context.Context, text string) error {
	if err := s.validate.Struct(messageRules{Text: text}); err != nil {
		return s.rejectMessage(ctx, reason(err))
	}
	return nil
}

func (s *Service) rejectRegistration(ctx context.Context, why string) error {
	slog.WarnContext(ctx, "registration rejected", slog.String("reason", why))
	return &RegistrationError{Reason: why}
}

func (s *Service) rejectMessage(ctx context.Context, why string) error {
	slog.WarnContext(ctx, "message rejected", slog.String("reason", why))
	return &MessageValidationError{Reason: why}
}

func nonNil(msgs []model.Message) []model.Message {
	if msgs == nil {
		return []model.Message{}
	}
	return msgs
}
