// Package memory is an in-process storage.Store for tests and local runs.
// It enforces the same unique and foreign key rules as the SQL schema.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/samber/lo"

	"github.com/johndosdos/chirp/internal/model"
	"github.com/johndosdos/chirp/internal/storage"
)

type Store struct {
	mu            sync.RWMutex
	nextAccountID int32
	nextMessageID int32
	accounts      map[int32]model.Account
	byUsername    map[string]int32
	messages      map[int32]model.Message
}

var _ storage.Store = (*Store)(nil)

func New() *Store {
	return &Store{
		nextAccountID: 1,
		nextMessageID: 1,
		accounts:      make(map[int32]model.Account),
		byUsername:    make(map[string]int32),
		messages:      make(map[int32]model.Message),
	}
}

func (s *Store) AccountByUsername(_ context.Context, username string) (model.Account, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byUsername[username]
	if !ok {
		return model.Account{}, false, nil
	}
	return s.accounts[id], true, nil
}

func (s *Store) AccountByID(_ context.Context, id int32) (model.Account, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acct, ok := s.accounts[id]
	return acct, ok, nil
}

func (s *Store) CreateAccount(_ context.Context, acct model.Account) (model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byUsername[acct.Username]; exists {
		return model.Account{}, storage.Wrap("CreateAccount", storage.ErrDuplicate)
	}

	acct.ID = s.nextAccountID
	s.nextAccountID++
	s.accounts[acct.ID] = acct
	s.byUsername[acct.Username] = acct.ID
	return acct, nil
}

func (s *Store) CreateMessage(_ context.Context, msg model.Message) (model.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[msg.PostedBy]; !ok {
		return model.Message{}, storage.Wrap("CreateMessage", storage.ErrForeignKey)
	}

	msg.ID = s.nextMessageID
	s.nextMessageID++
	s.messages[msg.ID] = msg
	return msg, nil
}

func (s *Store) Message(_ context.Context, id int32) (model.Message, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	msg, ok := s.messages[id]
	return msg, ok, nil
}

func (s *Store) MessagesByPoster(_ context.Context, postedBy int32) ([]model.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lo.Filter(s.sortedLocked(), func(msg model.Message, _ int) bool {
		return msg.PostedBy == postedBy
	}), nil
}

func (s *Store) Messages(_ context.Context) ([]model.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sortedLocked(), nil
}

func (s *Store) UpdateMessageText(_ context.Context, id int32, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if msg, ok := s.messages[id]; ok {
		msg.Text = text
		s.messages[id] = msg
	}
	return nil
}

func (s *Store) DeleteMessage(_ context.Context, id int32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.messages, id)
	return nil
}

func (s *Store) Ping(context.Context) error {
	return nil
}

// sortedLocked returns messages in id order, which is insertion order.
func (s *Store) sortedLocked() []model.Message {
	ids := slices.Sorted(maps.Keys(s.messages))
	return lo.Map(ids, func(id int32, _ int) model.Message {
		return s.messages[id]
	})
}
