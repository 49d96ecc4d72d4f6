// Package postgres implements storage.Store on a pgx connection pool.
package postgres

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/lo"

	"github.com/johndosdos/chirp/internal/database"
	"github.com/johndosdos/chirp/internal/model"
	"github.com/johndosdos/chirp/internal/storage"
)

// SQLSTATE codes mapped onto storage sentinels.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// Store borrows a pool connection per statement; pgxpool releases it on
// every return path.
type Store struct {
	pool *pgxpool.Pool
	q    *database.Queries
}

var _ storage.Store = (*Store)(nil)

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool, q: database.New(pool)}
}

func (s *Store) AccountByUsername(ctx context.Context, username string) (model.Account, bool, error) {
	row, err := s.q.GetAccountByUsername(ctx, username)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Account{}, false, nil
	}
	if err != nil {
		return model.Account{}, false, wrap(ctx, "AccountByUsername", err)
	}
	return toAccount(row), true, nil
}

func (s *Store) AccountByID(ctx context.Context, id int32) (model.Account, bool, error) {
	row, err := s.q.GetAccountByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Account{}, false, nil
	}
	if err != nil {
		return model.Account{}, false, wrap(ctx, "AccountByID", err)
	}
	return toAccount(row), true, nil
}

func (s *Store) CreateAccount(ctx context.Context, acct model.Account) (model.Account, error) {
	row, err := s.q.CreateAccount(ctx, database.CreateAccountParams{
		Username: acct.Username,
		Password: acct.Password,
	})
	if err != nil {
		return model.Account{}, wrap(ctx, "CreateAccount", err)
	}

	slog.InfoContext(ctx, "account created", slog.Int("account_id", int(row.AccountID)))
	return toAccount(row), nil
}

func (s *Store) CreateMessage(ctx context.Context, msg model.Message) (model.Message, error) {
	row, err := s.q.CreateMessage(ctx, database.CreateMessageParams{
		PostedBy:        msg.PostedBy,
		MessageText:     msg.Text,
		TimePostedEpoch: msg.PostedAt,
	})
	if err != nil {
		return model.Message{}, wrap(ctx, "CreateMessage", err)
	}

	slog.InfoContext(ctx, "message created", slog.Int("message_id", int(row.MessageID)))
	return toMessage(row), nil
}

func (s *Store) Message(ctx context.Context, id int32) (model.Message, bool, error) {
	row, err := s.q.GetMessage(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Message{}, false, nil
	}
	if err != nil {
		return model.Message{}, false, wrap(ctx, "Message", err)
	}
	return toMessage(row), true, nil
}

func (s *Store) MessagesByPoster(ctx context.Context, postedBy int32) ([]model.Message, error) {
	rows, err := s.q.ListMessagesByPoster(ctx, postedBy)
	if err != nil {
		return nil, wrap(ctx, "MessagesByPoster", err)
	}
	return toMessages(rows), nil
}

func (s *Store) Messages(ctx context.Context) ([]model.Message, error) {
	rows, err := s.q.ListMessages(ctx)
	if err != nil {
		return nil, wrap(ctx, "Messages", err)
	}
	return toMessages(rows), nil
}

func (s *Store) UpdateMessageText(ctx context.Context, id int32, text string) error {
	_, err := s.q.UpdateMessageText(ctx, database.UpdateMessageTextParams{
		MessageID:   id,
		MessageText: text,
	})
	return wrap(ctx, "UpdateMessageText", err)
}

// DeleteMessage succeeds when no row matches.
func (s *Store) DeleteMessage(ctx context.Context, id int32) error {
	_, err := s.q.DeleteMessage(ctx, id)
	return wrap(ctx, "DeleteMessage", err)
}

func (s *Store) Ping(ctx context.Context) error {
	return wrap(ctx, "Ping", s.pool.Ping(ctx))
}

// wrap tags constraint violations with the storage sentinels before
// wrapping them in a *storage.Error.
func wrap(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			err = errors.Join(storage.ErrDuplicate, err)
		case codeForeignKeyViolation:
			err = errors.Join(storage.ErrForeignKey, err)
		}
	}

	slog.ErrorContext(ctx, "storage operation failed",
		slog.String("op", op),
		slog.Any("error", err))

	return storage.Wrap(op, err)
}

func toAccount(row database.Account) model.Account {
	return model.Account{
		ID:       row.AccountID,
		Username: row.Username,
		Password: row.Password,
	}
}

func toMessage(row database.Message) model.Message {
	return model.Message{
		ID:       row.MessageID,
		PostedBy: row.PostedBy,
		Text:     row.MessageText,
		PostedAt: row.TimePostedEpoch,
	}
}

func toMessages(rows []database.Message) []model.Message {
	return lo.Map(rows, func(row database.Message, _ int) model.Message {
		return toMessage(row)
	})
}
