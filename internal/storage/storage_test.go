package storage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, Wrap("CreateAccount", nil))
	})

	t.Run("keeps cause", func(t *testing.T) {
		err := Wrap("CreateAccount", errors.Join(ErrDuplicate, errors.New("pg: 23505")))

		var serr *Error
		assert.True(t, errors.As(err, &serr))
		assert.Equal(t, "CreateAccount", serr.Op)
		assert.ErrorIs(t, err, ErrDuplicate)
		assert.NotErrorIs(t, err, ErrForeignKey)
		assert.Contains(t, err.Error(), "storage: CreateAccount:")
	})
}
