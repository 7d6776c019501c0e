package domain

import (
	"testing"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	bcryptCost = 4

	const strongPassword = "correct-horse-battery-staple-42"

	t.Run("hashes a valid password", func(t *testing.T) {
		u, err := NewUser(UserConfig{ID: uuid.New(), Username: "maze_runner", PlainPassword: strongPassword})
		require.NoError(t, err)
		assert.NotEqual(t, strongPassword, u.PasswordHash)
		assert.True(t, u.VerifyPassword(strongPassword))
		assert.False(t, u.VerifyPassword("wrong"))
	})

	cases := []struct {
		name     string
		username string
		password string
		err      error
	}{
		{"short username", "ab", strongPassword, ErrUsernameTooShort},
		{"long username", "abcdefghijklmnopqrstu", strongPassword, ErrUsernameTooLong},
		{"bad characters", "maze runner", strongPassword, ErrInvalidUsername},
		{"weak password", "maze_runner", "password", ErrWeakPassword},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewUser(UserConfig{ID: uuid.New(), Username: tc.username, PlainPassword: tc.password})
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestMazeRecordBuild(t *testing.T) {
	rec := &MazeRecord{ID: uuid.New(), Width: 15, Height: 11, Seed: 8, Algorithm: maze.Wilson}

	first, err := rec.Build()
	require.NoError(t, err)
	second, err := rec.Build()
	require.NoError(t, err)
	assert.Equal(t, first.Rows(), second.Rows(), "a record always rebuilds the same maze")

	seeded := &MazeRecord{ID: uuid.New(), Width: 5, Height: 5, Seed: 7, Algorithm: maze.DFS}
	m, err := seeded.Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"     ", " ### ", "   # ", " ### ", "     "}, m.Rows())

	rec.Width = 0
	_, err = rec.Build()
	assert.ErrorIs(t, err, maze.ErrInvalidDimensions)

	rec.Width = 5
	rec.Algorithm = "prim"
	_, err = rec.Build()
	assert.ErrorIs(t, err, maze.ErrUnknownAlgorithm)
}
