// Package storagetest runs the same behavioural checks against every
// storage.Storage backend.
package storagetest

import (
	"sync"
	"testing"

	"github.com/aanand-mishra/users-api/internal/storage"
	"github.com/aanand-mishra/users-api/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory returns a fresh, empty backend.
type Factory func(t *testing.T) storage.Storage

func input(name, email string, age int) types.UserInput {
	return types.UserInput{Name: name, Email: email, Age: types.NumericAge(age)}
}

// Run exercises the Storage contract against backends produced by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Run("create assigns id and round trips", func(t *testing.T) {
		s := newStore(t)

		created, err := s.CreateUser(input("A", "a@b.co", 30))
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "A", created.Name)
		assert.Equal(t, "a@b.co", created.Email)
		assert.Equal(t, types.NumericAge(30), created.Age)

		got, err := s.GetUserByID(created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, got)
	})

	t.Run("identical creates get distinct ids", func(t *testing.T) {
		s := newStore(t)

		first, err := s.CreateUser(input("A", "a@b.co", 30))
		require.NoError(t, err)
		second, err := s.CreateUser(input("A", "a@b.co", 30))
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("text age survives storage", func(t *testing.T) {
		s := newStore(t)

		created, err := s.CreateUser(types.UserInput{Name: "A", Email: "a@b.co", Age: types.TextAge("30")})
		require.NoError(t, err)

		got, err := s.GetUserByID(created.ID)
		require.NoError(t, err)
		assert.True(t, got.Age.IsText())
		assert.Equal(t, types.TextAge("30"), got.Age)
	})

	t.Run("get unknown id", func(t *testing.T) {
		s := newStore(t)

		_, err := s.GetUserByID("missing")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("list is empty not nil", func(t *testing.T) {
		s := newStore(t)

		users, err := s.GetUsers()
		require.NoError(t, err)
		assert.NotNil(t, users)
		assert.Empty(t, users)
	})

	t.Run("update replaces fields and keeps position", func(t *testing.T) {
		s := newStore(t)

		first, err := s.CreateUser(input("A", "a@b.co", 30))
		require.NoError(t, err)
		second, err := s.CreateUser(input("B", "b@b.co", 40))
		require.NoError(t, err)

		updated, err := s.UpdateUserByID(first.ID, input("A2", "a2@b.co", 31))
		require.NoError(t, err)
		assert.Equal(t, types.User{ID: first.ID, Name: "A2", Email: "a2@b.co", Age: types.NumericAge(31)}, updated)

		got, err := s.GetUserByID(first.ID)
		require.NoError(t, err)
		assert.Equal(t, updated, got)

		users, err := s.GetUsers()
		require.NoError(t, err)
		assert.Equal(t, []types.User{updated, second}, users)
	})

	t.Run("update unknown id", func(t *testing.T) {
		s := newStore(t)

		_, err := s.UpdateUserByID("missing", input("A", "a@b.co", 30))
		assert.ErrorIs(t, err, storage.ErrNotFound)

		users, err := s.GetUsers()
		require.NoError(t, err)
		assert.Empty(t, users)
	})

	t.Run("delete removes user", func(t *testing.T) {
		s := newStore(t)

		created, err := s.CreateUser(input("A", "a@b.co", 30))
		require.NoError(t, err)

		require.NoError(t, s.DeleteUserByID(created.ID))

		_, err = s.GetUserByID(created.ID)
		assert.ErrorIs(t, err, storage.ErrNotFound)

		assert.ErrorIs(t, s.DeleteUserByID(created.ID), storage.ErrNotFound)
	})

	t.Run("list after creates and deletes", func(t *testing.T) {
		s := newStore(t)

		var kept []types.User
		for i := 0; i < 5; i++ {
			u, err := s.CreateUser(input("user", "u@b.co", i+1))
			require.NoError(t, err)
			if i%2 == 0 {
				require.NoError(t, s.DeleteUserByID(u.ID))
				continue
			}
			kept = append(kept, u)
		}

		users, err := s.GetUsers()
		require.NoError(t, err)
		assert.Equal(t, kept, users)
	})

	t.Run("concurrent creates", func(t *testing.T) {
		s := newStore(t)

		const n = 50
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := s.CreateUser(input("A", "a@b.co", 30))
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		users, err := s.GetUsers()
		require.NoError(t, err)
		assert.Len(t, users, n)
	})
}
