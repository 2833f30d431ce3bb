package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jimyag/leadvault/internal/leadvault/repository/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	t.Parallel()

	repo := setupTestDB(t)
	userRepo := NewUserRepository(repo.DB())
	ctx := context.Background()

	t.Run("Create and GetByID", func(t *testing.T) {
		user := &model.User{
			ID:        "usr-123",
			Name:      "Alice",
			Email:     "alice@example.com",
			Role:      "agent",
			UpdatedAt: time.Now(),
		}

		err := userRepo.Create(ctx, user)
		assert.NoError(t, err)

		got, err := userRepo.GetByID(ctx, "usr-123")
		assert.NoError(t, err)
		assert.Equal(t, user.Name, got.Name)
		assert.Equal(t, user.Email, got.Email)
		assert.Nil(t, got.ManagerID)
	})

	t.Run("Create rejects duplicate email", func(t *testing.T) {
		first := &model.User{
			ID:        "usr-dup-1",
			Name:      "Bob",
			Email:     "bob@example.com",
			Role:      "agent",
			UpdatedAt: time.Now(),
		}
		require.NoError(t, userRepo.Create(ctx, first))

		clash := &model.User{
			ID:        "usr-dup-2",
			Name:      "Other Bob",
			Email:     "bob@example.com",
			Role:      "manager",
			UpdatedAt: time.Now(),
		}
		err := userRepo.Create(ctx, clash)
		assert.Error(t, err)
	})

	t.Run("Update", func(t *testing.T) {
		managerID := "usr-123"
		user := &model.User{
			ID:        "usr-456",
			Name:      "Carol",
			Email:     "carol@example.com",
			Role:      "agent",
			UpdatedAt: time.Now(),
		}
		require.NoError(t, userRepo.Create(ctx, user))

		user.Role = "manager"
		user.ManagerID = &managerID
		err := userRepo.Update(ctx, user)
		assert.NoError(t, err)

		got, err := userRepo.GetByID(ctx, "usr-456")
		assert.NoError(t, err)
		assert.Equal(t, "manager", got.Role)
		require.NotNil(t, got.ManagerID)
		assert.Equal(t, "usr-123", *got.ManagerID)
	})

	t.Run("List with filters", func(t *testing.T) {
		managerID := "usr-123"
		users := []*model.User{
			{ID: "usr-filter-1", Name: "D", Email: "d@example.com", Role: "agent", ManagerID: &managerID, UpdatedAt: time.Now()},
			{ID: "usr-filter-2", Name: "E", Email: "e@example.com", Role: "agent", UpdatedAt: time.Now()},
			{ID: "usr-filter-3", Name: "F", Email: "f@example.com", Role: "admin", UpdatedAt: time.Now()},
		}
		for _, user := range users {
			require.NoError(t, userRepo.Create(ctx, user))
		}

		admins, err := userRepo.List(ctx, map[string]interface{}{"role": "admin"})
		assert.NoError(t, err)
		require.Len(t, admins, 1)
		assert.Equal(t, "usr-filter-3", admins[0].ID)

		reports, err := userRepo.List(ctx, map[string]interface{}{"manager_id": "usr-123"})
		assert.NoError(t, err)
		for _, user := range reports {
			require.NotNil(t, user.ManagerID)
			assert.Equal(t, "usr-123", *user.ManagerID)
		}
	})
}
