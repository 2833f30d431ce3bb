package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jimyag/leadvault/internal/leadvault/entity"
	"github.com/jimyag/leadvault/internal/leadvault/repository"
	"github.com/jimyag/leadvault/pkg/apierror"
)

func setupTestRepo(t *testing.T) *repository.Repository {
	t.Helper()
	repo, err := repository.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = repo.Close()
	})
	return repo
}

func TestLeadServiceCreateAndGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := NewLeadService(setupTestRepo(t))

	created, err := svc.CreateLead(ctx, &entity.CreateLeadRequest{
		Name:    "Acme Corp",
		Email:   "contact@acme.example.com",
		OwnerID: "usr-1",
	})
	require.NoError(t, err)
	assert.Contains(t, created.ID, "lead-")
	assert.Equal(t, "New", created.Status)
	assert.NotEmpty(t, created.UpdatedAt)

	got, err := svc.GetLead(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", got.Name)
	assert.Equal(t, "usr-1", got.OwnerID)
}

func TestLeadServiceGetNotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := NewLeadService(setupTestRepo(t))

	_, err := svc.GetLead(ctx, "lead-does-not-exist")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apierror.ErrLeadNotFound))
}

func TestLeadServiceUpdateStatus(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := NewLeadService(setupTestRepo(t))

	created, err := svc.CreateLead(ctx, &entity.CreateLeadRequest{Name: "Globex"})
	require.NoError(t, err)

	updated, err := svc.UpdateLeadStatus(ctx, created.ID, "Qualified")
	require.NoError(t, err)
	assert.Equal(t, "Qualified", updated.Status)

	_, err = svc.UpdateLeadStatus(ctx, "lead-does-not-exist", "Won")
	assert.True(t, errors.Is(err, apierror.ErrLeadNotFound))
}

func TestLeadServiceList(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := NewLeadService(setupTestRepo(t))

	first, err := svc.CreateLead(ctx, &entity.CreateLeadRequest{Name: "A", CampaignID: "cmp-1"})
	require.NoError(t, err)
	_, err = svc.CreateLead(ctx, &entity.CreateLeadRequest{Name: "B", CampaignID: "cmp-2"})
	require.NoError(t, err)

	_, err = svc.UpdateLeadStatus(ctx, first.ID, "Won")
	require.NoError(t, err)

	all, err := svc.ListLeads(ctx, &entity.ListLeadsRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	won, err := svc.ListLeads(ctx, &entity.ListLeadsRequest{Status: "Won"})
	require.NoError(t, err)
	require.Len(t, won, 1)
	assert.Equal(t, first.ID, won[0].ID)

	byCampaign, err := svc.ListLeads(ctx, &entity.ListLeadsRequest{CampaignID: "cmp-2"})
	require.NoError(t, err)
	require.Len(t, byCampaign, 1)
	assert.Equal(t, "B", byCampaign[0].Name)
}
