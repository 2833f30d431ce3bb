package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("create API with all services", func(t *testing.T) {
		t.Parallel()

		api, err := New(":7878", nil, nil, nil)
		require.NoError(t, err)
		assert.NotNil(t, api)
		assert.NotNil(t, api.engine)
		assert.NotNil(t, api.server)
		assert.NotNil(t, api.backup)
		assert.NotNil(t, api.lead)
		assert.Equal(t, ":7878", api.server.Addr)
	})

	t.Run("API has registered routes", func(t *testing.T) {
		t.Parallel()

		api, err := New(":7878", nil, nil, nil)
		require.NoError(t, err)

		routePaths := make(map[string]bool)
		for _, route := range api.engine.Routes() {
			routePaths[route.Path] = true
		}

		assert.True(t, routePaths["/api/create-backup"], "should have backup routes")
		assert.True(t, routePaths["/api/restore-backup"], "should have restore route")
		assert.True(t, routePaths["/api/list-backups"], "should have list route")
		assert.True(t, routePaths["/api/create-lead"], "should have lead routes")
		assert.True(t, routePaths["/api/top-agent"], "should have stats route")
	})
}

func TestAPI_Name(t *testing.T) {
	t.Parallel()

	api, err := New(":7878", nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "LeadVault API", api.Name())
}
