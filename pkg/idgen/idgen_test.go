package idgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	gen := New()
	assert.NotNil(t, gen)
	assert.NotNil(t, gen.sf)
}

func TestGenerateLeadID(t *testing.T) {
	t.Parallel()

	gen := New()

	testcases := []struct {
		name    string
		wantErr bool
		check   func(t *testing.T, id string)
	}{
		{
			name:    "generate lead ID",
			wantErr: false,
			check: func(t *testing.T, id string) {
				assert.NotEmpty(t, id)
				assert.True(t, strings.HasPrefix(id, "lead-"))
			},
		},
		{
			name:    "generate multiple IDs are unique",
			wantErr: false,
			check: func(t *testing.T, id string) {
				// 生成多个 ID，确保它们是唯一的
				ids := make(map[string]bool)
				for i := 0; i < 100; i++ {
					newID, err := gen.GenerateLeadID()
					require.NoError(t, err)
					assert.False(t, ids[newID], "ID should be unique: %s", newID)
					ids[newID] = true
				}
			},
		},
	}

	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			id, err := gen.GenerateLeadID()

			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tc.check != nil {
					tc.check(t, id)
				}
			}
		})
	}
}

func TestGeneratePrefixes(t *testing.T) {
	t.Parallel()

	gen := New()

	testcases := []struct {
		name     string
		generate func() (string, error)
		prefix   string
	}{
		{name: "user", generate: gen.GenerateUserID, prefix: "usr-"},
		{name: "team", generate: gen.GenerateTeamID, prefix: "team-"},
		{name: "campaign", generate: gen.GenerateCampaignID, prefix: "cmp-"},
		{name: "note", generate: gen.GenerateNoteID, prefix: "note-"},
		{name: "ticket", generate: gen.GenerateTicketID, prefix: "tkt-"},
		{name: "audit", generate: gen.GenerateAuditID, prefix: "aud-"},
	}

	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			id, err := tc.generate()
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(id, tc.prefix), "id %s should have prefix %s", id, tc.prefix)
		})
	}
}

func TestUninitializedGenerator(t *testing.T) {
	t.Parallel()

	// 内部 Sonyflake 缺失时返回错误而不是 panic
	gen := &Generator{}

	_, err := gen.GenerateLeadID()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not initialized")

	_, err = gen.GenerateID()
	require.Error(t, err)
}

func TestDefaultGenerator(t *testing.T) {
	t.Parallel()

	gen1 := DefaultGenerator()
	gen2 := DefaultGenerator()
	assert.Same(t, gen1, gen2)

	id, err := GenerateLeadID()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "lead-"))
}
