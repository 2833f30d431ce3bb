package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jimyag/leadvault/internal/leadvault/entity"
	"github.com/jimyag/leadvault/pkg/apierror"
)

// MockLeadService 是 LeadService 的 mock 实现
type MockLeadService struct {
	mock.Mock
}

func (m *MockLeadService) CreateLead(ctx context.Context, req *entity.CreateLeadRequest) (*entity.Lead, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadService) GetLead(ctx context.Context, leadID string) (*entity.Lead, error) {
	args := m.Called(ctx, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadService) ListLeads(ctx context.Context, req *entity.ListLeadsRequest) ([]entity.Lead, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadService) UpdateLeadStatus(ctx context.Context, leadID, status string) (*entity.Lead, error) {
	args := m.Called(ctx, leadID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

// MockStatsService 是 StatsService 的 mock 实现
type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) TopAgentOfDay(ctx context.Context, day time.Time) (*entity.AgentStats, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AgentStats), args.Error(1)
}

func TestLead_CreateLead(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name         string
		req          *entity.CreateLeadRequest
		mockSetup    func(*MockLeadService)
		expectStatus int
	}{
		{
			name: "successful create",
			req:  &entity.CreateLeadRequest{Name: "Acme Corp"},
			mockSetup: func(m *MockLeadService) {
				m.On("CreateLead", mock.Anything, mock.AnythingOfType("*entity.CreateLeadRequest")).
					Return(&entity.Lead{ID: "lead-1", Name: "Acme Corp", Status: "New"}, nil)
			},
			expectStatus: http.StatusOK,
		},
		{
			name:         "missing name",
			req:          &entity.CreateLeadRequest{},
			expectStatus: http.StatusBadRequest,
		},
		{
			name: "create with error",
			req:  &entity.CreateLeadRequest{Name: "Acme Corp"},
			mockSetup: func(m *MockLeadService) {
				m.On("CreateLead", mock.Anything, mock.AnythingOfType("*entity.CreateLeadRequest")).
					Return(nil, assert.AnError)
			},
			expectStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockService := new(MockLeadService)
			if tc.mockSetup != nil {
				tc.mockSetup(mockService)
			}

			leadAPI := &Lead{
				leadService: mockService,
			}

			router := setupTestRouter()
			apiGroup := router.Group("/api")
			leadAPI.RegisterRoutes(apiGroup)

			reqBody, _ := json.Marshal(tc.req)
			req := httptest.NewRequest(http.MethodPost, "/api/create-lead", bytes.NewBuffer(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tc.expectStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestLead_GetLead(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		mockService := new(MockLeadService)
		mockService.On("GetLead", mock.Anything, "lead-1").
			Return(&entity.Lead{ID: "lead-1", Name: "Acme Corp", Status: "Won"}, nil)

		leadAPI := &Lead{leadService: mockService}
		router := setupTestRouter()
		leadAPI.RegisterRoutes(router.Group("/api"))

		reqBody, _ := json.Marshal(&entity.GetLeadRequest{LeadID: "lead-1"})
		req := httptest.NewRequest(http.MethodPost, "/api/get-lead", bytes.NewBuffer(reqBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp entity.GetLeadResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Won", resp.Lead.Status)
		mockService.AssertExpectations(t)
	})

	t.Run("not found uses error status", func(t *testing.T) {
		t.Parallel()

		mockService := new(MockLeadService)
		mockService.On("GetLead", mock.Anything, "lead-404").
			Return(nil, apierror.ErrLeadNotFound)

		leadAPI := &Lead{leadService: mockService}
		router := setupTestRouter()
		leadAPI.RegisterRoutes(router.Group("/api"))

		reqBody, _ := json.Marshal(&entity.GetLeadRequest{LeadID: "lead-404"})
		req := httptest.NewRequest(http.MethodPost, "/api/get-lead", bytes.NewBuffer(reqBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockService.AssertExpectations(t)
	})
}

func TestLead_TopAgent(t *testing.T) {
	t.Parallel()

	mockStats := new(MockStatsService)
	mockStats.On("TopAgentOfDay", mock.Anything, mock.AnythingOfType("time.Time")).
		Return(&entity.AgentStats{OwnerID: "usr-1", WonLeads: 3, Day: "2024-06-01"}, nil)

	leadAPI := &Lead{statsService: mockStats}
	router := setupTestRouter()
	leadAPI.RegisterRoutes(router.Group("/api"))

	req := httptest.NewRequest(http.MethodPost, "/api/top-agent", bytes.NewBufferString("{}"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp entity.AgentStats
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "usr-1", resp.OwnerID)
	assert.EqualValues(t, 3, resp.WonLeads)
	mockStats.AssertExpectations(t)
}
