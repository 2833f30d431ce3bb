package apierror_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jimyag/leadvault/pkg/apierror"
	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		testFunc func(*testing.T)
	}{
		{
			name: "Error_Error",
			testFunc: func(t *testing.T) {
				t.Parallel()
				err := apierror.NewError("TestError", "test message")
				expected := "[TestError] test message"
				assert.Equal(t, expected, err.Error())
			},
		},
		{
			name: "Error_Error_WithRawError",
			testFunc: func(t *testing.T) {
				t.Parallel()
				rawErr := fmt.Errorf("raw error")
				err := apierror.NewErrorWithRaw("TestError", "test message", rawErr)
				expected := "[TestError] test message (RawError: raw error)"
				assert.Equal(t, expected, err.Error())
			},
		},
		{
			name: "Error_Is_SameCode",
			testFunc: func(t *testing.T) {
				t.Parallel()
				err1 := apierror.NewError("TestError", "message 1")
				err2 := apierror.NewError("TestError", "message 2")
				assert.True(t, errors.Is(err1, err2))
			},
		},
		{
			name: "Error_Is_DifferentCode",
			testFunc: func(t *testing.T) {
				t.Parallel()
				err1 := apierror.NewError("TestError", "message")
				err2 := apierror.NewError("DifferentError", "message")
				assert.False(t, errors.Is(err1, err2))
			},
		},
		{
			name: "Error_Is_WithPredefinedError",
			testFunc: func(t *testing.T) {
				t.Parallel()
				err := apierror.NewError("InternalError", "different message")
				assert.True(t, errors.Is(err, apierror.ErrInternalError))
			},
		},
		{
			name: "Error_Unwrap_NoRawError",
			testFunc: func(t *testing.T) {
				t.Parallel()
				err := apierror.NewError("TestError", "test message")
				assert.Nil(t, errors.Unwrap(err))
			},
		},
		{
			name: "Error_Unwrap_WithRawError",
			testFunc: func(t *testing.T) {
				t.Parallel()
				rawErr := fmt.Errorf("raw error")
				err := apierror.NewErrorWithRaw("TestError", "test message", rawErr)
				assert.Equal(t, rawErr, errors.Unwrap(err))
			},
		},
		{
			name: "Error_As",
			testFunc: func(t *testing.T) {
				t.Parallel()
				err := apierror.NewError("TestError", "test message")
				var apiErr *apierror.Error
				assert.True(t, errors.As(err, &apiErr))
				assert.Equal(t, "TestError", apiErr.Code)
			},
		},
		{
			name: "WrapError_KeepsCodeAndStatus",
			testFunc: func(t *testing.T) {
				t.Parallel()
				rawErr := fmt.Errorf("disk full")
				err := apierror.WrapError(apierror.ErrSafetyBackupFailed, "create safety backup", rawErr)
				assert.True(t, errors.Is(err, apierror.ErrSafetyBackupFailed))
				assert.Equal(t, rawErr, errors.Unwrap(err))
				assert.Equal(t, "create safety backup", err.Message)
			},
		},
		{
			name: "PredefinedErrors_HTTPStatus",
			testFunc: func(t *testing.T) {
				t.Parallel()
				assert.Equal(t, http.StatusNotFound, apierror.ErrSnapshotNotFound.HTTPStatus)
				assert.Equal(t, http.StatusBadRequest, apierror.ErrInvalidParameter.HTTPStatus)
				assert.Equal(t, http.StatusConflict, apierror.ErrBackupDisabled.HTTPStatus)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, tt.testFunc)
	}
}

func TestErrorResponse(t *testing.T) {
	t.Parallel()

	t.Run("JSON_Serialization", func(t *testing.T) {
		t.Parallel()

		resp := apierror.NewErrorResponse("req-123", apierror.ErrLeadNotFound)
		data, err := json.Marshal(resp)
		assert.NoError(t, err)
		assert.Contains(t, string(data), `"code":"LeadNotFound"`)
		assert.Contains(t, string(data), `"requestID":"req-123"`)
		// RawError 和 HTTPStatus 不应该出现在序列化结果中
		assert.NotContains(t, string(data), "RawError")
		assert.NotContains(t, string(data), "HTTPStatus")
	})

	t.Run("AddError", func(t *testing.T) {
		t.Parallel()

		resp := apierror.NewErrorResponse("req-456", apierror.ErrInvalidParameter)
		resp.AddError(apierror.ErrInternalError)
		assert.Len(t, resp.Errors, 2)
	})

	t.Run("Error_String", func(t *testing.T) {
		t.Parallel()

		resp := apierror.NewErrorResponse("req-789", apierror.ErrBackupDisabled)
		assert.Contains(t, resp.Error(), "RequestID: req-789")
		assert.Contains(t, resp.Error(), "[BackupDisabled]")
	})
}
