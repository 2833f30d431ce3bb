package apierror

import "net/http"

// 预定义的服务错误
var (
	// ErrInvalidParameter 请求参数不合法
	ErrInvalidParameter = &Error{
		Code:       "InvalidParameter",
		Message:    "A parameter in the request is invalid or malformed.",
		HTTPStatus: http.StatusBadRequest,
	}

	// ErrResourceNotFound 请求的资源不存在
	ErrResourceNotFound = &Error{
		Code:       "ResourceNotFound",
		Message:    "The requested resource does not exist.",
		HTTPStatus: http.StatusNotFound,
	}

	// ErrLeadNotFound 线索不存在
	ErrLeadNotFound = &Error{
		Code:       "LeadNotFound",
		Message:    "The specified lead does not exist.",
		HTTPStatus: http.StatusNotFound,
	}

	// ErrSnapshotNotFound 快照不存在或不完整
	// 快照目录缺少 manifest 时同样视为不存在
	ErrSnapshotNotFound = &Error{
		Code:       "SnapshotNotFound",
		Message:    "The specified snapshot does not exist or is incomplete.",
		HTTPStatus: http.StatusNotFound,
	}

	// ErrSnapshotCorrupted 快照数据不可用
	ErrSnapshotCorrupted = &Error{
		Code:    "SnapshotCorrupted",
		Message: "The snapshot dump is missing or cannot be read.",
	}

	// ErrBackupDisabled 备份功能已在设置中关闭
	ErrBackupDisabled = &Error{
		Code:       "BackupDisabled",
		Message:    "Backups are disabled in the current settings.",
		HTTPStatus: http.StatusConflict,
	}

	// ErrSafetyBackupFailed 恢复前的安全备份创建失败
	// 没有安全备份时恢复会被整体拒绝
	ErrSafetyBackupFailed = &Error{
		Code:    "SafetyBackupFailed",
		Message: "Failed to create the mandatory safety backup before restore.",
	}

	// ErrRestoreFailed 恢复操作整体失败
	ErrRestoreFailed = &Error{
		Code:    "RestoreFailed",
		Message: "The restore operation failed. Partial results may be available for diagnostics.",
	}

	// ErrInternalError 发生了内部错误
	ErrInternalError = &Error{
		Code:    "InternalError",
		Message: "An internal error has occurred. Retry your request, but if the problem persists, contact the operator with details.",
	}

	// ErrServiceUnavailable 由于服务器临时故障，请求失败
	ErrServiceUnavailable = &Error{
		Code:       "ServiceUnavailable",
		Message:    "The request has failed due to a temporary failure of the server.",
		HTTPStatus: http.StatusServiceUnavailable,
	}
)
