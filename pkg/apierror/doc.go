// Package apierror 提供带错误码的错误类型，用于所有服务的统一错误处理
//
// 错误响应格式为 JSON：
//
//	{
//	    "errors": [
//	        {
//	            "code": "LeadNotFound",
//	            "message": "The specified lead does not exist."
//	        }
//	    ],
//	    "requestID": "ea966190-f9aa-478e-9ede-example"
//	}
//
// 使用示例：
//
//	// 创建错误
//	err := apierror.NewError("LeadNotFound", "The lead 'lead-1a2b3c4d' does not exist")
//
//	// 创建错误响应
//	errorResp := apierror.NewErrorResponse("request-id", err)
//
//	// 在 gin 中使用
//	c.JSON(http.StatusNotFound, errorResp)
//
// 预定义错误变量（可在代码中直接使用）见 codes.go。
// 通过 errors.Is 按错误码判断错误类型，通过 WrapError 在保留错误码的
// 同时附加原始错误用于服务端排查。
package apierror
