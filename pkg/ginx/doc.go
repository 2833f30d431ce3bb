// Package ginx 提供 gin handler 的泛型适配器
//
// 业务 handler 以 (ctx, *Request) (*Response, error) 的形式编写，
// 由适配器完成参数绑定、校验、错误渲染和 JSON 响应：
//
//	router.POST("/create-lead", ginx.Adapt5(h.CreateLead))
//
//	func (h *Lead) CreateLead(ctx *gin.Context, req *entity.CreateLeadRequest) (*entity.CreateLeadResponse, error) {
//	    ...
//	}
//
// 如果请求结构体实现了 IsValid() error，绑定成功后会自动调用。
// 返回的 error 如果是 *apierror.Error，会按其错误码和 HTTP 状态码渲染。
package ginx
