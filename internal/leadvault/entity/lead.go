package entity

// Lead 线索信息
type Lead struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Status     string `json:"status"`
	StageID    string `json:"stage_id,omitempty"`
	CampaignID string `json:"campaign_id,omitempty"`
	OwnerID    string `json:"owner_id,omitempty"`
	UpdatedAt  string `json:"updated_at,omitempty"`
}

// CreateLeadRequest 创建线索请求
type CreateLeadRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	StageID    string `json:"stage_id,omitempty"`
	CampaignID string `json:"campaign_id,omitempty"`
	OwnerID    string `json:"owner_id,omitempty"`
}

// CreateLeadResponse 创建线索响应
type CreateLeadResponse struct {
	Lead *Lead `json:"lead"`
}

// GetLeadRequest 获取线索请求
type GetLeadRequest struct {
	LeadID string `json:"lead_id" binding:"required"`
}

// GetLeadResponse 获取线索响应
type GetLeadResponse struct {
	Lead *Lead `json:"lead"`
}

// ListLeadsRequest 列举线索请求
type ListLeadsRequest struct {
	Status     string `json:"status,omitempty"`
	CampaignID string `json:"campaign_id,omitempty"`
	OwnerID    string `json:"owner_id,omitempty"`
}

// ListLeadsResponse 列举线索响应
type ListLeadsResponse struct {
	Leads []Lead `json:"leads"`
}

// UpdateLeadStatusRequest 更新线索状态请求
type UpdateLeadStatusRequest struct {
	LeadID string `json:"lead_id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

// AgentStats 单个销售的业绩统计
type AgentStats struct {
	OwnerID  string `json:"owner_id"`
	WonLeads int64  `json:"won_leads"`
	Day      string `json:"day"` // YYYY-MM-DD
}
