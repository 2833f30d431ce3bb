package idgen

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/sony/sonyflake"
)

// Generator 递增 ID 生成器
// 使用 Sonyflake 算法生成全局唯一且递增的 ID
type Generator struct {
	sf *sonyflake.Sonyflake
}

var (
	defaultGenerator     *Generator
	defaultGeneratorOnce sync.Once
)

// initDefaultGenerator 初始化默认生成器
func initDefaultGenerator() {
	defaultGenerator = New()
}

// DefaultGenerator 返回默认的 ID 生成器
func DefaultGenerator() *Generator {
	defaultGeneratorOnce.Do(initDefaultGenerator)
	return defaultGenerator
}

// New 创建新的 ID 生成器
func New() *Generator {
	// 使用默认设置创建 Sonyflake
	// 如果需要自定义机器 ID，可以通过 Settings 配置
	sf := sonyflake.NewSonyflake(sonyflake.Settings{
		StartTime: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), // 起始时间
	})
	if sf == nil {
		// 没有私有网卡地址时默认的机器 ID 推导会失败，
		// 退回用进程 ID 作为机器 ID
		sf = sonyflake.NewSonyflake(sonyflake.Settings{
			StartTime: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			MachineID: func() (uint16, error) {
				return uint16(os.Getpid()), nil
			},
		})
	}

	return &Generator{
		sf: sf,
	}
}

// generateIDWithPrefix 生成带前缀的 ID
func (g *Generator) generateIDWithPrefix(prefix, errorMsg string) (string, error) {
	if g.sf == nil {
		return "", fmt.Errorf("%s: id generator not initialized", errorMsg)
	}
	id, err := g.sf.NextID()
	if err != nil {
		return "", fmt.Errorf("%s: %w", errorMsg, err)
	}
	return fmt.Sprintf("%s-%d", prefix, id), nil
}

// GenerateUserID 生成用户 ID（格式：usr-{递增 ID}）
func (g *Generator) GenerateUserID() (string, error) {
	return g.generateIDWithPrefix("usr", "generate user ID")
}

// GenerateTeamID 生成团队 ID（格式：team-{递增 ID}）
func (g *Generator) GenerateTeamID() (string, error) {
	return g.generateIDWithPrefix("team", "generate team ID")
}

// GenerateCampaignID 生成营销活动 ID（格式：cmp-{递增 ID}）
func (g *Generator) GenerateCampaignID() (string, error) {
	return g.generateIDWithPrefix("cmp", "generate campaign ID")
}

// GenerateLeadID 生成线索 ID（格式：lead-{递增 ID}）
func (g *Generator) GenerateLeadID() (string, error) {
	return g.generateIDWithPrefix("lead", "generate lead ID")
}

// GenerateNoteID 生成线索备注 ID（格式：note-{递增 ID}）
func (g *Generator) GenerateNoteID() (string, error) {
	return g.generateIDWithPrefix("note", "generate note ID")
}

// GenerateTicketID 生成工单 ID（格式：tkt-{递增 ID}）
func (g *Generator) GenerateTicketID() (string, error) {
	return g.generateIDWithPrefix("tkt", "generate ticket ID")
}

// GenerateAuditID 生成审计日志 ID（格式：aud-{递增 ID}）
func (g *Generator) GenerateAuditID() (string, error) {
	return g.generateIDWithPrefix("aud", "generate audit ID")
}

// GenerateID 生成通用递增 ID
func (g *Generator) GenerateID() (uint64, error) {
	if g.sf == nil {
		return 0, errors.New("id generator not initialized")
	}
	return g.sf.NextID()
}

// 包级别的便捷函数，使用默认生成器

// GenerateUserID 使用默认生成器生成用户 ID
func GenerateUserID() (string, error) {
	return DefaultGenerator().GenerateUserID()
}

// GenerateLeadID 使用默认生成器生成线索 ID
func GenerateLeadID() (string, error) {
	return DefaultGenerator().GenerateLeadID()
}

// GenerateID 使用默认生成器生成通用递增 ID
func GenerateID() (uint64, error) {
	return DefaultGenerator().GenerateID()
}
