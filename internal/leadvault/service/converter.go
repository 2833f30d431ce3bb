package service

import (
	"time"

	"github.com/jimyag/leadvault/internal/leadvault/entity"
	"github.com/jimyag/leadvault/internal/leadvault/repository/model"
	"github.com/jinzhu/copier"
)

// leadModelToEntity Lead model → entity
func leadModelToEntity(m *model.Lead) (*entity.Lead, error) {
	e := &entity.Lead{}
	if err := copier.Copy(e, m); err != nil {
		return nil, err
	}
	// 指针和时间字段需要手工转换
	if m.OwnerID != nil {
		e.OwnerID = *m.OwnerID
	}
	if !m.UpdatedAt.IsZero() {
		e.UpdatedAt = m.UpdatedAt.Format(time.RFC3339)
	}
	return e, nil
}

// leadModelsToEntities Lead model 列表 → entity 列表
func leadModelsToEntities(ms []*model.Lead) ([]entity.Lead, error) {
	leads := make([]entity.Lead, 0, len(ms))
	for _, m := range ms {
		e, err := leadModelToEntity(m)
		if err != nil {
			return nil, err
		}
		leads = append(leads, *e)
	}
	return leads, nil
}
