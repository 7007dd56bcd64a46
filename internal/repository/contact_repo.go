package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/qs3c/crm_go_server/internal/model"
)

// 列表排序字段白名单，白名单外的值静默回退到 created_at
var allowedContactOrderBy = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"company":    true,
	"stage":      true,
}

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(contact *model.Contact) error {
	return r.db.Create(contact).Error
}

// GetByIDAndUser 按归属取联系人，不存在和不属于当前用户同样返回 ErrRecordNotFound
func (r *ContactRepository) GetByIDAndUser(id, userID int64) (*model.Contact, error) {
	var contact model.Contact
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&contact).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// ListByUser 查询用户的联系人，支持阶段过滤、关键词搜索和排序，不分页
func (r *ContactRepository) ListByUser(userID int64, stage, search, orderBy, order string) ([]*model.Contact, error) {
	query := r.db.Where("user_id = ?", userID)

	// 阶段过滤，"all" 或空值不过滤
	if stage != "" && stage != "all" {
		query = query.Where("stage = ?", stage)
	}

	// 单个关键词同时匹配姓名、公司、邮箱
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("(name LIKE ? OR company LIKE ? OR email LIKE ?)", pattern, pattern, pattern)
	}

	if !allowedContactOrderBy[orderBy] {
		orderBy = "created_at"
	}
	if order != "ASC" {
		order = "DESC"
	}

	var contacts []*model.Contact
	err := query.Order(fmt.Sprintf("%s %s", orderBy, order)).Find(&contacts).Error
	return contacts, err
}

// Update 整体保存，可选字段为 nil 时写入 NULL
func (r *ContactRepository) Update(contact *model.Contact) error {
	return r.db.Save(contact).Error
}

// DeleteCascade 删除联系人并级联清掉跟进记录和社媒数据，单事务完成
func (r *ContactRepository) DeleteCascade(id, userID int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("contact_id = ?", id).Delete(&model.Interaction{}).Error; err != nil {
			return err
		}
		if err := tx.Where("contact_id = ?", id).Delete(&model.SocialStat{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Contact{}).Error
	})
}

// CountByUser 用户当前联系人总数，用量计算每次实时查询
func (r *ContactRepository) CountByUser(userID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Contact{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// CountByStage 按阶段统计联系人数量，数量为零的阶段不出现在结果里
func (r *ContactRepository) CountByStage(userID int64) (map[model.Stage]int64, error) {
	var rows []struct {
		Stage model.Stage
		Count int64
	}
	err := r.db.Model(&model.Contact{}).
		Select("stage, COUNT(*) as count").
		Where("user_id = ?", userID).
		Group("stage").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[model.Stage]int64, len(rows))
	for _, row := range rows {
		counts[row.Stage] = row.Count
	}
	return counts, nil
}

// BelongsToUser 归属判定，跟进记录和社媒数据的所有操作都经过这里
func (r *ContactRepository) BelongsToUser(contactID, userID int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.Contact{}).
		Where("id = ? AND user_id = ?", contactID, userID).
		Count(&count).Error
	return count > 0, err
}

// TouchUpdatedAt 刷新联系人的 updated_at
func (r *ContactRepository) TouchUpdatedAt(contactID int64) error {
	return r.db.Model(&model.Contact{}).Where("id = ?", contactID).
		Update("updated_at", time.Now()).Error
}
