package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/qs3c/crm_go_server/internal/model"
)

type InteractionRepository struct {
	db *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) *InteractionRepository {
	return &InteractionRepository{db: db}
}

func (r *InteractionRepository) Create(interaction *model.Interaction) error {
	return r.db.Create(interaction).Error
}

// GetByIDAndUser 通过 contacts 联表确认归属后返回记录，
// 不信任 interactions 行自带的 user_id
func (r *InteractionRepository) GetByIDAndUser(id, userID int64) (*model.Interaction, error) {
	var interaction model.Interaction
	err := r.db.Model(&model.Interaction{}).
		Select("interactions.*").
		Joins("INNER JOIN contacts ON interactions.contact_id = contacts.id").
		Where("interactions.id = ? AND contacts.user_id = ?", id, userID).
		First(&interaction).Error
	if err != nil {
		return nil, err
	}
	return &interaction, nil
}

// ListByContact 联系人的跟进记录列表，按创建时间排序，默认最新在前
func (r *InteractionRepository) ListByContact(contactID, userID int64, order string) ([]*model.Interaction, error) {
	if order != "ASC" {
		order = "DESC"
	}

	var interactions []*model.Interaction
	err := r.db.Model(&model.Interaction{}).
		Select("interactions.*").
		Joins("INNER JOIN contacts ON interactions.contact_id = contacts.id").
		Where("interactions.contact_id = ? AND contacts.user_id = ?", contactID, userID).
		Order(fmt.Sprintf("interactions.created_at %s, interactions.id %s", order, order)).
		Find(&interactions).Error
	return interactions, err
}

// Latest 联系人最近一条跟进记录
func (r *InteractionRepository) Latest(contactID, userID int64) (*model.Interaction, error) {
	var interaction model.Interaction
	err := r.db.Model(&model.Interaction{}).
		Select("interactions.*").
		Joins("INNER JOIN contacts ON interactions.contact_id = contacts.id").
		Where("interactions.contact_id = ? AND contacts.user_id = ?", contactID, userID).
		Order("interactions.created_at DESC, interactions.id DESC").
		First(&interaction).Error
	if err != nil {
		return nil, err
	}
	return &interaction, nil
}

// CountByContact 联系人的跟进记录数
func (r *InteractionRepository) CountByContact(contactID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Interaction{}).Where("contact_id = ?", contactID).Count(&count).Error
	return count, err
}

// Update 替换记录内容，归属校验由调用方先行完成
func (r *InteractionRepository) Update(id int64, fields map[string]interface{}) error {
	return r.db.Model(&model.Interaction{}).Where("id = ?", id).Updates(fields).Error
}

func (r *InteractionRepository) Delete(id int64) error {
	return r.db.Delete(&model.Interaction{}, id).Error
}
