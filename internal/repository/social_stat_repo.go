package repository

import (
	"gorm.io/gorm"

	"github.com/qs3c/crm_go_server/internal/model"
)

type SocialStatRepository struct {
	db *gorm.DB
}

func NewSocialStatRepository(db *gorm.DB) *SocialStatRepository {
	return &SocialStatRepository{db: db}
}

// ListByContact 联系人的社媒数据，按平台名升序
func (r *SocialStatRepository) ListByContact(contactID, userID int64) ([]*model.SocialStat, error) {
	var stats []*model.SocialStat
	err := r.db.Model(&model.SocialStat{}).
		Select("social_stats.*").
		Joins("INNER JOIN contacts ON social_stats.contact_id = contacts.id").
		Where("social_stats.contact_id = ? AND contacts.user_id = ?", contactID, userID).
		Order("social_stats.platform ASC").
		Find(&stats).Error
	return stats, err
}

// GetByPlatform 单个平台的数据，联表确认归属
func (r *SocialStatRepository) GetByPlatform(contactID, userID int64, platform model.Platform) (*model.SocialStat, error) {
	var stat model.SocialStat
	err := r.db.Model(&model.SocialStat{}).
		Select("social_stats.*").
		Joins("INNER JOIN contacts ON social_stats.contact_id = contacts.id").
		Where("social_stats.contact_id = ? AND contacts.user_id = ? AND social_stats.platform = ?",
			contactID, userID, platform).
		First(&stat).Error
	if err != nil {
		return nil, err
	}
	return &stat, nil
}

// Upsert 按 (contact_id, platform) 插入或更新粉丝数
func (r *SocialStatRepository) Upsert(contactID int64, platform model.Platform, followers int64) error {
	var existing model.SocialStat
	err := r.db.Where("contact_id = ? AND platform = ?", contactID, platform).First(&existing).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return r.db.Create(&model.SocialStat{
				ContactID: contactID,
				Platform:  platform,
				Followers: followers,
			}).Error
		}
		return err
	}

	return r.db.Model(&existing).Update("followers", followers).Error
}

// DeleteByPlatform 删除某平台的记录，记录不存在也算成功
func (r *SocialStatRepository) DeleteByPlatform(contactID int64, platform model.Platform) error {
	return r.db.Where("contact_id = ? AND platform = ?", contactID, platform).
		Delete(&model.SocialStat{}).Error
}

// TotalFollowers 全平台粉丝数合计，联表确认归属，无记录返回 0
func (r *SocialStatRepository) TotalFollowers(contactID, userID int64) (int64, error) {
	var total *int64
	err := r.db.Model(&model.SocialStat{}).
		Joins("INNER JOIN contacts ON social_stats.contact_id = contacts.id").
		Where("social_stats.contact_id = ? AND contacts.user_id = ?", contactID, userID).
		Select("SUM(social_stats.followers)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}
