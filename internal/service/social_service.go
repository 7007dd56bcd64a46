package service

import (
	"errors"
	"math"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/qs3c/crm_go_server/internal/model"
	"github.com/qs3c/crm_go_server/internal/model/dto"
	"github.com/qs3c/crm_go_server/internal/repository"
)

var ErrStatNotFound = errors.New("社媒数据不存在")

// SocialService 联系人社媒粉丝数，(contact, platform) 一对一
type SocialService struct {
	socialStatRepo *repository.SocialStatRepository
	contactRepo    *repository.ContactRepository
}

func NewSocialService(
	socialStatRepo *repository.SocialStatRepository,
	contactRepo *repository.ContactRepository,
) *SocialService {
	return &SocialService{
		socialStatRepo: socialStatRepo,
		contactRepo:    contactRepo,
	}
}

// ListForContact 联系人的社媒数据，按平台名升序
func (s *SocialService) ListForContact(contactID, userID int64) ([]*dto.SocialStatItem, error) {
	stats, err := s.socialStatRepo.ListByContact(contactID, userID)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.SocialStatItem, len(stats))
	for i, stat := range stats {
		items[i] = buildStatItem(stat)
	}
	return items, nil
}

// GetPlatform 单个平台的数据
func (s *SocialService) GetPlatform(contactID, userID int64, platform string) (*dto.SocialStatItem, error) {
	p := model.Platform(platform)
	if !p.Valid() {
		return nil, ValidationErrors{"Invalid platform."}
	}

	stat, err := s.socialStatRepo.GetByPlatform(contactID, userID, p)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStatNotFound
		}
		return nil, err
	}
	return buildStatItem(stat), nil
}

// Upsert 写入某平台的粉丝数，已存在则覆盖并刷新 updated_at，负数归零
func (s *SocialService) Upsert(contactID, userID int64, platform string, followers int64) error {
	p := model.Platform(platform)
	if !p.Valid() {
		return ValidationErrors{"Invalid platform."}
	}

	owned, err := s.contactRepo.BelongsToUser(contactID, userID)
	if err != nil {
		return err
	}
	if !owned {
		return ErrContactNotFound
	}

	if followers < 0 {
		followers = 0
	}

	return s.socialStatRepo.Upsert(contactID, p, followers)
}

// Delete 清除某平台的记录，记录本就不存在也算成功
func (s *SocialService) Delete(contactID, userID int64, platform string) error {
	owned, err := s.contactRepo.BelongsToUser(contactID, userID)
	if err != nil {
		return err
	}
	if !owned {
		return ErrContactNotFound
	}

	return s.socialStatRepo.DeleteByPlatform(contactID, model.Platform(platform))
}

// BulkUpdate 批量提交：有值的平台 upsert，空值的平台删除。
// 逐条执行、不包事务，单条失败不回滚其余条目，整体按成功返回
func (s *SocialService) BulkUpdate(contactID, userID int64, entries []dto.SocialStatEntry) error {
	owned, err := s.contactRepo.BelongsToUser(contactID, userID)
	if err != nil {
		return err
	}
	if !owned {
		return ErrContactNotFound
	}

	for _, entry := range entries {
		p := model.Platform(entry.Platform)
		if !p.Valid() {
			continue
		}

		if entry.Followers != nil {
			followers := *entry.Followers
			if followers < 0 {
				followers = 0
			}
			_ = s.socialStatRepo.Upsert(contactID, p, followers)
		} else {
			_ = s.socialStatRepo.DeleteByPlatform(contactID, p)
		}
	}

	return nil
}

// TotalFollowers 全平台粉丝数合计
func (s *SocialService) TotalFollowers(contactID, userID int64) (int64, error) {
	return s.socialStatRepo.TotalFollowers(contactID, userID)
}

// FormatFollowers 粉丝数展示格式：百万级 "1.5M"、千级 "2.3K"，
// 整数值不带小数位（2000 -> "2K"）
func FormatFollowers(count int64) string {
	switch {
	case count >= 1000000:
		return trimFloat(math.Round(float64(count)/100000)/10) + "M"
	case count >= 1000:
		return trimFloat(math.Round(float64(count)/100)/10) + "K"
	default:
		return strconv.FormatInt(count, 10)
	}
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func buildStatItem(stat *model.SocialStat) *dto.SocialStatItem {
	info := stat.Platform.Info()
	return &dto.SocialStatItem{
		Platform:           string(stat.Platform),
		DisplayName:        info.DisplayName,
		Metric:             info.Metric,
		Followers:          stat.Followers,
		FollowersFormatted: FormatFollowers(stat.Followers),
		UpdatedAt:          stat.UpdatedAt.Format(time.RFC3339),
	}
}
