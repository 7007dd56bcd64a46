package service

import (
	"strconv"

	"github.com/qs3c/crm_go_server/internal/model"
	"github.com/qs3c/crm_go_server/internal/model/dto"
	"github.com/qs3c/crm_go_server/internal/repository"
)

const exportTimeLayout = "2006-01-02 15:04:05"

// ExportService 导出投影：把联系人连同社媒数据摊平成每人一行，
// 文件格式化（CSV 等）由消费方自理
type ExportService struct {
	contactRepo    *repository.ContactRepository
	socialStatRepo *repository.SocialStatRepository
}

func NewExportService(
	contactRepo *repository.ContactRepository,
	socialStatRepo *repository.SocialStatRepository,
) *ExportService {
	return &ExportService{
		contactRepo:    contactRepo,
		socialStatRepo: socialStatRepo,
	}
}

// Rows 用户全部联系人的导出行，创建时间倒序
func (s *ExportService) Rows(userID int64) ([]*dto.ExportRow, error) {
	contacts, err := s.contactRepo.ListByUser(userID, "", "", "", "")
	if err != nil {
		return nil, err
	}

	rows := make([]*dto.ExportRow, len(contacts))
	for i, contact := range contacts {
		stats, err := s.socialStatRepo.ListByContact(contact.ID, userID)
		if err != nil {
			return nil, err
		}

		// 缺失的平台留空串，不写 0
		followers := make(map[model.Platform]string, len(stats))
		for _, stat := range stats {
			followers[stat.Platform] = strconv.FormatInt(stat.Followers, 10)
		}

		rows[i] = &dto.ExportRow{
			Name:                contact.Name,
			Email:               deref(contact.Email),
			Phone:               deref(contact.Phone),
			Company:             deref(contact.Company),
			Title:               deref(contact.Title),
			Stage:               contact.Stage.DisplayName(),
			LinkedinURL:         deref(contact.LinkedinURL),
			TwitterHandle:       deref(contact.TwitterHandle),
			YoutubeChannel:      deref(contact.YoutubeChannel),
			InstagramHandle:     deref(contact.InstagramHandle),
			TiktokHandle:        deref(contact.TiktokHandle),
			YoutubeSubscribers:  followers[model.PlatformYoutube],
			InstagramFollowers:  followers[model.PlatformInstagram],
			TwitterFollowers:    followers[model.PlatformTwitter],
			LinkedinConnections: followers[model.PlatformLinkedin],
			TiktokFollowers:     followers[model.PlatformTiktok],
			CreatedAt:           contact.CreatedAt.UTC().Format(exportTimeLayout),
			UpdatedAt:           contact.UpdatedAt.UTC().Format(exportTimeLayout),
		}
	}

	return rows, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
