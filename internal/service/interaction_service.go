package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/qs3c/crm_go_server/internal/model"
	"github.com/qs3c/crm_go_server/internal/repository"
)

var ErrInteractionNotFound = errors.New("跟进记录不存在")

// InteractionService 联系人跟进记录。所有操作都先通过 contacts
// 联表确认归属，不信任记录行自带的 user_id
type InteractionService struct {
	interactionRepo *repository.InteractionRepository
	contactRepo     *repository.ContactRepository
}

func NewInteractionService(
	interactionRepo *repository.InteractionRepository,
	contactRepo *repository.ContactRepository,
) *InteractionService {
	return &InteractionService{
		interactionRepo: interactionRepo,
		contactRepo:     contactRepo,
	}
}

// ListForContact 联系人的跟进记录，order 仅接受 ASC/DESC，默认最新在前
func (s *InteractionService) ListForContact(contactID, userID int64, order string) ([]*model.Interaction, error) {
	return s.interactionRepo.ListByContact(contactID, userID, strings.ToUpper(order))
}

// Create 新增跟进记录并刷新父联系人的 updated_at（必需副作用）。
// 标题去空格后为空则不存
func (s *InteractionService) Create(contactID, userID int64, note string, title *string) (*model.Interaction, error) {
	owned, err := s.contactRepo.BelongsToUser(contactID, userID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, ErrContactNotFound
	}

	note = strings.TrimSpace(note)
	if note == "" {
		return nil, ValidationErrors{"Note is required."}
	}

	interaction := &model.Interaction{
		ContactID: contactID,
		UserID:    userID,
		Note:      note,
		Title:     normalizeTitle(title),
	}

	if err := s.interactionRepo.Create(interaction); err != nil {
		return nil, err
	}

	if err := s.contactRepo.TouchUpdatedAt(contactID); err != nil {
		return nil, err
	}

	return interaction, nil
}

// Update 替换记录内容。title 传空串表示清除标题，不传保持原值
func (s *InteractionService) Update(interactionID, userID int64, note string, title *string) (*model.Interaction, error) {
	interaction, err := s.interactionRepo.GetByIDAndUser(interactionID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInteractionNotFound
		}
		return nil, err
	}

	note = strings.TrimSpace(note)
	if note == "" {
		return nil, ValidationErrors{"Note is required."}
	}

	fields := map[string]interface{}{
		"note": note,
	}
	if title != nil {
		fields["title"] = normalizeTitle(title)
	}

	if err := s.interactionRepo.Update(interactionID, fields); err != nil {
		return nil, err
	}

	if err := s.contactRepo.TouchUpdatedAt(interaction.ContactID); err != nil {
		return nil, err
	}

	return s.interactionRepo.GetByIDAndUser(interactionID, userID)
}

// Delete 删除跟进记录，归属先行校验
func (s *InteractionService) Delete(interactionID, userID int64) error {
	_, err := s.interactionRepo.GetByIDAndUser(interactionID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInteractionNotFound
		}
		return err
	}
	return s.interactionRepo.Delete(interactionID)
}

// Latest 最近一条跟进记录，没有时返回 nil
func (s *InteractionService) Latest(contactID, userID int64) (*model.Interaction, error) {
	interaction, err := s.interactionRepo.Latest(contactID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return interaction, nil
}

// Count 联系人的跟进记录数
func (s *InteractionService) Count(contactID, userID int64) (int64, error) {
	owned, err := s.contactRepo.BelongsToUser(contactID, userID)
	if err != nil {
		return 0, err
	}
	if !owned {
		return 0, ErrContactNotFound
	}
	return s.interactionRepo.CountByContact(contactID)
}

func normalizeTitle(title *string) *string {
	if title == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*title)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
