package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/qs3c/crm_go_server/internal/model"
	"github.com/qs3c/crm_go_server/internal/model/dto"
	"github.com/qs3c/crm_go_server/internal/repository"
)

var ErrContactNotFound = errors.New("联系人不存在")

type ContactService struct {
	contactRepo *repository.ContactRepository
}

func NewContactService(contactRepo *repository.ContactRepository) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
	}
}

// List 用户的联系人列表，支持阶段过滤、关键词搜索和排序
func (s *ContactService) List(userID int64, query *dto.ListContactsQuery) ([]*model.Contact, error) {
	return s.contactRepo.ListByUser(userID, query.Stage, query.Search, query.SortBy, strings.ToUpper(query.Order))
}

// Get 按归属取联系人，"不存在"和"不属于当前用户"不做区分
func (s *ContactService) Get(contactID, userID int64) (*model.Contact, error) {
	contact, err := s.contactRepo.GetByIDAndUser(contactID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, err
	}
	return contact, nil
}

// Create 创建联系人。额度检查在路由中间件完成，这里不再重复判定
func (s *ContactService) Create(userID int64, req *dto.ContactRequest) (*model.Contact, error) {
	stage := model.Stage(req.Stage)
	if req.Stage == "" {
		stage = model.StageIdentified
	}

	if err := validateContact(req, stage); err != nil {
		return nil, err
	}

	contact := &model.Contact{
		UserID:          userID,
		Name:            strings.TrimSpace(req.Name),
		Email:           req.Email,
		Phone:           req.Phone,
		Company:         req.Company,
		Title:           req.Title,
		Stage:           stage,
		LinkedinURL:     req.LinkedinURL,
		TwitterHandle:   req.TwitterHandle,
		YoutubeChannel:  req.YoutubeChannel,
		InstagramHandle: req.InstagramHandle,
		TiktokHandle:    req.TiktokHandle,
	}

	if err := s.contactRepo.Create(contact); err != nil {
		return nil, err
	}

	return contact, nil
}

// Update 整体替换联系人字段：未提交的可选字段被置空，归属和创建时间不变。
// stage 缺省时沿用当前值
func (s *ContactService) Update(contactID, userID int64, req *dto.ContactRequest) (*model.Contact, error) {
	contact, err := s.Get(contactID, userID)
	if err != nil {
		return nil, err
	}

	stage := model.Stage(req.Stage)
	if req.Stage == "" {
		stage = contact.Stage
	}

	if err := validateContact(req, stage); err != nil {
		return nil, err
	}

	contact.Name = strings.TrimSpace(req.Name)
	contact.Email = req.Email
	contact.Phone = req.Phone
	contact.Company = req.Company
	contact.Title = req.Title
	contact.Stage = stage
	contact.LinkedinURL = req.LinkedinURL
	contact.TwitterHandle = req.TwitterHandle
	contact.YoutubeChannel = req.YoutubeChannel
	contact.InstagramHandle = req.InstagramHandle
	contact.TiktokHandle = req.TiktokHandle

	if err := s.contactRepo.Update(contact); err != nil {
		return nil, err
	}

	return contact, nil
}

// Duplicate 复制联系人："Copy of <原名>"，阶段重置为 identified。
// 额度检查同样由路由中间件把关
func (s *ContactService) Duplicate(contactID, userID int64) (*model.Contact, error) {
	source, err := s.Get(contactID, userID)
	if err != nil {
		return nil, err
	}

	copyContact := &model.Contact{
		UserID:          userID,
		Name:            "Copy of " + source.Name,
		Email:           source.Email,
		Phone:           source.Phone,
		Company:         source.Company,
		Title:           source.Title,
		Stage:           model.StageIdentified,
		LinkedinURL:     source.LinkedinURL,
		TwitterHandle:   source.TwitterHandle,
		YoutubeChannel:  source.YoutubeChannel,
		InstagramHandle: source.InstagramHandle,
		TiktokHandle:    source.TiktokHandle,
	}

	if err := s.contactRepo.Create(copyContact); err != nil {
		return nil, err
	}

	return copyContact, nil
}

// Delete 删除联系人并级联清掉跟进记录和社媒数据
func (s *ContactService) Delete(contactID, userID int64) error {
	if _, err := s.Get(contactID, userID); err != nil {
		return err
	}
	return s.contactRepo.DeleteCascade(contactID, userID)
}

// StageCounts 全部六个阶段的联系人数量，没有联系人的阶段补 0
func (s *ContactService) StageCounts(userID int64) ([]*dto.StageCount, error) {
	counts, err := s.contactRepo.CountByStage(userID)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.StageCount, len(model.Stages))
	for i, stage := range model.Stages {
		items[i] = &dto.StageCount{
			Stage:       string(stage),
			DisplayName: stage.DisplayName(),
			Count:       counts[stage],
		}
	}
	return items, nil
}

func validateContact(req *dto.ContactRequest, stage model.Stage) error {
	var errs ValidationErrors

	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, "Name is required.")
	}
	if req.Email != nil && *req.Email != "" && !isValidEmail(*req.Email) {
		errs = append(errs, "Please enter a valid email address.")
	}
	if !stage.Valid() {
		errs = append(errs, "Invalid stage selected.")
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
