package testutil

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/qs3c/crm_go_server/internal/model"
)

// TestUser 创建测试用户
func TestUser(t *testing.T, db *gorm.DB, opts ...func(*model.User)) *model.User {
	t.Helper()

	email := fmt.Sprintf("test_%d@example.com", time.Now().UnixNano())
	passwordHash := "$2a$10$abcdefghijklmnopqrstuvwxyz123456" // bcrypt hash placeholder
	user := &model.User{
		Username:     fmt.Sprintf("testuser_%d", time.Now().UnixNano()%1000000),
		Email:        &email,
		PasswordHash: &passwordHash,
	}

	for _, opt := range opts {
		opt(user)
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return user
}

// WithUsername 设置用户名
func WithUsername(username string) func(*model.User) {
	return func(u *model.User) {
		u.Username = username
	}
}

// WithEmail 设置邮箱
func WithEmail(email string) func(*model.User) {
	return func(u *model.User) {
		u.Email = &email
	}
}

// TestSubscription 创建测试订阅
func TestSubscription(t *testing.T, db *gorm.DB, userID int64, planName string, opts ...func(*model.Subscription)) *model.Subscription {
	t.Helper()

	subscription := &model.Subscription{
		UserID:    userID,
		PlanName:  planName,
		Status:    "active",
		StartedAt: time.Now(),
		ExpiresAt: time.Now().AddDate(0, 1, 0),
	}

	for _, opt := range opts {
		opt(subscription)
	}

	if err := db.Create(subscription).Error; err != nil {
		t.Fatalf("Failed to create test subscription: %v", err)
	}

	return subscription
}

// WithSubscriptionStatus 设置订阅状态
func WithSubscriptionStatus(status string) func(*model.Subscription) {
	return func(s *model.Subscription) {
		s.Status = status
	}
}

// TestContact 创建测试联系人
func TestContact(t *testing.T, db *gorm.DB, userID int64, opts ...func(*model.Contact)) *model.Contact {
	t.Helper()

	contact := &model.Contact{
		UserID: userID,
		Name:   fmt.Sprintf("Test Contact %d", time.Now().UnixNano()%1000000),
		Stage:  model.StageIdentified,
	}

	for _, opt := range opts {
		opt(contact)
	}

	if err := db.Create(contact).Error; err != nil {
		t.Fatalf("Failed to create test contact: %v", err)
	}

	return contact
}

// WithName 设置联系人姓名
func WithName(name string) func(*model.Contact) {
	return func(c *model.Contact) {
		c.Name = name
	}
}

// WithStage 设置管线阶段
func WithStage(stage model.Stage) func(*model.Contact) {
	return func(c *model.Contact) {
		c.Stage = stage
	}
}

// WithCompany 设置公司
func WithCompany(company string) func(*model.Contact) {
	return func(c *model.Contact) {
		c.Company = &company
	}
}

// WithContactEmail 设置联系人邮箱
func WithContactEmail(email string) func(*model.Contact) {
	return func(c *model.Contact) {
		c.Email = &email
	}
}

// TestInteraction 创建测试跟进记录
func TestInteraction(t *testing.T, db *gorm.DB, contactID, userID int64, note string, opts ...func(*model.Interaction)) *model.Interaction {
	t.Helper()

	interaction := &model.Interaction{
		ContactID: contactID,
		UserID:    userID,
		Note:      note,
	}

	for _, opt := range opts {
		opt(interaction)
	}

	if err := db.Create(interaction).Error; err != nil {
		t.Fatalf("Failed to create test interaction: %v", err)
	}

	return interaction
}

// WithInteractionTitle 设置跟进记录标题
func WithInteractionTitle(title string) func(*model.Interaction) {
	return func(i *model.Interaction) {
		i.Title = &title
	}
}

// TestSocialStat 创建测试社媒数据
func TestSocialStat(t *testing.T, db *gorm.DB, contactID int64, platform model.Platform, followers int64) *model.SocialStat {
	t.Helper()

	stat := &model.SocialStat{
		ContactID: contactID,
		Platform:  platform,
		Followers: followers,
	}

	if err := db.Create(stat).Error; err != nil {
		t.Fatalf("Failed to create test social stat: %v", err)
	}

	return stat
}
