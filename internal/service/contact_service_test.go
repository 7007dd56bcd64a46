package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/qs3c/crm_go_server/internal/model"
	"github.com/qs3c/crm_go_server/internal/model/dto"
	"github.com/qs3c/crm_go_server/internal/repository"
	"github.com/qs3c/crm_go_server/internal/testutil"
)

func setupContactService(t *testing.T) (*ContactService, *gorm.DB, func()) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	service := NewContactService(repository.NewContactRepository(db))

	cleanup := func() {
		testutil.CleanupTestDB(t, db)
	}

	return service, db, cleanup
}

func TestContactService_Create_DefaultStage(t *testing.T) {
	service, db, cleanup := setupContactService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)

	contact, err := service.Create(user.ID, &dto.ContactRequest{Name: "Jane Doe"})
	require.NoError(t, err)
	assert.Equal(t, model.StageIdentified, contact.Stage)
	assert.Equal(t, user.ID, contact.UserID)
}

func TestContactService_Create_ValidationMessages(t *testing.T) {
	service, db, cleanup := setupContactService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)

	badEmail := "not-an-email"
	_, err := service.Create(user.ID, &dto.ContactRequest{
		Name:  "   ",
		Email: &badEmail,
		Stage: "vip",
	})
	require.Error(t, err)

	msgs, ok := AsValidationErrors(err)
	require.True(t, ok)
	assert.Contains(t, msgs, "Name is required.")
	assert.Contains(t, msgs, "Please enter a valid email address.")
	assert.Contains(t, msgs, "Invalid stage selected.")
}

func TestContactService_Get_NotOwnedLooksLikeNotFound(t *testing.T) {
	service, db, cleanup := setupContactService(t)
	defer cleanup()

	owner := testutil.TestUser(t, db)
	other := testutil.TestUser(t, db)
	contact := testutil.TestContact(t, db, owner.ID)

	_, err := service.Get(contact.ID, other.ID)
	assert.ErrorIs(t, err, ErrContactNotFound)

	_, err = service.Get(99999, owner.ID)
	assert.ErrorIs(t, err, ErrContactNotFound)
}

func TestContactService_Update_FullReplace(t *testing.T) {
	service, db, cleanup := setupContactService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	contact := testutil.TestContact(t, db, user.ID,
		testutil.WithCompany("Acme"), testutil.WithStage(model.StageNegotiating))

	phone := "13800138000"
	updated, err := service.Update(contact.ID, user.ID, &dto.ContactRequest{
		Name:  "New Name",
		Phone: &phone,
		Stage: "churned",
	})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, model.StageChurned, updated.Stage)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, phone, *updated.Phone)
	// 没有提交的可选字段被清空
	assert.Nil(t, updated.Company)
	// 归属不变
	assert.Equal(t, user.ID, updated.UserID)
}

func TestContactService_Update_EmptyStageKeepsCurrent(t *testing.T) {
	service, db, cleanup := setupContactService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	contact := testutil.TestContact(t, db, user.ID, testutil.WithStage(model.StageActivePartner))

	updated, err := service.Update(contact.ID, user.ID, &dto.ContactRequest{Name: "Kept Stage"})
	require.NoError(t, err)
	assert.Equal(t, model.StageActivePartner, updated.Stage)
}

func TestContactService_Update_NotOwned(t *testing.T) {
	service, db, cleanup := setupContactService(t)
	defer cleanup()

	owner := testutil.TestUser(t, db)
	other := testutil.TestUser(t, db)
	contact := testutil.TestContact(t, db, owner.ID)

	_, err := service.Update(contact.ID, other.ID, &dto.ContactRequest{Name: "Hijack"})
	assert.ErrorIs(t, err, ErrContactNotFound)
}

func TestContactService_Duplicate(t *testing.T) {
	service, db, cleanup := setupContactService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	contact := testutil.TestContact(t, db, user.ID,
		testutil.WithName("Origin"), testutil.WithStage(model.StageActivePartner),
		testutil.WithCompany("Acme"))

	copied, err := service.Duplicate(contact.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Copy of Origin", copied.Name)
	// 阶段重置回 identified
	assert.Equal(t, model.StageIdentified, copied.Stage)
	require.NotNil(t, copied.Company)
	assert.Equal(t, "Acme", *copied.Company)
	assert.NotEqual(t, contact.ID, copied.ID)
}

func TestContactService_Delete_Cascade(t *testing.T) {
	service, db, cleanup := setupContactService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	contact := testutil.TestContact(t, db, user.ID)
	testutil.TestInteraction(t, db, contact.ID, user.ID, "note")
	testutil.TestSocialStat(t, db, contact.ID, model.PlatformYoutube, 100)

	require.NoError(t, service.Delete(contact.ID, user.ID))

	var count int64
	db.Model(&model.Interaction{}).Where("contact_id = ?", contact.ID).Count(&count)
	assert.Equal(t, int64(0), count)
	db.Model(&model.SocialStat{}).Where("contact_id = ?", contact.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestContactService_Delete_NotOwned(t *testing.T) {
	service, db, cleanup := setupContactService(t)
	defer cleanup()

	owner := testutil.TestUser(t, db)
	other := testutil.TestUser(t, db)
	contact := testutil.TestContact(t, db, owner.ID)

	err := service.Delete(contact.ID, other.ID)
	assert.ErrorIs(t, err, ErrContactNotFound)

	// 原记录还在
	_, err = service.Get(contact.ID, owner.ID)
	assert.NoError(t, err)
}

func TestContactService_StageCounts_ZeroFilled(t *testing.T) {
	service, db, cleanup := setupContactService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	testutil.TestContact(t, db, user.ID, testutil.WithStage(model.StageChurned))

	counts, err := service.StageCounts(user.ID)
	require.NoError(t, err)
	require.Len(t, counts, len(model.Stages))

	byStage := make(map[string]int64, len(counts))
	for _, item := range counts {
		byStage[item.Stage] = item.Count
	}
	assert.Equal(t, int64(1), byStage["churned"])
	assert.Equal(t, int64(0), byStage["negotiating"])
}

func TestContactService_List_SearchAndSort(t *testing.T) {
	service, db, cleanup := setupContactService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	testutil.TestContact(t, db, user.ID, testutil.WithName("Beta Creator"))
	testutil.TestContact(t, db, user.ID, testutil.WithName("Alpha Creator"))
	testutil.TestContact(t, db, user.ID, testutil.WithName("Unrelated"))

	contacts, err := service.List(user.ID, &dto.ListContactsQuery{
		Search: "creator",
		SortBy: "name",
		Order:  "asc",
	})
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, "Alpha Creator", contacts[0].Name)
}
