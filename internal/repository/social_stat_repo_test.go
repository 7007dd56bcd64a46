package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qs3c/crm_go_server/internal/model"
	"github.com/qs3c/crm_go_server/internal/testutil"
)

func TestSocialStatRepository_Upsert_NoDuplicateRows(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewSocialStatRepository(db)
	user := testutil.TestUser(t, db)
	contact := testutil.TestContact(t, db, user.ID)

	require.NoError(t, repo.Upsert(contact.ID, model.PlatformYoutube, 1000))
	require.NoError(t, repo.Upsert(contact.ID, model.PlatformYoutube, 5000))
	require.NoError(t, repo.Upsert(contact.ID, model.PlatformYoutube, 2500))

	// 反复写入同一平台只保留一行，且为最后一次的值
	stats, err := repo.ListByContact(contact.ID, user.ID)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, int64(2500), stats[0].Followers)
}

func TestSocialStatRepository_ListByContact_PlatformOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewSocialStatRepository(db)
	user := testutil.TestUser(t, db)
	contact := testutil.TestContact(t, db, user.ID)
	testutil.TestSocialStat(t, db, contact.ID, model.PlatformYoutube, 100)
	testutil.TestSocialStat(t, db, contact.ID, model.PlatformInstagram, 200)
	testutil.TestSocialStat(t, db, contact.ID, model.PlatformLinkedin, 300)

	stats, err := repo.ListByContact(contact.ID, user.ID)
	require.NoError(t, err)
	require.Len(t, stats, 3)
	assert.Equal(t, model.PlatformInstagram, stats[0].Platform)
	assert.Equal(t, model.PlatformLinkedin, stats[1].Platform)
	assert.Equal(t, model.PlatformYoutube, stats[2].Platform)
}

func TestSocialStatRepository_ListByContact_OtherUserEmpty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewSocialStatRepository(db)
	owner := testutil.TestUser(t, db)
	other := testutil.TestUser(t, db)
	contact := testutil.TestContact(t, db, owner.ID)
	testutil.TestSocialStat(t, db, contact.ID, model.PlatformTiktok, 900)

	stats, err := repo.ListByContact(contact.ID, other.ID)
	require.NoError(t, err)
	assert.Empty(t, stats)
}

func TestSocialStatRepository_DeleteByPlatform_AbsentIsNoop(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewSocialStatRepository(db)
	user := testutil.TestUser(t, db)
	contact := testutil.TestContact(t, db, user.ID)

	// 不存在的记录直接算成功
	assert.NoError(t, repo.DeleteByPlatform(contact.ID, model.PlatformTwitter))

	testutil.TestSocialStat(t, db, contact.ID, model.PlatformTwitter, 50)
	require.NoError(t, repo.DeleteByPlatform(contact.ID, model.PlatformTwitter))

	stats, err := repo.ListByContact(contact.ID, user.ID)
	require.NoError(t, err)
	assert.Empty(t, stats)
}

func TestSocialStatRepository_TotalFollowers(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewSocialStatRepository(db)
	user := testutil.TestUser(t, db)
	contact := testutil.TestContact(t, db, user.ID)

	// 没有记录时合计为 0
	total, err := repo.TotalFollowers(contact.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)

	testutil.TestSocialStat(t, db, contact.ID, model.PlatformYoutube, 1000)
	testutil.TestSocialStat(t, db, contact.ID, model.PlatformInstagram, 234)

	total, err = repo.TotalFollowers(contact.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1234), total)
}
