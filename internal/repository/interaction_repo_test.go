package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qs3c/crm_go_server/internal/testutil"
)

func TestInteractionRepository_GetByIDAndUser_JoinOwnership(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewInteractionRepository(db)
	owner := testutil.TestUser(t, db)
	other := testutil.TestUser(t, db)
	contact := testutil.TestContact(t, db, owner.ID)
	interaction := testutil.TestInteraction(t, db, contact.ID, owner.ID, "First call")

	found, err := repo.GetByIDAndUser(interaction.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "First call", found.Note)

	_, err = repo.GetByIDAndUser(interaction.ID, other.ID)
	assert.Error(t, err)
}

func TestInteractionRepository_ListByContact_Order(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewInteractionRepository(db)
	user := testutil.TestUser(t, db)
	contact := testutil.TestContact(t, db, user.ID)
	first := testutil.TestInteraction(t, db, contact.ID, user.ID, "first")
	second := testutil.TestInteraction(t, db, contact.ID, user.ID, "second")

	// 缺省最新在前
	interactions, err := repo.ListByContact(contact.ID, user.ID, "")
	require.NoError(t, err)
	require.Len(t, interactions, 2)
	assert.Equal(t, second.ID, interactions[0].ID)

	interactions, err = repo.ListByContact(contact.ID, user.ID, "ASC")
	require.NoError(t, err)
	require.Len(t, interactions, 2)
	assert.Equal(t, first.ID, interactions[0].ID)
}

func TestInteractionRepository_ListByContact_OtherUserEmpty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewInteractionRepository(db)
	owner := testutil.TestUser(t, db)
	other := testutil.TestUser(t, db)
	contact := testutil.TestContact(t, db, owner.ID)
	testutil.TestInteraction(t, db, contact.ID, owner.ID, "private note")

	interactions, err := repo.ListByContact(contact.ID, other.ID, "")
	require.NoError(t, err)
	assert.Empty(t, interactions)
}

func TestInteractionRepository_Latest(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewInteractionRepository(db)
	user := testutil.TestUser(t, db)
	contact := testutil.TestContact(t, db, user.ID)
	testutil.TestInteraction(t, db, contact.ID, user.ID, "older")
	newest := testutil.TestInteraction(t, db, contact.ID, user.ID, "newest")

	latest, err := repo.Latest(contact.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, newest.ID, latest.ID)
}

func TestInteractionRepository_CountByContact(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewInteractionRepository(db)
	user := testutil.TestUser(t, db)
	contact := testutil.TestContact(t, db, user.ID)
	testutil.TestInteraction(t, db, contact.ID, user.ID, "one")
	testutil.TestInteraction(t, db, contact.ID, user.ID, "two")

	count, err := repo.CountByContact(contact.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
