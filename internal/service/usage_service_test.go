package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/qs3c/crm_go_server/config"
	"github.com/qs3c/crm_go_server/internal/repository"
	"github.com/qs3c/crm_go_server/internal/testutil"
)

func planTable() config.PlansConfig {
	free := 3
	pro := 200
	return config.PlansConfig{
		Levels: map[string]config.PlanLevel{
			"free":       {DisplayName: "Free", ContactLimit: &free},
			"pro":        {DisplayName: "Pro", ContactLimit: &pro},
			"enterprise": {DisplayName: "Enterprise", ContactLimit: nil},
		},
	}
}

func setupUsageService(t *testing.T) (*UsageService, *gorm.DB, func()) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	contactRepo := repository.NewContactRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)

	cfg := &config.Config{Plans: planTable()}
	service := NewUsageService(contactRepo, subscriptionRepo, cfg)

	cleanup := func() {
		testutil.CleanupTestDB(t, db)
	}

	return service, db, cleanup
}

func TestUsageService_PlanName_DefaultsToFree(t *testing.T) {
	service, db, cleanup := setupUsageService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)

	plan, err := service.PlanName(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "free", plan)
}

func TestUsageService_PlanName_ActiveSubscriptionWins(t *testing.T) {
	service, db, cleanup := setupUsageService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	testutil.TestSubscription(t, db, user.ID, "pro")

	plan, err := service.PlanName(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "pro", plan)
}

func TestUsageService_PlanName_IgnoresInactiveSubscription(t *testing.T) {
	service, db, cleanup := setupUsageService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	testutil.TestSubscription(t, db, user.ID, "pro", testutil.WithSubscriptionStatus("cancelled"))

	plan, err := service.PlanName(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "free", plan)
}

func TestUsageService_CanCreate_BelowLimit(t *testing.T) {
	service, db, cleanup := setupUsageService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	testutil.TestContact(t, db, user.ID)
	testutil.TestContact(t, db, user.ID)

	canCreate, err := service.CanCreate(user.ID)
	require.NoError(t, err)
	assert.True(t, canCreate)
}

func TestUsageService_CanCreate_AtLimit(t *testing.T) {
	service, db, cleanup := setupUsageService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	for i := 0; i < 3; i++ {
		testutil.TestContact(t, db, user.ID)
	}

	canCreate, err := service.CanCreate(user.ID)
	require.NoError(t, err)
	assert.False(t, canCreate)
}

func TestUsageService_CanCreate_UnlimitedPlan(t *testing.T) {
	service, db, cleanup := setupUsageService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	testutil.TestSubscription(t, db, user.ID, "enterprise")
	for i := 0; i < 10; i++ {
		testutil.TestContact(t, db, user.ID)
	}

	canCreate, err := service.CanCreate(user.ID)
	require.NoError(t, err)
	assert.True(t, canCreate)
}

func TestUsageService_GetUsage_UnknownPlanFallsBackToFree(t *testing.T) {
	service, db, cleanup := setupUsageService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	testutil.TestSubscription(t, db, user.ID, "legacy_gold")

	usage, err := service.GetUsage(user.ID)
	require.NoError(t, err)
	require.NotNil(t, usage.Limit)
	assert.Equal(t, 3, *usage.Limit)
}

func TestUsageService_GetUsage_Snapshot(t *testing.T) {
	service, db, cleanup := setupUsageService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	testutil.TestSubscription(t, db, user.ID, "pro")
	testutil.TestContact(t, db, user.ID)
	testutil.TestContact(t, db, user.ID)

	usage, err := service.GetUsage(user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), usage.Current)
	require.NotNil(t, usage.Limit)
	assert.Equal(t, 200, *usage.Limit)
	assert.Equal(t, "pro", usage.Plan)
	assert.True(t, usage.CanCreate)
	assert.InDelta(t, 1.0, usage.Percentage, 0.001)
}

func TestUsageService_GetUsage_UnlimitedPercentageZero(t *testing.T) {
	service, db, cleanup := setupUsageService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	testutil.TestSubscription(t, db, user.ID, "enterprise")
	testutil.TestContact(t, db, user.ID)

	usage, err := service.GetUsage(user.ID)
	require.NoError(t, err)
	assert.Nil(t, usage.Limit)
	assert.Equal(t, 0.0, usage.Percentage)
}
