package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"JournalGo/models"
)

func TestBuildMergePlan_NothingToMerge(t *testing.T) {
	_, ok := BuildMergePlan(nil)
	assert.False(t, ok)

	_, ok = BuildMergePlan([]models.User{{ID: "only"}})
	assert.False(t, ok)
}

func TestBuildMergePlan_EarliestAccountIsPrimary(t *testing.T) {
	base := time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)
	users := []models.User{
		{ID: "newer", CreatedAt: base.AddDate(0, 0, 5)},
		{ID: "oldest", CreatedAt: base},
		{ID: "middle", CreatedAt: base.AddDate(0, 0, 2)},
	}

	plan, ok := BuildMergePlan(users)

	require.True(t, ok)
	assert.Equal(t, "oldest", plan.PrimaryID)
	assert.Equal(t, []string{"middle", "newer"}, plan.DuplicateIDs)
}

func TestBuildMergePlan_TieBreaksOnID(t *testing.T) {
	created := time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)
	users := []models.User{
		{ID: "bbb", CreatedAt: created},
		{ID: "aaa", CreatedAt: created},
	}

	plan, ok := BuildMergePlan(users)

	require.True(t, ok)
	assert.Equal(t, "aaa", plan.PrimaryID)
	assert.Equal(t, []string{"bbb"}, plan.DuplicateIDs)
}

func TestBuildMergePlan_InputNotMutated(t *testing.T) {
	base := time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)
	users := []models.User{
		{ID: "newer", CreatedAt: base.AddDate(0, 0, 5)},
		{ID: "oldest", CreatedAt: base},
	}

	BuildMergePlan(users)

	assert.Equal(t, "newer", users[0].ID)
	assert.Equal(t, "oldest", users[1].ID)
}
