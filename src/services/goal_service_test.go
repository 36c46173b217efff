package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/username/casher/backend/src/database"
	"github.com/username/casher/backend/src/logger"
)

func newTestGoalService(t *testing.T) GoalService {
	t.Helper()
	logger.InitLogger("error")
	database.InitDB(filepath.Join(t.TempDir(), "test.db"))
	t.Cleanup(func() { database.DB.Close() })
	return NewGoalService()
}

func TestCreateAndListGoals(t *testing.T) {
	service := newTestGoalService(t)

	created, err := service.CreateGoal(1, "Holiday Fund", 1500, "2026-12-31")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Holiday Fund", created.Title)
	assert.InDelta(t, 1500.0, created.TargetAmount, 0.0001)
	assert.Zero(t, created.CurrentAmount)

	goals, err := service.ListGoals(1)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, "Holiday Fund", goals[0].Title)
	assert.Equal(t, "2026-12-31", goals[0].Deadline)
}

func TestCreateGoalValidation(t *testing.T) {
	service := newTestGoalService(t)

	_, err := service.CreateGoal(1, "   ", 100, "")
	assert.Error(t, err)

	_, err = service.CreateGoal(1, "Emergency Fund", 0, "")
	assert.Error(t, err)

	_, err = service.CreateGoal(1, "Emergency Fund", -50, "")
	assert.Error(t, err)
}

func TestDeleteGoal(t *testing.T) {
	service := newTestGoalService(t)

	created, err := service.CreateGoal(1, "New Bike", 400, "")
	require.NoError(t, err)

	require.NoError(t, service.DeleteGoal(1, created.ID))

	goals, err := service.ListGoals(1)
	require.NoError(t, err)
	assert.Empty(t, goals)
}

func TestDeleteGoalScopedToOwner(t *testing.T) {
	service := newTestGoalService(t)

	created, err := service.CreateGoal(1, "New Bike", 400, "")
	require.NoError(t, err)

	assert.Error(t, service.DeleteGoal(2, created.ID))

	goals, err := service.ListGoals(1)
	require.NoError(t, err)
	assert.Len(t, goals, 1)
}
