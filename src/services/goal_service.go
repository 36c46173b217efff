// backend/src/services/goal_service.go
package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/username/casher/backend/src/database"
	"github.com/username/casher/backend/src/logger"
	"github.com/username/casher/backend/src/models"
)

type goalServiceImpl struct{}

func NewGoalService() GoalService {
	return &goalServiceImpl{}
}

func (s *goalServiceImpl) ListGoals(userID int64) ([]models.SavingsGoal, error) {
	rows, err := database.DB.Query(`
		SELECT id, user_id, title, target_amount, current_amount, COALESCE(deadline, ''), created_at
		FROM savings_goals
		WHERE user_id = ?
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying savings goals for userID %d: %w", userID, err)
	}
	defer rows.Close()

	var goals []models.SavingsGoal
	for rows.Next() {
		var goal models.SavingsGoal
		if err := rows.Scan(&goal.ID, &goal.UserID, &goal.Title, &goal.TargetAmount,
			&goal.CurrentAmount, &goal.Deadline, &goal.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning savings goal row for userID %d: %w", userID, err)
		}
		goals = append(goals, goal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over savings goal rows for userID %d: %w", userID, err)
	}
	return goals, nil
}

func (s *goalServiceImpl) CreateGoal(userID int64, title string, targetAmount float64, deadline string) (*models.SavingsGoal, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("goal title cannot be empty")
	}
	if targetAmount <= 0 {
		return nil, fmt.Errorf("goal target amount must be positive")
	}

	createdAt := time.Now().UTC().Format(time.RFC3339)
	result, err := database.DB.Exec(`
		INSERT INTO savings_goals (user_id, title, target_amount, current_amount, deadline, created_at)
		VALUES (?, ?, ?, 0, ?, ?)`, userID, title, targetAmount, deadline, createdAt)
	if err != nil {
		return nil, fmt.Errorf("error inserting savings goal for userID %d: %w", userID, err)
	}
	goalID, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("error getting savings goal id for userID %d: %w", userID, err)
	}

	logger.L.Info("Savings goal created", "userID", userID, "goalID", goalID, "title", title)
	return &models.SavingsGoal{
		ID:           goalID,
		UserID:       userID,
		Title:        title,
		TargetAmount: targetAmount,
		Deadline:     deadline,
		CreatedAt:    createdAt,
	}, nil
}

func (s *goalServiceImpl) DeleteGoal(userID, goalID int64) error {
	result, err := database.DB.Exec(`DELETE FROM savings_goals WHERE id = ? AND user_id = ?`, goalID, userID)
	if err != nil {
		return fmt.Errorf("error deleting savings goal %d for userID %d: %w", goalID, userID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking deleted savings goal %d for userID %d: %w", goalID, userID, err)
	}
	if affected == 0 {
		return fmt.Errorf("savings goal %d not found for userID %d", goalID, userID)
	}
	return nil
}
