// backend/src/handlers/goal_handler.go
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/username/casher/backend/src/logger"
	"github.com/username/casher/backend/src/models"
	"github.com/username/casher/backend/src/services"
	"github.com/username/casher/backend/src/utils"
)

type GoalHandler struct {
	goalService services.GoalService
}

func NewGoalHandler(service services.GoalService) *GoalHandler {
	return &GoalHandler{goalService: service}
}

type createGoalRequest struct {
	Title        string  `json:"title"`
	TargetAmount float64 `json:"targetAmount"`
	Deadline     string  `json:"deadline,omitempty"`
}

func (h *GoalHandler) HandleListGoals(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		utils.SendJSONError(w, "authentication required or user ID not found in context", http.StatusUnauthorized)
		return
	}

	goals, err := h.goalService.ListGoals(userID)
	if err != nil {
		logger.L.Error("Error listing savings goals", "userID", userID, "error", err)
		utils.SendJSONError(w, fmt.Sprintf("Error listing savings goals for userID %d: %v", userID, err), http.StatusInternalServerError)
		return
	}
	if goals == nil {
		goals = []models.SavingsGoal{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(goals); err != nil {
		logger.L.Error("Error generating JSON response for savings goals", "userID", userID, "error", err)
	}
}

func (h *GoalHandler) HandleCreateGoal(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		utils.SendJSONError(w, "authentication required or user ID not found in context", http.StatusUnauthorized)
		return
	}

	var req createGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendJSONError(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	goal, err := h.goalService.CreateGoal(userID, req.Title, req.TargetAmount, req.Deadline)
	if err != nil {
		logger.L.Warn("Failed to create savings goal", "userID", userID, "error", err)
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(goal); err != nil {
		logger.L.Error("Error encoding JSON response for created goal", "userID", userID, "error", err)
	}
}

func (h *GoalHandler) HandleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		utils.SendJSONError(w, "authentication required or user ID not found in context", http.StatusUnauthorized)
		return
	}

	goalID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		utils.SendJSONError(w, "Invalid goal ID in URL path", http.StatusBadRequest)
		return
	}

	if err := h.goalService.DeleteGoal(userID, goalID); err != nil {
		logger.L.Warn("Failed to delete savings goal", "userID", userID, "goalID", goalID, "error", err)
		utils.SendJSONError(w, fmt.Sprintf("Savings goal %d could not be deleted: %v", goalID, err), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "Savings goal deleted successfully."})
}
