package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/reachjvc/daygame-coach-api/internal/database"
	"github.com/reachjvc/daygame-coach-api/internal/middleware"
	"github.com/reachjvc/daygame-coach-api/internal/models"
	"github.com/reachjvc/daygame-coach-api/internal/treegen"
)

// BatchGoalRequest is the payload of POST /api/goals/batch: the goal
// tree a wizard assembled, still linked by client-side temp ids.
type BatchGoalRequest struct {
	Goals []treegen.BatchGoalInsert `json:"goals"`
}

// CreateGoalBatch persists a whole batch in one transaction, swapping
// temp ids for real ids while preserving the parent linkage shape.
// The batch succeeds or fails as a whole; there is no partial commit.
func CreateGoalBatch(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req BatchGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if len(req.Goals) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Batch is empty",
		})
	}

	roots := 0
	for _, item := range req.Goals {
		if item.TempParentID == "" {
			roots++
		}
		if item.Title == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Every goal needs a title",
			})
		}
	}
	if roots != 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Batch must contain exactly one root goal",
		})
	}

	created := make([]models.Goal, 0, len(req.Goals))
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		// Parents come before children in a well-formed batch, so one
		// pass resolves every temp reference.
		realIDs := make(map[string]uuid.UUID, len(req.Goals))
		for _, item := range req.Goals {
			goal := models.Goal{
				UserID:          userID,
				TemplateID:      item.TemplateID,
				Title:           item.Title,
				GoalLevel:       item.GoalLevel,
				GoalType:        item.GoalType,
				TargetValue:     item.TargetValue,
				DisplayCategory: item.DisplayCategory,
				LinkedMetric:    item.LinkedMetric,
			}
			if item.TempParentID != "" {
				parentID, ok := realIDs[item.TempParentID]
				if !ok {
					return fiber.NewError(fiber.StatusBadRequest, "Unknown parent reference in batch")
				}
				goal.ParentID = &parentID
			}
			if err := tx.Create(&goal).Error; err != nil {
				return err
			}
			realIDs[item.TempID] = goal.ID
			created = append(created, goal)
		}
		return nil
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create goals",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"goals": created,
	})
}

// GetGoals lists the user's goals, optionally filtered by level.
func GetGoals(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	query := database.DB.Where("user_id = ?", userID).Order("created_at asc")
	if level := c.QueryInt("level"); level > 0 {
		query = query.Where("goal_level = ?", level)
	}

	var goals []models.Goal
	if err := query.Find(&goals).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load goals",
		})
	}
	return c.JSON(goals)
}

func UpdateGoal(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	goalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid goal ID",
		})
	}

	var goal models.Goal
	if err := database.DB.Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Goal not found",
		})
	}

	var req models.UpdateGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Title != nil {
		goal.Title = *req.Title
	}
	if req.TargetValue != nil {
		goal.TargetValue = *req.TargetValue
	}
	if req.CurrentValue != nil {
		goal.CurrentValue = *req.CurrentValue
	}
	if req.Status != nil {
		goal.Status = *req.Status
	}

	if err := database.DB.Save(&goal).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update goal",
		})
	}
	return c.JSON(goal)
}

func ToggleGoalCompletion(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	goalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid goal ID",
		})
	}

	var goal models.Goal
	if err := database.DB.Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Goal not found",
		})
	}

	goal.IsCompleted = !goal.IsCompleted
	if goal.IsCompleted {
		goal.Status = "completed"
		now := time.Now()
		goal.CompletedAt = &now
	} else {
		goal.Status = "active"
		goal.CompletedAt = nil
	}

	if err := database.DB.Save(&goal).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update goal",
		})
	}
	return c.JSON(goal)
}
