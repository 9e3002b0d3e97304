// Package treegen materializes the full descendant subtree of a life
// goal into a flat, ordered batch of insert records. It does no
// persistence; the batch is handed to the goals API as-is.
package treegen

import (
	"github.com/google/uuid"

	"github.com/reachjvc/daygame-coach-api/internal/catalog"
)

// BatchGoalInsert is an ephemeral, not-yet-persisted goal. Temp ids
// link the batch internally; the insert endpoint swaps them for real
// ids. An insert with no TempParentID is the unique root of its batch.
type BatchGoalInsert struct {
	TempID          string  `json:"_tempId"`
	TempParentID    string  `json:"_tempParentId,omitempty"`
	TemplateID      string  `json:"templateId,omitempty"`
	Title           string  `json:"title"`
	GoalLevel       int     `json:"goal_level"`
	GoalType        string  `json:"goal_type,omitempty"`
	TargetValue     float64 `json:"target_value,omitempty"`
	DisplayCategory string  `json:"display_category,omitempty"`
	LinkedMetric    string  `json:"linked_metric,omitempty"`
}

// Generate expands the subtree under an L1 template breadth-first:
// root first, then the L2 ring, then every L3 grouped under its L2.
// Order within a level follows catalog child order exactly, so two
// calls for the same id produce structurally identical batches that
// differ only in their freshly generated temp ids. An unknown id
// yields an empty batch, not an error.
func Generate(cat *catalog.Catalog, l1ID string) []BatchGoalInsert {
	root, ok := cat.Template(l1ID)
	if !ok || root.Level != catalog.LevelLifeGoal {
		return []BatchGoalInsert{}
	}

	inserts := []BatchGoalInsert{newInsert(root, "")}
	rootTempID := inserts[0].TempID

	type queued struct {
		template catalog.Template
		parent   string
	}
	queue := make([]queued, 0, len(cat.Children(l1ID)))
	for _, child := range cat.Children(l1ID) {
		queue = append(queue, queued{child, rootTempID})
	}

	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]

		ins := newInsert(next.template, next.parent)
		inserts = append(inserts, ins)

		for _, child := range cat.Children(next.template.ID) {
			queue = append(queue, queued{child, ins.TempID})
		}
	}
	return inserts
}

func newInsert(t catalog.Template, parentTempID string) BatchGoalInsert {
	return BatchGoalInsert{
		TempID:          uuid.NewString(),
		TempParentID:    parentTempID,
		TemplateID:      t.ID,
		Title:           t.Title,
		GoalLevel:       int(t.Level),
		GoalType:        string(t.TemplateType),
		TargetValue:     t.DefaultTarget,
		DisplayCategory: t.DisplayCategory,
		LinkedMetric:    t.LinkedMetric,
	}
}
