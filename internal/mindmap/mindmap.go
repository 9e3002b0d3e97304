// Package mindmap builds an interactive node tree for a life goal's
// subtree. Nodes live in a flat map keyed by template id with explicit
// parent/child references; "the tree" is the root id plus the map, so
// expand/select updates are single map writes.
package mindmap

import (
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/reachjvc/daygame-coach-api/internal/catalog"
)

// Node is a display-oriented view of one template. Numbering is
// assigned once at build time from sibling order and never recomputed
// after toggling.
type Node struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Level           int       `json:"level"`
	Nature          string    `json:"nature,omitempty"`
	DisplayCategory string    `json:"displayCategory,omitempty"`
	Numbering       string    `json:"numbering"`
	IsExpanded      bool      `json:"isExpanded"`
	IsSelected      bool      `json:"isSelected"`
	TargetDate      time.Time `json:"targetDate"`
	HoursPerWeek    float64   `json:"hoursPerWeek,omitempty"`
	ParentID        string    `json:"parentId,omitempty"`
	ChildIDs        []string  `json:"childIds,omitempty"`
}

// Map holds a built mind-map: the root node id plus every node in a
// flat arena.
type Map struct {
	RootID string           `json:"rootId"`
	Nodes  map[string]*Node `json:"nodes"`
}

// categoryPriority fixes the display order of L3 siblings. Categories
// not listed sort after all listed ones, keeping catalog order among
// themselves.
var categoryPriority = map[string]int{
	catalog.CategoryFieldWork:    0,
	catalog.CategoryResults:      1,
	catalog.CategoryIntimate:     2,
	catalog.CategoryTexting:      3,
	catalog.CategoryDates:        4,
	catalog.CategoryRelationship: 5,
}

func categoryRank(category string) int {
	if r, ok := categoryPriority[category]; ok {
		return r
	}
	return len(categoryPriority)
}

// Build constructs the mind-map for an L1 template: root expanded and
// unselected, every descendant collapsed and unselected, numbering
// from 1-based sibling position ("2", "2.3"). Returns nil for an
// unknown or non-L1 id.
func Build(cat *catalog.Catalog, l1ID string) *Map {
	return BuildAt(cat, l1ID, time.Now())
}

// BuildAt is Build with an explicit clock for the target-date
// estimates.
func BuildAt(cat *catalog.Catalog, l1ID string, now time.Time) *Map {
	rootTemplate, ok := cat.Template(l1ID)
	if !ok || rootTemplate.Level != catalog.LevelLifeGoal {
		return nil
	}

	m := &Map{RootID: l1ID, Nodes: make(map[string]*Node)}
	root := newNode(rootTemplate, "", "")
	root.IsExpanded = true
	root.TargetDate = now.AddDate(1, 0, 0)
	m.Nodes[root.ID] = root

	for i, l2 := range cat.Children(l1ID) {
		num := strconv.Itoa(i + 1)
		l2Node := newNode(l2, num, root.ID)
		l2Node.TargetDate = now.AddDate(0, 3*(i+1), 0)
		l2Node.HoursPerWeek = EstimateHoursPerWeek(cat, l2.ID)
		m.Nodes[l2Node.ID] = l2Node
		root.ChildIDs = append(root.ChildIDs, l2Node.ID)

		children := cat.Children(l2.ID)
		sort.SliceStable(children, func(a, b int) bool {
			return categoryRank(children[a].DisplayCategory) < categoryRank(children[b].DisplayCategory)
		})
		for j, l3 := range children {
			l3Node := newNode(l3, num+"."+strconv.Itoa(j+1), l2Node.ID)
			l3Node.TargetDate = l2Node.TargetDate
			m.Nodes[l3Node.ID] = l3Node
			l2Node.ChildIDs = append(l2Node.ChildIDs, l3Node.ID)
		}
	}
	return m
}

func newNode(t catalog.Template, numbering, parentID string) *Node {
	return &Node{
		ID:              t.ID,
		Title:           t.Title,
		Level:           int(t.Level),
		Nature:          string(t.Nature),
		DisplayCategory: t.DisplayCategory,
		Numbering:       numbering,
		ParentID:        parentID,
	}
}

// Node returns the node for id, or nil.
func (m *Map) Node(id string) *Node {
	return m.Nodes[id]
}

// ToggleExpanded flips a node's expanded flag. Unknown ids are
// ignored.
func (m *Map) ToggleExpanded(id string) {
	if n := m.Nodes[id]; n != nil {
		n.IsExpanded = !n.IsExpanded
	}
}

// SetSelected sets a node's selection. Selecting or deselecting an
// achievement node forces the same state onto every one of its action
// children in the same update, so parent and children never disagree.
func (m *Map) SetSelected(id string, selected bool) {
	n := m.Nodes[id]
	if n == nil {
		return
	}
	n.IsSelected = selected
	if n.Level == int(catalog.LevelAchievement) {
		for _, cid := range n.ChildIDs {
			if child := m.Nodes[cid]; child != nil {
				child.IsSelected = selected
			}
		}
	}
}

// ToggleSelected flips a node's selection, with the same cascade as
// SetSelected.
func (m *Map) ToggleSelected(id string) {
	if n := m.Nodes[id]; n != nil {
		m.SetSelected(id, !n.IsSelected)
	}
}

// EstimateHoursPerWeek gives a crude weekly time budget for an L2: 1.5
// hours per input-nature action child plus 0.5 per outcome-nature
// child, rounded to the nearest half hour. An order-of-magnitude
// signal, not a measurement.
func EstimateHoursPerWeek(cat *catalog.Catalog, l2ID string) float64 {
	var hours float64
	for _, child := range cat.Children(l2ID) {
		switch child.Nature {
		case catalog.NatureInput:
			hours += 1.5
		case catalog.NatureOutcome:
			hours += 0.5
		}
	}
	return math.Round(hours*2) / 2
}
