package mindmap

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reachjvc/daygame-coach-api/internal/catalog"
)

func TestBuildUnknownID(t *testing.T) {
	assert.Nil(t, Build(catalog.Default(), "unknown_id_xyz"))
	assert.Nil(t, Build(catalog.Default(), "l2_overcome_aa"))
}

func TestBuildDefaultState(t *testing.T) {
	m := Build(catalog.Default(), "l1_girlfriend")
	require.NotNil(t, m)

	root := m.Node(m.RootID)
	require.NotNil(t, root)
	assert.True(t, root.IsExpanded)
	assert.False(t, root.IsSelected)
	assert.Empty(t, root.Numbering)

	for id, n := range m.Nodes {
		if id == m.RootID {
			continue
		}
		assert.False(t, n.IsExpanded, "%s starts collapsed", id)
		assert.False(t, n.IsSelected, "%s starts unselected", id)
	}
}

func TestNumberingFollowsSiblingPosition(t *testing.T) {
	m := Build(catalog.Default(), "l1_girlfriend")
	require.NotNil(t, m)

	root := m.Node(m.RootID)
	for i, l2ID := range root.ChildIDs {
		l2 := m.Node(l2ID)
		require.NotNil(t, l2)
		assert.Equal(t, strconv.Itoa(i+1), l2.Numbering)

		for j, l3ID := range l2.ChildIDs {
			l3 := m.Node(l3ID)
			require.NotNil(t, l3)
			parts := strings.Split(l3.Numbering, ".")
			require.Len(t, parts, 2)
			assert.Equal(t, l2.Numbering, parts[0])
			assert.Equal(t, strconv.Itoa(j+1), parts[1])
		}
	}
}

func TestActionChildrenSortedByCategoryPriority(t *testing.T) {
	cat := catalog.New(
		[]catalog.Template{
			{ID: "l1", Title: "root", Level: catalog.LevelLifeGoal, Path: catalog.PathOnePerson},
			{ID: "l2", Title: "mid", Level: catalog.LevelAchievement, Nature: catalog.NatureInput},
			{ID: "rel", Title: "rel", Level: catalog.LevelAction, Nature: catalog.NatureInput, DisplayCategory: catalog.CategoryRelationship},
			{ID: "odd_b", Title: "odd b", Level: catalog.LevelAction, Nature: catalog.NatureInput, DisplayCategory: "misc"},
			{ID: "field", Title: "field", Level: catalog.LevelAction, Nature: catalog.NatureInput, DisplayCategory: catalog.CategoryFieldWork},
			{ID: "odd_a", Title: "odd a", Level: catalog.LevelAction, Nature: catalog.NatureInput, DisplayCategory: "other"},
			{ID: "text", Title: "text", Level: catalog.LevelAction, Nature: catalog.NatureInput, DisplayCategory: catalog.CategoryTexting},
		},
		[]catalog.Edge{
			{ParentID: "l1", ChildID: "l2"},
			{ParentID: "l2", ChildID: "rel"},
			{ParentID: "l2", ChildID: "odd_b"},
			{ParentID: "l2", ChildID: "field"},
			{ParentID: "l2", ChildID: "odd_a"},
			{ParentID: "l2", ChildID: "text"},
		},
		nil,
	)

	m := Build(cat, "l1")
	require.NotNil(t, m)
	// Priority categories first, unknown categories last in catalog order.
	assert.Equal(t, []string{"field", "text", "rel", "odd_b", "odd_a"}, m.Node("l2").ChildIDs)
}

func TestSelectionCascadesToActionChildren(t *testing.T) {
	m := Build(catalog.Default(), "l1_girlfriend")
	require.NotNil(t, m)

	l2 := m.Node("l2_overcome_aa")
	require.NotNil(t, l2)
	require.NotEmpty(t, l2.ChildIDs)

	m.ToggleSelected("l2_overcome_aa")
	assert.True(t, l2.IsSelected)
	for _, cid := range l2.ChildIDs {
		assert.True(t, m.Node(cid).IsSelected, "select must cascade to %s", cid)
	}

	m.ToggleSelected("l2_overcome_aa")
	assert.False(t, l2.IsSelected)
	for _, cid := range l2.ChildIDs {
		assert.False(t, m.Node(cid).IsSelected, "deselect must cascade to %s", cid)
	}
}

func TestSelectingActionDoesNotCascadeUp(t *testing.T) {
	m := Build(catalog.Default(), "l1_girlfriend")
	require.NotNil(t, m)

	m.SetSelected("l3_warmup_sets", true)
	assert.True(t, m.Node("l3_warmup_sets").IsSelected)
	assert.False(t, m.Node("l2_overcome_aa").IsSelected)
	assert.False(t, m.Node("l3_daily_approaches").IsSelected)
}

func TestToggleExpanded(t *testing.T) {
	m := Build(catalog.Default(), "l1_girlfriend")
	require.NotNil(t, m)

	numbering := m.Node("l2_dating_skills").Numbering
	m.ToggleExpanded("l2_dating_skills")
	assert.True(t, m.Node("l2_dating_skills").IsExpanded)
	m.ToggleExpanded("l2_dating_skills")
	assert.False(t, m.Node("l2_dating_skills").IsExpanded)
	// Numbering is assigned at build time and survives toggling.
	assert.Equal(t, numbering, m.Node("l2_dating_skills").Numbering)

	m.ToggleExpanded("unknown_id_xyz") // no-op
}

func TestEstimateHoursPerWeek(t *testing.T) {
	cat := catalog.New(
		[]catalog.Template{
			{ID: "l2", Title: "mid", Level: catalog.LevelAchievement, Nature: catalog.NatureInput},
			{ID: "i1", Title: "i1", Level: catalog.LevelAction, Nature: catalog.NatureInput},
			{ID: "i2", Title: "i2", Level: catalog.LevelAction, Nature: catalog.NatureInput},
			{ID: "i3", Title: "i3", Level: catalog.LevelAction, Nature: catalog.NatureInput},
			{ID: "o1", Title: "o1", Level: catalog.LevelAction, Nature: catalog.NatureOutcome},
			{ID: "o2", Title: "o2", Level: catalog.LevelAction, Nature: catalog.NatureOutcome},
		},
		[]catalog.Edge{
			{ParentID: "l2", ChildID: "i1"},
			{ParentID: "l2", ChildID: "i2"},
			{ParentID: "l2", ChildID: "i3"},
			{ParentID: "l2", ChildID: "o1"},
			{ParentID: "l2", ChildID: "o2"},
		},
		nil,
	)

	// 3 input children at 1.5h + 2 outcome children at 0.5h.
	assert.Equal(t, 5.5, EstimateHoursPerWeek(cat, "l2"))
	assert.Zero(t, EstimateHoursPerWeek(cat, "unknown_id_xyz"))
}
