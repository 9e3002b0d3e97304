package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChildrenOfGirlfriend(t *testing.T) {
	cat := Default()

	children := cat.Children("l1_girlfriend")
	require.Len(t, children, 4)
	for _, c := range children {
		assert.Equal(t, LevelAchievement, c.Level)
	}
}

func TestChildrenUnknownID(t *testing.T) {
	cat := Default()
	assert.Empty(t, cat.Children("unknown_id_xyz"))
}

func TestChildrenOfLeaf(t *testing.T) {
	cat := Default()
	assert.Empty(t, cat.Children("l3_daily_approaches"))
}

func TestChildrenPreserveCatalogOrder(t *testing.T) {
	cat := New(
		[]Template{
			{ID: "l1", Title: "root", Level: LevelLifeGoal, Path: PathOnePerson},
			{ID: "a", Title: "a", Level: LevelAchievement, Nature: NatureInput},
			{ID: "b", Title: "b", Level: LevelAchievement, Nature: NatureInput},
			{ID: "c", Title: "c", Level: LevelAchievement, Nature: NatureInput},
		},
		[]Edge{
			{ParentID: "l1", ChildID: "b"},
			{ParentID: "l1", ChildID: "c"},
			{ParentID: "l1", ChildID: "a"},
		},
		nil,
	)

	got := cat.Children("l1")
	require.Len(t, got, 3)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
	assert.Equal(t, "a", got[2].ID)
}

func TestTiersPartition(t *testing.T) {
	cat := Default()
	tiers := cat.Tiers()

	onePerson := ids(tiers.Tier1.OnePerson)
	abundance := ids(tiers.Tier1.Abundance)

	assert.Contains(t, onePerson, "l1_girlfriend")
	assert.Contains(t, abundance, "l1_rotation")
	// The both-paths life goal carries its own tag and sits in neither bucket.
	assert.NotContains(t, onePerson, "l1_dating_freedom")
	assert.NotContains(t, abundance, "l1_dating_freedom")

	require.NotEmpty(t, tiers.Tier2)
	for _, tmpl := range tiers.Tier2 {
		assert.Equal(t, LevelAchievement, tmpl.Level)
	}
}

func TestDefaultCatalogIsStrictTree(t *testing.T) {
	cat := Default()

	parents := make(map[string]int)
	for _, tmpl := range cat.Templates() {
		for _, child := range cat.Children(tmpl.ID) {
			parents[child.ID]++
			assert.Equal(t, tmpl.Level+1, child.Level, "edge %s -> %s must descend one level", tmpl.ID, child.ID)
		}
	}
	for _, tmpl := range cat.Templates() {
		switch tmpl.Level {
		case LevelLifeGoal:
			assert.Zero(t, parents[tmpl.ID], "L1 %s must have no parent", tmpl.ID)
			assert.NotEmpty(t, tmpl.Path, "L1 %s must carry a path tag", tmpl.ID)
		default:
			assert.Equal(t, 1, parents[tmpl.ID], "%s must have exactly one parent", tmpl.ID)
			assert.NotEmpty(t, tmpl.Nature, "%s must carry a nature", tmpl.ID)
		}
	}
}

func TestLifeAreasOnlyDaygameIsStructured(t *testing.T) {
	cat := Default()

	areas := cat.LifeAreas()
	require.NotEmpty(t, areas)
	var sawDaygame bool
	for _, a := range areas {
		if a.ID == "daygame" {
			sawDaygame = true
			continue
		}
		assert.NotEmpty(t, a.Suggestions, "flat area %s needs suggestions", a.ID)
	}
	assert.True(t, sawDaygame)
}

func ids(templates []Template) []string {
	out := make([]string, len(templates))
	for i, t := range templates {
		out[i] = t.ID
	}
	return out
}
