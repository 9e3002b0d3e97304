package catalog

// Catalog is an immutable view over a template set, its parent/child
// edges, and the life-area list. Construct one with New and pass it to
// the engines explicitly; there is no package-level catalog state.
type Catalog struct {
	templates map[string]Template
	order     []string
	children  map[string][]string
	areas     []LifeArea
}

// New builds a Catalog. Template order and per-parent child order
// follow the order of the input slices; edges referring to unknown
// templates are kept (a lookup for them just returns nothing).
func New(templates []Template, edges []Edge, areas []LifeArea) *Catalog {
	c := &Catalog{
		templates: make(map[string]Template, len(templates)),
		order:     make([]string, 0, len(templates)),
		children:  make(map[string][]string),
		areas:     areas,
	}
	for _, t := range templates {
		if _, seen := c.templates[t.ID]; seen {
			continue
		}
		c.templates[t.ID] = t
		c.order = append(c.order, t.ID)
	}
	for _, e := range edges {
		c.children[e.ParentID] = append(c.children[e.ParentID], e.ChildID)
	}
	return c
}

// Template looks a template up by id.
func (c *Catalog) Template(id string) (Template, bool) {
	t, ok := c.templates[id]
	return t, ok
}

// Templates returns every template in catalog order.
func (c *Catalog) Templates() []Template {
	out := make([]Template, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.templates[id])
	}
	return out
}

// Children returns the direct children of a template, one level down,
// in catalog order. Unknown ids and leaves both yield an empty slice;
// neither is an error.
func (c *Catalog) Children(id string) []Template {
	ids := c.children[id]
	out := make([]Template, 0, len(ids))
	for _, cid := range ids {
		if t, ok := c.templates[cid]; ok {
			out = append(out, t)
		}
	}
	return out
}

// LifeAreas returns the life-area list.
func (c *Catalog) LifeAreas() []LifeArea {
	return c.areas
}

// Tiers is the catalog partitioned for the path-picker screens: L1
// templates bucketed by their editorial path tag, plus every L2 as a
// flat achievement list.
type Tiers struct {
	Tier1 struct {
		OnePerson []Template `json:"onePerson"`
		Abundance []Template `json:"abundance"`
	} `json:"tier1"`
	Tier2 []Template `json:"tier2"`
}

// Tiers partitions the catalog. L1 templates tagged PathBoth belong to
// neither bucket; the two buckets cover only explicitly tagged ids.
func (c *Catalog) Tiers() Tiers {
	var tiers Tiers
	for _, id := range c.order {
		t := c.templates[id]
		switch t.Level {
		case LevelLifeGoal:
			switch t.Path {
			case PathOnePerson:
				tiers.Tier1.OnePerson = append(tiers.Tier1.OnePerson, t)
			case PathAbundance:
				tiers.Tier1.Abundance = append(tiers.Tier1.Abundance, t)
			}
		case LevelAchievement:
			tiers.Tier2 = append(tiers.Tier2, t)
		}
	}
	return tiers
}
