package catalog

// Default returns the built-in daygame catalog: three life goals, their
// achievement milestones and trackable actions, and the life-area list.
func Default() *Catalog {
	return New(defaultTemplates, defaultEdges, defaultLifeAreas)
}

var defaultTemplates = []Template{
	// Level 1 — life goals
	{ID: "l1_girlfriend", Title: "Find a Girlfriend", Level: LevelLifeGoal, Path: PathOnePerson},
	{ID: "l1_rotation", Title: "Build a Dating Rotation", Level: LevelLifeGoal, Nature: NatureOutcome, Path: PathAbundance},
	{ID: "l1_dating_freedom", Title: "Total Dating Freedom", Level: LevelLifeGoal, Path: PathBoth},

	// Level 2 — achievements under "Find a Girlfriend"
	{ID: "l2_overcome_aa", Title: "Overcome Approach Anxiety", Level: LevelAchievement, Nature: NatureInput, TemplateType: TypeMilestoneLadder, DefaultTarget: 100},
	{ID: "l2_conversation_skills", Title: "Master Daygame Conversation", Level: LevelAchievement, Nature: NatureInput, TemplateType: TypeMilestoneLadder, DefaultTarget: 50},
	{ID: "l2_dating_skills", Title: "Lead Great Dates", Level: LevelAchievement, Nature: NatureOutcome, TemplateType: TypeMilestoneLadder, DefaultTarget: 10},
	{ID: "l2_relationship_ready", Title: "Become Relationship Ready", Level: LevelAchievement, Nature: NatureInput, TemplateType: TypeMilestoneLadder, DefaultTarget: 1},

	// Level 2 — achievements under "Build a Dating Rotation"
	{ID: "l2_volume_approaching", Title: "Build an Approaching Habit", Level: LevelAchievement, Nature: NatureInput, TemplateType: TypeHabitRamp, DefaultTarget: 20},
	{ID: "l2_texting_game", Title: "Dial In Your Texting", Level: LevelAchievement, Nature: NatureInput, TemplateType: TypeMilestoneLadder, DefaultTarget: 20},
	{ID: "l2_date_pipeline", Title: "Run a Date Pipeline", Level: LevelAchievement, Nature: NatureOutcome, TemplateType: TypeMilestoneLadder, DefaultTarget: 12},

	// Level 2 — achievements under "Total Dating Freedom"
	{ID: "l2_lifestyle_balance", Title: "Balance Dating and Life", Level: LevelAchievement, Nature: NatureInput, TemplateType: TypeHabitRamp, DefaultTarget: 2},
	{ID: "l2_social_circle", Title: "Grow Your Social Circle", Level: LevelAchievement, Nature: NatureInput, TemplateType: TypeMilestoneLadder, DefaultTarget: 6},

	// Level 3 — trackable actions
	{ID: "l3_daily_approaches", Title: "Do 5 Approaches Per Session", Level: LevelAction, Nature: NatureInput, TemplateType: TypeHabitRamp, DisplayCategory: CategoryFieldWork, DefaultTarget: 5, LinkedMetric: "approaches"},
	{ID: "l3_warmup_sets", Title: "Open Three Warm-Up Sets", Level: LevelAction, Nature: NatureInput, TemplateType: TypeHabitRamp, DisplayCategory: CategoryFieldWork, DefaultTarget: 3},
	{ID: "l3_contact_rate", Title: "Collect Ten Numbers", Level: LevelAction, Nature: NatureOutcome, TemplateType: TypeMilestoneLadder, DisplayCategory: CategoryResults, DefaultTarget: 10, LinkedMetric: "numbers"},

	{ID: "l3_long_sets", Title: "Hold Ten-Minute Sets", Level: LevelAction, Nature: NatureInput, TemplateType: TypeHabitRamp, DisplayCategory: CategoryFieldWork, DefaultTarget: 3},
	{ID: "l3_instant_dates", Title: "Take Five Instant Dates", Level: LevelAction, Nature: NatureOutcome, TemplateType: TypeMilestoneLadder, DisplayCategory: CategoryDates, DefaultTarget: 5, LinkedMetric: "instant_dates"},

	{ID: "l3_weekly_dates", Title: "Go On Two Dates a Week", Level: LevelAction, Nature: NatureOutcome, TemplateType: TypeHabitRamp, DisplayCategory: CategoryDates, DefaultTarget: 2, LinkedMetric: "dates"},
	{ID: "l3_second_dates", Title: "Secure Three Second Dates", Level: LevelAction, Nature: NatureOutcome, TemplateType: TypeMilestoneLadder, DisplayCategory: CategoryDates, DefaultTarget: 3},
	{ID: "l3_intimacy", Title: "Build Physical Intimacy", Level: LevelAction, Nature: NatureOutcome, TemplateType: TypeMilestoneLadder, DisplayCategory: CategoryIntimate, DefaultTarget: 1},

	{ID: "l3_exclusivity_talk", Title: "Have the Exclusivity Talk", Level: LevelAction, Nature: NatureOutcome, TemplateType: TypeMilestoneLadder, DisplayCategory: CategoryRelationship, DefaultTarget: 1},
	{ID: "l3_quality_time", Title: "Plan Quality Time Weekly", Level: LevelAction, Nature: NatureInput, TemplateType: TypeHabitRamp, DisplayCategory: CategoryRelationship, DefaultTarget: 1},

	{ID: "l3_approach_volume", Title: "Hit Twenty Approaches a Week", Level: LevelAction, Nature: NatureInput, TemplateType: TypeHabitRamp, DisplayCategory: CategoryFieldWork, DefaultTarget: 20, LinkedMetric: "approaches"},
	{ID: "l3_number_closes", Title: "Close Five Numbers a Week", Level: LevelAction, Nature: NatureOutcome, TemplateType: TypeHabitRamp, DisplayCategory: CategoryResults, DefaultTarget: 5, LinkedMetric: "numbers"},

	{ID: "l3_same_day_text", Title: "Send Same-Day Openers", Level: LevelAction, Nature: NatureInput, TemplateType: TypeHabitRamp, DisplayCategory: CategoryTexting, DefaultTarget: 5},
	{ID: "l3_date_conversions", Title: "Convert Three Numbers to Dates", Level: LevelAction, Nature: NatureOutcome, TemplateType: TypeMilestoneLadder, DisplayCategory: CategoryDates, DefaultTarget: 3, LinkedMetric: "dates"},

	{ID: "l3_first_dates", Title: "Four First Dates a Month", Level: LevelAction, Nature: NatureOutcome, TemplateType: TypeHabitRamp, DisplayCategory: CategoryDates, DefaultTarget: 4, LinkedMetric: "dates"},
	{ID: "l3_rotation_size", Title: "Keep Three Active Prospects", Level: LevelAction, Nature: NatureOutcome, TemplateType: TypeMilestoneLadder, DisplayCategory: CategoryResults, DefaultTarget: 3},

	{ID: "l3_weekly_sessions", Title: "Two Daygame Sessions a Week", Level: LevelAction, Nature: NatureInput, TemplateType: TypeHabitRamp, DisplayCategory: CategoryFieldWork, DefaultTarget: 2},
	{ID: "l3_host_events", Title: "Host a Monthly Get-Together", Level: LevelAction, Nature: NatureInput, TemplateType: TypeMilestoneLadder, DisplayCategory: CategoryRelationship, DefaultTarget: 1},
}

var defaultEdges = []Edge{
	{ParentID: "l1_girlfriend", ChildID: "l2_overcome_aa"},
	{ParentID: "l1_girlfriend", ChildID: "l2_conversation_skills"},
	{ParentID: "l1_girlfriend", ChildID: "l2_dating_skills"},
	{ParentID: "l1_girlfriend", ChildID: "l2_relationship_ready"},

	{ParentID: "l1_rotation", ChildID: "l2_volume_approaching"},
	{ParentID: "l1_rotation", ChildID: "l2_texting_game"},
	{ParentID: "l1_rotation", ChildID: "l2_date_pipeline"},

	{ParentID: "l1_dating_freedom", ChildID: "l2_lifestyle_balance"},
	{ParentID: "l1_dating_freedom", ChildID: "l2_social_circle"},

	{ParentID: "l2_overcome_aa", ChildID: "l3_daily_approaches"},
	{ParentID: "l2_overcome_aa", ChildID: "l3_warmup_sets"},
	{ParentID: "l2_overcome_aa", ChildID: "l3_contact_rate"},

	{ParentID: "l2_conversation_skills", ChildID: "l3_long_sets"},
	{ParentID: "l2_conversation_skills", ChildID: "l3_instant_dates"},

	{ParentID: "l2_dating_skills", ChildID: "l3_weekly_dates"},
	{ParentID: "l2_dating_skills", ChildID: "l3_second_dates"},
	{ParentID: "l2_dating_skills", ChildID: "l3_intimacy"},

	{ParentID: "l2_relationship_ready", ChildID: "l3_exclusivity_talk"},
	{ParentID: "l2_relationship_ready", ChildID: "l3_quality_time"},

	{ParentID: "l2_volume_approaching", ChildID: "l3_approach_volume"},
	{ParentID: "l2_volume_approaching", ChildID: "l3_number_closes"},

	{ParentID: "l2_texting_game", ChildID: "l3_same_day_text"},
	{ParentID: "l2_texting_game", ChildID: "l3_date_conversions"},

	{ParentID: "l2_date_pipeline", ChildID: "l3_first_dates"},
	{ParentID: "l2_date_pipeline", ChildID: "l3_rotation_size"},

	{ParentID: "l2_lifestyle_balance", ChildID: "l3_weekly_sessions"},
	{ParentID: "l2_social_circle", ChildID: "l3_host_events"},
}

var defaultLifeAreas = []LifeArea{
	{
		ID:    "daygame",
		Name:  "Daygame",
		Color: "amber",
		Icon:  "target",
		Suggestions: []string{
			"Approach during your commute",
			"Do one weekend session in a new city",
		},
	},
	{
		ID:    "fitness",
		Name:  "Fitness",
		Color: "emerald",
		Icon:  "dumbbell",
		Suggestions: []string{
			"Lift three times a week",
			"Run a 10k",
			"Fix your sleep schedule",
		},
	},
	{
		ID:    "career",
		Name:  "Career",
		Color: "sky",
		Icon:  "briefcase",
		Suggestions: []string{
			"Ship a side project",
			"Negotiate a raise",
			"Learn a new skill each quarter",
		},
	},
	{
		ID:    "social",
		Name:  "Social Life",
		Color: "violet",
		Icon:  "users",
		Suggestions: []string{
			"Host a dinner once a month",
			"Reconnect with two old friends",
		},
	},
	{
		ID:    "style",
		Name:  "Style & Grooming",
		Color: "rose",
		Icon:  "shirt",
		Suggestions: []string{
			"Overhaul your wardrobe",
			"Get a haircut that fits your face",
		},
	},
}
