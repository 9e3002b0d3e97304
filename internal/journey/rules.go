package journey

// Answer categories the scoring table keys on.
const (
	answerExperience = "experience"
	answerMotivation = "motivation"
	answerChallenge  = "challenge"
	answerFrequency  = "approachFrequency"
	answerVision     = "successVision"
	answerTimeframe  = "timeframe"
)

// rule maps one (category, answer) pair to a point contribution for
// one template. The whole recommendation model is this table plus the
// generic loop in Recommend; tuning relevance means editing rows here,
// not engine code.
type rule struct {
	category   string
	answer     string
	templateID string
	points     float64
	reason     string
}

var scoringRules = []rule{
	// identity: experience level
	{answerExperience, "newcomer", "l2_overcome_aa", 0.4, "New to approaching, so confidence comes before technique"},
	{answerExperience, "newcomer", "l3_warmup_sets", 0.3, "Low-pressure warm-up sets build momentum fast"},
	{answerExperience, "newcomer", "l3_daily_approaches", 0.3, "A small per-session quota makes approaching routine"},
	{answerExperience, "intermediate", "l2_conversation_skills", 0.5, "You can open; longer conversations are the next gap"},
	{answerExperience, "intermediate", "l3_long_sets", 0.4, "Ten-minute sets force real conversation skills"},
	{answerExperience, "advanced", "l2_date_pipeline", 0.5, "Your field work is solid; systemize the pipeline"},
	{answerExperience, "advanced", "l3_rotation_size", 0.4, "Keeping prospects active is the advanced bottleneck"},

	// identity: motivation
	{answerMotivation, "connection", "l1_girlfriend", 0.3, "You are looking for one real connection"},
	{answerMotivation, "connection", "l2_relationship_ready", 0.4, "Relationship skills matter as much as dating skills"},
	{answerMotivation, "abundance", "l1_rotation", 0.3, "You want an active dating life with options"},
	{answerMotivation, "abundance", "l2_volume_approaching", 0.4, "Volume is what feeds an abundant dating life"},
	{answerMotivation, "self_growth", "l2_overcome_aa", 0.3, "Facing approach anxiety is growth you can measure"},
	{answerMotivation, "self_growth", "l2_conversation_skills", 0.3, "Conversation skill compounds into every area of life"},

	// situation: named current challenge
	{answerChallenge, "approach-anxiety", "l2_overcome_aa", 1.0, "You named approach anxiety as your main blocker"},
	{answerChallenge, "approach-anxiety", "l3_warmup_sets", 0.5, "Warm-up sets take the pressure off the first approach"},
	{answerChallenge, "approach-anxiety", "l3_daily_approaches", 0.5, "A fixed daily quota beats waiting to feel ready"},
	{answerChallenge, "conversations-dying", "l2_conversation_skills", 1.0, "Your conversations stall, so that skill leads"},
	{answerChallenge, "conversations-dying", "l3_long_sets", 0.5, "Longer sets are the direct fix for dying conversations"},
	{answerChallenge, "no-dates", "l2_texting_game", 0.8, "Numbers that never become dates point at texting"},
	{answerChallenge, "no-dates", "l3_date_conversions", 0.6, "Track the number-to-date conversion directly"},
	{answerChallenge, "no-dates", "l2_date_pipeline", 0.5, "A pipeline view shows where dates fall through"},
	{answerChallenge, "inconsistency", "l2_volume_approaching", 0.8, "Consistency is a volume habit, not a mood"},
	{answerChallenge, "inconsistency", "l3_approach_volume", 0.6, "A weekly approach number keeps you honest"},
	{answerChallenge, "inconsistency", "l3_weekly_sessions", 0.5, "Scheduled sessions remove the daily decision"},

	// situation: current approach frequency
	{answerFrequency, "never", "l3_daily_approaches", 0.4, "Starting from zero, a tiny per-session quota works best"},
	{answerFrequency, "rarely", "l3_weekly_sessions", 0.4, "Fixed weekly sessions turn rare into regular"},
	{answerFrequency, "weekly", "l3_approach_volume", 0.3, "You already go out; raise the weekly volume bar"},

	// vision: success definition
	{answerVision, "one-person", "l1_girlfriend", 0.8, "Your definition of success is one great relationship"},
	{answerVision, "one-person", "l2_dating_skills", 0.4, "Great dates are how one connection becomes exclusive"},
	{answerVision, "one-person", "l2_relationship_ready", 0.3, "Being relationship ready makes the right one stick"},
	{answerVision, "abundance", "l1_rotation", 0.8, "Your definition of success is options and abundance"},
	{answerVision, "abundance", "l2_volume_approaching", 0.4, "An abundant dating life runs on approach volume"},
	{answerVision, "abundance", "l2_date_pipeline", 0.4, "A rotation needs a steady date pipeline behind it"},
	{answerVision, "both", "l1_dating_freedom", 0.8, "You want the freedom to choose either path"},
	{answerVision, "both", "l1_girlfriend", 0.3, "Keeping the relationship path open"},
	{answerVision, "both", "l1_rotation", 0.3, "Keeping the abundance path open"},

	// vision: timeframe (the short-timeframe input boost lives in the
	// engine as a multiplier, not here)
	{answerTimeframe, "12-months", "l2_relationship_ready", 0.2, "A year is enough runway to build toward a relationship"},
}

// TopL1 bypasses scoring: the coarse success vision resolves to
// exactly one canonical life goal per branch.
var topL1ByVision = map[string]string{
	"one-person": "l1_girlfriend",
	"abundance":  "l1_rotation",
	"both":       "l1_dating_freedom",
}
