package scoring

import "github.com/mindfulme/mindful/internal/assessment"

// categoryRecommendations maps (category, level) to an ordered list of
// concrete suggestions. Coverage mirrors categoryFeedback.
var categoryRecommendations = map[assessment.Category]map[SeverityLevel][]string{
	assessment.CategoryEngagement: {
		LevelMinimal:     {"Continue your mindful approach to social media use"},
		LevelLow:         {"Set specific times for checking social media", "Use app timers to maintain boundaries"},
		LevelModerate:    {"Implement regular digital detox periods", "Create tech-free zones in your home"},
		LevelHigh:        {"Set strict daily time limits", "Delete social media apps from your phone", "Use website blockers"},
		LevelSignificant: {"Consider a complete social media break", "Seek professional help for digital addiction", "Replace social media with offline activities"},
	},
	assessment.CategoryEmotional: {
		LevelMinimal:     {"Continue monitoring your emotional responses to social media"},
		LevelLow:         {"Practice gratitude journaling", "Maintain awareness of emotional triggers"},
		LevelModerate:    {"Curate your feed to focus on positive content", "Take regular breaks when feeling overwhelmed"},
		LevelHigh:        {"Unfollow accounts that trigger negative emotions", "Practice mindfulness meditation", "Seek support from friends"},
		LevelSignificant: {"Consider counseling or therapy", "Take an extended break from social media", "Focus on real-world connections"},
	},
	assessment.CategoryComparison: {
		LevelMinimal:     {"Continue your healthy perspective on social media content"},
		LevelLow:         {"Remember that social media shows curated highlights", "Practice self-appreciation"},
		LevelModerate:    {"Create a list of your personal achievements", "Focus on your unique journey", "Limit exposure to triggering content"},
		LevelHigh:        {"Unfollow accounts that trigger comparison", "Practice daily self-compassion", "Focus on personal growth"},
		LevelSignificant: {"Seek professional help for self-esteem", "Take a break from social media", "Join support groups"},
	},
	assessment.CategoryCognitive: {
		LevelMinimal:     {"Maintain your current boundaries with social media"},
		LevelLow:         {"Use app timers to track usage", "Take regular breaks"},
		LevelModerate:    {"Create designated focus time", "Turn off notifications", "Use website blockers"},
		LevelHigh:        {"Implement strict focus sessions", "Delete social media apps temporarily", "Practice mindfulness"},
		LevelSignificant: {"Seek professional help for attention issues", "Consider a digital detox", "Establish new work habits"},
	},
	assessment.CategoryRelationships: {
		LevelMinimal:     {"Continue balancing online and offline connections"},
		LevelLow:         {"Schedule regular in-person meetups", "Use social media to enhance real connections"},
		LevelModerate:    {"Set phone-free social times", "Prioritize face-to-face interactions", "Call instead of messaging"},
		LevelHigh:        {"Create tech-free social events", "Join offline groups or clubs", "Practice active listening"},
		LevelSignificant: {"Seek relationship counseling", "Take a social media break", "Focus on rebuilding in-person connections"},
	},
	assessment.CategoryCoping: {
		LevelMinimal:     {"Continue using healthy coping mechanisms"},
		LevelLow:         {"Develop additional stress management techniques", "Practice mindfulness"},
		LevelModerate:    {"Learn new coping strategies", "Try exercise or meditation", "Journal about emotions"},
		LevelHigh:        {"Seek professional support", "Develop a stress management plan", "Join support groups"},
		LevelSignificant: {"Start therapy or counseling", "Learn emotional regulation techniques", "Build a support network"},
	},
	assessment.CategoryValues: {
		LevelMinimal:     {"Continue expressing your authentic self online"},
		LevelLow:         {"Regularly reflect on your online presence", "Share meaningful content"},
		LevelModerate:    {"Review your social media connections", "Define your personal values", "Be selective about what you share"},
		LevelHigh:        {"Curate your online presence", "Take breaks to reconnect with yourself", "Join authentic communities"},
		LevelSignificant: {"Consider professional guidance", "Rebuild your online presence", "Focus on authentic self-expression"},
	},
}

// generalRecommendations maps the overall severity level to guidance that
// spans categories.
var generalRecommendations = map[SeverityLevel][]string{
	LevelMinimal: {
		"Continue your balanced approach to social media",
		"Share your positive social media habits with others",
		"Monitor any changes in your usage patterns",
		"Stay informed about digital wellness best practices",
	},
	LevelLow: {
		"Set specific goals for maintaining healthy social media habits",
		"Create a weekly digital wellness check-in routine",
		"Explore new ways to enhance your online-offline balance",
		"Share positive content that aligns with your values",
	},
	LevelModerate: {
		"Implement a structured digital wellness plan",
		"Set specific times for social media use",
		"Practice mindfulness when using social media",
		"Consider using app timers and focus modes",
		"Regular check-ins with yourself about your social media use",
	},
	LevelHigh: {
		"Consider a digital detox period",
		"Seek support from friends or family",
		"Create strict boundaries around social media use",
		"Focus on rebuilding offline connections",
		"Consider discussing your results with a mental health professional",
	},
	LevelSignificant: {
		"Strongly consider professional support or counseling",
		"Implement immediate changes to reduce social media use",
		"Develop alternative coping mechanisms",
		"Build a support network for accountability",
		"Focus on mental health and wellbeing resources",
	},
}

// CategoryRecommendations returns the recommendation list for a category
// at a level. The returned slice is a copy.
func CategoryRecommendations(cat assessment.Category, level SeverityLevel) []string {
	recs := categoryRecommendations[cat][level]
	out := make([]string, len(recs))
	copy(out, recs)
	return out
}

// GeneralRecommendations returns the guidance list for an overall level.
// The returned slice is a copy.
func GeneralRecommendations(level SeverityLevel) []string {
	recs := generalRecommendations[level]
	out := make([]string, len(recs))
	copy(out, recs)
	return out
}
