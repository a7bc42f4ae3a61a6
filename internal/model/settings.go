package model

// Theme selects the UI color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// NotificationCategory names a toggleable outbound-notification category.
type NotificationCategory string

const (
	CategoryQuestionAnswers NotificationCategory = "questionAnswers"
	CategoryGoalAchievement NotificationCategory = "goalAchievement"
	CategoryBreakTime       NotificationCategory = "breakTime"
	// CategoryGeneral has no toggle and is always delivered.
	CategoryGeneral NotificationCategory = "general"
)

// NotificationPrefs holds the per-category outbound toggles.
type NotificationPrefs struct {
	QuestionAnswers bool `json:"questionAnswers"`
	GoalAchievement bool `json:"goalAchievement"`
	BreakTime       bool `json:"breakTime"`
}

// Enabled reports whether the given category is switched on. Unknown
// categories default to enabled so new notification kinds are not dropped.
func (p NotificationPrefs) Enabled(category NotificationCategory) bool {
	switch category {
	case CategoryQuestionAnswers:
		return p.QuestionAnswers
	case CategoryGoalAchievement:
		return p.GoalAchievement
	case CategoryBreakTime:
		return p.BreakTime
	default:
		return true
	}
}

// Settings is the singleton preferences record.
type Settings struct {
	Theme         Theme             `json:"theme"`
	Notifications NotificationPrefs `json:"notifications"`
}

// DefaultSettings mirrors the defaults applied when nothing is persisted yet.
func DefaultSettings() Settings {
	return Settings{
		Theme: ThemeLight,
		Notifications: NotificationPrefs{
			QuestionAnswers: true,
			GoalAchievement: true,
			BreakTime:       false,
		},
	}
}
