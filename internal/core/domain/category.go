package domain

// Category classifies tools into one of five fixed dashboard groupings.
// The set is compiled in, never stored as rows; adding a category is a code
// change, not a data migration.
type Category string

const (
	CategoryKnowledge         Category = "KNOWLEDGE"
	CategoryLearningSpace     Category = "LEARNING_SPACE"
	CategoryMyWorkSpace       Category = "MY_WORK_SPACE"
	CategoryCommunity         Category = "COMMUNITY"
	CategoryNewFundsAndTalent Category = "NEW_FUNDS_AND_TALENTS"
)

// CategoryInfo pairs a category key with its display label.
type CategoryInfo struct {
	Key   Category `json:"key"`
	Label string   `json:"label"`
}

// Categories lists every category in display order.
var Categories = []CategoryInfo{
	{Key: CategoryKnowledge, Label: "Knowledge"},
	{Key: CategoryLearningSpace, Label: "Learning Space"},
	{Key: CategoryMyWorkSpace, Label: "My Work Space"},
	{Key: CategoryCommunity, Label: "Community"},
	{Key: CategoryNewFundsAndTalent, Label: "New Funds and Talents"},
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	for _, info := range Categories {
		if info.Key == c {
			return true
		}
	}
	return false
}

// CategoryKeys returns the category keys in display order.
func CategoryKeys() []Category {
	keys := make([]Category, 0, len(Categories))
	for _, info := range Categories {
		keys = append(keys, info.Key)
	}
	return keys
}
