package journal

import "github.com/google/uuid"

// TagDefinition is a user-customizable (symbol, description) pair used to
// categorize entries. Symbols are not required to be unique.
type TagDefinition struct {
	ID          string `json:"id"`
	Symbol      string `json:"emoji"`
	Description string `json:"description"`
}

// DefaultTags returns the six seed definitions used on first run or whenever
// the persisted tag collection comes back empty.
func DefaultTags() []TagDefinition {
	return []TagDefinition{
		{ID: uuid.NewString(), Symbol: "📚", Description: "Career & Academics"},
		{ID: uuid.NewString(), Symbol: "🌿", Description: "Health & Wellness"},
		{ID: uuid.NewString(), Symbol: "❤️", Description: "Relationships"},
		{ID: uuid.NewString(), Symbol: "🎨", Description: "Creativity"},
		{ID: uuid.NewString(), Symbol: "😊", Description: "Personal Growth"},
		{ID: uuid.NewString(), Symbol: "💪", Description: "Physical Fitness"},
	}
}
