package domain

import "time"

// FallbackCategoryName is used whenever an entry arrives without a usable
// category name (blank CSV columns, deleted categories at export time).
const FallbackCategoryName = "General"

// Category is a named spending/income bucket. Name lookups during import are
// case-insensitive, but the stored name keeps its original casing; the first
// writer of a name wins.
type Category struct {
	CategoryID string    `json:"categoryID"`
	Name       string    `json:"name"`
	Emoji      *string   `json:"emoji,omitempty"`
	IsDefault  bool      `json:"isDefault"`
	CreatedBy  string    `json:"createdBy"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CategorySeed describes one entry of the default category table used by the
// one-time setup routine.
type CategorySeed struct {
	Name  string
	Emoji string
}

// DefaultCategories is the static seed table applied by
// CategoryService.SeedDefaultCategories. Edit here, not in handler code.
var DefaultCategories = []CategorySeed{
	{Name: "🍜 Food", Emoji: "🍜"},
	{Name: "🚖 Transport", Emoji: "🚖"},
	{Name: "Grocery", Emoji: "🛒"},
	{Name: "Internet", Emoji: "📶"},
	{Name: "Council Tax", Emoji: "🏛️"},
	{Name: "House RENT", Emoji: "🏠"},
	{Name: "Subscriptions", Emoji: "📺"},
	{Name: "💰 Salary", Emoji: "💰"},
	{Name: "Bills", Emoji: "🧾"},
	{Name: "Entertainment", Emoji: "🎬"},
	{Name: "Healthcare", Emoji: "🏥"},
	{Name: "Shopping", Emoji: "🛍️"},
	{Name: "Savings", Emoji: "🏦"},
	{Name: "Other", Emoji: "❓"},
}
