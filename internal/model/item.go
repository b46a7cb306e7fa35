package model

// Item is the domain model for a todo entry.
// ID is assigned once at creation and never changes.
type Item struct {
	ID        string `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// Active reports whether the item still needs doing.
func (i Item) Active() bool { return !i.Completed }
