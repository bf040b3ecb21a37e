package entity

// User is a reviewer from the source dataset. Only the display name is
// carried besides the natural key; an upsert by ID overwrites the name.
type User struct {
	ID   string // Natural key from the source dataset.
	Name string // Display name; may be empty when the source row had fewer names than ids.
}
