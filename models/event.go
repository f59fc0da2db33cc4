package models

// Event is something group members can be assigned to; each assignment mints
// a commemorative token per member.
type Event struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Metadata    MetadataValue `json:"metadata"`
}
