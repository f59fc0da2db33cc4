package models

// SubscribeGroupRequest carries the values of a group subscription as the
// user entered them. The leader joins the group under LeaderName with the
// caller's principal.
type SubscribeGroupRequest struct {
	Members    []Member `json:"members"`
	LeaderName string   `json:"leader_name"`
	GroupName  string   `json:"group_name"`
}

// AssignEventRequest names the event and its recipients. The envelope
// revision takes explicit members, the variant revision a group id.
type AssignEventRequest struct {
	EventID string   `json:"event_id"`
	GroupID string   `json:"group_id,omitempty"`
	Members []Member `json:"members,omitempty"`
}

// CreateEventRequest carries the fields of a new event.
type CreateEventRequest struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Metadata    MetadataValue `json:"metadata"`
}

// PageRequest selects a page of token ids: ids strictly greater than Prev,
// at most Take of them. Nil fields fall back to the ledger defaults.
type PageRequest struct {
	Prev *uint64 `json:"prev,omitempty"`
	Take *uint64 `json:"take,omitempty"`
}
