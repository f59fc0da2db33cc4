package models

// Member is a participant of a group or event: a display name plus the
// principal the commemorative token is minted to.
type Member struct {
	Name             string    `json:"name"`
	InternetIdentity Principal `json:"internet_identity"`
}

// Group is a named set of members. The leader account is only present in the
// envelope revision of the backend interface.
type Group struct {
	GroupName    string   `json:"group_name"`
	GroupLeader  *Account `json:"group_leader,omitempty"`
	GroupMembers []Member `json:"group_members"`
}

// GroupEntry pairs a group with its id, as returned by get_all_groups.
type GroupEntry struct {
	ID    string `json:"id"`
	Group Group  `json:"group"`
}
