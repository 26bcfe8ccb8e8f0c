package models

// AnonymousCreator is shown when a project's creator has no profile row.
const AnonymousCreator = "Anonymous"

// CreatorInfo is the display subset of a creator's profile carried on
// each directory entry.
type CreatorInfo struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// DirectoryEntry is a Project enriched with derived, view-only fields:
// the live member count, whether the current viewer has joined, and the
// creator's display info. Entries live only in the session-scoped
// directory cache and are never written back to storage.
type DirectoryEntry struct {
	Project
	MemberCount int         `json:"member_count"`
	IsJoined    bool        `json:"is_joined"`
	Creator     CreatorInfo `json:"creator"`
}

// Full reports whether the project declares a member cap that has been
// reached. A full project blocks join but never leave.
func (e DirectoryEntry) Full() bool {
	return e.TargetMembers > 0 && e.MemberCount >= e.TargetMembers
}

// DirectoryResponse is the response format for directory listings.
type DirectoryResponse struct {
	Projects []DirectoryEntry `json:"projects"`
	Total    int              `json:"total"`
}
