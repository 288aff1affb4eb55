// Package policy decides who may mutate forum content.
package policy

// CanDelete reports whether requesterID owns the resource written by authorID.
// Posts and answers follow the same rule; there is no moderator override.
func CanDelete(authorID, requesterID string) bool {
	return authorID != "" && authorID == requesterID
}
