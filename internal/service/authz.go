package service

import "SiteExer/internal/pkg"

// requireAuthor is the single ownership gate shared by every question and
// answer mutate path: only the author may modify or delete.
func requireAuthor(userID, authorID uint64) error {
	if userID != authorID {
		return pkg.ErrForbidden
	}
	return nil
}
