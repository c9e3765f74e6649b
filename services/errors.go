package services

import "errors"

// ErrNotFound means the referenced record id does not exist at all.
// ErrForbidden means the record exists but belongs to another user. The
// two are deliberately distinct so the HTTP layer can answer 404 vs 403
// instead of collapsing both into one status.
var (
	ErrNotFound  = errors.New("record not found")
	ErrForbidden = errors.New("not authorized to access this record")

	ErrEmailTaken         = errors.New("user already exists with this email")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
