package providers

import "github.com/tiagokriok/taskflow/internal/domain"

// LocalIdentity is the signed-in user of a single-user terminal session,
// configured rather than authenticated.
type LocalIdentity struct {
	userID string
}

func NewLocalIdentity(userID string) domain.Identity {
	return LocalIdentity{userID: userID}
}

func (l LocalIdentity) CurrentUserID() (string, bool) {
	return l.userID, l.userID != ""
}
