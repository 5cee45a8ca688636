package service

import "VidTube.com/pkg/errno"

// Authorize lets actorID mutate a resource owned by ownerID only when they
// are the same user. msg is the Forbidden message reported otherwise.
func Authorize(ownerID, actorID int64, msg string) error {
	if ownerID != actorID {
		return errno.ForbiddenErr.WithMessage(msg)
	}
	return nil
}
