package service

import (
	"errors"

	"github.com/aryasaumitra/projecthub-backend/internal"
)

const otelName = "github.com/aryasaumitra/projecthub-backend/internal/service"

func hasCode(err error, code internal.ErrorCode) bool {
	var ierr *internal.Error
	return errors.As(err, &ierr) && ierr.Code() == code
}

// owner returns the user whose records caller is limited to, nil when caller may see everything.
func owner(caller internal.Principal) *int64 {
	if caller.IsStaff {
		return nil
	}

	id := caller.UserID

	return &id
}
