package domain

import "errors"

// Policy outcomes shared by every feature that consumes the access-control
// decisions. They are distinct from generic failures so transports can map
// them to 403-class responses.
var (
	// ErrPermissionDenied is returned when the authorization policy denies
	// the caller the requested mutation.
	ErrPermissionDenied = errors.New("you don't have permission to perform this action")

	// ErrSelfDeactivation is returned when a privileged caller attempts to
	// deactivate their own account.
	ErrSelfDeactivation = errors.New("you cannot deactivate your own account")
)
