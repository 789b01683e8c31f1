package reminder

import "errors"

var ErrInvalidPermission = errors.New("invalid notification permission")

// Permission mirrors the browser notification permission model, plus an
// explicit unsupported state for clients without the capability at all.
type Permission string

const (
	PermissionDefault     Permission = "default"
	PermissionGranted     Permission = "granted"
	PermissionDenied      Permission = "denied"
	PermissionUnsupported Permission = "unsupported"
)

func NewPermission(value string) (Permission, error) {
	p := Permission(value)
	if !p.IsValid() {
		return "", ErrInvalidPermission
	}
	return p, nil
}

func (p Permission) IsValid() bool {
	switch p {
	case PermissionDefault, PermissionGranted, PermissionDenied, PermissionUnsupported:
		return true
	default:
		return false
	}
}

func (p Permission) String() string {
	return string(p)
}
