package usecase

import (
	"context"

	"petcare-booking/internal/pkg/errs"
	"petcare-booking/internal/reminder"
)

var ErrInvalidPermission = errs.New("invalid notification permission")

type PermissionView struct {
	Permission string `json:"permission"`
}

// PermissionGate is the scheduler surface the notification endpoints use.
type PermissionGate interface {
	Permission() reminder.Permission
	SetPermission(p reminder.Permission)
}

type NotificationUseCase interface {
	GetPermission(ctx context.Context) *PermissionView
	// SetPermission records the client's permission response. Granting
	// arms every reminder that was waiting on the prompt.
	SetPermission(ctx context.Context, value string) (*PermissionView, error)
}

type notificationUseCaseImpl struct {
	gate PermissionGate
}

func NewNotificationUseCase(gate PermissionGate) NotificationUseCase {
	return &notificationUseCaseImpl{gate: gate}
}

func (u *notificationUseCaseImpl) GetPermission(_ context.Context) *PermissionView {
	return &PermissionView{Permission: u.gate.Permission().String()}
}

func (u *notificationUseCaseImpl) SetPermission(_ context.Context, value string) (*PermissionView, error) {
	p, err := reminder.NewPermission(value)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPermission)
	}

	u.gate.SetPermission(p)
	return &PermissionView{Permission: p.String()}, nil
}
