package reminder

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

type Notification struct {
	BookingID  uuid.UUID
	PetName    string
	BranchName string
	Body       string
}

// Notifier is the delivery sink for fired reminders.
type Notifier interface {
	Notify(n Notification)
}

// SlogNotifier emits reminders to the structured log. It stands in for the
// push channel the deployed clients use.
type SlogNotifier struct {
	logger *slog.Logger
}

func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	return &SlogNotifier{logger: logger}
}

func (n *SlogNotifier) Notify(notification Notification) {
	n.logger.Info("Recordatorio de Cita - PetCare+",
		"booking_id", notification.BookingID,
		"pet", notification.PetName,
		"branch", notification.BranchName,
		"body", notification.Body,
	)
}

func reminderBody(petName, branchName string) string {
	return fmt.Sprintf("Tu turno para %s en %s es en una hora. ¡Te esperamos!", petName, branchName)
}
