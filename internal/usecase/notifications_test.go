//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"petcare-booking/internal/pkg/clock"
	"petcare-booking/internal/reminder"
	"petcare-booking/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationPermission(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC))
	scheduler := reminder.NewScheduler(clk, nopNotifier{}, time.Hour)
	uc := usecase.NewNotificationUseCase(scheduler)

	t.Run("starts in the default state", func(t *testing.T) {
		view := uc.GetPermission(ctx)
		assert.Equal(t, "default", view.Permission)
	})

	t.Run("records each valid state", func(t *testing.T) {
		for _, value := range []string{"granted", "denied", "unsupported", "default"} {
			view, err := uc.SetPermission(ctx, value)
			require.NoError(t, err)
			assert.Equal(t, value, view.Permission)
			assert.Equal(t, value, uc.GetPermission(ctx).Permission)
		}
	})

	t.Run("rejects unknown values without changing state", func(t *testing.T) {
		_, err := uc.SetPermission(ctx, "granted")
		require.NoError(t, err)

		_, err = uc.SetPermission(ctx, "maybe")
		assert.ErrorIs(t, err, usecase.ErrInvalidPermission)
		assert.Equal(t, "granted", uc.GetPermission(ctx).Permission)
	})
}
