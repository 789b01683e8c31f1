package components

import (
	"context"
	"log/slog"

	"petcare-booking/internal/domain/pet"
	"petcare-booking/internal/domain/user"
	"petcare-booking/internal/infra/memory"
	"petcare-booking/internal/pkg/clock"
	"petcare-booking/internal/pkg/config"
	"petcare-booking/internal/reminder"
	"petcare-booking/internal/usecase"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		fx.Annotate(
			memory.NewPetStore,
			fx.As(new(usecase.PetStore)),
		),
		fx.Annotate(
			memory.NewBookingStore,
			fx.As(new(usecase.BookingStore)),
		),
		fx.Annotate(
			reminder.NewSlogNotifier,
			fx.As(new(reminder.Notifier)),
		),
		fx.Annotate(
			NewReminderScheduler,
			fx.As(new(usecase.ReminderScheduler)),
			fx.As(new(usecase.PermissionGate)),
		),
	),
	fx.Invoke(SeedDemoPets),
)

func NewReminderScheduler(clk clock.Clock, notifier reminder.Notifier, cfg config.Config) *reminder.Scheduler {
	return reminder.NewScheduler(clk, notifier, cfg.Reminder.Lead)
}

type demoPet struct {
	name  string
	breed string
	age   int
	photo string
}

var demoPets = []demoPet{
	{name: "Buddy", breed: "Golden Retriever", age: 3, photo: "https://images.dog.ceo/breeds/retriever-golden/n02099601_100.jpg"},
	{name: "Lucy", breed: "Labrador", age: 5, photo: "https://images.dog.ceo/breeds/labrador/n02099712_100.jpg"},
	{name: "Rocky", breed: "Pitbull", age: 2, photo: "https://images.dog.ceo/breeds/pitbull/20190801_154956.jpg"},
}

// SeedDemoPets fills the in-memory store with the demo account's pets so a
// fresh process has something to show before the first AddPet call.
func SeedDemoPets(cfg config.Config, store usecase.PetStore, owner *user.User, clk clock.Clock, logger *slog.Logger) error {
	if !cfg.Demo.SeedPets {
		return nil
	}

	ctx := context.Background()
	for _, d := range demoPets {
		p, err := pet.NewPet(clk, owner.ID(), d.name, d.breed, d.age, d.photo)
		if err != nil {
			return err
		}
		if err := store.Create(ctx, p); err != nil {
			return err
		}
	}

	logger.Info("demo pets seeded", "count", len(demoPets), "owner", owner.ID())
	return nil
}
