package components

import (
	"petcare-booking/internal/domain/user"
	"petcare-booking/internal/pkg/config"
	"petcare-booking/internal/pkg/password"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

var DemoModule = fx.Module("demo",
	fx.Provide(
		NewDemoIdentity,
		NewDemoPasswordHash,
	),
)

// PasswordHash carries the bcrypt hash of the demo password so the fx
// graph can tell it apart from other strings.
type PasswordHash string

// NewDemoIdentity builds the single account the mocked login resolves to.
// The id is minted at startup; nothing survives a restart anyway.
func NewDemoIdentity(cfg config.Config) (*user.User, error) {
	email, err := user.NewEmail(cfg.Demo.UserEmail)
	if err != nil {
		return nil, err
	}
	return user.NewUser(uuid.New(), cfg.Demo.UserName, email, cfg.Demo.UserPhoto)
}

func NewDemoPasswordHash(cfg config.Config) (PasswordHash, error) {
	hash, err := password.HashPassword(cfg.Demo.Password)
	if err != nil {
		return "", err
	}
	return PasswordHash(hash), nil
}
