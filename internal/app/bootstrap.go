package app

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/cargoshop/cargoshop/internal/domain"
)

// checkSuper ensures the configured admin account exists. The admin flag
// can only be granted here; signup always creates regular users.
func (a *Application) checkSuper(ctx context.Context) error {
	cfg := a.appConfig.System

	var user domain.User
	found, err := a.docStore.Get(ctx, domain.TableUsers, cfg.AdminUsername, &user)
	if err != nil {
		return err
	}
	if found {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), 10)
	if err != nil {
		return err
	}
	admin := domain.User{
		Username: cfg.AdminUsername,
		Password: string(hash),
		Admin:    true,
	}
	if err := a.docStore.Put(ctx, domain.TableUsers, admin.Username, admin); err != nil {
		return err
	}
	zap.S().Infof("created admin account %s", admin.Username)
	return nil
}
