// Command seed creates or updates a chat account.
//
//	seed -u alice -p secret -r admin
//
// The database is taken from STORAGE_DB_DATABASE_URI and the bcrypt cost from
// APP_PASSWORD_COST. Re-running with an existing username replaces the
// password hash and role.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/vero/internal/config"
	"github.com/MKhiriev/vero/internal/logger"
	"github.com/MKhiriev/vero/internal/service"
	"github.com/MKhiriev/vero/internal/store"
	"github.com/MKhiriev/vero/models"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "seed:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var username, password, role string

	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	fs.StringVar(&username, "u", "", "Username")
	fs.StringVar(&password, "p", "", "Password")
	fs.StringVar(&role, "r", string(models.RolePartner), "Role: admin or partner")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if !models.Role(role).Valid() {
		return fmt.Errorf("unknown role %q, want %q or %q", role, models.RoleAdmin, models.RolePartner)
	}

	log := logger.NewLogger("vero-seed")
	cfg, err := config.GetSeedConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer storages.Close()

	auth, err := service.NewAuthService(storages.UserRepository, storages.AuditRepository, cfg.App, log)
	if err != nil {
		return err
	}

	user, err := auth.SeedUser(ctx, username, password, models.Role(role))
	if err != nil {
		return err
	}

	fmt.Printf("seeded %s (%s) id=%s\n", user.Username, user.Role, user.ID)
	return nil
}
