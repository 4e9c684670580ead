package service

import (
	"context"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"hometasks/internal/model"
	"hometasks/internal/store"
)

func strptr(s string) *string { return &s }

// seedAccounts are the predefined demo accounts. Plaintext passwords are
// hashed on startup and handed to the auth service; only the directory
// fields reach the store.
var seedAccounts = []struct {
	password string
	user     model.User
}{
	{
		password: "admin",
		user: model.User{
			ID:                  "user-admin",
			Name:                "Admin General",
			Username:            "admin",
			Role:                model.RoleAdmin,
			JobPositionID:       "jp-admin",
			Email:               strptr("admin@example.com"),
			WhatsappCountryCode: strptr("+1"),
			WhatsappNumber:      strptr("234567890"),
		},
	},
	{
		password: "demo",
		user: model.User{
			ID:                  "user-demo",
			Name:                "Empleado Demo",
			Username:            "demo",
			Role:                model.RoleEmployee,
			JobPositionID:       "jp-1",
			Email:               strptr("demo@example.com"),
			WhatsappCountryCode: strptr("+506"),
			WhatsappNumber:      strptr("70718989"),
		},
	},
	{
		password: "password",
		user: model.User{
			ID:                  "user-jane",
			Name:                "Jane Doe",
			Username:            "jane",
			Role:                model.RoleEmployee,
			JobPositionID:       "jp-2",
			Email:               strptr("jane.doe@example.com"),
			WhatsappCountryCode: strptr("+1"),
			WhatsappNumber:      strptr("122334455"),
		},
	},
}

// SeedCredentials builds the login table for the predefined accounts.
func SeedCredentials() ([]Credential, error) {
	credentials := make([]Credential, 0, len(seedAccounts))
	for _, acc := range seedAccounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(acc.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		credentials = append(credentials, Credential{
			Username:     acc.user.Username,
			PasswordHash: string(hash),
			User:         acc.user,
		})
	}
	return credentials, nil
}

// EnsureSeeded populates the catalogs and the employee directory on first
// run. A "seeded" marker in the store makes the operation idempotent, so
// later edits and deletions of the seed data survive restarts.
func EnsureSeeded(ctx context.Context, st *store.Store, logger *slog.Logger) error {
	var seeded bool
	if _, err := st.Get(ctx, store.KeySeeded, &seeded); err != nil {
		return err
	}
	if seeded {
		return nil
	}

	sections := []model.Section{
		{ID: "sec-1", Name: "Cocina"},
		{ID: "sec-2", Name: "Sala de Estar"},
		{ID: "sec-3", Name: "Baños"},
		{ID: "sec-4", Name: "Dormitorios"},
		{ID: "sec-5", Name: "Jardín y Exteriores"},
	}
	if err := st.Set(ctx, store.KeySections, sections); err != nil {
		return err
	}

	positions := []model.JobPosition{
		{ID: "jp-1", Name: "Limpieza General"},
		{ID: "jp-2", Name: "Jardinería"},
		{ID: "jp-admin", Name: "Administrador"},
	}
	if err := st.Set(ctx, store.KeyJobPositions, positions); err != nil {
		return err
	}

	projects := []model.Project{
		{ID: "proj-1", Name: "Limpieza de Primavera", Description: "Limpieza profunda de toda la casa."},
	}
	if err := st.Set(ctx, store.KeyProjects, projects); err != nil {
		return err
	}

	users := make([]model.User, 0, len(seedAccounts))
	for _, acc := range seedAccounts {
		users = append(users, acc.user)
	}
	if err := st.Set(ctx, store.KeyUsers, users); err != nil {
		return err
	}

	if err := st.Set(ctx, store.KeySeeded, true); err != nil {
		return err
	}
	if logger != nil {
		logger.Info("seeded initial data",
			slog.Int("sections", len(sections)),
			slog.Int("job_positions", len(positions)),
			slog.Int("users", len(users)))
	}
	return nil
}
