// Package firestore is the document-store backend. It implements the same
// repository contracts as the postgres package over Cloud Firestore.
package firestore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	gcfirestore "cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"cityDesk/internal/config"
	"cityDesk/internal/service"
)

const (
	issuesCollection = "issues"
	usersCollection  = "users"
	areasCollection  = "areas"
)

type Firestore struct {
	Client    *gcfirestore.Client
	IssueRepo *IssueRepo
	UserRepo  *UserRepo
	AreaRepo  *AreaRepo
}

// NewFirestore connects through a Firebase app. Without a credentials path
// the default application credentials (or FIRESTORE_EMULATOR_HOST) apply.
func NewFirestore(ctx context.Context, cfg config.FirestoreConfig, logger *slog.Logger) (*Firestore, error) {
	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("storage.firestore.NewApp: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("storage.firestore.Client: %w", err)
	}

	logger.Info("firestore connected", slog.String("project_id", cfg.ProjectID))
	return New(client, logger), nil
}

func New(client *gcfirestore.Client, logger *slog.Logger) *Firestore {
	return &Firestore{
		Client:    client,
		IssueRepo: NewIssueRepo(client, logger),
		UserRepo:  NewUserRepo(client, logger),
		AreaRepo:  NewAreaRepo(client, logger),
	}
}

func (f *Firestore) Issues() service.IssueRepository { return f.IssueRepo }
func (f *Firestore) Users() service.UserRepository   { return f.UserRepo }
func (f *Firestore) Areas() service.AreaRepository   { return f.AreaRepo }

// Ping reads at most one area document; an empty collection is healthy.
func (f *Firestore) Ping(ctx context.Context) error {
	iter := f.Client.Collection(areasCollection).Limit(1).Documents(ctx)
	defer iter.Stop()
	if _, err := iter.Next(); err != nil && !errors.Is(err, iterator.Done) {
		return fmt.Errorf("firestore ping: %w", err)
	}
	return nil
}

func (f *Firestore) Close() error {
	return f.Client.Close()
}
