package firestore

import (
	"context"
	"fmt"
	"log/slog"

	gcfirestore "cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"cityDesk/internal/domain"
	"cityDesk/pkg/e"
)

type UserRepo struct {
	client *gcfirestore.Client
	logger *slog.Logger
}

func NewUserRepo(client *gcfirestore.Client, logger *slog.Logger) *UserRepo {
	return &UserRepo{client: client, logger: logger}
}

func (r *UserRepo) doc(id uuid.UUID) *gcfirestore.DocumentRef {
	return r.client.Collection(usersCollection).Doc(id.String())
}

func (r *UserRepo) Create(ctx context.Context, user *domain.User) error {
	const op = "firestore.User.Create"

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if _, err := r.doc(user.ID).Create(ctx, toUserDoc(*user)); err != nil {
		r.logger.Error("firestore create failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (r *UserRepo) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	const op = "firestore.User.Get"

	snap, err := r.doc(id).Get(ctx)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	var doc userDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	user, err := doc.toDomain()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &user, nil
}

func (r *UserRepo) UpdateGeographicAreas(ctx context.Context, id uuid.UUID, areas []domain.GeographicArea) error {
	const op = "firestore.User.UpdateGeographicAreas"

	if areas == nil {
		areas = []domain.GeographicArea{}
	}
	_, err := r.doc(id).Update(ctx, []gcfirestore.Update{
		{Path: "geographic_areas", Value: areas},
	})
	if err != nil {
		r.logger.Error("firestore update failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	return nil
}
