package firestore

import (
	"context"
	"errors"
	"log/slog"

	gcfirestore "cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"cityDesk/internal/domain"
	"cityDesk/pkg/e"
)

type AreaRepo struct {
	client *gcfirestore.Client
	logger *slog.Logger
}

func NewAreaRepo(client *gcfirestore.Client, logger *slog.Logger) *AreaRepo {
	return &AreaRepo{client: client, logger: logger}
}

func (r *AreaRepo) Create(ctx context.Context, area *domain.Area) error {
	const op = "firestore.Area.Create"

	if area.ID == uuid.Nil {
		area.ID = uuid.New()
	}
	if _, err := r.client.Collection(areasCollection).Doc(area.ID.String()).Create(ctx, toAreaDoc(*area)); err != nil {
		r.logger.Error("firestore create failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

// List returns the catalog ordered by name. Issue counters are whatever was
// last written to the documents.
func (r *AreaRepo) List(ctx context.Context) ([]domain.Area, error) {
	const op = "firestore.Area.List"

	it := r.client.Collection(areasCollection).OrderBy("name", gcfirestore.Asc).Documents(ctx)
	defer it.Stop()

	areas := make([]domain.Area, 0, 8)
	for {
		snap, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			r.logger.Error("firestore iterate failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}

		var doc areaDoc
		if err := snap.DataTo(&doc); err != nil {
			r.logger.Warn("skipping malformed area", slog.String("doc", snap.Ref.ID), slog.Any("error", err))
			continue
		}
		area, err := doc.toDomain()
		if err != nil {
			r.logger.Warn("skipping malformed area", slog.String("doc", snap.Ref.ID), slog.Any("error", err))
			continue
		}
		areas = append(areas, area)
	}
	return areas, nil
}
