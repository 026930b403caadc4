package kv

import (
	"context"
	"time"

	"github.com/rs/xid"
	"github.com/sakif/volunteerhub/internal/model"
	"github.com/sakif/volunteerhub/internal/repository"
)

var _ repository.EventRepository = (*EventRepo)(nil)

// EventRepo stores events in the "events" bucket.
type EventRepo struct {
	bucket Bucket
}

func NewEventRepo(store *Store) *EventRepo {
	return &EventRepo{bucket: store.Bucket(bucketEvents)}
}

func (r *EventRepo) Create(ctx context.Context, event *model.Event) error {
	event.ID = xid.New().String()
	event.CreatedAt = time.Now().UTC()
	return putRecord(ctx, r.bucket, event.ID, event)
}

func (r *EventRepo) GetByID(ctx context.Context, id string) (*model.Event, error) {
	return getRecord[model.Event](ctx, r.bucket, "event", id)
}

func (r *EventRepo) List(ctx context.Context) ([]model.Event, error) {
	return listRecords[model.Event](ctx, r.bucket)
}
