package kv

import (
	"context"
	"time"

	"github.com/rs/xid"
	"github.com/sakif/volunteerhub/internal/model"
	"github.com/sakif/volunteerhub/internal/repository"
)

var _ repository.VolunteerRepository = (*VolunteerRepo)(nil)

// VolunteerRepo stores volunteers in the "volunteers" bucket.
type VolunteerRepo struct {
	bucket Bucket
}

func NewVolunteerRepo(store *Store) *VolunteerRepo {
	return &VolunteerRepo{bucket: store.Bucket(bucketVolunteers)}
}

// Create assigns a fresh ID and the creation timestamp, then stores the
// volunteer. CreatedAt is always set here — caller-supplied values are
// overwritten.
func (r *VolunteerRepo) Create(ctx context.Context, volunteer *model.Volunteer) error {
	volunteer.ID = xid.New().String()
	volunteer.CreatedAt = time.Now().UTC()
	return putRecord(ctx, r.bucket, volunteer.ID, volunteer)
}

func (r *VolunteerRepo) GetByID(ctx context.Context, id string) (*model.Volunteer, error) {
	return getRecord[model.Volunteer](ctx, r.bucket, "volunteer", id)
}

func (r *VolunteerRepo) List(ctx context.Context) ([]model.Volunteer, error) {
	return listRecords[model.Volunteer](ctx, r.bucket)
}

// ListRange returns the half-open slice [start, end) of List, clamped to the
// listing bounds.
func (r *VolunteerRepo) ListRange(ctx context.Context, start, end int) ([]model.Volunteer, error) {
	return listRecordsRange[model.Volunteer](ctx, r.bucket, start, end)
}
