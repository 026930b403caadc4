package kv

import (
	"context"
	"time"

	"github.com/rs/xid"
	"github.com/sakif/volunteerhub/internal/model"
	"github.com/sakif/volunteerhub/internal/repository"
)

var _ repository.RegistrationRepository = (*RegistrationRepo)(nil)

// RegistrationRepo stores registrations in the "registrations" bucket.
type RegistrationRepo struct {
	bucket Bucket
}

func NewRegistrationRepo(store *Store) *RegistrationRepo {
	return &RegistrationRepo{bucket: store.Bucket(bucketRegistrations)}
}

// Create assigns the ID and RegisteredAt. AttendedAt is forced to nil —
// it is a storage-assigned field and no caller may supply it.
func (r *RegistrationRepo) Create(ctx context.Context, registration *model.Registration) error {
	registration.ID = xid.New().String()
	registration.RegisteredAt = time.Now().UTC()
	registration.AttendedAt = nil
	return putRecord(ctx, r.bucket, registration.ID, registration)
}

func (r *RegistrationRepo) GetByID(ctx context.Context, id string) (*model.Registration, error) {
	return getRecord[model.Registration](ctx, r.bucket, "registration", id)
}

func (r *RegistrationRepo) List(ctx context.Context) ([]model.Registration, error) {
	return listRecords[model.Registration](ctx, r.bucket)
}
