package kv

import (
	"context"

	"github.com/rs/xid"
	"github.com/sakif/volunteerhub/internal/model"
	"github.com/sakif/volunteerhub/internal/repository"
)

// compile-time check that *AdminRepo implements repository.AdminRepository
var _ repository.AdminRepository = (*AdminRepo)(nil)

// AdminRepo stores admins in the "admins" bucket.
type AdminRepo struct {
	bucket Bucket
}

func NewAdminRepo(store *Store) *AdminRepo {
	return &AdminRepo{bucket: store.Bucket(bucketAdmins)}
}

// Create assigns a fresh ID and stores the admin. The record is mutated in
// place so the caller gets the stored form back.
func (r *AdminRepo) Create(ctx context.Context, admin *model.Admin) error {
	admin.ID = xid.New().String()
	return putRecord(ctx, r.bucket, admin.ID, admin)
}

func (r *AdminRepo) GetByID(ctx context.Context, id string) (*model.Admin, error) {
	return getRecord[model.Admin](ctx, r.bucket, "admin", id)
}

func (r *AdminRepo) List(ctx context.Context) ([]model.Admin, error) {
	return listRecords[model.Admin](ctx, r.bucket)
}
