package kv

import (
	"context"
	"time"

	"github.com/rs/xid"
	"github.com/sakif/volunteerhub/internal/model"
	"github.com/sakif/volunteerhub/internal/repository"
)

var _ repository.FeedbackRepository = (*FeedbackRepo)(nil)

// FeedbackRepo stores feedback records in the "feedbacks" bucket.
type FeedbackRepo struct {
	bucket Bucket
}

func NewFeedbackRepo(store *Store) *FeedbackRepo {
	return &FeedbackRepo{bucket: store.Bucket(bucketFeedbacks)}
}

func (r *FeedbackRepo) Create(ctx context.Context, feedback *model.Feedback) error {
	feedback.ID = xid.New().String()
	feedback.CreatedAt = time.Now().UTC()
	return putRecord(ctx, r.bucket, feedback.ID, feedback)
}

func (r *FeedbackRepo) GetByID(ctx context.Context, id string) (*model.Feedback, error) {
	return getRecord[model.Feedback](ctx, r.bucket, "feedback", id)
}

func (r *FeedbackRepo) List(ctx context.Context) ([]model.Feedback, error) {
	return listRecords[model.Feedback](ctx, r.bucket)
}
