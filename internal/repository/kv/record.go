package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sakif/volunteerhub/internal/apperror"
)

// Generic helpers shared by the typed repositories. Each repository owns ID
// and timestamp assignment for its entity; these handle only the JSON codec
// and the not-found translation.

func putRecord(ctx context.Context, b Bucket, key string, record any) error {
	value, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding record %s/%s: %w", b.name, key, err)
	}
	return b.Put(ctx, key, value)
}

func getRecord[T any](ctx context.Context, b Bucket, resource, id string) (*T, error) {
	value, err := b.Get(ctx, id)
	if err != nil {
		if errors.Is(err, errKeyNotFound) {
			return nil, apperror.NotFound(resource, id)
		}
		return nil, err
	}

	var record T
	if err := json.Unmarshal(value, &record); err != nil {
		return nil, fmt.Errorf("decoding record %s/%s: %w", b.name, id, err)
	}
	return &record, nil
}

func decodeRecords[T any](b Bucket, values [][]byte) ([]T, error) {
	records := make([]T, 0, len(values))
	for _, value := range values {
		var record T
		if err := json.Unmarshal(value, &record); err != nil {
			return nil, fmt.Errorf("decoding %s record: %w", b.name, err)
		}
		records = append(records, record)
	}
	return records, nil
}

func listRecords[T any](ctx context.Context, b Bucket) ([]T, error) {
	values, err := b.List(ctx)
	if err != nil {
		return nil, err
	}
	return decodeRecords[T](b, values)
}

func listRecordsRange[T any](ctx context.Context, b Bucket, start, end int) ([]T, error) {
	values, err := b.ListRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return decodeRecords[T](b, values)
}
