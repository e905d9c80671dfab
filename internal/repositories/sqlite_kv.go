package repositories

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// SqliteKV is the durable KV backing, one blob row per key.
type SqliteKV struct {
	db *gorm.DB
}

func NewSqliteKV(db *gorm.DB) *SqliteKV {
	return &SqliteKV{db: db}
}

func (kv *SqliteKV) Get(ctx context.Context, key string) ([]byte, error) {
	blob := &StoredBlob{}
	err := kv.db.WithContext(ctx).First(blob, "id = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return blob.Value, nil
}

func (kv *SqliteKV) Set(ctx context.Context, key string, value []byte) error {
	return kv.db.WithContext(ctx).Save(StoredBlob{
		ID:    key,
		Value: value,
	}).Error
}

func (kv *SqliteKV) Delete(ctx context.Context, key string) error {
	return kv.db.WithContext(ctx).Delete(&StoredBlob{}, "id = ?", key).Error
}
