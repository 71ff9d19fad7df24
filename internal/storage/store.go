package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrRecordNotFound = errors.New("record not found")

// RecordKind namespaces the records of one logical type.
type RecordKind string

const (
	KindMeals       RecordKind = "fitai_meals"
	KindGoals       RecordKind = "fitai_goals"
	KindProfile     RecordKind = "fitai_profile"
	KindQuizSession RecordKind = "fitai_quiz_session"
)

func (k RecordKind) String() string {
	return string(k)
}

// Store is a key-value store with one namespace per record kind.
// Get returns ErrRecordNotFound for missing keys; Delete of a missing key is not an error.
type Store interface {
	Get(ctx context.Context, kind RecordKind, key string) ([]byte, error)
	Set(ctx context.Context, kind RecordKind, key string, value []byte) error
	Delete(ctx context.Context, kind RecordKind, key string) error
}

func GetJSON(ctx context.Context, store Store, kind RecordKind, key string, v any) error {
	data, err := store.Get(ctx, kind, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("unmarshal %s record [%s]: %w", kind, key, err)
	}
	return nil
}

func SetJSON(ctx context.Context, store Store, kind RecordKind, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s record [%s]: %w", kind, key, err)
	}
	return store.Set(ctx, kind, key, data)
}

func recordKey(kind RecordKind, key string) string {
	return kind.String() + ":" + key
}
