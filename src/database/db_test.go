package database

import (
	"context"
	"testing"
)

func TestHealth_Connected(t *testing.T) {
	WithTestDB(t, func(tdb *TestDB) {
		db := NewFromPool(tdb.Pool)
		if err := db.Health(context.Background()); err != nil {
			t.Errorf("expected healthy database, got %v", err)
		}
	})
}

func TestHealth_NilPool(t *testing.T) {
	db := NewFromPool(nil)
	if err := db.Health(context.Background()); err == nil {
		t.Error("expected an error for an uninitialized pool")
	}
}
