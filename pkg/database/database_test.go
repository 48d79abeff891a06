package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConnect_InvalidURI(t *testing.T) {
	_, err := Connect(context.Background(), "postgres://localhost:5432", time.Second)
	assert.Error(t, err)
}

func TestConnect_Unreachable(t *testing.T) {
	if testing.Short() {
		t.Skip("waits for server selection")
	}
	_, err := Connect(context.Background(), "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=200", 500*time.Millisecond)
	assert.Error(t, err)
}
