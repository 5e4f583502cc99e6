package postgres

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_PopulatesAllRepositories(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewStore(db)

	assert.NotNil(t, store.Users)
	assert.NotNil(t, store.Projects)
	assert.NotNil(t, store.Assignments)
	assert.NotNil(t, store.Analytics)
	assert.NotNil(t, store.Community)
	assert.NotNil(t, store.JoinRequests)
	assert.NotNil(t, store.Subscriptions)
}
