package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialmedia/internal/apperr"
	"socialmedia/internal/models"
)

func TestMemoryAccounts(t *testing.T) {
	ctx := context.Background()
	accounts := NewMemoryStore().Accounts()

	first, err := accounts.Save(ctx, &models.Account{Username: "alice", Password: "pass1"})
	require.NoError(t, err)
	second, err := accounts.Save(ctx, &models.Account{Username: "bob", Password: "pass2"})
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)

	_, err = accounts.Save(ctx, &models.Account{Username: "alice", Password: "other"})
	assert.ErrorIs(t, err, apperr.ErrDuplicateKey)

	got, err := accounts.FindByUsernameAndPassword(ctx, "bob", "pass2")
	require.NoError(t, err)
	assert.Equal(t, second, got)

	_, err = accounts.FindByUsernameAndPassword(ctx, "bob", "pass1")
	assert.ErrorIs(t, err, apperr.ErrRecordNotFound)
	_, err = accounts.FindByID(ctx, 3)
	assert.ErrorIs(t, err, apperr.ErrRecordNotFound)
}

func TestMemoryAccountsConcurrentRegistration(t *testing.T) {
	ctx := context.Background()
	accounts := NewMemoryStore().Accounts()

	var wg sync.WaitGroup
	var mu sync.Mutex
	successes := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := accounts.Save(ctx, &models.Account{Username: "race", Password: "pass"}); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, successes)
}

func TestMemoryMessages(t *testing.T) {
	ctx := context.Background()
	messages := NewMemoryStore().Messages()

	for _, m := range []models.Message{
		{PostedBy: 1, MessageText: "one"},
		{PostedBy: 2, MessageText: "two"},
		{PostedBy: 1, MessageText: "three"},
	} {
		_, err := messages.Save(ctx, &m)
		require.NoError(t, err)
	}

	all, err := messages.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{all[0].ID, all[1].ID, all[2].ID})

	mine, err := messages.FindByPostedBy(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "three"}, []string{mine[0].MessageText, mine[1].MessageText})

	none, err := messages.FindByPostedBy(ctx, 9)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	require.NoError(t, messages.Update(ctx, &models.Message{ID: 2, PostedBy: 2, MessageText: "changed"}))
	got, err := messages.FindByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "changed", got.MessageText)
	assert.ErrorIs(t, messages.Update(ctx, &models.Message{ID: 8}), apperr.ErrRecordNotFound)

	deleted, err := messages.DeleteByID(ctx, 2)
	require.NoError(t, err)
	assert.True(t, deleted)
	deleted, err = messages.DeleteByID(ctx, 2)
	require.NoError(t, err)
	assert.False(t, deleted)

	// ids are not reused after a delete
	next, err := messages.Save(ctx, &models.Message{PostedBy: 1, MessageText: "four"})
	require.NoError(t, err)
	assert.Equal(t, 4, next.ID)
}
