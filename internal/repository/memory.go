package repository

import (
	"context"
	"sort"
	"sync"

	"socialmedia/internal/apperr"
	"socialmedia/internal/models"
	"socialmedia/internal/service"
)

// MemoryStore keeps accounts and messages in process. Identifiers start at 1
// and are never reused, like a SERIAL column.
type MemoryStore struct {
	mu            sync.RWMutex
	accounts      map[int]models.Account
	messages      map[int]models.Message
	nextAccountID int
	nextMessageID int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		accounts:      make(map[int]models.Account),
		messages:      make(map[int]models.Message),
		nextAccountID: 1,
		nextMessageID: 1,
	}
}

// Accounts and Messages expose the store through the two repository
// contracts, which share method names.
func (s *MemoryStore) Accounts() *MemoryAccountRepo { return &MemoryAccountRepo{s} }
func (s *MemoryStore) Messages() *MemoryMessageRepo { return &MemoryMessageRepo{s} }

type MemoryAccountRepo struct{ s *MemoryStore }

type MemoryMessageRepo struct{ s *MemoryStore }

var (
	_ service.AccountRepository = (*MemoryAccountRepo)(nil)
	_ service.MessageRepository = (*MemoryMessageRepo)(nil)
)

func (r *MemoryAccountRepo) findFirst(match func(models.Account) bool) (*models.Account, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, a := range r.s.accounts {
		if match(a) {
			found := a
			return &found, nil
		}
	}
	return nil, apperr.ErrRecordNotFound
}

func (r *MemoryAccountRepo) FindByID(_ context.Context, id int) (*models.Account, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	a, ok := r.s.accounts[id]
	if !ok {
		return nil, apperr.ErrRecordNotFound
	}
	return &a, nil
}

func (r *MemoryAccountRepo) FindByUsername(_ context.Context, username string) (*models.Account, error) {
	return r.findFirst(func(a models.Account) bool { return a.Username == username })
}

func (r *MemoryAccountRepo) FindByUsernameAndPassword(_ context.Context, username, password string) (*models.Account, error) {
	return r.findFirst(func(a models.Account) bool { return a.Username == username && a.Password == password })
}

// Save enforces username uniqueness under the write lock.
func (r *MemoryAccountRepo) Save(_ context.Context, account *models.Account) (*models.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.accounts {
		if a.Username == account.Username {
			return nil, apperr.ErrDuplicateKey
		}
	}
	saved := *account
	saved.ID = r.s.nextAccountID
	r.s.nextAccountID++
	r.s.accounts[saved.ID] = saved
	return &saved, nil
}

func (r *MemoryMessageRepo) FindByID(_ context.Context, id int) (*models.Message, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	m, ok := r.s.messages[id]
	if !ok {
		return nil, apperr.ErrRecordNotFound
	}
	return &m, nil
}

func (r *MemoryMessageRepo) filter(match func(models.Message) bool) []models.Message {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	results := []models.Message{}
	for _, m := range r.s.messages {
		if match(m) {
			results = append(results, m)
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].ID < results[j].ID })
	return results
}

func (r *MemoryMessageRepo) FindAll(_ context.Context) ([]models.Message, error) {
	return r.filter(func(models.Message) bool { return true }), nil
}

func (r *MemoryMessageRepo) FindByPostedBy(_ context.Context, accountID int) ([]models.Message, error) {
	return r.filter(func(m models.Message) bool { return m.PostedBy == accountID }), nil
}

func (r *MemoryMessageRepo) Save(_ context.Context, message *models.Message) (*models.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	saved := *message
	saved.ID = r.s.nextMessageID
	r.s.nextMessageID++
	r.s.messages[saved.ID] = saved
	return &saved, nil
}

func (r *MemoryMessageRepo) Update(_ context.Context, message *models.Message) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.messages[message.ID]; !ok {
		return apperr.ErrRecordNotFound
	}
	r.s.messages[message.ID] = *message
	return nil
}

func (r *MemoryMessageRepo) DeleteByID(_ context.Context, id int) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.messages[id]; !ok {
		return false, nil
	}
	delete(r.s.messages, id)
	return true, nil
}
