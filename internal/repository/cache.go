package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"socialmedia/internal/models"
	"socialmedia/internal/service"
)

// NewRedisClient connects and pings with a bounded timeout.
func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

// CachedAccountRepo serves FindByID from Redis. Accounts never change after
// registration, so entries are only written, never invalidated. Cache errors
// are logged and the underlying store answers instead.
type CachedAccountRepo struct {
	next   service.AccountRepository
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

func NewCachedAccountRepo(next service.AccountRepository, client *redis.Client, ttl time.Duration, log zerolog.Logger) *CachedAccountRepo {
	return &CachedAccountRepo{
		next:   next,
		client: client,
		ttl:    ttl,
		log:    log.With().Str("component", "account_cache").Logger(),
	}
}

var _ service.AccountRepository = (*CachedAccountRepo)(nil)

func accountKey(id int) string {
	return "account:" + strconv.Itoa(id)
}

func (r *CachedAccountRepo) FindByID(ctx context.Context, id int) (*models.Account, error) {
	data, err := r.client.Get(ctx, accountKey(id)).Bytes()
	if err == nil {
		var account models.Account
		if err := json.Unmarshal(data, &account); err == nil {
			return &account, nil
		}
		r.log.Warn().Int("account_id", id).Msg("discarding undecodable cache entry")
	} else if !errors.Is(err, redis.Nil) {
		r.log.Warn().Err(err).Int("account_id", id).Msg("cache read failed")
	}

	account, err := r.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.store(ctx, account)
	return account, nil
}

func (r *CachedAccountRepo) FindByUsername(ctx context.Context, username string) (*models.Account, error) {
	return r.next.FindByUsername(ctx, username)
}

func (r *CachedAccountRepo) FindByUsernameAndPassword(ctx context.Context, username, password string) (*models.Account, error) {
	return r.next.FindByUsernameAndPassword(ctx, username, password)
}

func (r *CachedAccountRepo) Save(ctx context.Context, account *models.Account) (*models.Account, error) {
	saved, err := r.next.Save(ctx, account)
	if err != nil {
		return nil, err
	}
	r.store(ctx, saved)
	return saved, nil
}

func (r *CachedAccountRepo) store(ctx context.Context, account *models.Account) {
	data, err := json.Marshal(account)
	if err != nil {
		r.log.Warn().Err(err).Int("account_id", account.ID).Msg("cache encode failed")
		return
	}
	if err := r.client.Set(ctx, accountKey(account.ID), data, r.ttl).Err(); err != nil {
		r.log.Warn().Err(err).Int("account_id", account.ID).Msg("cache write failed")
	}
}
