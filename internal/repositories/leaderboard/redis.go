package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/KirkDiggler/bonedash/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	entryKeyPrefix = "leaderboard:entry:"
	scoresKey      = "leaderboard:scores"

	// maxUpdateRetries bounds optimistic transaction retries
	maxUpdateRetries = 10
)

// ErrEntryNotFound is returned when a player has no entry
var ErrEntryNotFound = errors.New("leaderboard entry not found")

// ErrConflict is returned when an update keeps losing the optimistic lock
var ErrConflict = errors.New("leaderboard entry modified concurrently")

// Config holds configuration for the Redis leaderboard repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed leaderboard repository. It does not
// contact Redis; connection failures surface on each call.
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func entryKey(playerID string) string {
	return fmt.Sprintf("%s%s", entryKeyPrefix, playerID)
}

// GetEntry retrieves a player's entry from Redis
func (r *redisRepository) GetEntry(ctx context.Context, input *GetEntryInput) (*models.LeaderboardEntry, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	return getEntry(ctx, r.client, input.PlayerID)
}

// SaveEntry writes an entry and its score index in one pipeline
func (r *redisRepository) SaveEntry(ctx context.Context, input *SaveEntryInput) error {
	if input == nil || input.Entry == nil {
		return errors.New("input and entry cannot be nil")
	}

	if input.Entry.PlayerID == "" {
		return errors.New("player ID cannot be empty")
	}

	entryJSON, err := json.Marshal(input.Entry)
	if err != nil {
		return fmt.Errorf("failed to marshal entry: %w", err)
	}

	pipe := r.client.TxPipeline()
	queueSave(ctx, pipe, input.Entry, entryJSON)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save entry: %w", err)
	}

	return nil
}

// UpdateEntry runs the mutation under WATCH so concurrent writers for the same
// player never interleave
func (r *redisRepository) UpdateEntry(ctx context.Context, input *UpdateEntryInput) (*UpdateEntryOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	if input.Mutate == nil {
		return nil, errors.New("mutate function cannot be nil")
	}

	key := entryKey(input.PlayerID)
	var output *UpdateEntryOutput

	txf := func(tx *redis.Tx) error {
		existing, err := getEntry(ctx, tx, input.PlayerID)
		if err != nil && !errors.Is(err, ErrEntryNotFound) {
			return err
		}

		updated, err := input.Mutate(existing)
		if err != nil {
			return err
		}

		if updated == nil {
			output = &UpdateEntryOutput{Entry: existing, Changed: false}
			return nil
		}

		if updated.PlayerID != input.PlayerID {
			return fmt.Errorf("mutation changed player ID from %s to %s", input.PlayerID, updated.PlayerID)
		}

		entryJSON, err := json.Marshal(updated)
		if err != nil {
			return fmt.Errorf("failed to marshal entry: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			queueSave(ctx, pipe, updated, entryJSON)
			return nil
		})
		if err != nil {
			return err
		}

		output = &UpdateEntryOutput{Entry: updated, Changed: true}
		return nil
	}

	for i := 0; i < maxUpdateRetries; i++ {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			return output, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}

	return nil, ErrConflict
}

// GetTopEntries returns up to Limit entries ordered by score descending, then by
// earlier timestamp, then by player ID. Entries tied with the last included score
// are all loaded so the cut is decided by the tie-break rather than by Redis.
func (r *redisRepository) GetTopEntries(ctx context.Context, input *GetTopEntriesInput) (*GetTopEntriesOutput, error) {
	if input == nil || input.Limit <= 0 {
		return nil, errors.New("limit must be positive")
	}

	top, err := r.client.ZRevRangeWithScores(ctx, scoresKey, 0, int64(input.Limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get top scores: %w", err)
	}

	if len(top) == 0 {
		return &GetTopEntriesOutput{Entries: []*models.LeaderboardEntry{}}, nil
	}

	ids := make([]string, 0, len(top))
	seen := make(map[string]bool, len(top))
	for _, z := range top {
		id := z.Member.(string)
		ids = append(ids, id)
		seen[id] = true
	}

	if len(top) == input.Limit {
		cutoff := strconv.FormatFloat(top[len(top)-1].Score, 'f', -1, 64)
		tied, err := r.client.ZRangeByScore(ctx, scoresKey, &redis.ZRangeBy{Min: cutoff, Max: cutoff}).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to get tied scores: %w", err)
		}
		for _, id := range tied {
			if !seen[id] {
				ids = append(ids, id)
				seen[id] = true
			}
		}
	}

	entries, err := r.loadEntries(ctx, ids)
	if err != nil {
		return nil, err
	}

	sortEntries(entries)
	if len(entries) > input.Limit {
		entries = entries[:input.Limit]
	}

	return &GetTopEntriesOutput{Entries: entries}, nil
}

// GetAllEntries returns every entry in rank order
func (r *redisRepository) GetAllEntries(ctx context.Context, input *GetAllEntriesInput) (*GetTopEntriesOutput, error) {
	ids, err := r.client.ZRevRange(ctx, scoresKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get scores: %w", err)
	}

	entries, err := r.loadEntries(ctx, ids)
	if err != nil {
		return nil, err
	}

	sortEntries(entries)
	return &GetTopEntriesOutput{Entries: entries}, nil
}

// DeleteEntry removes an entry and its score
func (r *redisRepository) DeleteEntry(ctx context.Context, input *DeleteEntryInput) error {
	if input == nil || input.PlayerID == "" {
		return errors.New("input and player ID cannot be empty")
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, entryKey(input.PlayerID))
	pipe.ZRem(ctx, scoresKey, input.PlayerID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	return nil
}

// loadEntries fetches entry documents in one pipeline, skipping ids whose
// document disappeared between the index read and the fetch
func (r *redisRepository) loadEntries(ctx context.Context, ids []string) ([]*models.LeaderboardEntry, error) {
	if len(ids) == 0 {
		return []*models.LeaderboardEntry{}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.Get(ctx, entryKey(id))
	}

	// redis.Nil for individual commands is handled below
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get entries: %w", err)
	}

	entries := make([]*models.LeaderboardEntry, 0, len(ids))
	for i, cmd := range cmds {
		entryJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, fmt.Errorf("failed to get entry %s: %w", ids[i], err)
		}

		var entry models.LeaderboardEntry
		if err := json.Unmarshal([]byte(entryJSON), &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal entry %s: %w", ids[i], err)
		}
		entries = append(entries, &entry)
	}

	return entries, nil
}

func queueSave(ctx context.Context, pipe redis.Pipeliner, entry *models.LeaderboardEntry, entryJSON []byte) {
	pipe.Set(ctx, entryKey(entry.PlayerID), entryJSON, 0)
	pipe.ZAdd(ctx, scoresKey, redis.Z{
		Score:  float64(entry.Score),
		Member: entry.PlayerID,
	})
}

// getter is satisfied by both *redis.Client and *redis.Tx
type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func getEntry(ctx context.Context, c getter, playerID string) (*models.LeaderboardEntry, error) {
	entryJSON, err := c.Get(ctx, entryKey(playerID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}

	var entry models.LeaderboardEntry
	if err := json.Unmarshal([]byte(entryJSON), &entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal entry: %w", err)
	}

	return &entry, nil
}

// sortEntries orders by score desc, earlier timestamp first, then player ID
func sortEntries(entries []*models.LeaderboardEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if !a.Timestamp.Equal(b.Timestamp) {
			return a.Timestamp.Before(b.Timestamp)
		}
		return a.PlayerID < b.PlayerID
	})
}
