package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/mvcampos/painel-iptv/internal/domain"
	"github.com/mvcampos/painel-iptv/pkg/logger"
)

const (
	// Prefixos de chave para cada tipo de dado por escopo
	planCatalogKeyPrefix = "planPricing:"
	activityKeyPrefix    = "activities:"
)

// RedisStore guarda o catálogo de planos e o histórico de ações no Redis,
// com uma chave por escopo — o equivalente servidor do armazenamento local
// por usuário que o painel usava antes.
type RedisStore struct {
	client *redis.Client
	log    *logger.Logger
}

// NewRedisStore cria um novo armazenamento chave-valor no Redis
func NewRedisStore(redisAddr, redisPassword string, redisDB int, log *logger.Logger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       redisDB,
	})

	// Verifica a conexão com o Redis
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Errorw("Failed to connect to Redis", "error", err)
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Infow("Connected to Redis successfully", "addr", redisAddr)
	return &RedisStore{
		client: client,
		log:    log,
	}, nil
}

// Close encerra a conexão com o Redis
func (r *RedisStore) Close() error {
	return r.client.Close()
}

// Load retorna o catálogo de planos do escopo; lista vazia quando nunca salvo
func (r *RedisStore) Load(ctx context.Context, scope domain.OwnerScope) ([]domain.Plan, error) {
	key := planCatalogKeyPrefix + string(scope)

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load plan catalog: %w", err)
	}

	var plans []domain.Plan
	if err := json.Unmarshal(data, &plans); err != nil {
		return nil, fmt.Errorf("failed to unmarshal plan catalog: %w", err)
	}

	return plans, nil
}

// Save substitui o catálogo de planos do escopo
func (r *RedisStore) Save(ctx context.Context, scope domain.OwnerScope, plans []domain.Plan) error {
	key := planCatalogKeyPrefix + string(scope)

	data, err := json.Marshal(plans)
	if err != nil {
		return fmt.Errorf("failed to marshal plan catalog: %w", err)
	}

	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save plan catalog: %w", err)
	}

	return nil
}

// Push acrescenta uma entrada ao histórico e corta a lista no limite de 50
func (r *RedisStore) Push(ctx context.Context, activity domain.Activity) error {
	key := activityKeyPrefix + string(activity.OwnerScope)

	data, err := json.Marshal(activity)
	if err != nil {
		return fmt.Errorf("failed to marshal activity: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, key, data)
	pipe.LTrim(ctx, key, 0, domain.ActivityLogSize-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to push activity: %w", err)
	}

	return nil
}

// List retorna as entradas do histórico do escopo, mais recentes primeiro
func (r *RedisStore) List(ctx context.Context, scope domain.OwnerScope) ([]domain.Activity, error) {
	key := activityKeyPrefix + string(scope)

	items, err := r.client.LRange(ctx, key, 0, domain.ActivityLogSize-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}

	activities := make([]domain.Activity, 0, len(items))
	for _, item := range items {
		var activity domain.Activity
		if err := json.Unmarshal([]byte(item), &activity); err != nil {
			r.log.Warnw("Skipping malformed activity entry", "error", err)
			continue
		}
		activities = append(activities, activity)
	}

	return activities, nil
}

// Clear apaga todo o histórico do escopo
func (r *RedisStore) Clear(ctx context.Context, scope domain.OwnerScope) error {
	key := activityKeyPrefix + string(scope)

	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to clear activities: %w", err)
	}

	return nil
}
