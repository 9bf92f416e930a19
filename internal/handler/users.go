package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/carelink-dev/shift-market/backend/internal/domain"
	"github.com/redis/go-redis/v9"
)

const userCacheKey = "shift_market:users"

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "ok", nil)
}

// GetAllUsers serves the provider directory. Users are created by the seed
// process and immutable afterwards, so a short redis cache in front of the
// database is safe; cache trouble degrades to a plain database read.
func (h *Handler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	if h.redisClient != nil {
		ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationTimeout)*time.Second)
		defer cancel()

		cached, err := h.redisClient.Get(ctx, userCacheKey).Result()
		switch {
		case err == nil:
			users := []*domain.User{}
			if err := json.Unmarshal([]byte(cached), &users); err == nil {
				h.successResponse(w, r, "users retrieved", users)
				return
			}
			slog.Error("corrupt user cache entry, falling back to database", "error", err)
		case errors.Is(err, redis.Nil):
			// cache miss
		default:
			slog.Error("user cache read failed, falling back to database", "error", err)
		}
	}

	users, err := h.store.GetAllUsers()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if h.redisClient != nil {
		if encoded, err := json.Marshal(users); err == nil {
			ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationTimeout)*time.Second)
			defer cancel()

			ttl := time.Duration(h.config.Redis.UserCacheTTL) * time.Second
			if err := h.redisClient.Set(ctx, userCacheKey, encoded, ttl).Err(); err != nil {
				slog.Error("user cache write failed", "error", err)
			}
		}
	}

	h.successResponse(w, r, "users retrieved", users)
}
