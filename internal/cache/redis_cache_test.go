package cache_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/visualapp/storefront-api/internal/cache"
	"github.com/visualapp/storefront-api/internal/config"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedProduct struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func setupCacheTest(t *testing.T) (cache.Cache, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	cfg := &config.CacheConfig{DefaultTTL: 10 * time.Minute}

	return cache.NewRedisCache(client, cfg), mock
}

func TestCacheGet(t *testing.T) {
	ctx := context.Background()
	key := cache.Key(cache.ProductKeyPrefix, "vestido-rosa")

	t.Run("Success - hit unmarshals into target", func(t *testing.T) {
		// Arrange
		c, mock := setupCacheTest(t)

		stored, _ := json.Marshal(cachedProduct{Name: "Vestido Rosa", Price: 59.90})
		mock.ExpectGet(key).SetVal(string(stored))

		// Act
		var got cachedProduct
		hit, err := c.Get(ctx, key, &got)

		// Assert
		require.NoError(t, err)
		assert.True(t, hit)
		assert.Equal(t, "Vestido Rosa", got.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - miss is not an error", func(t *testing.T) {
		// Arrange
		c, mock := setupCacheTest(t)
		mock.ExpectGet(key).RedisNil()

		// Act
		var got cachedProduct
		hit, err := c.Get(ctx, key, &got)

		// Assert
		assert.NoError(t, err)
		assert.False(t, hit)
	})

	t.Run("Failure - corrupted payload", func(t *testing.T) {
		// Arrange
		c, mock := setupCacheTest(t)
		mock.ExpectGet(key).SetVal("{not json")

		// Act
		var got cachedProduct
		hit, err := c.Get(ctx, key, &got)

		// Assert
		assert.Error(t, err)
		assert.False(t, hit)
	})
}

func TestCacheSet(t *testing.T) {
	ctx := context.Background()
	key := cache.Key(cache.ProductKeyPrefix, "vestido-rosa")
	value := cachedProduct{Name: "Vestido Rosa", Price: 59.90}
	payload, _ := json.Marshal(value)

	t.Run("Success - explicit TTL", func(t *testing.T) {
		// Arrange
		c, mock := setupCacheTest(t)
		mock.ExpectSet(key, payload, time.Minute).SetVal("OK")

		// Act + Assert
		assert.NoError(t, c.Set(ctx, key, value, time.Minute))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - zero TTL falls back to default", func(t *testing.T) {
		// Arrange
		c, mock := setupCacheTest(t)
		mock.ExpectSet(key, payload, 10*time.Minute).SetVal("OK")

		// Act + Assert
		assert.NoError(t, c.Set(ctx, key, value, 0))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCacheDelete(t *testing.T) {
	ctx := context.Background()
	key := cache.Key(cache.ProductKeyPrefix, "vestido-rosa")

	t.Run("Success", func(t *testing.T) {
		// Arrange
		c, mock := setupCacheTest(t)
		mock.ExpectDel(key).SetVal(1)

		// Act + Assert
		assert.NoError(t, c.Delete(ctx, key))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
