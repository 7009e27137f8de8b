package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache key cho danh sách phòng và loại phòng
const (
	CacheKeyRooms     = "rooms:all"
	CacheKeyRoomTypes = "room_types:all"
)

// Hàm lấy data từ Redis. Trả về found=false khi key chưa có,
// để danh sách rỗng đã cache không bị nhầm thành cache miss.
func GetFromRedis(ctx context.Context, rdb *redis.Client, key string, target interface{}) (bool, error) {
	cachedData, err := rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	// Parse JSON thành object
	if err := json.Unmarshal([]byte(cachedData), target); err != nil {
		return false, err
	}
	return true, nil
}

// Hàm lưu dữ liệu vào Redis
func SetToRedis(ctx context.Context, rdb *redis.Client, key string, value interface{}, ttl time.Duration) error {
	dataJSON, err := json.Marshal(value)
	if err != nil {
		return err
	}

	if err := rdb.Set(ctx, key, dataJSON, ttl).Err(); err != nil {
		return err
	}
	return nil
}

// Hàm xóa cache Redis
func DeleteFromRedis(ctx context.Context, rdb *redis.Client, key string) error {
	if err := rdb.Del(ctx, key).Err(); err != nil {
		return err
	}
	return nil
}

// InvalidateRoomCaches xóa các cache liên quan đến phòng sau khi ghi
func InvalidateRoomCaches(ctx context.Context, rdb *redis.Client) {
	if rdb == nil {
		return
	}
	_ = DeleteFromRedis(ctx, rdb, CacheKeyRooms)
	_ = DeleteFromRedis(ctx, rdb, CacheKeyRoomTypes)
}
