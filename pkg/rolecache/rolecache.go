package rolecache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"plateful/entity"

	"github.com/redis/go-redis/v9"
)

// Cache เก็บ shadow copy ของ role ล่าสุดที่ resolve ได้ ลง redis
// ใช้อ่านเร็ว ๆ ตอน session ยังเย็นอยู่ ไม่ใช่ source of truth
// ต่อ redis ไม่ได้ -> ทำงานต่อแบบไม่มี cache (best effort ทั้ง Save/Load)
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New ต่อ redis ตาม addr ถ้า ping ไม่ผ่านจะคืน cache ที่ disabled
func New(addr, password string, ttl time.Duration) *Cache {
	if addr == "" {
		addr = "localhost:6379"
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr, Password: password})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("rolecache: redis unreachable (%v), role cache disabled", err)
		return &Cache{}
	}
	return &Cache{rdb: rdb, ttl: ttl}
}

func key(uid string) string {
	return "role:" + uid
}

func (c *Cache) Save(ctx context.Context, uid string, role entity.Role) {
	if c == nil || c.rdb == nil {
		return
	}
	b, err := json.Marshal(role)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key(uid), b, c.ttl).Err(); err != nil {
		log.Printf("rolecache: save %s failed: %v", uid, err)
	}
}

func (c *Cache) Load(ctx context.Context, uid string) (entity.Role, bool) {
	if c == nil || c.rdb == nil {
		return entity.Role{}, false
	}
	b, err := c.rdb.Get(ctx, key(uid)).Bytes()
	if err != nil {
		return entity.Role{}, false
	}
	var role entity.Role
	if err := json.Unmarshal(b, &role); err != nil {
		return entity.Role{}, false
	}
	return role, true
}

func (c *Cache) Drop(ctx context.Context, uid string) {
	if c == nil || c.rdb == nil {
		return
	}
	c.rdb.Del(ctx, key(uid))
}
