package flash

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Store 一次性提示消息（flash）。按浏览器的 flash id 存在 redis 列表里,
// 下一次渲染页面时整组弹出并删除，读一次就没了。
type Store struct {
	RDB *redis.Client
	TTL time.Duration
}

func New(addr, pass string, db int, ttl time.Duration) *Store {
	return &Store{
		RDB: redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}),
		TTL: ttl,
	}
}

func key(id string) string { return "flash:" + id }

// Add 追加一条消息。TTL 兜底，避免没人来读时堆积。
func (s *Store) Add(ctx context.Context, id, msg string) error {
	pipe := s.RDB.TxPipeline()
	pipe.RPush(ctx, key(id), msg)
	pipe.Expire(ctx, key(id), s.TTL)
	_, err := pipe.Exec(ctx)
	return err
}

// Pop 取走全部消息并删 key（读一次即焚）
func (s *Store) Pop(ctx context.Context, id string) ([]string, error) {
	pipe := s.RDB.TxPipeline()
	lr := pipe.LRange(ctx, key(id), 0, -1)
	pipe.Del(ctx, key(id))
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, err
	}
	return lr.Val(), nil
}

func (s *Store) Close() error { return s.RDB.Close() }

// CookieName 标识浏览器的 flash id cookie（和会话无关，匿名也能收提示）
const CookieName = "flash_id"

// browserID 取请求的 flash id；没有就现发一个，同请求内复用
// （同一次请求先 Add 再 Pop 也要落在同一个 key 上）。
func browserID(c *gin.Context) string {
	if id := c.GetString(CookieName); id != "" {
		return id
	}
	id, err := c.Cookie(CookieName)
	if err != nil || id == "" {
		id = uuid.NewString()
		c.SetCookie(CookieName, id, 30*24*3600, "/", "", false, true)
	}
	c.Set(CookieName, id)
	return id
}

// AddTo 给当前浏览器追加一条消息
func (s *Store) AddTo(c *gin.Context, msg string) {
	if err := s.Add(c.Request.Context(), browserID(c), msg); err != nil {
		_ = c.Error(err)
	}
}

// PopFrom 弹出当前浏览器的全部待展示消息。redis 故障不挡渲染，只记一条 gin error。
func (s *Store) PopFrom(c *gin.Context) []string {
	msgs, err := s.Pop(c.Request.Context(), browserID(c))
	if err != nil {
		_ = c.Error(err)
		return nil
	}
	return msgs
}
