package sessions

import (
	"context"
	"errors"
	"time"
)

var ErrSessionNotFound = errors.New("session not found")

// Session การเข้าสู่ระบบของนักศึกษาหนึ่งครั้ง อ้างอิงด้วย token ที่เซิร์ฟเวอร์ออกให้
type Session struct {
	ID        string    `json:"id"`
	RegNo     string    `json:"regNo"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// Store keeps server-side sessions.
type Store interface {
	Create(ctx context.Context, regNo string) (*Session, error)
	Get(ctx context.Context, id string) (*Session, error)
}
