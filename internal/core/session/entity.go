package session

import (
	"time"

	"github.com/ogurasousui/learning-dashboard/internal/core/user"
)

// Session はインスタンスごとに高々 1 つだけ存在する認証済みセッションです。
type Session struct {
	ID        string    `json:"id"`
	User      user.User `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Session) clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	c.User = s.User.Clone()
	return &c
}
