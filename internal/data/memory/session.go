package memory

import (
	"context"
	"fmt"
	"time"

	"glamhaven/internal/data/entity"
)

type sessionRepo struct {
	s *store
}

func (r *sessionRepo) Create(ctx context.Context, session *entity.Session) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.sessionSeq++
	session.ID = r.s.sessionSeq
	r.s.sessions[session.ID] = *session
	return nil
}

func (r *sessionRepo) FindValidByToken(ctx context.Context, token string) (*entity.Session, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, session := range r.s.sessions {
		if session.Token.String() == token && session.RevokedAt == nil && session.ExpiresAt.After(time.Now()) {
			sn := session
			return &sn, nil
		}
	}
	return nil, nil
}

func (r *sessionRepo) Revoke(ctx context.Context, token string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, session := range r.s.sessions {
		if session.Token.String() == token && session.RevokedAt == nil {
			now := time.Now()
			session.RevokedAt = &now
			r.s.sessions[id] = session
			return nil
		}
	}
	return fmt.Errorf("session not found")
}
