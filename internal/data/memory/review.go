package memory

import (
	"context"
	"sort"

	"glamhaven/internal/data/entity"
)

type reviewRepo struct {
	s *store
}

func (r *reviewRepo) Create(ctx context.Context, review *entity.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.reviewSeq++
	review.ID = r.s.reviewSeq
	r.s.reviews[review.ID] = *review
	return nil
}

func (r *reviewRepo) FindBySalonID(ctx context.Context, salonID int) ([]*entity.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var reviews []*entity.Review
	for _, review := range r.s.reviews {
		if review.SalonID == salonID {
			rv := review
			reviews = append(reviews, &rv)
		}
	}

	sort.Slice(reviews, func(i, j int) bool { return reviews[i].ID > reviews[j].ID })
	return reviews, nil
}

func (r *reviewRepo) FindByUserID(ctx context.Context, userID int) ([]*entity.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var reviews []*entity.Review
	for _, review := range r.s.reviews {
		if review.UserID == userID {
			rv := review
			reviews = append(reviews, &rv)
		}
	}

	sort.Slice(reviews, func(i, j int) bool { return reviews[i].ID > reviews[j].ID })
	return reviews, nil
}
