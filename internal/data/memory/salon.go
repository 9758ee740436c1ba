package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"glamhaven/internal/data/entity"
	"glamhaven/internal/data/repository"
)

type salonRepo struct {
	s *store
}

func (r *salonRepo) Create(ctx context.Context, salon *entity.Salon) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.salonSeq++
	salon.ID = r.s.salonSeq
	r.s.salons[salon.ID] = *salon
	return nil
}

func (r *salonRepo) FindByID(ctx context.Context, id int) (*entity.Salon, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	salon, ok := r.s.salons[id]
	if !ok {
		return nil, nil
	}
	return &salon, nil
}

func (r *salonRepo) FindAll(ctx context.Context, filter repository.SalonFilter) ([]*entity.Salon, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var salons []*entity.Salon
	for _, salon := range r.s.salons {
		if filter.IsLadiesOnly != nil && salon.IsLadiesOnly != *filter.IsLadiesOnly {
			continue
		}
		if filter.HasPrivateRooms != nil && salon.HasPrivateRooms != *filter.HasPrivateRooms {
			continue
		}
		if filter.IsHijabFriendly != nil && salon.IsHijabFriendly != *filter.IsHijabFriendly {
			continue
		}
		if filter.City != nil && !strings.EqualFold(salon.City, *filter.City) {
			continue
		}
		s := salon
		salons = append(salons, &s)
	}

	sort.Slice(salons, func(i, j int) bool { return salons[i].ID < salons[j].ID })
	return salons, nil
}

func (r *salonRepo) FindByOwnerID(ctx context.Context, ownerID int) ([]*entity.Salon, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var salons []*entity.Salon
	for _, salon := range r.s.salons {
		if salon.OwnerID == ownerID {
			s := salon
			salons = append(salons, &s)
		}
	}

	sort.Slice(salons, func(i, j int) bool { return salons[i].ID < salons[j].ID })
	return salons, nil
}

func (r *salonRepo) Update(ctx context.Context, salon *entity.Salon) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.salons[salon.ID]; !ok {
		return fmt.Errorf("salon %d not found", salon.ID)
	}
	r.s.salons[salon.ID] = *salon
	return nil
}

func (r *salonRepo) UpdateRating(ctx context.Context, id, rating int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	salon, ok := r.s.salons[id]
	if !ok {
		return fmt.Errorf("salon %d not found", id)
	}
	salon.Rating = &rating
	r.s.salons[id] = salon
	return nil
}
