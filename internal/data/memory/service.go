package memory

import (
	"context"
	"fmt"
	"sort"

	"glamhaven/internal/data/entity"
)

type serviceRepo struct {
	s *store
}

func (r *serviceRepo) Create(ctx context.Context, service *entity.Service) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.serviceSeq++
	service.ID = r.s.serviceSeq
	r.s.services[service.ID] = *service
	return nil
}

func (r *serviceRepo) FindByID(ctx context.Context, id int) (*entity.Service, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	service, ok := r.s.services[id]
	if !ok {
		return nil, nil
	}
	return &service, nil
}

func (r *serviceRepo) FindBySalonID(ctx context.Context, salonID int) ([]*entity.Service, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var services []*entity.Service
	for _, service := range r.s.services {
		if service.SalonID == salonID {
			s := service
			services = append(services, &s)
		}
	}

	sort.Slice(services, func(i, j int) bool { return services[i].ID < services[j].ID })
	return services, nil
}

func (r *serviceRepo) Update(ctx context.Context, service *entity.Service) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.services[service.ID]; !ok {
		return fmt.Errorf("service %d not found", service.ID)
	}
	r.s.services[service.ID] = *service
	return nil
}

func (r *serviceRepo) Delete(ctx context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.services[id]; !ok {
		return fmt.Errorf("service %d not found", id)
	}
	delete(r.s.services, id)
	return nil
}
