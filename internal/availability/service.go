package availability

import (
	"context"
	"sync"
	"time"

	apperrors "wanderbook/pkg/errors"
	"wanderbook/pkg/logger"
	"wanderbook/pkg/model"
)

type AgentSource interface {
	FindActive(ctx context.Context) ([]model.Employee, error)
}

type HotelSource interface {
	FindOpen(ctx context.Context) ([]model.Hotel, error)
}

type VehicleSource interface {
	FindAvailable(ctx context.Context) ([]model.Vehicle, error)
}

type Service interface {
	ListAvailableItems(ctx context.Context) (*model.AvailableItems, error)
}

type availabilityService struct {
	agents   AgentSource
	hotels   HotelSource
	vehicles VehicleSource
	cache    Cache
	cacheTTL time.Duration
	log      *logger.Logger
}

// NewService builds the availability view. cache may be nil, and a zero ttl
// disables caching as well.
func NewService(agents AgentSource, hotels HotelSource, vehicles VehicleSource, cache Cache, cacheTTL time.Duration, log *logger.Logger) Service {
	return &availabilityService{
		agents:   agents,
		hotels:   hotels,
		vehicles: vehicles,
		cache:    cache,
		cacheTTL: cacheTTL,
		log:      log,
	}
}

func (s *availabilityService) cacheEnabled() bool {
	return s.cache != nil && s.cacheTTL > 0
}

func (s *availabilityService) ListAvailableItems(ctx context.Context) (*model.AvailableItems, error) {
	if s.cacheEnabled() {
		var cached model.AvailableItems
		hit, err := s.cache.Get(ctx, availableItemsKey, &cached)
		if err != nil {
			s.log.Warn("Available items cache read failed", "error", err)
		} else if hit {
			return &cached, nil
		}
	}

	items, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	if s.cacheEnabled() {
		if err := s.cache.Set(ctx, availableItemsKey, items, s.cacheTTL); err != nil {
			s.log.Warn("Available items cache write failed", "error", err)
		}
	}
	return items, nil
}

func (s *availabilityService) load(ctx context.Context) (*model.AvailableItems, error) {
	var (
		agents   []model.Employee
		hotels   []model.Hotel
		vehicles []model.Vehicle

		errAgents, errHotels, errVehicles error
		wg                                sync.WaitGroup
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		agents, errAgents = s.agents.FindActive(ctx)
	}()
	go func() {
		defer wg.Done()
		hotels, errHotels = s.hotels.FindOpen(ctx)
	}()
	go func() {
		defer wg.Done()
		vehicles, errVehicles = s.vehicles.FindAvailable(ctx)
	}()
	wg.Wait()

	for _, err := range []error{errAgents, errHotels, errVehicles} {
		if err != nil {
			s.log.Error("Failed to load available items", "error", err)
			return nil, apperrors.Internal("Failed to retrieve available items", err)
		}
	}

	items := &model.AvailableItems{
		Agents:   nonNil(agents),
		Hotels:   make([]model.HotelAvailability, 0, len(hotels)),
		Vehicles: nonNil(vehicles),
	}
	for _, h := range hotels {
		rooms := h.AvailableRoomTypes()
		if len(rooms) == 0 {
			continue
		}
		items.Hotels = append(items.Hotels, model.HotelAvailability{
			ID:          h.ID,
			Name:        h.Name,
			Location:    h.Location,
			Description: h.Description,
			Rooms:       rooms,
		})
	}
	return items, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
