package service

import (
	"encoding/json"
	"log"

	"github.com/Krishna-debug223/Rent-vs-Buy/domain"
	"github.com/Krishna-debug223/Rent-vs-Buy/repository"
)

type SimulationService struct {
	repo  repository.SimulationRepository
	cache repository.CacheRepository
}

// NewSimulationService creates a SimulationService with the given history and cache.
func NewSimulationService(
	repo repository.SimulationRepository,
	cache repository.CacheRepository,
) *SimulationService {
	return &SimulationService{repo: repo, cache: cache}
}

// Simulate validates params, serves the result from cache when possible and
// records the run in history.
func (s *SimulationService) Simulate(
	params domain.SimulationParameters,
) (domain.SimulationResponse, error) {

	if err := ValidateParameters(params); err != nil {
		return domain.SimulationResponse{}, err
	}

	var resp domain.SimulationResponse

	key, err := repository.CacheKey(cachePrefixSim, params)
	if err != nil {
		log.Printf("Warning: %v", err)
	}

	if cached, ok := s.lookup(key); ok {
		resp.Result = cached
		resp.Cached = true
	} else {
		resp.Result = simulate(params)
		s.store(key, resp.Result)
	}

	// History is not critical
	id, err := s.repo.Save(params, resp.Result)
	if err != nil {
		log.Printf("Warning: failed to save simulation: %v", err)
	}
	resp.ID = id

	return resp, nil
}

// Get returns a previously recorded run.
func (s *SimulationService) Get(id string) (domain.SimulationRecord, error) {
	return s.repo.FindByID(id)
}

func (s *SimulationService) lookup(key string) (domain.SimulationResult, bool) {
	if key == "" {
		return domain.SimulationResult{}, false
	}
	raw, ok := s.cache.Get(key)
	if !ok {
		return domain.SimulationResult{}, false
	}

	var result domain.SimulationResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		log.Printf("Warning: discarding unreadable cache entry %s: %v", key, err)
		return domain.SimulationResult{}, false
	}
	return result, true
}

func (s *SimulationService) store(key string, result domain.SimulationResult) {
	if key == "" {
		return
	}
	b, err := json.Marshal(result)
	if err != nil {
		log.Printf("Warning: failed to encode simulation for cache: %v", err)
		return
	}
	if err := s.cache.Set(key, string(b)); err != nil {
		log.Printf("Warning: failed to cache simulation: %v", err)
	}
}
