package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"soccerslotmanager/internal/domain"
)

type statsService struct {
	statsRepo domain.StatsRepository
	userRepo  domain.UserRepository
}

// NewStatsService creates a StatsService over the stats and user repositories.
func NewStatsService(statsRepo domain.StatsRepository, userRepo domain.UserRepository) domain.StatsService {
	return &statsService{statsRepo: statsRepo, userRepo: userRepo}
}

func (s *statsService) Overview(ctx context.Context) (*domain.StatsOverview, error) {
	all, err := s.statsRepo.ForAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}
	overview := &domain.StatsOverview{AllStats: all}
	for _, st := range all {
		if overview.MostWins == nil || st.Wins > overview.MostWins.Wins {
			overview.MostWins = st
		}
		if overview.BestAttendance == nil || st.Attendance > overview.BestAttendance.Attendance {
			overview.BestAttendance = st
		}
		if overview.TopContributor == nil || st.TotalContributions > overview.TopContributor.TotalContributions {
			overview.TopContributor = st
		}
	}
	return overview, nil
}

func (s *statsService) ForUsername(ctx context.Context, username string) (*domain.UserStats, error) {
	user, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	stats, err := s.statsRepo.ForUser(ctx, user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to compute user stats: %w", err)
	}
	return stats, nil
}
