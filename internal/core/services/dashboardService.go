package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sm8ta/goride_admin_dashboard/internal/core/domain"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

const (
	dashboardFetchLimit = 100
	recentRentalsCount  = 5
)

type DashboardStats struct {
	TotalMotorbikes     int             `json:"totalMotorbikes"`
	AvailableMotorbikes int             `json:"availableMotorbikes"`
	TotalUsers          int             `json:"totalUsers"`
	TotalRentals        int             `json:"totalRentals"`
	PendingRentals      int             `json:"pendingRentals"`
	Revenue             domain.Amount   `json:"revenue"`
	TotalBlogs          int             `json:"totalBlogs"`
	TotalPromotions     int             `json:"totalPromotions"`
	RecentRentals       []domain.Rental `json:"recentRentals"`
	Partial             bool            `json:"partial"`
	FailedSources       []string        `json:"failedSources,omitempty"`
	LoadedAt            time.Time       `json:"loadedAt"`
}

type DashboardView struct {
	Page  string          `json:"page"`
	State LoadState       `json:"state"`
	Stats *DashboardStats `json:"stats,omitempty"`
}

// DashboardService aggregates counts from every list endpoint. Sources that
// fail count as zero and are listed in FailedSources.
type DashboardService struct {
	clients ports.Clients
	logger  ports.LoggerPort

	mu    sync.Mutex
	state LoadState
	stats *DashboardStats
	seq   uint64
}

func NewDashboardService(clients ports.Clients, logger ports.LoggerPort) *DashboardService {
	return &DashboardService{
		clients: clients,
		logger:  logger,
		state:   StateIdle,
	}
}

// Load refreshes the figures. A non-nil error joins one *SourceError per
// failed source; the returned stats are still usable.
func (s *DashboardService) Load(ctx context.Context) (DashboardStats, error) {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.state = StateLoading
	s.mu.Unlock()

	stats, err := s.collect(ctx)

	s.mu.Lock()
	if seq == s.seq {
		s.stats = &stats
		s.state = StateLoaded
	}
	s.mu.Unlock()
	return stats, err
}

func (s *DashboardService) View() DashboardView {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := DashboardView{Page: "dashboard", State: s.state}
	if s.stats != nil {
		cp := *s.stats
		v.Stats = &cp
	}
	return v
}

func (s *DashboardService) collect(ctx context.Context) (DashboardStats, error) {
	var (
		mu    sync.Mutex
		errs  []error
		stats = DashboardStats{RecentRentals: []domain.Rental{}}
	)
	fail := func(source string, err error, msg string) error {
		if err == nil {
			err = &domain.ServerError{Message: messageOr(msg, "list request rejected")}
		}
		s.logger.Warn("Dashboard source failed", map[string]interface{}{
			"source": source,
			"error":  err.Error(),
		})
		srcErr := &SourceError{Source: source, Err: err}
		mu.Lock()
		errs = append(errs, srcErr)
		mu.Unlock()
		return srcErr
	}

	var g errgroup.Group
	g.Go(func() error {
		res, err := s.clients.Motorbikes.List(ctx, ports.MotorbikeQuery{Page: 1, Limit: dashboardFetchLimit})
		if err != nil || !res.IsOk() {
			return fail("motorbikes", err, res.Message())
		}
		page := res.Value()
		available := 0
		for _, m := range page.Items {
			if m.Status == domain.Available {
				available++
			}
		}
		mu.Lock()
		stats.TotalMotorbikes = page.Total
		stats.AvailableMotorbikes = available
		mu.Unlock()
		return nil
	})
	g.Go(func() error {
		res, err := s.clients.Users.List(ctx, ports.UserQuery{Page: 1, Limit: dashboardFetchLimit})
		if err != nil || !res.IsOk() {
			return fail("users", err, res.Message())
		}
		mu.Lock()
		stats.TotalUsers = res.Value().Total
		mu.Unlock()
		return nil
	})
	g.Go(func() error {
		res, err := s.clients.Rentals.List(ctx)
		if err != nil || !res.IsOk() {
			return fail("rentals", err, res.Message())
		}
		page := res.Value()
		mu.Lock()
		stats.TotalRentals = page.Total
		stats.PendingRentals = len(FilterRentals(page.Items, domain.Pending))
		stats.Revenue = Revenue(page.Items)
		stats.RecentRentals = RecentRentals(page.Items, recentRentalsCount)
		mu.Unlock()
		return nil
	})
	g.Go(func() error {
		res, err := s.clients.Blogs.List(ctx)
		if err != nil || !res.IsOk() {
			return fail("blogs", err, res.Message())
		}
		mu.Lock()
		stats.TotalBlogs = res.Value().Total
		mu.Unlock()
		return nil
	})
	g.Go(func() error {
		res, err := s.clients.Promotions.List(ctx)
		if err != nil || !res.IsOk() {
			return fail("promotions", err, res.Message())
		}
		mu.Lock()
		stats.TotalPromotions = res.Value().Total
		mu.Unlock()
		return nil
	})
	waitErr := g.Wait()

	stats.LoadedAt = time.Now()
	stats.FailedSources = nil
	if waitErr == nil {
		return stats, nil
	}

	sort.Slice(errs, func(i, j int) bool {
		return errs[i].(*SourceError).Source < errs[j].(*SourceError).Source
	})
	for _, err := range errs {
		stats.FailedSources = append(stats.FailedSources, err.(*SourceError).Source)
	}
	stats.Partial = true
	return stats, fmt.Errorf("services.DashboardService.Load: %w", errors.Join(errs...))
}

type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return e.Source + ": " + e.Err.Error()
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// Revenue sums the total price of completed rentals.
func Revenue(rentals []domain.Rental) domain.Amount {
	var sum domain.Amount
	for _, r := range rentals {
		if r.Status == domain.Completed {
			sum += r.TotalPrice
		}
	}
	return sum
}

func RecentRentals(rentals []domain.Rental, n int) []domain.Rental {
	if len(rentals) < n {
		n = len(rentals)
	}
	out := make([]domain.Rental, n)
	copy(out, rentals[:n])
	return out
}
