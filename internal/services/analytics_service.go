package services

import (
	"context"
	"time"

	"paletteandfit/internal/models"
	"paletteandfit/internal/repositories"
	"paletteandfit/pkg/cache"

	"github.com/sirupsen/logrus"
)

const (
	analyticsTTL      = 60 * time.Second
	mostWishlistedTop = 5
	recentWishlistMax = 10
	chatLogsMax       = 10
	messagesMax       = 100

	timeLayout   = "2006-01-02 15:04"
	unknownLabel = "Unknown"
)

var aggregateKeys = []string{"total-users", "wishlist-gender", "most-wishlisted", "skin-tone", "age-group"}

// Chart is a label/count series for the dashboard.
type Chart struct {
	Labels []string `json:"labels"`
	Counts []int64  `json:"counts"`
}

type RecentWishlistItem struct {
	User    string  `json:"user"`
	Product *string `json:"product"`
}

type ChatLogItem struct {
	User     string `json:"user"`
	Question string `json:"question"`
	Bot      string `json:"bot"`
	Time     string `json:"time"`
}

type MessageItem struct {
	User     string `json:"user"`
	Question string `json:"question"`
	Reply    string `json:"reply"`
	Date     string `json:"date"`
}

// UserItem is one row of the admin user table. Missing values render as "".
type UserItem struct {
	ID       uint        `json:"id"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Gender   string      `json:"gender"`
	Age      interface{} `json:"age"`
	SkinTone string      `json:"skintone"`
	Joined   string      `json:"joined"`
}

// AnalyticsService serves the admin dashboard. Aggregates are cached
// briefly when a cache is configured.
type AnalyticsService struct {
	repo     repositories.AnalyticsRepository
	userRepo repositories.UserRepository
	chatLogs repositories.ChatLogRepository
	cache    *cache.Store
}

func NewAnalyticsService(repo repositories.AnalyticsRepository, userRepo repositories.UserRepository, chatLogs repositories.ChatLogRepository, store *cache.Store) *AnalyticsService {
	return &AnalyticsService{
		repo:     repo,
		userRepo: userRepo,
		chatLogs: chatLogs,
		cache:    store,
	}
}

func cached[T any](ctx context.Context, store *cache.Store, key string, load func() (T, error)) (T, error) {
	var out T
	if found, err := store.Get(ctx, key, &out); err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "error": err}).Warn("Cache read failed")
	} else if found {
		return out, nil
	}

	out, err := load()
	if err != nil {
		return out, err
	}
	if err := store.Set(ctx, key, out, analyticsTTL); err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "error": err}).Warn("Cache write failed")
	}
	return out, nil
}

func (s *AnalyticsService) TotalUsers(ctx context.Context) (int64, error) {
	return cached(ctx, s.cache, "total-users", s.repo.TotalUsers)
}

// WishlistByGender maps each gender (Unknown when unset) to its wishlist row count.
func (s *AnalyticsService) WishlistByGender(ctx context.Context) (map[string]int64, error) {
	return cached(ctx, s.cache, "wishlist-gender", func() (map[string]int64, error) {
		rows, err := s.repo.WishlistByGender()
		if err != nil {
			return nil, err
		}
		out := make(map[string]int64, len(rows))
		for _, r := range rows {
			out[labelOrUnknown(r.Label)] += r.Count
		}
		return out, nil
	})
}

func (s *AnalyticsService) MostWishlisted(ctx context.Context) (Chart, error) {
	return cached(ctx, s.cache, "most-wishlisted", func() (Chart, error) {
		rows, err := s.repo.MostWishlisted(mostWishlistedTop)
		return toChart(rows), err
	})
}

func (s *AnalyticsService) SkinTones(ctx context.Context) (Chart, error) {
	return cached(ctx, s.cache, "skin-tone", func() (Chart, error) {
		rows, err := s.repo.SkinTones()
		return toChart(rows), err
	})
}

func (s *AnalyticsService) AgeGroups(ctx context.Context) (Chart, error) {
	return cached(ctx, s.cache, "age-group", func() (Chart, error) {
		rows, err := s.repo.AgeGroups()
		return toChart(rows), err
	})
}

func (s *AnalyticsService) RecentWishlist() ([]RecentWishlistItem, error) {
	rows, err := s.repo.RecentWishlist(recentWishlistMax)
	if err != nil {
		return nil, err
	}
	out := make([]RecentWishlistItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, RecentWishlistItem{User: r.UserEmail, Product: r.Title})
	}
	return out, nil
}

func (s *AnalyticsService) ChatbotLogs() ([]ChatLogItem, error) {
	logs, err := s.chatLogs.Recent(chatLogsMax)
	if err != nil {
		return nil, err
	}
	out := make([]ChatLogItem, 0, len(logs))
	for _, l := range logs {
		out = append(out, ChatLogItem{
			User:     l.UserEmail,
			Question: l.Question,
			Bot:      l.BotResponse,
			Time:     formatTime(l.CreatedAt),
		})
	}
	return out, nil
}

func (s *AnalyticsService) Messages() ([]MessageItem, error) {
	logs, err := s.chatLogs.Recent(messagesMax)
	if err != nil {
		return nil, err
	}
	out := make([]MessageItem, 0, len(logs))
	for _, l := range logs {
		out = append(out, MessageItem{
			User:     l.UserEmail,
			Question: l.Question,
			Reply:    l.BotResponse,
			Date:     formatTime(l.CreatedAt),
		})
	}
	return out, nil
}

func (s *AnalyticsService) Users() ([]UserItem, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]UserItem, 0, len(users))
	for _, u := range users {
		item := UserItem{
			ID:       u.ID,
			Name:     deref(u.Name),
			Email:    u.Username,
			Gender:   deref(u.Gender),
			Age:      "",
			SkinTone: deref(u.SkinTone),
			Joined:   formatTime(u.CreatedAt),
		}
		if u.Age != nil && *u.Age != 0 {
			item.Age = *u.Age
		}
		out = append(out, item)
	}
	return out, nil
}

// DeleteUser removes a user; an unknown id is not an error. Cached
// aggregates are dropped so the dashboard reflects the removal.
func (s *AnalyticsService) DeleteUser(ctx context.Context, id uint) error {
	if err := s.userRepo.Delete(id); err != nil {
		return err
	}
	if err := s.cache.Delete(ctx, aggregateKeys...); err != nil {
		logrus.WithError(err).Warn("Could not invalidate analytics cache")
	}
	return nil
}

func toChart(rows []models.LabelCount) Chart {
	c := Chart{Labels: make([]string, 0, len(rows)), Counts: make([]int64, 0, len(rows))}
	for _, r := range rows {
		c.Labels = append(c.Labels, labelOrUnknown(r.Label))
		c.Counts = append(c.Counts, r.Count)
	}
	return c
}

func labelOrUnknown(label *string) string {
	if label == nil || *label == "" {
		return unknownLabel
	}
	return *label
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(timeLayout)
}
