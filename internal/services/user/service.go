package user

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/thenoetrevino/tareas/internal/database"
	"github.com/thenoetrevino/tareas/internal/models"
)

// Accepted age range, in whole years: [MinAge, MaxAge)
const (
	MinAge = 10
	MaxAge = 100
)

// Resetter is notified when sign-out wipes storage
type Resetter interface {
	Reset()
}

// Service defines the operations on the single local profile
type Service interface {
	Register(ctx context.Context, name, dob string) (models.Profile, error)
	Current(ctx context.Context) (models.Profile, error)
	SignOut(ctx context.Context) error
}

type service struct {
	kv    database.KeyValueStore
	reset []Resetter
	now   func() time.Time
}

// NewService creates a profile service. Every resetter is reset on sign-out.
func NewService(kv database.KeyValueStore, now func() time.Time, reset ...Resetter) Service {
	if now == nil {
		now = time.Now
	}
	return &service{kv: kv, reset: reset, now: now}
}

// Register validates and stores the profile. Nothing is written on failure.
func (s *service) Register(ctx context.Context, name, dob string) (models.Profile, error) {
	profile, err := Validate(name, dob, s.now())
	if err != nil {
		return models.Profile{}, err
	}

	data, err := json.Marshal(profile)
	if err != nil {
		return models.Profile{}, fmt.Errorf("failed to encode profile: %w", err)
	}
	if err := s.kv.Set(ctx, database.KeyUser, string(data)); err != nil {
		return models.Profile{}, fmt.Errorf("failed to save profile: %w", err)
	}

	slog.Info("user registered", "name", profile.Name)
	return profile, nil
}

func (s *service) Current(ctx context.Context) (models.Profile, error) {
	raw, ok, err := s.kv.Get(ctx, database.KeyUser)
	if err != nil {
		return models.Profile{}, fmt.Errorf("failed to read profile: %w", err)
	}
	if !ok {
		return models.Profile{}, ErrNotRegistered
	}

	var profile models.Profile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil || profile.Name == "" {
		return models.Profile{}, ErrNotRegistered
	}
	return profile, nil
}

// SignOut clears every stored key, tasks included. Resetters run first so
// a seed fetch still in flight cannot write after the clear.
func (s *service) SignOut(ctx context.Context) error {
	for _, r := range s.reset {
		r.Reset()
	}
	if err := s.kv.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear storage: %w", err)
	}
	slog.Info("user signed out")
	return nil
}

// Validate checks a registration without storing it.
func Validate(name, dob string, now time.Time) (models.Profile, error) {
	name = strings.TrimSpace(name)
	dob = strings.TrimSpace(dob)
	if name == "" || dob == "" {
		return models.Profile{}, ErrMissingField
	}

	born, err := time.ParseInLocation(models.DOBLayout, dob, now.Location())
	if err != nil || born.After(now) {
		return models.Profile{}, ErrInvalidDate
	}

	age := Age(born, now)
	if age < MinAge {
		return models.Profile{}, ErrTooYoung
	}
	if age >= MaxAge {
		return models.Profile{}, ErrTooOld
	}

	return models.Profile{Name: name, DOB: dob}, nil
}

// Age returns the number of whole calendar years between dob and now.
func Age(dob, now time.Time) int {
	years := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		years--
	}
	return years
}

// MaxDOB is the latest birth date that passes the minimum age check.
// Feb 29 maps to Feb 28 when the target year has no leap day.
func MaxDOB(now time.Time) time.Time {
	y, m, d := now.Date()
	// Day 0 of the next month is the last day of m
	last := time.Date(y-MinAge, m+1, 0, 0, 0, 0, 0, now.Location()).Day()
	return time.Date(y-MinAge, m, min(d, last), 0, 0, 0, 0, now.Location())
}
