// Package seed loads a YAML description of sample users and activities into
// the ledger. Sample accounts are removed again by the cleanup-samples job,
// so every seeded email must match one of the configured sample patterns.
package seed

import (
	"context"
	"fmt"
	"time"

	"contribution-rewards-backend/internal/domain"
	"contribution-rewards-backend/internal/logger"
	"contribution-rewards-backend/internal/repository"

	"gopkg.in/yaml.v3"
)

type Data struct {
	Users      []User     `yaml:"users"`
	Activities []Activity `yaml:"activities"`
}

type User struct {
	ID          string `yaml:"id"`
	Email       string `yaml:"email"`
	FirstName   string `yaml:"first_name"`
	LastName    string `yaml:"last_name"`
	Designation string `yaml:"designation"`
	Department  string `yaml:"department"`
	Status      string `yaml:"status"`
}

type Activity struct {
	UserEmail   string `yaml:"user_email"`
	CategoryID  int32  `yaml:"category_id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Date        string `yaml:"date"`
	Status      string `yaml:"status"`
	ApprovedBy  string `yaml:"approved_by"`
}

type Repositories struct {
	Users      repository.UserRepository
	Categories repository.CategoryRepository
	Activities repository.ActivityRepository
}

// TxRunner runs fn with repositories bound to a single transaction, which it
// commits only when fn returns nil.
type TxRunner func(ctx context.Context, fn func(Repositories) error) error

// Parse decodes and validates a seed file. patterns are SQL LIKE patterns,
// matched exactly as the cleanup query matches them.
func Parse(data []byte, patterns []string) (*Data, error) {
	var d Data
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}

	emails := make(map[string]bool, len(d.Users))
	for i, u := range d.Users {
		if u.ID == "" || u.Email == "" || u.FirstName == "" || u.Designation == "" {
			return nil, fmt.Errorf("user %d: id, email, first_name and designation are required", i+1)
		}
		if !matchesAny(u.Email, patterns) {
			return nil, fmt.Errorf("user %s: email does not match any sample pattern", u.Email)
		}
		switch domain.UserStatus(u.Status) {
		case "", domain.UserStatusPending, domain.UserStatusApproved:
		default:
			return nil, fmt.Errorf("user %s: unsupported status %q", u.Email, u.Status)
		}
		emails[u.Email] = true
	}

	for i, a := range d.Activities {
		if !emails[a.UserEmail] {
			return nil, fmt.Errorf("activity %d: unknown user %q", i+1, a.UserEmail)
		}
		if a.ApprovedBy != "" && !emails[a.ApprovedBy] {
			return nil, fmt.Errorf("activity %d: unknown approver %q", i+1, a.ApprovedBy)
		}
		if _, err := time.Parse(time.DateOnly, a.Date); err != nil {
			return nil, fmt.Errorf("activity %d: date must be YYYY-MM-DD", i+1)
		}
		switch domain.ActivityStatus(a.Status) {
		case "", domain.ActivityStatusPending:
		case domain.ActivityStatusApproved:
			if a.ApprovedBy == "" {
				return nil, fmt.Errorf("activity %d: approved_by is required for approved activities", i+1)
			}
		default:
			return nil, fmt.Errorf("activity %d: unsupported status %q", i+1, a.Status)
		}
	}
	return &d, nil
}

// Apply writes the users, then their activities, in one transaction.
// Approved activities are created pending and then decided, so they carry the
// same audit fields as ones approved through the API.
func Apply(ctx context.Context, inTx TxRunner, d *Data, now time.Time) error {
	return inTx(ctx, func(repos Repositories) error {
		return apply(ctx, repos, d, now)
	})
}

func apply(ctx context.Context, repos Repositories, d *Data, now time.Time) error {
	ids := make(map[string]string, len(d.Users))
	for i, u := range d.Users {
		logger.Info("Creating sample user", "index", i+1, "total", len(d.Users), "email", u.Email)
		status := domain.UserStatus(u.Status)
		if status == "" {
			status = domain.UserStatusApproved
		}
		user := &domain.User{
			ID:          u.ID,
			Email:       u.Email,
			FirstName:   u.FirstName,
			LastName:    u.LastName,
			Designation: u.Designation,
			Department:  u.Department,
			Role:        domain.DefaultRoleForDesignation(u.Designation),
			Status:      status,
		}
		if err := repos.Users.Create(ctx, user); err != nil {
			return fmt.Errorf("failed to create user %s: %w", u.Email, err)
		}
		ids[u.Email] = u.ID
	}

	for i, a := range d.Activities {
		if _, err := repos.Categories.GetByID(ctx, a.CategoryID); err != nil {
			return fmt.Errorf("activity %d: %w", i+1, err)
		}
		date, _ := time.Parse(time.DateOnly, a.Date)
		activity := &domain.Activity{
			UserID:       ids[a.UserEmail],
			CategoryID:   a.CategoryID,
			Title:        a.Title,
			Description:  a.Description,
			ActivityDate: date,
			Status:       domain.ActivityStatusPending,
		}
		if err := repos.Activities.Create(ctx, activity); err != nil {
			return fmt.Errorf("failed to create activity %q: %w", a.Title, err)
		}
		if domain.ActivityStatus(a.Status) != domain.ActivityStatusApproved {
			continue
		}
		approver := ids[a.ApprovedBy]
		approvedAt := now.UTC()
		activity.Status = domain.ActivityStatusApproved
		activity.ApprovedBy = &approver
		activity.ApprovedAt = &approvedAt
		if err := repos.Activities.Decide(ctx, activity); err != nil {
			return fmt.Errorf("failed to approve activity %q: %w", a.Title, err)
		}
	}
	return nil
}

func matchesAny(email string, patterns []string) bool {
	for _, p := range patterns {
		if likeMatch(email, p) {
			return true
		}
	}
	return false
}

// likeMatch follows Postgres LIKE: case-sensitive, % matches any run, _ one
// character, and a backslash escapes the next character.
func likeMatch(s, pattern string) bool {
	str, pat := []rune(s), []rune(pattern)
	var match func(i, j int) bool
	match = func(i, j int) bool {
		for j < len(pat) {
			switch pat[j] {
			case '%':
				for j < len(pat) && pat[j] == '%' {
					j++
				}
				if j == len(pat) {
					return true
				}
				for k := i; k <= len(str); k++ {
					if match(k, j) {
						return true
					}
				}
				return false
			case '_':
				if i == len(str) {
					return false
				}
			case '\\':
				if j+1 < len(pat) {
					j++
				}
				fallthrough
			default:
				if i == len(str) || str[i] != pat[j] {
					return false
				}
			}
			i++
			j++
		}
		return i == len(str)
	}
	return match(0, 0)
}
