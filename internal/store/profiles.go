// Package store loads profiles, activity counters and opportunities from
// postgres, with a redis cache in front of single-profile lookups.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"alumni-connect-workers/internal/common/logger"
	"alumni-connect-workers/internal/common/resilience"
	"alumni-connect-workers/internal/models"

	"github.com/goccy/go-json"
)

var ErrProfileNotFound = errors.New("profile not found")

// NotFoundError names the missing profile and matches ErrProfileNotFound.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return "profile not found: " + e.ID
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrProfileNotFound
}

const profileColumns = `id, COALESCE(name, ''), role, COALESCE(branch, ''), COALESCE(headline, ''),
		COALESCE(bio, ''), COALESCE(skills, '[]'), COALESCE(year_of_passing, 0)`

// ProfileStore reads the alumni schema. Every call runs through a circuit
// breaker; a missing profile does not count as a failure.
type ProfileStore struct {
	db      *sql.DB
	breaker *resilience.Breaker
	logger  logger.Logger
}

// NewProfileStore uses a default "postgres" breaker when breaker is nil.
func NewProfileStore(db *sql.DB, breaker *resilience.Breaker, log logger.Logger) *ProfileStore {
	if breaker == nil {
		cfg := resilience.DefaultBreakerConfig("postgres")
		cfg.Benign = func(err error) bool { return errors.Is(err, ErrProfileNotFound) }
		breaker = resilience.NewBreaker(cfg, log)
	}
	return &ProfileStore{db: db, breaker: breaker, logger: log}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (s *ProfileStore) scanProfile(row rowScanner) (models.Profile, error) {
	var (
		p      models.Profile
		role   string
		skills string
	)
	if err := row.Scan(&p.ID, &p.Name, &role, &p.Branch, &p.Headline, &p.Bio, &skills, &p.GraduationYear); err != nil {
		return models.Profile{}, err
	}
	p.Role = models.Role(role)
	p.Skills = s.decodeSkills(p.ID, skills)
	return p, nil
}

// decodeSkills parses the JSON text skills column. Anything undecodable is
// treated as an empty skill set.
func (s *ProfileStore) decodeSkills(ownerID, raw string) []string {
	skills := []string{}
	if raw == "" {
		return skills
	}
	if err := json.Unmarshal([]byte(raw), &skills); err != nil {
		s.logger.Warn("undecodable skills column", map[string]interface{}{
			"id":    ownerID,
			"error": err,
		})
		return []string{}
	}
	if skills == nil {
		return []string{}
	}
	return skills
}

func (s *ProfileStore) GetProfile(ctx context.Context, id string) (models.Profile, error) {
	return resilience.Call(s.breaker, func() (models.Profile, error) {
		row := s.db.QueryRowContext(ctx, `
			SELECT `+profileColumns+`
			FROM users
			WHERE id = $1`, id)

		p, err := s.scanProfile(row)
		if errors.Is(err, sql.ErrNoRows) {
			return models.Profile{}, &NotFoundError{ID: id}
		}
		if err != nil {
			return models.Profile{}, fmt.Errorf("get profile %s: %w", id, err)
		}
		return p, nil
	})
}

// ListCandidatePool returns approved users other than requesterID, ordered
// by id. A non-positive limit returns the whole pool.
func (s *ProfileStore) ListCandidatePool(ctx context.Context, requesterID string, limit int) ([]models.Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM users
		WHERE id <> $1 AND status = 'approved'
		ORDER BY id`
	args := []interface{}{requesterID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}
	return s.listProfiles(ctx, "candidate pool", query, args...)
}

// ListPopulation returns every approved user. Trend reports always read it
// fresh.
func (s *ProfileStore) ListPopulation(ctx context.Context) ([]models.Profile, error) {
	return s.listProfiles(ctx, "population", `
		SELECT `+profileColumns+`
		FROM users
		WHERE status = 'approved'
		ORDER BY id`)
}

func (s *ProfileStore) listProfiles(ctx context.Context, what, query string, args ...interface{}) ([]models.Profile, error) {
	return resilience.Call(s.breaker, func() ([]models.Profile, error) {
		rows, err := s.db.QueryContext(ctx, query, args...)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", what, err)
		}
		defer rows.Close()

		profiles := []models.Profile{}
		for rows.Next() {
			p, err := s.scanProfile(rows)
			if err != nil {
				return nil, fmt.Errorf("scan %s: %w", what, err)
			}
			profiles = append(profiles, p)
		}
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("list %s: %w", what, err)
		}
		return profiles, nil
	})
}

// AcceptedConnectionIDs returns the other side of every accepted connection
// userID takes part in.
func (s *ProfileStore) AcceptedConnectionIDs(ctx context.Context, userID string) ([]string, error) {
	return resilience.Call(s.breaker, func() ([]string, error) {
		rows, err := s.db.QueryContext(ctx, `
			SELECT requester_id, responder_id, status
			FROM connections
			WHERE (requester_id = $1 OR responder_id = $1) AND status = 'accepted'`, userID)
		if err != nil {
			return nil, fmt.Errorf("list connections: %w", err)
		}
		defer rows.Close()

		ids := []string{}
		for rows.Next() {
			var c models.Connection
			if err := rows.Scan(&c.RequesterID, &c.ResponderID, &c.Status); err != nil {
				return nil, fmt.Errorf("scan connection: %w", err)
			}
			ids = append(ids, c.Other(userID))
		}
		return ids, rows.Err()
	})
}

// ActivityCounters aggregates the rating inputs for userID in one round trip.
func (s *ProfileStore) ActivityCounters(ctx context.Context, userID string) (models.ActivityCounters, error) {
	return resilience.Call(s.breaker, func() (models.ActivityCounters, error) {
		var c models.ActivityCounters
		err := s.db.QueryRowContext(ctx, `
			SELECT
				(SELECT COUNT(*) FROM connections
					WHERE (requester_id = $1 OR responder_id = $1) AND status = 'accepted'),
				(SELECT COUNT(*) FROM posts WHERE author_id = $1),
				(SELECT COUNT(*) FROM comments WHERE author_id = $1),
				(SELECT COUNT(*) FROM user_skills WHERE user_id = $1),
				(SELECT COUNT(*) FROM skill_endorsements
					WHERE skill_id IN (SELECT id FROM user_skills WHERE user_id = $1))`,
			userID).Scan(&c.Connections, &c.Posts, &c.Comments, &c.SkillCount, &c.Endorsements)
		if err != nil {
			return models.ActivityCounters{}, fmt.Errorf("activity counters %s: %w", userID, err)
		}
		return c, nil
	})
}

func (s *ProfileStore) ListApprovedJobs(ctx context.Context) ([]models.Job, error) {
	return resilience.Call(s.breaker, func() ([]models.Job, error) {
		rows, err := s.db.QueryContext(ctx, `
			SELECT id, title, COALESCE(company, ''), COALESCE(location, ''), COALESCE(job_type, ''),
				COALESCE(branch, ''), COALESCE(skills, '[]')
			FROM jobs
			WHERE status = 'approved'
			ORDER BY id`)
		if err != nil {
			return nil, fmt.Errorf("list jobs: %w", err)
		}
		defer rows.Close()

		jobs := []models.Job{}
		for rows.Next() {
			var (
				j      models.Job
				skills string
			)
			if err := rows.Scan(&j.ID, &j.Title, &j.Company, &j.Location, &j.JobType, &j.Branch, &skills); err != nil {
				return nil, fmt.Errorf("scan job: %w", err)
			}
			j.Skills = s.decodeSkills(j.ID, skills)
			jobs = append(jobs, j)
		}
		return jobs, rows.Err()
	})
}

// ListUpcomingEvents returns approved events starting after now.
func (s *ProfileStore) ListUpcomingEvents(ctx context.Context, now time.Time) ([]models.Event, error) {
	return resilience.Call(s.breaker, func() ([]models.Event, error) {
		rows, err := s.db.QueryContext(ctx, `
			SELECT id, title, COALESCE(category, ''), COALESCE(branch, ''), COALESCE(location, ''), start_date
			FROM events
			WHERE status = 'approved' AND start_date > $1
			ORDER BY start_date`, now)
		if err != nil {
			return nil, fmt.Errorf("list events: %w", err)
		}
		defer rows.Close()

		events := []models.Event{}
		for rows.Next() {
			var e models.Event
			if err := rows.Scan(&e.ID, &e.Title, &e.Category, &e.Branch, &e.Location, &e.StartDate); err != nil {
				return nil, fmt.Errorf("scan event: %w", err)
			}
			events = append(events, e)
		}
		return events, rows.Err()
	})
}
