// internal/models/profile.go
package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Role is an open set: unknown roles are valid and simply earn no
// complementarity points.
type Role string

const (
	RoleStudent Role = "student"
	RoleAlumni  Role = "alumni"
	RoleFaculty Role = "faculty"
	RoleAdmin   Role = "admin"
)

type Profile struct {
	ID             string   `json:"id" validate:"required"`
	Name           string   `json:"name,omitempty"`
	Role           Role     `json:"role" validate:"required"`
	Branch         string   `json:"branch,omitempty"`
	Skills         []string `json:"skills,omitempty"`
	Bio            string   `json:"bio,omitempty"`
	Headline       string   `json:"headline,omitempty"`
	GraduationYear int      `json:"graduationYear,omitempty" validate:"omitempty,gte=1900,lte=2200"`
}

// ActivityCounters are pre-aggregated by the caller for a single profile.
type ActivityCounters struct {
	Connections  int `json:"connections" validate:"gte=0"`
	Posts        int `json:"posts" validate:"gte=0"`
	Comments     int `json:"comments" validate:"gte=0"`
	SkillCount   int `json:"skillCount" validate:"gte=0"`
	Endorsements int `json:"endorsements" validate:"gte=0"`
}

var validate = validator.New()

func (p Profile) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("profile %q: %w", p.ID, err)
	}
	return nil
}

func (c ActivityCounters) Validate() error {
	return validate.Struct(c)
}

// ValidatePool checks every profile and rejects duplicate ids.
func ValidatePool(pool []Profile) error {
	seen := make(map[string]struct{}, len(pool))
	for _, p := range pool {
		if err := p.Validate(); err != nil {
			return err
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("duplicate profile id %q in pool", p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}
