// Package models defines the SkillBarter domain records as the backend
// serves them. Identifiers are opaque Mongo-style strings carried in "_id".
package models

import (
	"github.com/goccy/go-json"
)

// User is a full profile record as returned by /auth/login, /auth/signup,
// /auth/users and /auth/user/:id.
type User struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Bio    string `json:"bio,omitempty"`
	Wallet int    `json:"wallet,omitempty"`
}

// UserRef is a reference to a user embedded in another record. The backend is
// inconsistent about whether such references arrive as a bare id string or as
// a populated object; UserRef normalizes both shapes on ingestion so callers
// never branch on shape.
type UserRef struct {
	ID    string `json:"_id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// UnmarshalJSON accepts either "66f1..." or {"_id": "66f1...", "name": ...}.
func (r *UserRef) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*r = UserRef{ID: id}
		return nil
	}
	type plain UserRef
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = UserRef(p)
	return nil
}

// IsZero reports whether the reference carries no identity at all.
func (r UserRef) IsZero() bool {
	return r.ID == "" && r.Name == "" && r.Email == ""
}

// Is reports whether the reference points at the given user. Comparison is by
// id when both sides have one, falling back to email for records the backend
// returns without a populated id.
func (r UserRef) Is(u User) bool {
	if r.ID != "" && u.ID != "" {
		return r.ID == u.ID
	}
	return r.Email != "" && r.Email == u.Email
}
