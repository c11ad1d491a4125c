package models

import (
	"time"

	"github.com/goccy/go-json"
)

// RequestStatus is the server-authoritative workflow state of a SkillRequest.
// The client only ever triggers the two legal transitions.
type RequestStatus string

const (
	RequestPending   RequestStatus = "Pending"
	RequestAccepted  RequestStatus = "Accepted"
	RequestCompleted RequestStatus = "Completed"
)

// CanAccept reports whether the Pending → Accepted transition applies.
func (s RequestStatus) CanAccept() bool { return s == RequestPending }

// CanComplete reports whether the Accepted → Completed transition applies.
func (s RequestStatus) CanComplete() bool { return s == RequestAccepted }

// SkillRequest tracks one user's request to receive another's offered skill.
type SkillRequest struct {
	ID        string        `json:"_id"`
	Skill     SkillRef      `json:"skill"`
	Requester UserRef       `json:"requester"`
	Provider  UserRef       `json:"provider"`
	Status    RequestStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}

// SkillRef mirrors UserRef for skill references: bare id or embedded object.
type SkillRef struct {
	ID     string `json:"_id"`
	Title  string `json:"title,omitempty"`
	Tokens int    `json:"tokens,omitempty"`
}

func (r *SkillRef) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*r = SkillRef{ID: id}
		return nil
	}
	type plain SkillRef
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = SkillRef(p)
	return nil
}
