package models

import "time"

// Skill is a tradeable offering with a token price. OfferedBy may arrive from
// the backend as an id or an object; see UserRef.
type Skill struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tokens      int       `json:"tokens"`
	OfferedBy   UserRef   `json:"offeredBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewSkill is the client-supplied part of a skill offer.
type NewSkill struct {
	Title       string `json:"title" validate:"required,min=3,max=120"`
	Description string `json:"description" validate:"required,min=3"`
	Tokens      int    `json:"tokens" validate:"required,gt=0"`
}
