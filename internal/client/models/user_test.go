package models

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRef_NormalizesBothShapes(t *testing.T) {
	// The backend sometimes populates offeredBy and sometimes sends the id.
	var fromObject Skill
	require.NoError(t, json.Unmarshal([]byte(`{
		"_id": "s1",
		"title": "Guitar lessons",
		"tokens": 30,
		"offeredBy": {"_id": "u1", "name": "Alice", "email": "a@x.com"}
	}`), &fromObject))

	var fromID Skill
	require.NoError(t, json.Unmarshal([]byte(`{
		"_id": "s1",
		"title": "Guitar lessons",
		"tokens": 30,
		"offeredBy": "u1"
	}`), &fromID))

	assert.Equal(t, "u1", fromObject.OfferedBy.ID)
	assert.Equal(t, "Alice", fromObject.OfferedBy.Name)
	assert.Equal(t, "u1", fromID.OfferedBy.ID)
	assert.Empty(t, fromID.OfferedBy.Name)
}

func TestUserRef_Is(t *testing.T) {
	alice := User{ID: "u1", Email: "a@x.com"}

	assert.True(t, UserRef{ID: "u1"}.Is(alice))
	assert.False(t, UserRef{ID: "u2"}.Is(alice))
	// Email fallback for unpopulated ids.
	assert.True(t, UserRef{Email: "a@x.com"}.Is(alice))
	assert.False(t, UserRef{}.Is(alice))
}

func TestSkillRef_NormalizesBothShapes(t *testing.T) {
	var req SkillRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"_id": "r1",
		"skill": "s1",
		"requester": "u1",
		"provider": {"_id": "u2", "name": "Bob"},
		"status": "Pending"
	}`), &req))

	assert.Equal(t, "s1", req.Skill.ID)
	assert.Equal(t, "u2", req.Provider.ID)
	assert.Equal(t, RequestPending, req.Status)
}

func TestRequestStatus_Transitions(t *testing.T) {
	assert.True(t, RequestPending.CanAccept())
	assert.False(t, RequestPending.CanComplete())

	assert.False(t, RequestAccepted.CanAccept())
	assert.True(t, RequestAccepted.CanComplete())

	assert.False(t, RequestCompleted.CanAccept())
	assert.False(t, RequestCompleted.CanComplete())
}
