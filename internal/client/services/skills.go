package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/skillbarter/skillbarter/internal/client/api"
	"github.com/skillbarter/skillbarter/internal/client/models"
	"github.com/skillbarter/skillbarter/internal/client/session"
)

// SkillService defines the browse/offer/request workflow behind the skills
// views. The accept/complete guards mirror the backend rules so an illegal
// action fails locally before any call is issued.
type SkillService interface {
	List(ctx context.Context) ([]models.Skill, error)
	Get(ctx context.Context, id string) (models.Skill, error)
	Offer(ctx context.Context, offer models.NewSkill) (models.Skill, error)
	Request(ctx context.Context, skillID string) (models.SkillRequest, error)
	MyRequests(ctx context.Context) ([]models.SkillRequest, error)
	Accept(ctx context.Context, requestID string) error
	Complete(ctx context.Context, requestID string) error
}

type skillService struct {
	client   api.Client
	store    *session.Store
	validate *validator.Validate
}

// NewSkillService constructs a SkillService bound to the given API client and
// session store (the store supplies the identity for ownership checks).
func NewSkillService(client api.Client, store *session.Store) SkillService {
	return &skillService{client: client, store: store, validate: newValidator()}
}

func (s *skillService) List(ctx context.Context) ([]models.Skill, error) {
	return s.client.Skills(ctx)
}

// Get finds one skill by id. The backend has no single-skill endpoint; like
// the detail view it filters the full listing.
func (s *skillService) Get(ctx context.Context, id string) (models.Skill, error) {
	skills, err := s.client.Skills(ctx)
	if err != nil {
		return models.Skill{}, err
	}
	for _, sk := range skills {
		if sk.ID == id {
			return sk, nil
		}
	}
	return models.Skill{}, fmt.Errorf("skill %s: %w", id, api.ErrNotFound)
}

func (s *skillService) Offer(ctx context.Context, offer models.NewSkill) (models.Skill, error) {
	if err := s.validate.Struct(offer); err != nil {
		return models.Skill{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.client.OfferSkill(ctx, offer)
}

// Request creates an exchange request. Requesting one's own skill is rejected
// locally; a duplicate request surfaces as api.ErrConflict from the backend.
func (s *skillService) Request(ctx context.Context, skillID string) (models.SkillRequest, error) {
	sess, ok := s.store.Read()
	if !ok {
		return models.SkillRequest{}, ErrNoSession
	}

	skill, err := s.Get(ctx, skillID)
	if err != nil {
		return models.SkillRequest{}, err
	}
	if skill.OfferedBy.Is(sess.User) {
		return models.SkillRequest{}, ErrOwnSkill
	}
	return s.client.RequestSkill(ctx, skillID)
}

func (s *skillService) MyRequests(ctx context.Context) ([]models.SkillRequest, error) {
	return s.client.MyRequests(ctx)
}

// Accept moves a pending request to Accepted. Only the provider may accept;
// a requester accepting their own request is rejected before any call.
func (s *skillService) Accept(ctx context.Context, requestID string) error {
	req, sess, err := s.findRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if !req.Provider.Is(sess.User) {
		return ErrNotProvider
	}
	if !req.Status.CanAccept() {
		return fmt.Errorf("%w: status is %s", ErrBadTransition, req.Status)
	}
	return s.client.AcceptRequest(ctx, requestID)
}

// Complete moves an accepted request to Completed, which settles the token
// transfer server-side. Only the requester may complete.
func (s *skillService) Complete(ctx context.Context, requestID string) error {
	req, sess, err := s.findRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if !req.Requester.Is(sess.User) {
		return ErrNotRequester
	}
	if !req.Status.CanComplete() {
		return fmt.Errorf("%w: status is %s", ErrBadTransition, req.Status)
	}
	return s.client.CompleteRequest(ctx, requestID)
}

func (s *skillService) findRequest(ctx context.Context, requestID string) (models.SkillRequest, session.Session, error) {
	sess, ok := s.store.Read()
	if !ok {
		return models.SkillRequest{}, session.Session{}, ErrNoSession
	}
	reqs, err := s.client.MyRequests(ctx)
	if err != nil {
		return models.SkillRequest{}, session.Session{}, err
	}
	for _, r := range reqs {
		if r.ID == requestID {
			return r, sess, nil
		}
	}
	return models.SkillRequest{}, session.Session{}, fmt.Errorf("request %s: %w", requestID, api.ErrNotFound)
}
