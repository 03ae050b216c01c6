package meeting

import (
	"context"
	"errors"
	"strings"
	"time"

	"weddingdesk/internal/domain"

	"gorm.io/gorm"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

type Service struct {
	meetings Repository
}

func NewService(meetings Repository) *Service {
	return &Service{meetings: meetings}
}

func (s *Service) Create(ctx context.Context, ownerID int64, req SaveMeetingRequest) (*domain.Meeting, error) {
	m, err := buildMeeting(ownerID, req)
	if err != nil {
		return nil, err
	}
	if err := s.meetings.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) GetByID(ctx context.Context, ownerID, id int64) (*domain.Meeting, error) {
	return s.ownedMeeting(ctx, ownerID, id)
}

func (s *Service) List(ctx context.Context, ownerID int64) ([]domain.Meeting, error) {
	return s.meetings.GetByOwner(ctx, ownerID)
}

// MeetingsOn returns the producer's meetings on one local calendar date,
// ordered by time. The agenda scheduler reads today's list through this.
func (s *Service) MeetingsOn(ctx context.Context, ownerID int64, date string) ([]domain.Meeting, error) {
	return s.meetings.GetByOwnerAndDate(ctx, ownerID, date)
}

func (s *Service) Update(ctx context.Context, ownerID, id int64, req SaveMeetingRequest) (*domain.Meeting, error) {
	current, err := s.ownedMeeting(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	m, err := buildMeeting(ownerID, req)
	if err != nil {
		return nil, err
	}
	m.ID = id
	m.CreatedAt = current.CreatedAt

	if err := s.meetings.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) Delete(ctx context.Context, ownerID, id int64) error {
	if _, err := s.ownedMeeting(ctx, ownerID, id); err != nil {
		return err
	}
	return s.meetings.Delete(ctx, id)
}

func (s *Service) ownedMeeting(ctx context.Context, ownerID, id int64) (*domain.Meeting, error) {
	m, err := s.meetings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if m.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	return m, nil
}

func buildMeeting(ownerID int64, req SaveMeetingRequest) (*domain.Meeting, error) {
	coupleName := strings.TrimSpace(req.CoupleName)
	if coupleName == "" {
		return nil, ErrValidation
	}
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return nil, ErrValidation
	}
	if _, err := time.Parse(timeLayout, req.Time); err != nil {
		return nil, ErrValidation
	}

	return &domain.Meeting{
		OwnerID:    ownerID,
		Date:       req.Date,
		Time:       req.Time,
		CoupleName: coupleName,
		Location:   strings.TrimSpace(req.Location),
		Notes:      req.Notes,
	}, nil
}
