package event

import (
	"context"
	"errors"
	"strings"
	"time"

	"weddingdesk/internal/domain"
	"weddingdesk/internal/pkg/phone"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type Service struct {
	events Repository
}

func NewService(events Repository) *Service {
	return &Service{events: events}
}

func (s *Service) Create(ctx context.Context, ownerID int64, req SaveEventRequest) (*domain.Event, error) {
	e, err := buildEvent(ownerID, req)
	if err != nil {
		return nil, err
	}

	if err := s.events.Create(ctx, e); err != nil {
		return nil, mapWriteError(err)
	}
	return e, nil
}

func (s *Service) GetByID(ctx context.Context, ownerID, id int64) (*domain.Event, error) {
	return s.ownedEvent(ctx, ownerID, id)
}

func (s *Service) List(ctx context.Context, ownerID int64) ([]domain.Event, error) {
	return s.events.GetByOwner(ctx, ownerID)
}

// EventsOn returns the producer's events on one local calendar date. The
// agenda scheduler reads today's list through this.
func (s *Service) EventsOn(ctx context.Context, ownerID int64, date string) ([]domain.Event, error) {
	return s.events.GetByOwnerAndDate(ctx, ownerID, date)
}

// Update replaces the event's editable fields and its supplier list
// wholesale. Sign-off state already captured on a supplier is carried over
// by supplier ID so a questionnaire save cannot erase a signature.
func (s *Service) Update(ctx context.Context, ownerID, id int64, req SaveEventRequest) (*domain.Event, error) {
	current, err := s.ownedEvent(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	e, err := buildEvent(ownerID, req)
	if err != nil {
		return nil, err
	}
	e.ID = id
	carrySignOffs(current.Suppliers, e.Suppliers)

	if err := s.events.Update(ctx, e); err != nil {
		return nil, mapWriteError(err)
	}
	return s.events.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, ownerID, id int64) error {
	if _, err := s.ownedEvent(ctx, ownerID, id); err != nil {
		return err
	}
	return s.events.Delete(ctx, id)
}

// SignOffSupplier merges the signature payload into the supplier row. A
// supplier signs at most once; repeat submissions are rejected rather than
// overwriting the captured signature.
func (s *Service) SignOffSupplier(ctx context.Context, ownerID, eventID, supplierID int64, req SignOffRequest) (*domain.EventSupplier, error) {
	if _, err := s.ownedEvent(ctx, ownerID, eventID); err != nil {
		return nil, err
	}

	sup, err := s.events.GetSupplierByID(ctx, eventID, supplierID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, err
	}
	if sup.HasSigned {
		return nil, ErrAlreadySigned
	}

	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return nil, ErrValidation
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Signature) == "" {
		return nil, ErrValidation
	}

	sup.HasSigned = true
	sup.PaymentReceivedDate = req.Date
	sup.PaymentReceivedName = strings.TrimSpace(req.Name)
	sup.PaymentReceivedSignature = req.Signature
	sup.PaymentReceivedHours = ParseAmount(req.Hours)
	sup.PaymentReceivedAmount = ParseAmount(req.Amount)

	if err := s.events.MergeSupplierSignOff(ctx, supplierID, sup); err != nil {
		return nil, err
	}
	return sup, nil
}

func (s *Service) ownedEvent(ctx context.Context, ownerID, id int64) (*domain.Event, error) {
	e, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if e.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	return e, nil
}

// buildEvent applies the save policy: required couple name and valid wedding
// date, permissive numeric parsing with omitted-not-zero semantics, supplier
// rows with blank role and blank name dropped regardless of other fields.
func buildEvent(ownerID int64, req SaveEventRequest) (*domain.Event, error) {
	coupleName := strings.TrimSpace(req.CoupleName)
	if coupleName == "" {
		return nil, ErrValidation
	}
	if _, err := time.Parse(dateLayout, req.WeddingDate); err != nil {
		return nil, ErrValidation
	}

	return &domain.Event{
		OwnerID:     ownerID,
		CoupleName:  coupleName,
		WeddingDate: req.WeddingDate,
		Hall:        strings.TrimSpace(req.Hall),
		Address:     strings.TrimSpace(req.Address),
		GuestCount:  ParseCount(req.GuestCount),
		Budget:      ParseAmount(req.Budget),
		Notes:       req.Notes,
		Suppliers:   buildSuppliers(req.Suppliers),
	}, nil
}

func buildSuppliers(inputs []SupplierInput) []domain.EventSupplier {
	out := make([]domain.EventSupplier, 0, len(inputs))
	for _, in := range inputs {
		role := strings.TrimSpace(in.Role)
		name := strings.TrimSpace(in.Name)
		if role == "" && name == "" {
			continue
		}

		sup := domain.EventSupplier{
			ID:           in.ID,
			Role:         role,
			Name:         name,
			Phone:        phone.Digits(in.Phone),
			Hours:        ParseAmount(in.Hours),
			TotalPayment: ParseAmount(in.TotalPayment),
			Deposit:      ParseAmount(in.Deposit),
			Balance:      ParseAmount(in.Balance),
		}
		if sup.Balance == nil && sup.TotalPayment != nil && sup.Deposit != nil {
			b := *sup.TotalPayment - *sup.Deposit
			sup.Balance = &b
		}
		out = append(out, sup)
	}
	return out
}

// carrySignOffs preserves captured signatures across a wholesale supplier
// rewrite. Incoming rows that still reference a signed supplier by ID keep
// its sign-off state.
func carrySignOffs(existing, incoming []domain.EventSupplier) {
	signed := make(map[int64]domain.EventSupplier)
	for _, s := range existing {
		if s.HasSigned {
			signed[s.ID] = s
		}
	}
	for i := range incoming {
		if prev, ok := signed[incoming[i].ID]; ok {
			incoming[i].HasSigned = true
			incoming[i].PaymentReceivedDate = prev.PaymentReceivedDate
			incoming[i].PaymentReceivedName = prev.PaymentReceivedName
			incoming[i].PaymentReceivedSignature = prev.PaymentReceivedSignature
			incoming[i].PaymentReceivedHours = prev.PaymentReceivedHours
			incoming[i].PaymentReceivedAmount = prev.PaymentReceivedAmount
		}
	}
}

func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicate
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	// The sqlite driver reports unique violations without a typed error.
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint") {
		return ErrDuplicate
	}
	return err
}
