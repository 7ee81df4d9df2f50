package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Sanzh-11/Server/internal/domain"
	"github.com/Sanzh-11/Server/internal/repository"
	"github.com/Sanzh-11/Server/pkg/mq"
)

var (
	ErrBadDate = errors.New("unparsable date")
	ErrBadSlot = errors.New("time slot out of range")
)

type BookingSvc struct {
	repo *repository.BookingRepo
	pub  *mq.Publisher // nil when event publishing is disabled
}

func NewBookingSvc(r *repository.BookingRepo, pub *mq.Publisher) *BookingSvc {
	return &BookingSvc{repo: r, pub: pub}
}

// BookRequest is the validated booking submission. TimeSlot defaults to 0
// when the client omits it (the earliest schema allowed that).
type BookRequest struct {
	Name           string
	Surname        string
	IIN            string
	Contacts       string
	Date           string // YYYY-MM-DD or RFC3339
	TimeSlot       int
	AttachmentPath string
}

// parseDate accepts a bare calendar day or a full RFC3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, ErrBadDate
	}
	return t.UTC(), nil
}

func (s *BookingSvc) Book(ctx context.Context, req BookRequest) error {
	d, err := parseDate(req.Date)
	if err != nil {
		return err
	}
	if req.TimeSlot < 0 || req.TimeSlot > 23 {
		return ErrBadSlot
	}

	b := &domain.Booking{
		IIN:            req.IIN,
		Name:           req.Name,
		Surname:        req.Surname,
		Contacts:       req.Contacts,
		Date:           d,
		TimeSlot:       req.TimeSlot,
		AttachmentPath: req.AttachmentPath,
	}
	if err := s.repo.Upsert(ctx, b); err != nil {
		return err
	}

	if s.pub != nil {
		_ = s.pub.PublishJSON(ctx, "booking.created", map[string]any{
			"event_id":  uuid.NewString(),
			"iin":       req.IIN,
			"date":      d.Format(time.RFC3339),
			"time_slot": req.TimeSlot,
		})
	}
	return nil
}

func (s *BookingSvc) Approve(ctx context.Context, iin string) error {
	if err := s.repo.Approve(ctx, iin); err != nil {
		return err
	}
	if s.pub != nil {
		_ = s.pub.PublishJSON(ctx, "booking.approved", map[string]any{
			"event_id": uuid.NewString(),
			"iin":      iin,
		})
	}
	return nil
}

func (s *BookingSvc) Lookup(ctx context.Context, iin string) (domain.Info, error) {
	b, err := s.repo.ByIIN(ctx, iin)
	if err != nil {
		return domain.Info{}, err
	}
	return b.AsInfo(), nil
}

func (s *BookingSvc) Approved(ctx context.Context) ([]domain.ApprovedSummary, error) {
	rows, err := s.repo.ListApproved(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ApprovedSummary, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].AsApproved())
	}
	return out, nil
}

func (s *BookingSvc) Pending(ctx context.Context) ([]domain.PendingSummary, error) {
	rows, err := s.repo.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.PendingSummary, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].AsPending())
	}
	return out, nil
}

func (s *BookingSvc) SlotsOnDate(ctx context.Context, dateISO string) ([]int, error) {
	d, err := parseDate(dateISO)
	if err != nil {
		return nil, err
	}
	slots, err := s.repo.SlotsOnDate(ctx, d)
	if err != nil {
		return nil, err
	}
	if slots == nil {
		slots = []int{}
	}
	return slots, nil
}

func (s *BookingSvc) AdminByEmail(ctx context.Context, email string) (bool, error) {
	return s.repo.AdminByEmail(ctx, email)
}
