package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Sanzh-11/Server/internal/domain"
)

var (
	ErrNotFound = errors.New("booking_not_found")
	ErrConflict = errors.New("unique_violation")
)

type BookingRepo struct{ db *gorm.DB }

func NewBookingRepo(db *gorm.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

func (r *BookingRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Booking{})
}

// Upsert creates the booking or, when the IIN is already booked, moves it to
// the new date/slot in a single INSERT ... ON CONFLICT statement, so racing
// submissions for the same IIN coalesce instead of failing. Approval is
// revoked on every submission; name/surname/contacts are written on insert
// only and never change afterwards.
func (r *BookingRepo) Upsert(ctx context.Context, b *domain.Booking) error {
	b.Approved = false
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "iin"}},
		DoUpdates: clause.AssignmentColumns([]string{"date", "time_slot", "approved", "attachment_path", "updated_at"}),
	}).Create(b).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// the iin conflict is absorbed above, so this is the email index
		return ErrConflict
	}
	return err
}

func (r *BookingRepo) ByIIN(ctx context.Context, iin string) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.db.WithContext(ctx).First(&b, "iin = ?", iin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepo) ListApproved(ctx context.Context) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.db.WithContext(ctx).Where("approved = ?", true).Find(&out).Error
	return out, err
}

func (r *BookingRepo) ListPending(ctx context.Context) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.db.WithContext(ctx).Where("approved = ?", false).Find(&out).Error
	return out, err
}

// Approve confirms the booking. Approving an IIN with no row is a no-op
// that still succeeds; the store does not tell the two cases apart.
func (r *BookingRepo) Approve(ctx context.Context, iin string) error {
	return r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("iin = ?", iin).
		Update("approved", true).Error
}

// SlotsOnDate returns the booked hour slots for a calendar day. Stored dates
// may carry time-of-day, so the match is a UTC day window rather than
// timestamp equality.
func (r *BookingRepo) SlotsOnDate(ctx context.Context, day time.Time) ([]int, error) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)
	var slots []int
	err := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("date >= ? AND date < ?", from, to).
		Pluck("time_slot", &slots).Error
	return slots, err
}

// AdminByEmail is the second key path into the table: it reads only the
// admin flag, keyed by email instead of iin.
func (r *BookingRepo) AdminByEmail(ctx context.Context, email string) (bool, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).Select("is_admin").
		Where("email = ?", email).First(&b).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}
	return b.IsAdmin, nil
}
