package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Sanzh-11/Server/internal/domain"
)

func newTestRepo(t *testing.T) *BookingRepo {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	r := NewBookingRepo(gdb)
	require.NoError(t, r.Migrate())
	return r
}

func day(s string) time.Time {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestUpsertCreatesPendingRow(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	err := r.Upsert(ctx, &domain.Booking{
		IIN: "123", Name: "A", Surname: "B", Contacts: "c",
		Date: day("2024-03-10"), TimeSlot: 14,
	})
	require.NoError(t, err)

	b, err := r.ByIIN(ctx, "123")
	require.NoError(t, err)
	assert.Equal(t, "A", b.Name)
	assert.Equal(t, 14, b.TimeSlot)
	assert.False(t, b.Approved)

	var count int64
	require.NoError(t, r.db.Model(&domain.Booking{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRebookKeepsIdentityFields(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Upsert(ctx, &domain.Booking{
		IIN: "123", Name: "A", Surname: "B", Contacts: "c",
		Date: day("2024-03-10"), TimeSlot: 14,
	}))
	require.NoError(t, r.Approve(ctx, "123"))

	// rebooking moves the slot, revokes approval and ignores the new
	// name/surname/contacts
	require.NoError(t, r.Upsert(ctx, &domain.Booking{
		IIN: "123", Name: "X", Surname: "Y", Contacts: "z",
		Date: day("2024-04-01"), TimeSlot: 9, AttachmentPath: "http://host/uploads/f.pdf",
	}))

	b, err := r.ByIIN(ctx, "123")
	require.NoError(t, err)
	assert.Equal(t, "A", b.Name)
	assert.Equal(t, "B", b.Surname)
	assert.Equal(t, "c", b.Contacts)
	assert.Equal(t, day("2024-04-01").Format(time.DateOnly), b.Date.Format(time.DateOnly))
	assert.Equal(t, 9, b.TimeSlot)
	assert.Equal(t, "http://host/uploads/f.pdf", b.AttachmentPath)
	assert.False(t, b.Approved)

	var count int64
	require.NoError(t, r.db.Model(&domain.Booking{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestApproveMovesBetweenLists(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Upsert(ctx, &domain.Booking{IIN: "123", Name: "A", Date: day("2024-03-10"), TimeSlot: 14}))

	pending, err := r.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	approved, err := r.ListApproved(ctx)
	require.NoError(t, err)
	assert.Empty(t, approved)

	require.NoError(t, r.Approve(ctx, "123"))
	// idempotent
	require.NoError(t, r.Approve(ctx, "123"))

	pending, err = r.ListPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
	approved, err = r.ListApproved(ctx)
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, "123", approved[0].IIN)
	assert.True(t, approved[0].Approved)
}

func TestApproveUnknownIINStillSucceeds(t *testing.T) {
	r := newTestRepo(t)
	assert.NoError(t, r.Approve(context.Background(), "nope"))
}

func TestSlotsOnDateMatchesCalendarDay(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	// stored with time-of-day; the bare-day query must still match
	stamp, err := time.Parse(time.RFC3339, "2024-03-10T15:30:00Z")
	require.NoError(t, err)
	require.NoError(t, r.Upsert(ctx, &domain.Booking{IIN: "1", Name: "A", Date: stamp, TimeSlot: 14}))
	require.NoError(t, r.Upsert(ctx, &domain.Booking{IIN: "2", Name: "B", Date: day("2024-03-11"), TimeSlot: 9}))

	slots, err := r.SlotsOnDate(ctx, day("2024-03-10"))
	require.NoError(t, err)
	assert.Equal(t, []int{14}, slots)

	slots, err = r.SlotsOnDate(ctx, day("2024-05-01"))
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestByIINNotFound(t *testing.T) {
	r := newTestRepo(t)
	_, err := r.ByIIN(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAdminByEmail(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	email := "boss@clinic.kz"
	require.NoError(t, r.db.Create(&domain.Booking{
		IIN: "777", Name: "Boss", Date: day("2024-03-10"), IsAdmin: true, Email: &email,
	}).Error)

	isAdmin, err := r.AdminByEmail(ctx, email)
	require.NoError(t, err)
	assert.True(t, isAdmin)

	_, err = r.AdminByEmail(ctx, "nobody@clinic.kz")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDuplicateEmailConflicts(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	email := "dup@clinic.kz"
	require.NoError(t, r.Upsert(ctx, &domain.Booking{IIN: "1", Name: "A", Date: day("2024-03-10"), Email: &email}))

	err := r.Upsert(ctx, &domain.Booking{IIN: "2", Name: "B", Date: day("2024-03-11"), Email: &email})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestRowsWithoutEmailDoNotConflict(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Upsert(ctx, &domain.Booking{IIN: "1", Name: "A", Date: day("2024-03-10")}))
	require.NoError(t, r.Upsert(ctx, &domain.Booking{IIN: "2", Name: "B", Date: day("2024-03-10")}))
}
