package domain

import "time"

// Booking is one appointment request, at most one row per IIN.
// Rebooking the same IIN replaces the slot, not the person: name, surname
// and contacts keep the values from the first submission.
type Booking struct {
	IIN            string `gorm:"column:iin;primaryKey"`
	Name           string
	Surname        string
	Contacts       string
	Date           time.Time `gorm:"index"`
	TimeSlot       int       `gorm:"index"` // hour bucket 0-23
	Approved       bool      `gorm:"index"`
	IsAdmin        bool
	Email          *string `gorm:"uniqueIndex"` // optional, admin lookup key
	AttachmentPath string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Info is the public lookup projection. Approval state, admin flag and
// email are deliberately not exposed here.
type Info struct {
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	IIN      string `json:"iin"`
	Contacts string `json:"contacts"`
	Date     string `json:"date"`
}

type ApprovedSummary struct {
	Info
	IsAdmin  bool    `json:"isAdmin"`
	Email    *string `json:"email"`
	Approved bool    `json:"approved"`
}

type PendingSummary struct {
	Info
	AttachmentPath string `json:"attachmentPath"`
}

func (b *Booking) AsInfo() Info {
	return Info{
		Name:     b.Name,
		Surname:  b.Surname,
		IIN:      b.IIN,
		Contacts: b.Contacts,
		Date:     b.Date.Format(time.DateOnly),
	}
}

func (b *Booking) AsApproved() ApprovedSummary {
	return ApprovedSummary{Info: b.AsInfo(), IsAdmin: b.IsAdmin, Email: b.Email, Approved: b.Approved}
}

func (b *Booking) AsPending() PendingSummary {
	return PendingSummary{Info: b.AsInfo(), AttachmentPath: b.AttachmentPath}
}
