package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sanzh-11/Server/internal/service"
)

// POST /book
func (s *Server) Book(c *gin.Context) {
	var in struct {
		User struct {
			Name     string `json:"name" binding:"required"`
			Surname  string `json:"surname" binding:"required"`
			IIN      string `json:"iin" binding:"required"`
			Contacts string `json:"contacts"`
		} `json:"user" binding:"required"`
		Date         string `json:"date" binding:"required"`
		TimeInterval int    `json:"timeInterval"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	err := s.svc.Book(c, service.BookRequest{
		Name:     in.User.Name,
		Surname:  in.User.Surname,
		IIN:      in.User.IIN,
		Contacts: in.User.Contacts,
		Date:     in.Date,
		TimeSlot: in.TimeInterval,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// GET /all-bookings
func (s *Server) AllBookings(c *gin.Context) {
	out, err := s.svc.Approved(c)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /pending-bookings
func (s *Server) PendingBookings(c *gin.Context) {
	out, err := s.svc.Pending(c)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /approve-pending-booking
func (s *Server) ApprovePending(c *gin.Context) {
	var in struct {
		ID string `json:"id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.svc.Approve(c, in.ID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// GET /check-iin?iin=
func (s *Server) CheckIIN(c *gin.Context) {
	info, err := s.svc.Lookup(c, c.Query("iin"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// GET /check-date?date=
func (s *Server) CheckDate(c *gin.Context) {
	slots, err := s.svc.SlotsOnDate(c, c.Query("date"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}

// GET /check-by-email?email=
func (s *Server) CheckByEmail(c *gin.Context) {
	isAdmin, err := s.svc.AdminByEmail(c, c.Query("email"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"isAdmin": isAdmin})
}
