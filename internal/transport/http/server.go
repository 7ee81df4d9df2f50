package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sanzh-11/Server/internal/repository"
	"github.com/Sanzh-11/Server/internal/service"
)

type Server struct {
	svc       *service.BookingSvc
	uploadDir string
	baseURL   string
}

func NewServer(svc *service.BookingSvc, uploadDir, baseURL string) *Server {
	return &Server{svc: svc, uploadDir: uploadDir, baseURL: baseURL}
}

// Register mounts the booking API. Uploaded attachments are served
// statically under /uploads.
func (s *Server) Register(r *gin.Engine) {
	r.POST("/book", s.Book)
	r.POST("/book-file", s.BookFile)
	r.POST("/upload", s.Upload)
	r.GET("/all-bookings", s.AllBookings)
	r.GET("/pending-bookings", s.PendingBookings)
	r.POST("/approve-pending-booking", s.ApprovePending)
	r.GET("/check-iin", s.CheckIIN)
	r.GET("/check-date", s.CheckDate)
	r.GET("/check-by-email", s.CheckByEmail)
	r.Static("/uploads", s.uploadDir)
}

// writeError maps store/service failures onto distinct status codes:
// 400 for bad input, 404 missing row, 409 uniqueness, 500 storage.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrBadDate), errors.Is(err, service.ErrBadSlot):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
