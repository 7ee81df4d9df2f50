package http

import (
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Sanzh-11/Server/internal/service"
)

// saveAttachment stores the file under a uuid-prefixed name so repeat
// uploads of the same filename do not clobber each other, and returns the
// public URL it will be served from.
func (s *Server) saveAttachment(c *gin.Context, file *multipart.FileHeader) (string, error) {
	name := uuid.NewString() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(s.uploadDir, name)); err != nil {
		return "", err
	}
	return s.baseURL + "/uploads/" + name, nil
}

// POST /upload — bare file upload, no booking side effect.
func (s *Server) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	fileURL, err := s.saveAttachment(c, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"filePath": fileURL, "message": "File uploaded successfully!"})
}

// POST /book-file — multipart booking: stores the file, then upserts the
// booking with the stored file's URL as its attachment.
func (s *Server) BookFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	iin := c.PostForm("iin")
	date := c.PostForm("date")
	if iin == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "iin and date are required"})
		return
	}
	slot, err := strconv.Atoi(c.DefaultPostForm("timeInterval", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "timeInterval must be an integer"})
		return
	}

	fileURL, err := s.saveAttachment(c, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	err = s.svc.Book(c, service.BookRequest{
		Name:           c.PostForm("name"),
		Surname:        c.PostForm("surname"),
		IIN:            iin,
		Contacts:       c.PostForm("contacts"),
		Date:           date,
		TimeSlot:       slot,
		AttachmentPath: fileURL,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"filePath": fileURL, "message": "File uploaded successfully!"})
}
