package menu

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// uploads larger than this are rejected before parsing
const maxUploadBytes = 10 << 20

// shown instead of the decoder error, which is only logged
const parseErrorMessage = "Error parsing file. Please check the format."

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Public: current menu
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	doc, err := h.service.Current(c.Request.Context())
	if errors.Is(err, ErrMenuNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No menu available"})
		return
	}
	if err != nil {
		log.Printf("❌ fetch menu: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, doc)
}

// --------------------------------------------------
// Admin: publish an already parsed menu
// --------------------------------------------------
func (h *Handler) Publish(c *gin.Context) {
	var doc Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid menu document"})
		return
	}

	saved, err := h.service.Publish(c.Request.Context(), &doc, c.GetString("username"))
	if err != nil {
		log.Printf("❌ publish menu: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Menu updated!",
		"updatedBy": saved.UpdatedBy,
		"updatedAt": saved.LastUpdated,
	})
}

// --------------------------------------------------
// Admin: upload a workbook, parse it server side and publish
// --------------------------------------------------
func (h *Handler) Upload(c *gin.Context) {
	data, filename, ok := readMenuFile(c)
	if !ok {
		return
	}

	saved, err := h.service.UploadMenu(
		c.Request.Context(),
		data,
		filename,
		c.GetString("username"),
	)
	if err != nil {
		respondParseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Menu updated!",
		"updatedBy": saved.UpdatedBy,
		"updatedAt": saved.LastUpdated,
		"menu":      saved,
	})
}

// --------------------------------------------------
// Admin: parse a workbook without saving it
// --------------------------------------------------
func (h *Handler) Preview(c *gin.Context) {
	data, _, ok := readMenuFile(c)
	if !ok {
		return
	}

	doc, err := h.service.Preview(data)
	if err != nil {
		respondParseError(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

func (h *Handler) Health(c *gin.Context) {
	hasMenu, err := h.service.HasMenu(c.Request.Context())
	if err != nil {
		log.Printf("⚠️ health check: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"hasMenu": hasMenu,
	})
}

func readMenuFile(c *gin.Context) ([]byte, string, bool) {
	file, header, err := c.Request.FormFile("menu_file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "menu_file is required"})
		return nil, "", false
	}
	defer file.Close()

	if err := ValidateFileExtension(header.Filename); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, "", false
	}

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read menu_file"})
		return nil, "", false
	}
	if len(data) > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "menu_file too large"})
		return nil, "", false
	}

	return data, header.Filename, true
}

func respondParseError(c *gin.Context, err error) {
	if errors.Is(err, ErrUnreadableInput) {
		log.Printf("⚠️ menu upload rejected: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": parseErrorMessage})
		return
	}
	log.Printf("❌ menu upload: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error: " + err.Error()})
}
