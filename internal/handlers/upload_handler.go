package handlers

import (
	"fmt"
	"io"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/shashank-tomar0/RankSense-AI/internal/models"
	"github.com/shashank-tomar0/RankSense-AI/internal/services"
)

type UploadHandler struct {
	worker         services.Worker
	storageService services.StorageService
	maxFileSize    int64
}

func NewUploadHandler(
	worker services.Worker,
	storageService services.StorageService,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		worker:         worker,
		storageService: storageService,
		maxFileSize:    maxFileSize,
	}
}

// HandleUpload accepts a resume plus an optional jd_text form field and
// returns immediately. The submission is processed in the background; results
// arrive over the notification channel only.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "no file uploaded",
		})
	}

	if fileHeader.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to open uploaded file",
		})
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to read uploaded file",
		})
	}

	// Audit copy; never blocks processing
	if _, err := h.storageService.SaveBytes(fileHeader.Filename, content); err != nil {
		log.Printf("⚠️  Failed to archive upload %s: %v\n", fileHeader.Filename, err)
	}

	sub := services.Submission{
		ID:       uuid.New(),
		Filename: fileHeader.Filename,
		Content:  content,
		JDText:   c.FormValue("jd_text"),
	}

	h.worker.Enqueue(sub)

	return c.Status(fiber.StatusAccepted).JSON(models.UploadResponse{
		Message:      "Processing started",
		Filename:     sub.Filename,
		SubmissionID: sub.ID.String(),
	})
}
