package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/shashank-tomar0/RankSense-AI/internal/repositories"
)

type CandidateHandler struct {
	candidateRepo repositories.CandidateRepository
}

func NewCandidateHandler(candidateRepo repositories.CandidateRepository) *CandidateHandler {
	return &CandidateHandler{
		candidateRepo: candidateRepo,
	}
}

// HandleList returns every stored result payload, best score first.
func (h *CandidateHandler) HandleList(c *fiber.Ctx) error {
	candidates, err := h.candidateRepo.ListByScoreDesc()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to list candidates",
		})
	}

	payloads := make([]json.RawMessage, 0, len(candidates))
	for _, candidate := range candidates {
		payloads = append(payloads, json.RawMessage(candidate.Payload))
	}

	return c.JSON(payloads)
}

// HandleClear irreversibly deletes every stored candidate.
func (h *CandidateHandler) HandleClear(c *fiber.Ctx) error {
	if err := h.candidateRepo.DeleteAll(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to clear candidates",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Database cleared",
	})
}
