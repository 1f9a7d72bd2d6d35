package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quarryhq/quarry/pkg/events"
	"github.com/quarryhq/quarry/pkg/models"
)

// maxPromptChars bounds the submitted prompt so a runaway client cannot
// push megabytes into the prompt column.
const maxPromptChars = 100_000

// createCompletionHandler handles POST /api/v1/reports/:report_id/completions.
// Validates the prompt, ensures the report row exists, and enqueues a new
// completion for the worker pool. Returns 202 immediately; progress arrives
// on the event stream.
func (s *Server) createCompletionHandler(c *gin.Context) {
	// 1. Parse and validate the request
	reportID := c.Param("report_id")
	if reportID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "report_id is required"})
		return
	}

	var req models.CompletionCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	if req.Prompt.Content == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "prompt.content is required"})
		return
	}
	if len(req.Prompt.Content) > maxPromptChars {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "prompt.content exceeds maximum length"})
		return
	}

	organizationID := extractOrganization(c)
	userID := extractUser(c)

	// 2. Ensure the report row exists (first completion creates it)
	if _, err := s.reportService.EnsureReport(c.Request.Context(), reportID, organizationID, userID); err != nil {
		serviceError(c, err)
		return
	}

	// 3. Create the queued completion; a worker picks it up from here
	created, err := s.completionService.CreateCompletion(c.Request.Context(), models.CreateCompletionRequest{
		ReportID:       reportID,
		OrganizationID: organizationID,
		UserID:         userID,
		Prompt:         req.Prompt,
	})
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, CompletionAcceptedResponse{
		CompletionID: created.ID,
		ReportID:     created.ReportID,
		Status:       string(created.Status),
	})
}

// getCompletionHandler handles GET /api/v1/completions/:id.
func (s *Server) getCompletionHandler(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "completion id is required"})
		return
	}

	completion, err := s.completionService.GetCompletionWithBlocks(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, completion)
}

// listCompletionsHandler handles GET /api/v1/completions with optional
// report_id, status, limit and offset query parameters. The organization
// always comes from the request headers.
func (s *Server) listCompletionsHandler(c *gin.Context) {
	filters := models.CompletionFilters{
		OrganizationID: extractOrganization(c),
		ReportID:       c.Query("report_id"),
		Status:         c.Query("status"),
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be a positive integer"})
			return
		}
		filters.Limit = limit
	}
	if raw := c.Query("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "offset must be a non-negative integer"})
			return
		}
		filters.Offset = offset
	}

	resp, err := s.completionService.ListCompletions(c.Request.Context(), filters)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// listBlocksHandler handles GET /api/v1/completions/:id/blocks. Blocks come
// back in render order (block_index ascending).
func (s *Server) listBlocksHandler(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "completion id is required"})
		return
	}

	// 404 for an unknown completion, empty array for a known one without blocks.
	if _, err := s.completionService.GetCompletion(c.Request.Context(), id); err != nil {
		serviceError(c, err)
		return
	}

	blocks, err := s.blockService.ListBlocks(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"completion_id": id, "blocks": blocks})
}

// cancelCompletionHandler handles POST /api/v1/completions/:id/cancel.
// Sets the sigkill flag and broadcasts it so whichever pod holds the run
// interrupts it. Cancelling an already-cancelled or terminal completion is
// a no-op that still returns 202.
func (s *Server) cancelCompletionHandler(c *gin.Context) {
	// 1. Validate
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "completion id is required"})
		return
	}

	// 2. Persist the sigkill flag
	completion, applied, err := s.completionService.RequestSigkill(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err)
		return
	}
	if !applied {
		c.JSON(http.StatusAccepted, CancelResponse{
			CompletionID: completion.ID,
			Message:      "cancellation already requested or completion is finished",
		})
		return
	}

	// 3. Broadcast so the owning pod (possibly not this one) sees it
	if s.eventPublisher != nil {
		payload := events.CompletionUpdatePayload{
			BasePayload: events.NewBase(events.EventTypeCompletionUpdate, completion.ID, "", 0),
			Data: events.CompletionUpdateData{
				SigkillAt: completion.SigkillAt.UTC().Format(time.RFC3339Nano),
			},
		}
		if err := s.eventPublisher.PublishCompletionUpdate(c.Request.Context(), payload); err != nil {
			// The flag is already persisted; the run is caught at the next
			// claim or heartbeat even if the broadcast fails.
			serviceError(c, err)
			return
		}
	}

	c.JSON(http.StatusAccepted, CancelResponse{
		CompletionID: completion.ID,
		Message:      "cancellation requested",
	})
}
