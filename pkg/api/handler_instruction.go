package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quarryhq/quarry/pkg/models"
)

// listInstructionsHandler handles GET /api/v1/instructions with optional
// status, load_mode and source query parameters. Drafts suggested by the
// agent are included; filter on status=active to see only what loads into
// runs.
func (s *Server) listInstructionsHandler(c *gin.Context) {
	filters := models.InstructionFilters{
		Status:   c.Query("status"),
		LoadMode: c.Query("load_mode"),
		Source:   c.Query("source"),
	}

	instructions, err := s.instructionService.ListInstructions(c.Request.Context(), extractOrganization(c), filters)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"instructions": instructions})
}

// createInstructionHandler handles POST /api/v1/instructions. Instructions
// created here are user-authored and active immediately.
func (s *Server) createInstructionHandler(c *gin.Context) {
	var req models.InstructionCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	if req.Text == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "text is required"})
		return
	}

	instruction, err := s.instructionService.CreateInstruction(c.Request.Context(), models.CreateInstructionRequest{
		OrganizationID: extractOrganization(c),
		Text:           req.Text,
		Category:       req.Category,
		LoadMode:       req.LoadMode,
	})
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, instruction)
}

// updateInstructionHandler handles PATCH /api/v1/instructions/:id. Used to
// edit text, switch load modes, and activate or archive (including
// promoting suggested drafts). Absent fields are left untouched.
func (s *Server) updateInstructionHandler(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "instruction id is required"})
		return
	}

	var req models.UpdateInstructionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	instruction, err := s.instructionService.UpdateInstruction(c.Request.Context(), id, extractOrganization(c), req)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, instruction)
}
