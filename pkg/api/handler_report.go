package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// getReportHandler handles GET /api/v1/reports/:report_id. Reports are
// scoped to the caller's organization; asking for another tenant's report
// is indistinguishable from asking for a missing one.
func (s *Server) getReportHandler(c *gin.Context) {
	reportID := c.Param("report_id")
	if reportID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "report_id is required"})
		return
	}

	report, err := s.reportService.GetReport(c.Request.Context(), reportID, extractOrganization(c))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// listReportsHandler handles GET /api/v1/reports with optional limit and
// offset query parameters.
func (s *Server) listReportsHandler(c *gin.Context) {
	limit := 50
	offset := 0

	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be a positive integer"})
			return
		}
		limit = parsed
	}
	if raw := c.Query("offset"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "offset must be a non-negative integer"})
			return
		}
		offset = parsed
	}

	reports, total, err := s.reportService.ListReports(c.Request.Context(), extractOrganization(c), limit, offset)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"reports":     reports,
		"total_count": total,
		"limit":       limit,
		"offset":      offset,
	})
}
