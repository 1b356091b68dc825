package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// getCurrentReportHandler handles GET /api/v1/missions/:id/report.
func (s *Server) getCurrentReportHandler(c *gin.Context) {
	rv, err := s.reportService.GetCurrentReport(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reportVersionResponse(rv, true))
}

// listReportVersionsHandler handles GET /api/v1/missions/:id/report/versions.
// Content is omitted from the listing; fetch a single version for the body.
func (s *Server) listReportVersionsHandler(c *gin.Context) {
	versions, err := s.reportService.ListReportVersions(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}

	resp := make([]*ReportVersionResponse, len(versions))
	for i, rv := range versions {
		resp[i] = reportVersionResponse(rv, false)
	}
	c.JSON(http.StatusOK, gin.H{"versions": resp})
}

// getReportVersionHandler handles GET /api/v1/missions/:id/report/versions/:version.
func (s *Server) getReportVersionHandler(c *gin.Context) {
	version, err := strconv.Atoi(c.Param("version"))
	if err != nil || version < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "version must be a positive integer"})
		return
	}

	rv, err := s.reportService.GetReportVersion(c.Request.Context(), c.Param("id"), version)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reportVersionResponse(rv, true))
}

// setCurrentReportRequest is the body of POST /api/v1/missions/:id/report/current.
type setCurrentReportRequest struct {
	Version int `json:"version" binding:"required,min=1"`
}

// setCurrentReportHandler handles POST /api/v1/missions/:id/report/current.
func (s *Server) setCurrentReportHandler(c *gin.Context) {
	var req setCurrentReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	missionID := c.Param("id")
	if err := s.reportService.SetCurrentReportVersion(c.Request.Context(), missionID, req.Version); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mission_id": missionID, "current_version": req.Version})
}
