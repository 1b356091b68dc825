package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	entmission "github.com/maestro-research/maestro/ent/mission"
	"github.com/maestro-research/maestro/pkg/models"
)

// createMissionHandler handles POST /api/v1/missions. The mission is
// persisted as pending; a queue worker picks it up and starts it.
func (s *Server) createMissionHandler(c *gin.Context) {
	var req models.CreateMissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mc, err := s.missionService.CreateMission(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"mission_id": mc.MissionID,
		"status":     mc.Status,
	})
}

// listMissionsHandler handles GET /api/v1/missions.
func (s *Server) listMissionsHandler(c *gin.Context) {
	filters := models.MissionFilters{
		UserID: c.Query("user_id"),
		ChatID: c.Query("chat_id"),
	}

	if v := c.Query("status"); v != "" {
		if err := entmission.StatusValidator(entmission.Status(v)); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status: " + v})
			return
		}
		filters.Status = v
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			filters.Limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			filters.Offset = n
		}
	}

	list, err := s.missionService.ListMissions(c.Request.Context(), filters)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	resp := &MissionListResponse{
		Missions:   make([]*MissionResponse, len(list.Missions)),
		TotalCount: list.TotalCount,
		Limit:      list.Limit,
		Offset:     list.Offset,
	}
	for i, m := range list.Missions {
		resp.Missions[i] = missionResponse(m)
	}
	c.JSON(http.StatusOK, resp)
}

// getMissionHandler handles GET /api/v1/missions/:id.
func (s *Server) getMissionHandler(c *gin.Context) {
	row, err := s.missionService.GetMission(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, missionResponse(row))
}

// pauseMissionHandler handles POST /api/v1/missions/:id/pause.
func (s *Server) pauseMissionHandler(c *gin.Context) {
	missionID := c.Param("id")
	if err := s.missionService.PauseMission(c.Request.Context(), missionID); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mission_id": missionID, "status": models.StatusPaused})
}

// resumeMissionHandler handles POST /api/v1/missions/:id/resume.
func (s *Server) resumeMissionHandler(c *gin.Context) {
	missionID := c.Param("id")
	if err := s.missionService.ResumeMission(c.Request.Context(), missionID); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mission_id": missionID, "status": models.StatusRunning})
}

// stopMissionHandler handles POST /api/v1/missions/:id/stop.
func (s *Server) stopMissionHandler(c *gin.Context) {
	missionID := c.Param("id")
	if err := s.missionService.StopMission(c.Request.Context(), missionID); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mission_id": missionID, "status": models.StatusStopped})
}

// getStatsHandler handles GET /api/v1/missions/:id/stats.
func (s *Server) getStatsHandler(c *gin.Context) {
	stats, err := s.missionService.GetStats(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// getLogsHandler handles GET /api/v1/missions/:id/logs.
func (s *Server) getLogsHandler(c *gin.Context) {
	limit := 100
	offset := 0
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}

	page, err := s.missionService.GetLogs(c.Request.Context(), c.Param("id"), limit, offset)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
