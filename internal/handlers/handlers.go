package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sosadmin-backend/internal/services"
)

type Handler struct {
	purgeService    *services.PurgeService
	exportService   *services.ExportService
	statusService   *services.StatusService
	snapshotService *services.SnapshotService
}

func NewHandler(purgeService *services.PurgeService, exportService *services.ExportService, statusService *services.StatusService, snapshotService *services.SnapshotService) *Handler {
	return &Handler{
		purgeService:    purgeService,
		exportService:   exportService,
		statusService:   statusService,
		snapshotService: snapshotService,
	}
}

// PurgeDatabase deletes all data at the database root
func (h *Handler) PurgeDatabase(c *gin.Context) {
	result, err := h.purgeService.Purge(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "Failed to reach database",
			"details": err.Error(),
		})
		return
	}

	if !result.Success {
		c.JSON(http.StatusBadGateway, result)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ExportMessages fetches the SOS message tree and writes the export file
func (h *Handler) ExportMessages(c *gin.Context) {
	snapshot, err := h.exportService.Export(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to export messages",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// GetStatus reports remote subtree counts and local archive counts
func (h *Handler) GetStatus(c *gin.Context) {
	status, err := h.statusService.GetStatus(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to get status",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, status)
}

// GetSnapshots lists archived snapshots, newest first
func (h *Handler) GetSnapshots(c *gin.Context) {
	snapshots, err := h.snapshotService.ListSnapshots()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to list snapshots",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"snapshots": snapshots,
		"count":     len(snapshots),
	})
}
