package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/sangwaemm/The-Partners-App/internal/core/ports/services"
	"github.com/sangwaemm/The-Partners-App/internal/dto"
	"github.com/sangwaemm/The-Partners-App/internal/middleware"
)

// backupHandler exposes export/import of the whole ledger and the persisted copy.
type backupHandler struct {
	backupService portssvc.BackupSvcFacade
}

func registerBackupRoutes(rg *gin.RouterGroup, backupService portssvc.BackupSvcFacade) {
	h := &backupHandler{backupService: backupService}

	backup := rg.Group("/backup", middleware.RequireAdmin())
	{
		backup.GET("/export", h.exportSnapshot)
		backup.POST("/import", h.importSnapshot)
		backup.GET("", h.loadBackup)
		backup.POST("", h.saveBackup)
	}
}

// exportSnapshot godoc
// @Summary Export the ledger
// @Tags backup
// @Produce json
// @Success 200 {object} domain.Snapshot
// @Security BearerAuth
// @Router /backup/export [get]
func (h *backupHandler) exportSnapshot(c *gin.Context) {
	snap, err := h.backupService.ExportSnapshot(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to export snapshot")
		return
	}
	c.JSON(http.StatusOK, snap)
}

// importSnapshot godoc
// @Summary Import a ledger document
// @Description Replaces the collections present in the document and keeps the rest.
// @Tags backup
// @Accept json
// @Produce json
// @Param snapshot body dto.ImportSnapshotRequest true "Snapshot document"
// @Success 200 {object} domain.Snapshot
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /backup/import [post]
func (h *backupHandler) importSnapshot(c *gin.Context) {
	var req dto.ImportSnapshotRequest
	if !bindJSON(c, &req) {
		return
	}
	snap, err := h.backupService.ImportSnapshot(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Failed to import snapshot")
		return
	}
	c.JSON(http.StatusOK, snap)
}

// loadBackup godoc
// @Summary Read the persisted copy
// @Description Returns what the snapshot repository holds without touching the live state.
// @Tags backup
// @Produce json
// @Success 200 {object} domain.Snapshot
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /backup [get]
func (h *backupHandler) loadBackup(c *gin.Context) {
	snap, err := h.backupService.LoadBackup(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to load backup")
		return
	}
	c.JSON(http.StatusOK, snap)
}

// saveBackup godoc
// @Summary Save a backup now
// @Tags backup
// @Produce json
// @Success 200 {object} dto.BackupStatusResponse
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /backup [post]
func (h *backupHandler) saveBackup(c *gin.Context) {
	if err := h.backupService.SaveBackup(c.Request.Context()); err != nil {
		respondWithError(c, err, "Failed to save backup")
		return
	}
	c.JSON(http.StatusOK, dto.BackupStatusResponse{Saved: true, Message: "Backup saved"})
}
