package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/denisAlshanov/ytgrab/internal/models"
	"github.com/denisAlshanov/ytgrab/internal/services/downloader"
	"github.com/denisAlshanov/ytgrab/internal/utils"
)

type VideoHandler struct {
	downloader *downloader.Downloader
}

func NewVideoHandler(downloader *downloader.Downloader) *VideoHandler {
	return &VideoHandler{
		downloader: downloader,
	}
}

// GetVideoInfo godoc
// @Summary Get video metadata
// @Description Fetch title, thumbnail and the downloadable formats of a YouTube video. Only formats carrying video, audio or both are listed.
// @Tags video
// @Produce json
// @Param url query string true "YouTube video URL"
// @Success 200 {object} models.VideoInfoResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/v1/video-info [get]
func (h *VideoHandler) GetVideoInfo(c *gin.Context) {
	ctx := c.Request.Context()

	var req models.VideoInfoRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.errorResponse(c, utils.NewValidationError("Invalid query parameters", map[string]interface{}{
			"error": err.Error(),
		}))
		return
	}

	info, err := h.downloader.Inspect(ctx, req.URL)
	if err != nil {
		h.errorResponse(c, asAppError(err))
		return
	}

	c.JSON(http.StatusOK, models.NewVideoInfoResponse(info))
}

// Download godoc
// @Summary Download a format
// @Description Stream the selected format of a YouTube video as an attachment. Errors are returned as plain text.
// @Tags video
// @Produce application/octet-stream
// @Produce plain
// @Param url query string true "YouTube video URL"
// @Param itag query string true "Format identifier from the metadata endpoint"
// @Success 200 {file} binary "Format stream"
// @Failure 400 {string} string "Missing parameter, invalid URL or unknown format"
// @Failure 500 {string} string "Upstream failure"
// @Router /api/v1/download [get]
func (h *VideoHandler) Download(c *gin.Context) {
	ctx := c.Request.Context()

	var req models.DownloadRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid query parameters")
		return
	}

	download, err := h.downloader.Open(ctx, req.URL, req.Itag)
	if err != nil {
		appErr := asAppError(err)
		c.String(appErr.StatusCode, appErr.Message)
		return
	}
	defer download.Close()

	c.Header("Content-Type", download.ContentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", download.FileName))
	if download.Size > 0 {
		c.Header("Content-Length", strconv.FormatInt(download.Size, 10))
	}
	c.Status(http.StatusOK)

	start := time.Now()
	written, err := io.Copy(c.Writer, download)
	fields := utils.Fields{
		"video_id":      download.Info.ID,
		"itag":          download.Format.Itag,
		"bytes_written": written,
		"duration":      time.Since(start).String(),
	}
	if err != nil {
		// Headers are already sent, so the client sees a truncated body.
		utils.LogError(ctx, "Failed to relay stream", err, fields)
		return
	}

	utils.LogInfo(ctx, "Stream relayed", fields)
}

func (h *VideoHandler) errorResponse(c *gin.Context, err *utils.AppError) {
	c.JSON(err.StatusCode, models.ErrorResponse{
		Error:     err.Message,
		Code:      string(err.Code),
		Details:   err.Details,
		RequestID: c.GetString("request_id"),
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

func asAppError(err error) *utils.AppError {
	var appErr *utils.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return utils.NewInternalError()
}
