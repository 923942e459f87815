package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/denisAlshanov/ytgrab/internal/web"
)

type FormHandler struct {
	page web.PageData
}

func NewFormHandler(page web.PageData) *FormHandler {
	return &FormHandler{page: page}
}

// Index serves the download form. The engine must have the web templates loaded.
func (h *FormHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, web.IndexTemplate, h.page)
}
