package controllers

import (
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

// ContentController serves the read endpoints. They always answer 200 with
// real or fallback content; store trouble never surfaces here.
type ContentController struct {
	Content *services.ContentService
}

func NewContentController(content *services.ContentService) *ContentController {
	return &ContentController{Content: content}
}

// GET /api/info
func (ctl *ContentController) Info(c *gin.Context) {
	resp.OK(c, ctl.Content.Info(c.Request.Context()))
}

// GET /api/menu
func (ctl *ContentController) Menu(c *gin.Context) {
	resp.OK(c, ctl.Content.Menu(c.Request.Context()))
}

// GET /api/testimonials
func (ctl *ContentController) Testimonials(c *gin.Context) {
	resp.OK(c, ctl.Content.Testimonials(c.Request.Context()))
}
