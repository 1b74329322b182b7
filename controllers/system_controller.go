package controllers

import (
	"net/http"

	"backend/configs"
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

// SystemController answers the liveness and diagnostic endpoints. Connected
// records whether a store handle existed at startup, so diagnostics work
// even when it does not.
type SystemController struct {
	Store     services.Gateway
	Cfg       *configs.Config
	Connected bool
}

func NewSystemController(store services.Gateway, cfg *configs.Config, connected bool) *SystemController {
	return &SystemController{Store: store, Cfg: cfg, Connected: connected}
}

// GET /
func (ctl *SystemController) Root(c *gin.Context) {
	resp.OK(c, gin.H{"message": "Hungarian Restaurant API running"})
}

// GET /test
//
// Every probe is guarded on its own; one failing probe must not keep the
// others from reporting, and the endpoint itself never errors.
func (ctl *SystemController) Test(c *gin.Context) {
	out := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      "❌ Not Set",
		"database_name":     "Unknown",
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if ctl.Cfg.DatabaseURL != "" {
		out["database_url"] = "✅ Set" // presence only, never the value
	}
	if ctl.Cfg.DatabaseName != "" {
		out["database_name"] = ctl.Cfg.DatabaseName
	}

	if ctl.Connected {
		out["database"] = "✅ Connected & Working"
		out["connection_status"] = "Connected"
		names, err := ctl.Store.ListCollections(c.Request.Context(), 10)
		if err != nil {
			out["database"] = "⚠️ Connected but Error: " + utils.Truncate(err.Error(), 50)
		} else if names != nil {
			out["collections"] = names
		}
	}

	c.JSON(http.StatusOK, out)
}
