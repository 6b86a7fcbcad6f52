package controllers

import (
	"net/http"

	"github.com/bipuldey19/hungrypanda-handler/pkg/resp"
	"github.com/bipuldey19/hungrypanda-handler/services"
	"github.com/bipuldey19/hungrypanda-handler/utils"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Dashboard *services.DashboardService
	Sessions  *services.SessionStore
}

func NewDashboardController(dashboard *services.DashboardService, sessions *services.SessionStore) *DashboardController {
	return &DashboardController{Dashboard: dashboard, Sessions: sessions}
}

// GET /dashboard?status=&category=&sort=
func (ctl *DashboardController) Index(c *gin.Context) {
	f := services.Filters{
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Sort:     c.Query("sort"),
	}
	sess := utils.CurrentSession(c)

	view, err := ctl.Dashboard.Render(f, ctl.Sessions.UIStates(sess.ID))
	if err != nil {
		// Degrade to an empty list with a visible error, never a crash.
		c.JSON(http.StatusOK, gin.H{"ok": false, "error": err.Error(), "data": view})
		return
	}
	resp.OK(c, view)
}
