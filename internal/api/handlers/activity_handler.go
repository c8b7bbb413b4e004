package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Endogen/antique-catalogue-sub001/internal/api/middleware"
	"github.com/Endogen/antique-catalogue-sub001/internal/application"
	"github.com/Endogen/antique-catalogue-sub001/internal/domain/activity"
	"github.com/Endogen/antique-catalogue-sub001/pkg/types"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type ActivityHandler struct {
	svc *application.ActivityService
}

func NewActivityHandler(svc *application.ActivityService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

// List godoc
// @Summary List the caller's recent activity
// @Tags activity
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Number of entries (default 5, max 100)"
// @Success 200 {array} activity.Entry
// @Router /activity [get]
func (h *ActivityHandler) List(c *gin.Context) {
	entries, err := h.svc.ListByUser(middleware.UserID(c), intQuery(c, "limit", 0))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if entries == nil {
		entries = []activity.Entry{}
	}
	c.JSON(http.StatusOK, entries)
}

// Feed upgrades the connection to a websocket and streams the caller's
// activity entries as they are recorded. The access token comes in as a
// query parameter because browsers cannot set headers on websocket dials.
func (h *ActivityHandler) Feed(c *gin.Context) {
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("Failed to upgrade websocket:", err)
		return
	}
	defer ws.Close()

	claims, err := middleware.ParseToken(c.Query("token"))
	if err != nil || claims.TokenType != types.TokenTypeAccess {
		deadline := time.Now().Add(time.Second)
		ws.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(4003, "Invalid token"), deadline)
		return
	}
	userID := claims.UserID

	h.svc.Subscribe(userID, ws)
	defer h.svc.Unsubscribe(userID, ws)

	// Drain client frames so pings are answered and closes are noticed.
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			return
		}
	}
}
