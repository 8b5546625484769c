package handlers

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/velorent/insurance_sales_app/internal/core/domain"
	"github.com/velorent/insurance_sales_app/internal/events"
)

// eventHandler streams sale changes to connected dashboards.
type eventHandler struct {
	hub *events.Hub
}

func newEventHandler(hub *events.Hub) *eventHandler {
	return &eventHandler{hub: hub}
}

// registerEventRoutes registers the server-sent events route.
func registerEventRoutes(rg *gin.RouterGroup, hub *events.Hub) {
	h := newEventHandler(hub)
	rg.GET("/events/sales", h.streamSales)
}

// streamSales godoc
// @Summary Live sale updates over server-sent events
// @Description Employees only receive events for their own sales; admins receive everything.
// @Tags events
// @Produce text/event-stream
// @Success 200 {string} string "stream of sale events"
// @Security BearerAuth
// @Router /events/sales [get]
func (h *eventHandler) streamSales(c *gin.Context) {
	actor, ok := mustGetActor(c)
	if !ok {
		return
	}

	ch, cancel := h.hub.Subscribe()
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case event, open := <-ch:
			if !open {
				return false
			}
			if !visibleTo(actor, event) {
				return true
			}
			c.SSEvent(string(event.Type), event)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// visibleTo applies the same scoping as sale listings.
func visibleTo(actor domain.Actor, event domain.SaleEvent) bool {
	return actor.IsAdmin() || event.Sale.EmployeeID == actor.UserID
}
