package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/zagross-express/zagross-admin-api/services"
)

// StreamOrderEvents handles GET /api/v1/orders/events - an SSE stream
// of order-change events so open dashboard views can refresh their
// lists. Each connection holds its own subscription, torn down when
// the client goes away.
func StreamOrderEvents(c *gin.Context) {
	events, unsubscribe := services.GetEventHub().Subscribe()
	defer unsubscribe()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	clientGone := c.Request.Context().Done()
	for {
		select {
		case <-clientGone:
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			c.SSEvent("order_change", event)
			c.Writer.Flush()
		}
	}
}
