package v1

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"
	"github.com/goalpost-app/backend/internal/httputil"
	"github.com/goalpost-app/backend/internal/models"
	"github.com/rs/zerolog/log"
)

// Names of the server-sent events
const (
	EventSnapshot = "snapshot"
	EventGoal     = "goal"
)

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id}/events [options]
func (co Controller) OptionsGoalEvents(c *gin.Context) {
	optionsForGoal(c, httputil.OptionsGet)
}

// @Summary		Live updates
// @Description	Streams the public view of the goal as server-sent events.
// @Description	The first event is a "snapshot" with the current state. Every change of the goal
// @Description	is followed by a "goal" event with the full view and the sequence number of the change as ID.
// @Description	Clients that reconnect receive a new snapshot, missed events are not replayed.
// @Tags			Goals
// @Produce		text/event-stream
// @Success		200	{object}	Goal
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id}/events [get]
func (co Controller) GetGoalEvents(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var goal models.Goal
	err = models.DB.First(&goal, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	// Subscribe before reading the snapshot so that no change
	// between the two goes unnoticed
	sub := co.Hub.Subscribe(goal.ID)
	defer sub.Close()

	snapshot, err := co.newGoal(c, goal)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	logger := log.With().Str("request-id", requestid.Get(c)).Str("goal", goal.ID.String()).Logger()
	logger.Debug().Msg("live view opened")
	defer logger.Debug().Msg("live view closed")

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.Render(http.StatusOK, sse.Event{
		Event: EventSnapshot,
		Data:  snapshot,
	})
	c.Writer.Flush()

	heartbeat := time.NewTicker(co.heartbeat())
	defer heartbeat.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false

		case <-heartbeat.C:
			_, err := io.WriteString(w, ": heartbeat\n\n")
			return err == nil

		case event, ok := <-sub.C:
			// The hub is closed on shutdown
			if !ok {
				return false
			}

			var current models.Goal
			err := models.DB.First(&current, goal.ID).Error
			if err != nil {
				logger.Error().Err(err).Msg("could not load goal for live view")
				return true
			}

			view, err := co.newGoal(c, current)
			if err != nil {
				logger.Error().Err(err).Msg("could not load goal for live view")
				return true
			}

			c.Render(-1, sse.Event{
				Id:    strconv.FormatUint(event.Sequence, 10),
				Event: EventGoal,
				Data:  view,
			})
			return true
		}
	})
}
