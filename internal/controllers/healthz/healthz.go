package healthz

import (
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/goalpost-app/backend/internal/httputil"
	"github.com/goalpost-app/backend/internal/models"
	"github.com/rs/zerolog/log"
)

const msgDatabaseUnavailable = "There is a problem with the database connection"

type Response struct {
	Error *string `json:"error" example:"There is a problem with the database connection"`
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object}	Response
// @Router			/healthz [get]
func Get(c *gin.Context) {
	sqlDB, err := models.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}

	if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("health check failed")
		msg := msgDatabaseUnavailable
		c.JSON(http.StatusInternalServerError, Response{
			Error: &msg,
		})
		return
	}

	c.Status(http.StatusNoContent)
}
