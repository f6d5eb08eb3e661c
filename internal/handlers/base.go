package handlers

import (
	"errors"
	"io"
	"net/http"

	"forumapi/internal/apperror"
	"forumapi/internal/entities"
	"forumapi/internal/middleware"
	"forumapi/internal/utils"

	"github.com/gin-gonic/gin"
)

// respond writes the success envelope; data may be nil.
func respond(c *gin.Context, code int, data gin.H) {
	body := gin.H{"status": "success"}
	if data != nil {
		body["data"] = data
	}
	c.JSON(code, body)
}

// respondError maps domain errors to 4xx "fail" responses. Anything else is
// logged and answered with a generic 500.
func respondError(c *gin.Context, err error) {
	status, message, ok := apperror.Translate(err)
	if !ok {
		utils.Logger.WithField("request_id", c.GetString(middleware.RequestIDKey)).
			WithField("path", c.Request.URL.Path).
			WithField("error", err.Error()).
			Error("unhandled error")
		c.JSON(status, gin.H{"status": "error", "message": message})
		return
	}
	c.JSON(status, gin.H{"status": "fail", "message": message})
}

// bindPayload decodes a JSON object body. An empty body yields an empty
// payload so entity validation reports the missing fields.
func bindPayload(c *gin.Context) (entities.Payload, error) {
	payload := entities.Payload{}
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return payload, nil
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return entities.Payload{}, nil
		}
		return nil, apperror.Invariant("payload harus berupa objek JSON")
	}
	if payload == nil {
		payload = entities.Payload{}
	}
	return payload, nil
}

// mustPayload is bindPayload that answers the request on failure.
func mustPayload(c *gin.Context) (entities.Payload, bool) {
	payload, err := bindPayload(c)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return payload, true
}

func Healthz(ping func() error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ping != nil {
			if err := ping(); err != nil {
				utils.LogError(err, "health check failed")
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
