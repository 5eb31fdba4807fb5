// Package handler contains HTTP handlers for the API.
// Handlers are responsible for:
// - Decoding request bodies and path parameters into payloads
// - Calling use case methods
// - Converting results to HTTP responses
package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"forumapi/src/app/http/response"
	"forumapi/src/app/middleware"
	"forumapi/src/core/domain"
)

// bindPayload decodes the JSON body into a payload. An empty body decodes to
// an empty payload so that the entity reports the missing properties.
// On a malformed body it writes a 400 and returns false.
func bindPayload(c *gin.Context) (domain.Payload, bool) {
	var p domain.Payload
	if err := c.ShouldBindJSON(&p); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(c, "request body must be a JSON object", middleware.GetRequestID(c))
		return nil, false
	}
	if p == nil {
		p = domain.Payload{}
	}
	return p, true
}

// fail attaches err for the logging middleware and writes the mapped response.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	response.FromDomainError(c, err, middleware.GetRequestID(c))
}
