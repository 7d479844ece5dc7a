package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "room-booking/pkg/errors"
)

// processBookReq binds the booking request body.
func (h *handler) processBookReq(c *gin.Context) (bookReq, error) {
	var req bookReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.BadRequest("invalid request body: " + err.Error()).Wrap(err)
	}
	return req, nil
}

// processDayReq binds the ?date= query parameter.
func (h *handler) processDayReq(c *gin.Context) (dayReq, error) {
	var req dayReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.BadRequest("invalid query: " + err.Error()).Wrap(err)
	}
	return req, nil
}
