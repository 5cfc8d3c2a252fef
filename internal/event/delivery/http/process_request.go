package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	pkgErrors "integra-recife/pkg/errors"
)

func (h *handler) processWindowReq(c *gin.Context) (windowReq, error) {
	var req windowReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(c.Request.Context(), "event.delivery.http.processWindowReq: %v", err)
		return req, pkgErrors.ErrBadRequest
	}
	if err := req.validate(); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processDayReq(c *gin.Context) (dayReq, error) {
	var req dayReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(c.Request.Context(), "event.delivery.http.processDayReq: %v", err)
		return req, pkgErrors.ErrBadRequest
	}
	if err := c.ShouldBindUri(&req); err != nil {
		h.l.Errorf(c.Request.Context(), "event.delivery.http.processDayReq: %v", err)
		return req, errInvalidDay
	}
	if err := req.validate(); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processIDParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}
