package http

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"pourpal-backoffice/pkg/validation"
)

func (h *handler) processLoginReq(c *gin.Context) (loginReq, error) {
	var body loginBody
	if err := c.ShouldBindJSON(&body); err != nil {
		return loginReq{}, validation.BindError(err)
	}
	req := body.trimmed()
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		return req, validation.BindError(err)
	}
	return req, nil
}

func (h *handler) processRegisterAdminReq(c *gin.Context) (registerAdminReq, error) {
	var body registerAdminBody
	if err := c.ShouldBindJSON(&body); err != nil {
		return registerAdminReq{}, validation.BindError(err)
	}
	req := body.trimmed()
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		return req, validation.BindError(err)
	}
	return req, nil
}
