package utils

import (
	"github.com/gin-gonic/gin"

	"tenantguard-be/apierrors"
)

// Success writes the {ok: true, data} envelope
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"ok": true, "data": data})
}

// Fail writes the {ok: false, error} envelope
func Fail(c *gin.Context, status int, message string, fields []apierrors.FieldError) {
	body := gin.H{"ok": false, "error": message}
	if len(fields) > 0 {
		body["fields"] = fields
	}
	c.AbortWithStatusJSON(status, body)
}
