package utils

import (
	"github.com/bipuldey19/hungrypanda-handler/entity"

	"github.com/gin-gonic/gin"
)

func CurrentSession(c *gin.Context) *entity.Session {
	if v, ok := c.Get("session"); ok {
		if s, ok := v.(*entity.Session); ok {
			return s
		}
	}
	return nil
}
