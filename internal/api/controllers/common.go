package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"serenity/pkg/utils"
)

// accountIDFromContext reads the account id the JWT middleware stored.
func accountIDFromContext(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.GetString("account_id"))
	if err != nil {
		return uuid.Nil, utils.ErrUnauthorized
	}
	return id, nil
}
