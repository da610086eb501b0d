package admin

import (
	"github.com/ecat-taratra/backend/internal/auth"
	"github.com/ecat-taratra/backend/internal/constants"
	handlershared "github.com/ecat-taratra/backend/internal/http/handlers/shared"
	"github.com/ecat-taratra/backend/internal/http/response"

	"github.com/gin-gonic/gin"
)

func getAdminID(c *gin.Context) (uint, bool) {
	return handlershared.GetContextUintWithKeys(c, constants.ContextKeyAdminID, "error.unauthenticated", "error.internal")
}

func getAdminIdentity(c *gin.Context) (auth.AdminIdentity, bool) {
	value, exists := c.Get(constants.ContextKeyAdminIdentity)
	if !exists {
		respondError(c, response.CodeUnauthorized, "error.unauthenticated", nil)
		return auth.AdminIdentity{}, false
	}
	identity, ok := value.(auth.AdminIdentity)
	if !ok {
		respondError(c, response.CodeInternal, "error.internal", nil)
		return auth.AdminIdentity{}, false
	}
	return identity, true
}

func parseID(c *gin.Context) (uint, bool) {
	return handlershared.ParseIDParam(c, "id")
}
