package routes

import (
	"resto_requests/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathMe = "/me"
)

func addProfileRoutes(rg *gin.RouterGroup, profileHandler *handlers.ProfileHandler) {
	me := rg.Group(PathMe)
	{
		me.GET("", profileHandler.GetProfile)
		me.PATCH("", profileHandler.UpdateProfile)
		me.PUT("/restaurant", profileHandler.SwitchRestaurant)
	}
}
