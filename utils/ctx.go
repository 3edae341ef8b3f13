package utils

import (
	"littlelemon/auth"

	"github.com/gin-gonic/gin"
)

const actorKey = "actor"

func SetActor(c *gin.Context, a auth.Actor) {
	c.Set(actorKey, a)
}

// CurrentActor returns the resolved caller identity set by the auth
// middleware. The zero Actor (customer, user id 0) comes back on
// unauthenticated requests, which the middleware already rejects.
func CurrentActor(c *gin.Context) auth.Actor {
	if v, ok := c.Get(actorKey); ok {
		if a, ok := v.(auth.Actor); ok {
			return a
		}
	}
	return auth.Actor{}
}
