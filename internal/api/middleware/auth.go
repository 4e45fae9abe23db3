package middleware

import (
	"net/http"
	"strconv"

	"kairos/turn-engine/internal/constant"

	"github.com/gin-gonic/gin"
)

// HandleAuth trusts the API gateway in front of us to have authenticated
// staff members and forwarded their id.
func HandleAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetHeader("X-Auth-User-Id")

		if userId == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code": http.StatusUnauthorized,
				"msg":  "user is not authorized",
			})
			return
		}

		iUserId, err := strconv.ParseInt(userId, 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code": http.StatusUnauthorized,
				"msg":  "user is not authorized",
			})
			return
		}

		c.Set(constant.UserIdKey, iUserId)
		c.Next()
	}
}
