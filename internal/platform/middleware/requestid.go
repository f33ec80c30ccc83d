package middleware

import (
	"crypto/rand"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

const HeaderRequestID = "X-Request-Id"

// RequestID tags every response with a ulid, keeping a caller-supplied id
// when one is already present.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = newULID()
		}
		c.Writer.Header().Set(HeaderRequestID, id)
		c.Next()
	}
}

func newULID() string {
	t := time.Now().UTC()
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(t), entropy)
	if err != nil {
		return ""
	}
	return id.String()
}
