package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader 请求 ID 头
const RequestIDHeader = "X-Request-Id"

// RequestID 请求 ID 中间件
// 透传调用方传入的请求 ID，没有则生成一个，报价排查问题时串联日志用
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set("request_id", requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)

		c.Next()
	}
}
