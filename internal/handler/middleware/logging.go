package middleware

import (
	"time"

	"voucher-seckill/internal/pkg/config"
	"voucher-seckill/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	HeaderRequestID = "X-Request-ID"
	ctxRequestIDKey = "request_id"
	maxStackLines   = 12
)

type Logger struct {
	logger   *zap.Logger
	timezone *time.Location
}

func NewLogger(logger *zap.Logger, cfg config.LogConfig) *Logger {
	return &Logger{
		logger:   logger,
		timezone: time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset),
	}
}

func LoggingMiddleware(logger *zap.Logger, cfg config.LogConfig) gin.HandlerFunc {
	return NewLogger(logger, cfg).LoggingMiddleware()
}

func (l *Logger) LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(ctxRequestIDKey, requestID)
		c.Header(HeaderRequestID, requestID)

		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("client_ip", c.ClientIP()),
			zap.String("started_at", startTime.In(l.timezone).Format(time.RFC3339Nano)),
		}
		if userID := c.GetHeader(HeaderUserID); userID != "" {
			fields = append(fields, zap.String("user_id", userID))
		}

		l.logger.Debug("Request started", fields...)

		c.Next()

		statusCode := c.Writer.Status()
		fields = append(fields,
			zap.Int("status_code", statusCode),
			zap.Duration("duration", time.Since(startTime)),
		)
		if responseSize := c.Writer.Size(); responseSize > 0 {
			fields = append(fields, zap.Int("response_size", responseSize))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
			if statusCode >= 500 {
				fields = append(fields, zap.Strings("error_stack", errs.ExtractStackLines(c.Errors.Last().Err, maxStackLines)))
			}
		}

		level := zapcore.InfoLevel
		if statusCode >= 500 {
			level = zapcore.ErrorLevel
		} else if statusCode >= 400 {
			level = zapcore.WarnLevel
		}

		if ce := l.logger.Check(level, "Request completed"); ce != nil {
			ce.Write(fields...)
		}
	}
}

func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get(ctxRequestIDKey); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return ""
}
