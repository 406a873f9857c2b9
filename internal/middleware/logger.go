package middleware

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorLogger recovers panics into a JSON 500 and writes one request_error
// line per error attached to the context, or one per bare 5xx response.
func ErrorLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		defer func() {
			if recovered := recover(); recovered != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error":   "Internal server error",
				})
				newRequestLog(c, start).
					add("type", "panic").
					addQuoted("error", fmt.Sprint(recovered)).
					addQuoted("stack", string(debug.Stack())).
					print()
				return
			}

			if len(c.Errors) == 0 {
				if status := c.Writer.Status(); status >= http.StatusInternalServerError {
					newRequestLog(c, start).
						add("type", statusKind(status)).
						print()
				}
				return
			}

			for _, e := range c.Errors {
				rl := newRequestLog(c, start).
					add("type", statusKind(c.Writer.Status())).
					addQuoted("error", e.Error())
				if e.Meta != nil {
					rl.add("meta", fmt.Sprintf("%+v", e.Meta))
				}
				rl.print()
			}
		}()

		c.Next()
	}
}

// statusKind names the failure class by response status.
func statusKind(status int) string {
	switch {
	case status == http.StatusServiceUnavailable:
		return "unavailable"
	case status >= http.StatusInternalServerError:
		return "server_error"
	case status >= http.StatusBadRequest:
		return "client_error"
	default:
		return "error"
	}
}

type requestLog struct {
	fields []string
}

func newRequestLog(c *gin.Context, start time.Time) *requestLog {
	rl := &requestLog{}
	return rl.
		add("request_id", requestID(c)).
		add("status", fmt.Sprint(c.Writer.Status())).
		add("method", c.Request.Method).
		add("path", c.Request.URL.Path).
		add("query", c.Request.URL.RawQuery).
		add("client_ip", c.ClientIP()).
		add("latency", time.Since(start).String())
}

func (rl *requestLog) add(key, value string) *requestLog {
	rl.fields = append(rl.fields, key+"="+value)
	return rl
}

func (rl *requestLog) addQuoted(key, value string) *requestLog {
	return rl.add(key, fmt.Sprintf("%q", value))
}

func (rl *requestLog) print() {
	log.Println("request_error " + strings.Join(rl.fields, " "))
}

func requestID(c *gin.Context) string {
	if id := c.GetString(requestIDKey); id != "" {
		return id
	}
	return c.GetHeader(RequestIDHeader)
}
