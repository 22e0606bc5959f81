package models

import (
	"time"

	"github.com/gin-gonic/gin"
)

// ApiResponse is the envelope every endpoint answers with. Meta is set only
// on paginated lists; Rate mirrors the limiter state for the caller.
type ApiResponse struct {
	Message         string       `json:"message"`
	Data            any          `json:"data,omitempty"`
	Error           bool         `json:"error,omitempty"`
	Meta            *Pagination  `json:"meta"`
	Rate            *RateLimiter `json:"rate_limit,omitempty"`
	RequestedEntity string       `json:"requested_entity,omitempty"`
}

type Pagination struct {
	Page       int `json:"page" example:"1"`
	Limit      int `json:"limit" example:"20"`
	Total      int `json:"total" example:"57"`
	TotalPages int `json:"total_pages" example:"3"`
}

// RateLimiter is the limiter snapshot the rate limiting middleware stores
// in the request context.
type RateLimiter struct {
	Limit          int       `json:"limit"`
	Remaining      int       `json:"remaining"`
	ResetAt        time.Time `json:"reset_at"`
	ResetInSeconds int       `json:"reset_in_seconds"`
}

func newResponse(c *gin.Context, message string) ApiResponse {
	resp := ApiResponse{
		Message:         message,
		RequestedEntity: c.Request.Method + " " + c.FullPath(),
	}
	if rate, ok := c.Get("rateLimiter"); ok {
		if rl, ok := rate.(*RateLimiter); ok {
			resp.Rate = rl
		}
	}
	return resp
}

func SuccessResponse(c *gin.Context, message string, data any) ApiResponse {
	resp := newResponse(c, message)
	resp.Data = data
	return resp
}

func PaginatedResponse(c *gin.Context, message string, data any, meta *Pagination) ApiResponse {
	resp := newResponse(c, message)
	resp.Data = data
	resp.Meta = meta
	return resp
}

func ErrorResponse(c *gin.Context, message string) ApiResponse {
	resp := newResponse(c, message)
	resp.Error = true
	return resp
}
