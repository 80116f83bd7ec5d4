package httpresp

import "github.com/gin-gonic/gin"

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(201, data)
}

func List[T any](c *gin.Context, data []T) {
	c.JSON(200, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}

// ListWith attaches extra top-level fields next to the list, used by
// the staff booking view for its stat counters.
func ListWith[T any](c *gin.Context, data []T, extra gin.H) {
	body := gin.H{
		"data":  data,
		"total": len(data),
	}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(200, body)
}
