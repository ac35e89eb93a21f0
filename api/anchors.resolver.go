package api

import (
	"saasval/internal/calculator"

	"github.com/gin-gonic/gin"
)

type anchorsResponse struct {
	Anchors map[string]map[string]float64 `json:"anchors"`
}

// anchors exposes the business-model x stage anchor table so the
// presentation layer can render it without duplicating the data.
func (m ApiHandler) anchors(c *gin.Context) {
	out := anchorsResponse{Anchors: map[string]map[string]float64{}}
	for model, row := range calculator.AnchorTable() {
		stages := map[string]float64{}
		for stage, v := range row {
			stages[string(stage)] = v
		}
		out.Anchors[string(model)] = stages
	}
	c.JSON(200, out)
}
