package api

import (
	"fmt"

	"saasval/internal/service"

	"github.com/gin-gonic/gin"
)

type sensitivityRequest struct {
	Profile valuationRequest `json:"profile"`
	Row     service.AxisSpec `json:"row"`
	Col     service.AxisSpec `json:"col"`
	Metric  string           `json:"metric"`
}

func (m ApiHandler) sensitivity(c *gin.Context) {
	var requestBody sensitivityRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}

	profile, err := requestBody.Profile.toProfile()
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	result, err := m.SensitivityHandler.ComputeGrid(service.SensitivityInput{
		Profile: profile,
		Row:     requestBody.Row,
		Col:     requestBody.Col,
		Metric:  service.GridMetric(requestBody.Metric),
	})
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	c.JSON(200, result)
}
