package handler

import (
	"fmt"
	"net/http"
	"strconv"

	D "seqmine/dataset"
	V "seqmine/viz"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func getGenerator(c *gin.Context) (*V.Generator, *D.MiningSession, bool) {
	session, ok := getMiningSession(c)
	if !ok {
		return nil, nil, false
	}
	return V.NewGenerator(session.Patterns, session.Sequences), session, true
}

func topNQuery(c *gin.Context, defaultN int) int {
	n, err := strconv.Atoi(c.DefaultQuery("top_n", strconv.Itoa(defaultN)))
	if err != nil || n < 1 {
		return defaultN
	}
	return n
}

// Test command.
// curl -i -X GET "http://localhost:8000/datasets/<id>/visualizations/bar?top_n=20"
func GetBarChartHandler(c *gin.Context) {
	g, _, ok := getGenerator(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, g.BarChartData(topNQuery(c, 20)))
}

// Test command.
// curl -i -X GET "http://localhost:8000/datasets/<id>/visualizations/bar/url?top_n=20"
func GetBarChartURLHandler(c *gin.Context) {
	g, _, ok := getGenerator(c)
	if !ok {
		return
	}
	url, err := g.BarChartImageURL(topNQuery(c, 20))
	if err != nil {
		log.WithFields(log.Fields{"err": err}).Error("Failed to build chart url.")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

func GetLineChartHandler(c *gin.Context) {
	g, _, ok := getGenerator(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, g.LineChartData())
}

func GetHeatmapHandler(c *gin.Context) {
	g, _, ok := getGenerator(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, g.HeatmapData())
}

// Test command.
// curl -i -X GET "http://localhost:8000/datasets/<id>/visualizations/network?top_n=15"
func GetNetworkHandler(c *gin.Context) {
	g, _, ok := getGenerator(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, g.NetworkData(topNQuery(c, 15)))
}

func GetTableHandler(c *gin.Context) {
	g, _, ok := getGenerator(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"patterns": g.TableData()})
}

func GetSummaryHandler(c *gin.Context) {
	g, session, ok := getGenerator(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, g.SummaryStats(
		session.TotalSequences, session.ExecutionTime, session.MinSupport))
}

// Test command.
// curl -i -X GET http://localhost:8000/datasets/<id>/results/export -o patterns.csv
func ExportResultsHandler(c *gin.Context) {
	g, _, ok := getGenerator(c)
	if !ok {
		return
	}
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "patterns.csv"))
	c.Status(http.StatusOK)
	if err := g.ExportCSV(c.Writer); err != nil {
		log.WithFields(log.Fields{"err": err}).Error("CSV export failed.")
	}
}
