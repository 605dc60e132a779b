package handler

import (
	C "seqmine/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func InitRoutes(r *gin.Engine) {
	// CORS
	if C.IsDevelopment() {
		log.Info("Running in development.")
		config := cors.DefaultConfig()
		config.AllowAllOrigins = true
		r.Use(cors.New(config))
	}

	r.GET("/", StatusHandler)

	r.POST("/datasets", UploadDatasetHandler)
	r.GET("/datasets/:dataset_id/columns", GetColumnsHandler)
	r.POST("/datasets/:dataset_id/sequences", BuildSequencesHandler)

	r.POST("/datasets/:dataset_id/mine", MinePatternsHandler)
	r.GET("/datasets/:dataset_id/patterns", QueryPatternsHandler)

	r.GET("/datasets/:dataset_id/visualizations/bar", GetBarChartHandler)
	r.GET("/datasets/:dataset_id/visualizations/bar/url", GetBarChartURLHandler)
	r.GET("/datasets/:dataset_id/visualizations/line", GetLineChartHandler)
	r.GET("/datasets/:dataset_id/visualizations/heatmap", GetHeatmapHandler)
	r.GET("/datasets/:dataset_id/visualizations/network", GetNetworkHandler)

	r.GET("/datasets/:dataset_id/results/table", GetTableHandler)
	r.GET("/datasets/:dataset_id/results/summary", GetSummaryHandler)
	r.GET("/datasets/:dataset_id/results/export", ExportResultsHandler)
}

// Test command.
// curl -i -X GET http://localhost:8000/
func StatusHandler(c *gin.Context) {
	c.JSON(200, gin.H{
		"message": "Sequential Pattern Mining API",
		"status":  "running",
		"version": "1.0.0",
	})
}
