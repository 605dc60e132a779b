package main

import (
	"fmt"

	C "seqmine/config"
	H "seqmine/handler"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// ./app --env=development --port=8000 --dataset_cache_size=128 --max_upload_bytes=52428800
func main() {
	if err := C.Init(); err != nil {
		log.WithFields(log.Fields{"err": err}).Fatal("Failed to initialize config.")
	}

	if !C.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	H.InitRoutes(r)

	addr := fmt.Sprintf(":%d", C.GetConfig().Port)
	log.WithFields(log.Fields{"addr": addr}).Info("Starting server.")
	if err := r.Run(addr); err != nil {
		log.WithFields(log.Fields{"err": err}).Fatal("Server exited.")
	}
}
