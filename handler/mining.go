package handler

import (
	"net/http"
	"time"

	D "seqmine/dataset"
	M "seqmine/model"
	P "seqmine/pattern"
	U "seqmine/util"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Patterns returned inline on the mine response. The full set stays
// available through the results endpoints.
const maxPatternsInResponse = 100

// Test command.
// curl -H "Content-Type: application/json" -i -X POST http://localhost:8000/datasets/<id>/mine -d '{"min_support": 0.05, "max_pattern_length": 5}'
func MinePatternsHandler(c *gin.Context) {
	d, ok := getDataset(c)
	if !ok {
		return
	}

	var params M.MiningParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest,
			M.ErrorResponse{Error: "json decoding : " + err.Error()})
		return
	}

	sequences, ok := d.Sequences()
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest,
			M.ErrorResponse{Error: "No sequences available. Please upload and preprocess data first."})
		return
	}

	db := P.NewSequenceDatabase(sequences)
	miner, err := P.NewPrefixSpan(db, params.MinSupport, params.MaxPatternLength)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, M.ErrorResponse{Error: err.Error()})
		return
	}

	startTime := time.Now()
	patterns, err := miner.MinePatternsContext(c.Request.Context())
	if err != nil {
		log.WithFields(log.Fields{"err": err}).Error("Mining aborted.")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	executionTime := time.Since(startTime).Seconds()

	service, err := P.NewPatternService(patterns)
	if err != nil {
		log.WithFields(log.Fields{"err": err}).Error("Failed to build pattern service.")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	d.SetMining(&D.MiningSession{
		Patterns:       patterns,
		Service:        service,
		Sequences:      sequences,
		TotalSequences: db.TotalCount,
		MinSupport:     params.MinSupport,
		ExecutionTime:  executionTime,
	})

	responsePatterns := patterns
	if len(responsePatterns) > maxPatternsInResponse {
		responsePatterns = responsePatterns[:maxPatternsInResponse]
	}
	c.JSON(http.StatusOK, M.MiningResult{
		Patterns:       responsePatterns,
		TotalPatterns:  len(patterns),
		TotalSequences: db.TotalCount,
		MinSupportUsed: params.MinSupport,
		ExecutionTime:  U.RoundFloat(executionTime, 2),
	})
}

// getMiningSession aborts with 400 when no mining run exists yet.
func getMiningSession(c *gin.Context) (*D.MiningSession, bool) {
	d, ok := getDataset(c)
	if !ok {
		return nil, false
	}
	session, ok := d.Mining()
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest,
			M.ErrorResponse{Error: "No mining results available."})
		return nil, false
	}
	return session, true
}

// Test command.
// curl -i -X GET "http://localhost:8000/datasets/<id>/patterns?start_item=login&end_item=payment"
func QueryPatternsHandler(c *gin.Context) {
	session, ok := getMiningSession(c)
	if !ok {
		return
	}

	qParams := c.Request.URL.Query()
	var startItem string = ""
	if startItems := qParams["start_item"]; startItems != nil {
		startItem = startItems[0]
	}
	var endItem string = ""
	if endItems := qParams["end_item"]; endItems != nil {
		endItem = endItems[0]
	}

	patterns, err := session.Service.Query(startItem, endItem)
	if err != nil {
		log.WithFields(log.Fields{"error": err}).Error("Patterns query failed.")
		c.AbortWithStatusJSON(http.StatusBadRequest, M.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"patterns": patterns, "total": len(patterns)})
}
