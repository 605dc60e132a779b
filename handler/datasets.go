package handler

import (
	"net/http"

	C "seqmine/config"
	D "seqmine/dataset"
	M "seqmine/model"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// getDataset resolves the :dataset_id path param against the registry.
// Aborts the request with 404 when the dataset is unknown or evicted.
func getDataset(c *gin.Context) (*D.Dataset, bool) {
	id := c.Params.ByName("dataset_id")
	d, ok := C.GetServices().Datasets.Get(id)
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound,
			M.ErrorResponse{Error: "Dataset not found. Please upload a CSV file first."})
		return nil, false
	}
	return d, true
}

// Test command.
// curl -i -X POST http://localhost:8000/datasets -F "file=@transactions.csv"
func UploadDatasetHandler(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest,
			M.ErrorResponse{Error: "Missing uploaded file.", Detail: err.Error()})
		return
	}
	if maxBytes := C.GetConfig().MaxUploadBytes; file.Size > maxBytes {
		c.AbortWithStatusJSON(http.StatusBadRequest,
			M.ErrorResponse{Error: "Uploaded file is too large."})
		return
	}

	f, err := file.Open()
	if err != nil {
		log.WithFields(log.Fields{"err": err}).Error("Failed to open uploaded file.")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	defer f.Close()

	table, err := D.LoadCSV(f, file.Filename)
	if err != nil {
		log.WithFields(log.Fields{"err": err, "filename": file.Filename}).Error("Dataset validation failed.")
		c.AbortWithStatusJSON(http.StatusBadRequest, M.ErrorResponse{Error: err.Error()})
		return
	}

	d := C.GetServices().Datasets.Add(table)
	preview := table.Preview(10)
	preview.Id = d.Id
	c.JSON(http.StatusCreated, preview)
}

// Test command.
// curl -i -X GET http://localhost:8000/datasets/<id>/columns
func GetColumnsHandler(c *gin.Context) {
	d, ok := getDataset(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"columns": d.Table.Columns})
}

// Test command.
// curl -H "Content-Type: application/json" -i -X POST http://localhost:8000/datasets/<id>/sequences -d '{"sequence_id_column": "UserID", "item_column": "Product", "timestamp_column": "Date"}'
func BuildSequencesHandler(c *gin.Context) {
	d, ok := getDataset(c)
	if !ok {
		return
	}

	var columns M.ColumnSelection
	if err := c.ShouldBindJSON(&columns); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest,
			M.ErrorResponse{Error: "json decoding : " + err.Error()})
		return
	}

	sequences, stats, err := D.BuildSequences(d.Table,
		columns.SequenceIdColumn, columns.ItemColumn, columns.TimestampColumn)
	if err != nil {
		log.WithFields(log.Fields{"err": err}).Error("Sequence generation failed.")
		c.AbortWithStatusJSON(http.StatusBadRequest, M.ErrorResponse{Error: err.Error()})
		return
	}

	if columns.MinLength > 0 || columns.MaxLength > 0 {
		sequences = D.FilterSequences(sequences, columns.MinLength, columns.MaxLength)
		stats = D.SequenceStatsOf(sequences)
	}

	d.SetSequences(sequences)
	c.JSON(http.StatusOK, stats)
}
