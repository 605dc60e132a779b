package quickchart

import (
	"encoding/json"
	"errors"

	quickchartgo "github.com/henomis/quickchart-go"
	log "github.com/sirupsen/logrus"
)

type ChartConfig struct {
	Type string    `json:"type"`
	Data ChartData `json:"data"`
}
type ChartData struct {
	Labels   []interface{} `json:"labels"`
	DataSets []Dataset     `json:"datasets"`
}
type Dataset struct {
	Label       string        `json:"label"`
	Data        []interface{} `json:"data"`
	Fill        bool          `json:"fill"`
	LineTension float32       `json:"lineTension"`
}

func GetChartImageUrlForConfig(config ChartConfig) (url string, err error) {
	bytes, err := json.Marshal(config)
	if err != nil {
		log.Error("failed to marshal chart config")
		return "", errors.New("failed to get chart url from quickchart")
	}
	qc := quickchartgo.New()
	qc.Config = string(bytes)
	url, error := qc.GetUrl()
	if error != nil {
		log.Error("failed to get chart url from quickchart")
		return "", errors.New("failed to get chart url from quickchart")
	}
	return url, nil
}
