package viz

import (
	QC "seqmine/quickchart"
)

// BarChartImageURL renders the top-patterns bar chart through quickchart
// and returns the image URL.
func (g *Generator) BarChartImageURL(topN int) (string, error) {
	data := g.BarChartData(topN)

	labels := make([]interface{}, 0, len(data.Labels))
	for _, l := range data.Labels {
		labels = append(labels, l)
	}
	supports := make([]interface{}, 0, len(data.SupportCounts))
	for _, s := range data.SupportCounts {
		supports = append(supports, s)
	}

	config := QC.ChartConfig{
		Type: "bar",
		Data: QC.ChartData{
			Labels: labels,
			DataSets: []QC.Dataset{
				{Label: "Support", Data: supports},
			},
		},
	}
	return QC.GetChartImageUrlForConfig(config)
}
