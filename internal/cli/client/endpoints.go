package client

const (
	// List endpoints. The anomaly and pattern endpoints also accept a
	// /{plant_id} path suffix; the query package builds those paths.
	endpointAnomalies = "/api/anomalies"
	endpointPatterns  = "/api/patterns"
	endpointInsights  = "/api/insights"
	endpointPlants    = "/api/plants"
)
