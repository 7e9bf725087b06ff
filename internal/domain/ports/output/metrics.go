package ports

import "time"

type MetricsProvider interface {
	IncrementHTTPRequests(method, route string, status int)
	RecordHTTPRequestDuration(method, route string, status int, duration time.Duration)

	IncrementGRPCRequests(method, status string)
	RecordGRPCRequestDuration(method, status string, duration time.Duration)

	IncrementDatabaseQueries(queryType string, success bool)
	RecordDatabaseQueryDuration(queryType string, duration time.Duration)

	IncrementCacheHits()
	IncrementCacheMisses()
	RecordCacheOperationDuration(operation string, duration time.Duration)

	IncrementPostOperations(operation string, success bool)
	IncrementCommentOperations(operation string, success bool)
	IncrementFollowerOperations(operation string, success bool)

	SetActiveConnections(count int)
	SetServiceHealth(healthy bool)
}
