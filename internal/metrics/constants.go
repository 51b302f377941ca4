package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameItemsCreated     = "items_created_total"
	MetricNameItemsUpdated     = "items_updated_total"
	MetricNameItemsDeleted     = "items_deleted_total"
	MetricNameFiltersPerformed = "filters_performed_total"
	MetricNameUsersRegistered  = "users_registered_total"
	MetricNameLoginsTotal      = "logins_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextItemsCreated     = "Total number of inventory items created"
	HelpTextItemsUpdated     = "Total number of inventory items updated"
	HelpTextItemsDeleted     = "Total number of inventory items deleted"
	HelpTextFiltersPerformed = "Total number of inventory filter queries"
	HelpTextUsersRegistered  = "Total number of user accounts created"
	HelpTextLoginsTotal      = "Total number of login attempts"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelResult = "result"
)

// Login result label values
const (
	LoginResultSuccess = "success"
	LoginResultFailure = "failure"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
