package bootstrap

// =============================================================================
// Startup Messages
// =============================================================================

const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingStockroom   = "Starting Stockroom"
	LogMsgConfigurationLoaded = "Configuration loaded"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
)
