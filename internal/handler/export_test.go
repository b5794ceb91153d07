package handler

// Export for testing
type DiagnoseResponse = diagnoseResponse
type QuotaExceededResponse = quotaExceededResponse

var WriteServiceError = writeServiceError
var Error = writeError

const ClientTokenCookie = clientTokenCookie
