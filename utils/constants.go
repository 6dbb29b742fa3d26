package utils

// WireDateLayout is the DD/MM/YYYY layout booking dates use on create and update.
const WireDateLayout = "02/01/2006"

// FormDateLayout is the YYYY-MM-DD layout of HTML date inputs.
const FormDateLayout = "2006-01-02"

// LoggerContextKey is the gin context key holding the request-scoped logger.
const LoggerContextKey = "logger"
