package logger

// Exported for white-box tests of the error chain rendering.
var (
	CollectMessages = collectMessages
	FormatChain     = formatChain
)
