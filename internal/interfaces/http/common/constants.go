package common

const (
	// MaxRequestBody limits JSON request bodies on application endpoints.
	MaxRequestBody = 1 << 20
)
