package http

import "abohawa-api/pkg/log"

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string, headers map[string]string, body string)

	// LogResponseSuccess is called immediately after receiving a successful response (non-error HTTP status)
	LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called immediately after receiving an error response (error HTTP status)
	LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error)

	// LogRequestRetry is called when backoff exists and a retry attempt is about to be made
	LogRequestRetry(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error, retryCount, maxRetries int)
}

// ZapHTTPLogger logs request lifecycle events through the application logger.
type ZapHTTPLogger struct{}

func (z ZapHTTPLogger) LogRequest(method, url string, headers map[string]string, body string) {
	log.Debugf("http request %s %s", method, url)
}

func (z ZapHTTPLogger) LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64) {
	log.Debugf("http response %s %s status=%d latency=%dms", method, url, httpStatus, latency)
}

func (z ZapHTTPLogger) LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error) {
	log.Warnf("http response failed %s %s status=%d latency=%dms err=%v", method, url, httpStatus, latency, err)
}

func (z ZapHTTPLogger) LogRequestRetry(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error, retryCount, maxRetries int) {
	log.Warnf("http retry %d/%d %s %s after status=%d err=%v", retryCount, maxRetries, method, url, httpStatus, err)
}
