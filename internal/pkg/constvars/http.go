package constvars

const (
	MethodGet     = "GET"
	MethodHead    = "HEAD"
	MethodPost    = "POST"
	MethodPut     = "PUT"
	MethodPatch   = "PATCH"
	MethodDelete  = "DELETE"
	MethodOptions = "OPTIONS"
)

const (
	MIMETextPlain        = "text/plain"
	MIMETextCSV          = "text/csv"
	MIMETextCalendar     = "text/calendar"
	MIMEApplicationJSON  = "application/json"
	MIMEApplicationForm  = "application/x-www-form-urlencoded"
	MIMEOctetStream      = "application/octet-stream"
	MIMEMultipartForm    = "multipart/form-data"
	MIMETextPlainUTF8    = "text/plain; charset=utf-8"
	MIMEApplicationJSON8 = "application/json; charset=utf-8"
)

const (
	StatusOK        = 200
	StatusCreated   = 201
	StatusAccepted  = 202
	StatusNoContent = 204

	StatusMovedPermanently  = 301
	StatusFound             = 302
	StatusNotModified       = 304
	StatusTemporaryRedirect = 307

	StatusBadRequest            = 400
	StatusUnauthorized          = 401
	StatusForbidden             = 403
	StatusNotFound              = 404
	StatusMethodNotAllowed      = 405
	StatusRequestTimeout        = 408
	StatusConflict              = 409
	StatusGone                  = 410
	StatusRequestEntityTooLarge = 413
	StatusUnprocessableEntity   = 422
	StatusLocked                = 423
	StatusTooManyRequests       = 429

	StatusInternalServerError = 500
	StatusNotImplemented      = 501
	StatusBadGateway          = 502
	StatusServiceUnavailable  = 503
	StatusGatewayTimeout      = 504
)

const (
	HeaderAuthorization      = "Authorization"
	HeaderAccept             = "Accept"
	HeaderOrigin             = "Origin"
	HeaderContentType        = "Content-Type"
	HeaderContentLength      = "Content-Length"
	HeaderContentDisposition = "Content-Disposition"
	HeaderUserAgent          = "User-Agent"
	HeaderXForwardedFor      = "X-Forwarded-For"
	HeaderRetryAfter         = "Retry-After"

	HeaderXRequestID  = "X-Request-Id"
	HeaderXAPIKey     = "x-api-key"
	HeaderXSignature  = "X-Rosta-Signature"
	HeaderXEventType  = "X-Rosta-Event"
	HeaderXDeliveryID = "X-Rosta-Delivery"
)
