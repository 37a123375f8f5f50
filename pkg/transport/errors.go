package transport

import "errors"

var (
	ErrUnsupportedMethod = errors.New("transport.unsupported_method")
	ErrEncodePayload     = errors.New("transport.encode_payload_failed")
	ErrBuildRequest      = errors.New("transport.build_request_failed")
)
