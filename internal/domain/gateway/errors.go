package gateway

import "errors"

var (
	ErrGatewayDisabled    = errors.New("whatsapp payment gateway is disabled")
	ErrUnknownPlaceholder = errors.New("unknown template placeholder")
)
