package broker

import "errors"

var (
	ErrPublisherClosed  = errors.New("publisher is closed")
	ErrDeliveriesClosed = errors.New("deliveries channel closed")
)
