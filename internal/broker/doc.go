// Package broker moves notification events through RabbitMQ.
//
// A Publisher serialises models.NotificationEvent values as JSON and sends
// them as persistent messages to a durable queue on the default exchange.
// A Consumer reads the same queue with manual acknowledgement and hands each
// decoded event to a Handler, reconnecting with exponential backoff when the
// broker goes away.
package broker
