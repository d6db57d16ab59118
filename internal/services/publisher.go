package services

// EventPublisher sends an event payload to a named queue. Satisfied by
// pkg/rabbitmq.Client; services tolerate a nil publisher and skip
// publishing, so the app runs without a broker.
type EventPublisher interface {
	Publish(queue string, body []byte) error
}
