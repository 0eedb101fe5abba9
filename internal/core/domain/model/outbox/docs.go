// Package outbox provides the transactional-outbox entry for creation events.
//
// Order origination does not persist orders; it records the fully-formed
// creation event here inside a storage transaction and answers the caller
// immediately. The relay job publishes pending entries to the broadcast topic
// and marks them published, giving at-least-once delivery without a lost-event
// window between "accepted" and "published".
package outbox
