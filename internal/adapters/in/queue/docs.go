// Package queue provides the inbound message adapters that consume order
// lifecycle events from the message bus.
//
// Each downstream service subscribes with its own consumer group, so every
// event fans out to all of them while instances of the same service compete
// for deliveries:
//
// 1. OrderProjectionConsumer - persists the order aggregate from creation events
// 2. KitchenTicketConsumer - materializes a kitchen ticket for the preparation backlog
// 3. MenuNotificationConsumer - records catalog demand signals from order traffic
//
// # Delivery semantics
//
// Consumers are wrapped in a ConsumerGroup which runs a pool of workers over
// the subscription channel and settles every delivery exactly once:
//
//   - success or a duplicate event id acknowledges the delivery
//   - a structurally invalid body is a poison message and is rejected
//     without requeue: redelivering it can never make it valid
//   - any other failure (storage outage, transaction conflict) rejects with
//     requeue so the broker redelivers up to its configured delivery limit
//
// Duplicate detection rides on the unique event id constraint in storage, so
// at-least-once delivery from the broker becomes effectively-once processing.
//
// # Usage
//
//	consumer := queue.NewConsumerGroup(bus, queue.NewOrderProjectionConsumer(uowFactory, logger), 4, logger)
//	if err := consumer.Start(); err != nil {
//		log.Fatal("Failed to start consumer:", err)
//	}
//	defer consumer.Stop()
package queue
