// Package services contains domain services that coordinate business logic
// spanning aggregates. The order processing pipeline lives here: an explicit,
// fixed sequence of stages that takes a pending order to Completed or leaves
// it Failed with a diagnostic message.
package services
