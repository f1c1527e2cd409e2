// Package dibasics teaches Dependency Injection in Go with two small examples.
//
// Each example exists twice: a tightly coupled version, where the consumer
// builds or picks its own collaborator, and an injected version, where the
// collaborator arrives through the constructor and the consumer only knows an
// interface.
//
//   - examples/logging: User <- Logger (console or zap)
//   - examples/payment: TransactionHandler <- Gateway (Stripe, PayPal, internal)
//
// The coupled versions live in the tests, where they serve as baselines that
// the injected versions must match line for line.
//
// Wiring is always explicit and happens once, in a composition root
// (cmd/didemo). There is no container, no reflection and no scoping. The di
// package offers only a name -> constructor Registry so a composition root can
// pick a provider from configuration.
//
// Run the demo:
//
//	go run ./cmd/didemo
//	go run ./cmd/didemo -scenario payment -gateway paypal
package dibasics
