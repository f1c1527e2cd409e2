// Package di holds the one piece of shared plumbing the examples need at their
// composition roots: a Registry of named provider constructors.
//
// The registry answers a single question, "which concrete provider does this
// name stand for?", so that a composition root can pick a provider from
// configuration instead of branching on a string inside a consumer.
//
// It deliberately stops there:
//
//   - no container graph and no dependency resolution between entries
//   - no reflection and no auto-wiring
//   - no scoping: every Resolve calls the constructor again
//
// Consumers never import this package. Wiring stays in main:
//
//	gateways := di.NewRegistry[payment.Gateway]().
//		Provide("stripe", func() payment.Gateway { return payment.StripeGateway{} })
//
//	gw, err := gateways.Resolve(cfg.Gateway)
//	if err != nil {
//		return err
//	}
//	payment.NewTransactionHandler(gw).Process(cfg.Amount)
//
// Import
//
//	"github.com/sghaida/di-basics/di"
package di
