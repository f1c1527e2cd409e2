// Command didemo is the composition root for the examples.
//
// It is the only place where concrete providers are chosen and handed to
// consumers. Each scenario builds exactly one provider, injects it into
// exactly one consumer and calls the consumer once:
//
//	logging           User           <- Logger  (console | zap)
//	logging-concrete  ConcreteUser   <- *ConsoleLogger
//	payment           TransactionHandler <- Gateway (stripe | paypal | internal)
//	all               the three above, in that order
//
// Provider output goes to stdout and nothing else does. Section headings and
// zap diagnostics go to stderr.
//
// Usage:
//
//	didemo [-config demo.yaml] [-scenario all] [-user Alice] [-amount 100]
//	       [-logger console] [-gateway stripe] [-log-level warn]
//
// Flags override values from the config file, which override the defaults.
//
// Exit codes: 0 on success, 1 on configuration or wiring errors, 2 on usage errors.
package main
