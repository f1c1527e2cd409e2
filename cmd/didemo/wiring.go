package main

import (
	"io"

	"go.uber.org/zap"

	"github.com/sghaida/di-basics/di"
	"github.com/sghaida/di-basics/examples/logging"
	"github.com/sghaida/di-basics/examples/payment"
	"github.com/sghaida/di-basics/internal/obs"
)

// loggerRegistry names every Logger provider the demo can inject.
// zapLogger is the structured logger handed to the "zap" provider.
func loggerRegistry(stdout io.Writer, zapLogger *zap.Logger) *di.Registry[logging.Logger] {
	return di.NewRegistry[logging.Logger]().
		Provide("console", func() logging.Logger { return &logging.ConsoleLogger{Out: stdout} }).
		Provide("zap", func() logging.Logger { return logging.NewZapLogger(zapLogger) })
}

// gatewayRegistry names every Gateway provider the demo can inject.
func gatewayRegistry(stdout io.Writer) *di.Registry[payment.Gateway] {
	return di.NewRegistry[payment.Gateway]().
		Provide("stripe", func() payment.Gateway { return payment.StripeGateway{Out: stdout} }).
		Provide("paypal", func() payment.Gateway { return payment.PayPalGateway{Out: stdout} }).
		Provide("internal", func() payment.Gateway { return payment.InternalGateway{Out: stdout} })
}

// providerLogger is the zap logger used as a Logger provider. It writes to
// stdout at info level so its entries are part of the demo output.
func providerLogger(stdout io.Writer) *zap.Logger {
	l, err := obs.NewLogger("info", stdout)
	if err != nil {
		// "info" always parses.
		panic(err)
	}
	return l
}
