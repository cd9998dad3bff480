package gatewaymock

import "context"

// Gateway is a function-backed mock satisfying smsgateway.Gateway.
type Gateway struct {
	SendFn func(ctx context.Context, msisdn, message string) (string, error)
	Calls  int
}

func (g *Gateway) Send(ctx context.Context, msisdn, message string) (string, error) {
	g.Calls++
	if g.SendFn != nil {
		return g.SendFn(ctx, msisdn, message)
	}
	return "mockmessageid", nil
}
