package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Healthcheck wraps client in a check that asks the primary for a ping.
// Validated writes always go to the primary, so a reachable secondary alone
// does not count as healthy. A nil client is reported as unhealthy instead
// of panicking, which lets callers register the check before connecting.
//
// Failures wrap ErrHealthcheckFailed and the driver error; the deadline is
// taken from ctx.
func Healthcheck(client *mongo.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		if client == nil {
			return errors.Join(ErrHealthcheckFailed, errNoClient)
		}
		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}

var errNoClient = errors.New("no client")
