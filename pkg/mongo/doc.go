// Package mongo provides MongoDB connection management and a collection
// wrapper that validates documents against a schema before writing them.
//
// Connection settings come from the environment (see Config). New retries the
// initial connect and ping, and Healthcheck returns a ping function suitable
// for readiness checks.
//
// # Usage
//
//	var cfg mongo.Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	db, err := mongo.NewWithDatabase(ctx, cfg, "app")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	users := mongo.NewCollection(db.Collection("users"), userSchema)
//	if _, err := users.InsertOne(ctx, u); err != nil {
//		if errors.Is(err, mongo.ErrValidationFailed) {
//			verrs := schema.ExtractValidationErrors(err)
//			// report verrs to the caller
//		}
//		return err
//	}
//
// Writes through Collection never reach the server when validation fails.
// Reads and other operations use the driver collection returned by
// Collection.Collection.
package mongo
