package mongovalidator

// Config holds registry settings read from the environment.
//
//	var cfg mongovalidator.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//	reg, err := mongovalidator.New(mongovalidator.WithConfig(cfg))
type Config struct {
	// ExtraBlacklist names library exports to skip on top of the built-in blacklist.
	ExtraBlacklist []string `env:"VALIDATOR_EXTRA_BLACKLIST" envSeparator:","`
}
