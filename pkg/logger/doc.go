// Package logger builds *slog.Logger values from functional options.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler from the configured
// Format, applies the level and attaches static attributes:
//
//	log := logger.New(
//		logger.WithFormat(logger.FormatText),
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithAttr(logger.Component("validators")),
//	)
//
// Settings can also come from the environment through Config and FromConfig:
//
//	var cfg logger.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//	opts, err := logger.FromConfig(cfg)
//	if err != nil {
//		return err
//	}
//	log := logger.New(opts...)
//
// Attribute helpers in attr.go keep key names consistent. Error returns an
// empty attribute for a nil error, so it can be passed unconditionally.
package logger
