package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (SVG2LOTTIE_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("host", os.Getenv("SVG2LOTTIE_HOST"), &cfg.Host)
	s.setString("log-level", os.Getenv("SVG2LOTTIE_LOG_LEVEL"), &cfg.LogLevel)
	s.setString("default-type", os.Getenv("SVG2LOTTIE_DEFAULT_TYPE"), &cfg.DefaultType)

	if err := s.setIntFromString("port", os.Getenv("SVG2LOTTIE_PORT"), &cfg.Port); err != nil {
		return err
	}
	if err := s.setIntFromString("default-fps", os.Getenv("SVG2LOTTIE_DEFAULT_FPS"), &cfg.DefaultFPS); err != nil {
		return err
	}
	if err := s.setIntFromString("default-duration", os.Getenv("SVG2LOTTIE_DEFAULT_DURATION"), &cfg.DefaultDuration); err != nil {
		return err
	}

	if err := s.setDuration("read-timeout", os.Getenv("SVG2LOTTIE_READ_TIMEOUT"), &cfg.ReadTimeout); err != nil {
		return err
	}
	if err := s.setDuration("write-timeout", os.Getenv("SVG2LOTTIE_WRITE_TIMEOUT"), &cfg.WriteTimeout); err != nil {
		return err
	}
	if err := s.setDuration("shutdown-timeout", os.Getenv("SVG2LOTTIE_SHUTDOWN_TIMEOUT"), &cfg.ShutdownTimeout); err != nil {
		return err
	}

	s.setBoolFromString("fit-to-canvas", os.Getenv("SVG2LOTTIE_FIT_TO_CANVAS"), &cfg.FitToCanvas)
	s.setBoolFromString("watch-config", os.Getenv("SVG2LOTTIE_WATCH_CONFIG"), &cfg.WatchConfig)

	return nil
}
