// Package config loads configuration for programs built on flowless.
//
// Values come from a YAML file, a .env file and FLOWLESS_ prefixed
// environment variables (read with viper and godotenv), then defaults are
// applied and the struct is validated with validator tags.
//
//	var cfg config.Config
//	if err := config.Load(&cfg, config.WithConfigFile("config.yml")); err != nil {
//		return err
//	}
//	logger.Init(cfg.Logging)
package config
