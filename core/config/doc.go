// Package config provides configuration management for obst.
//
// It utilizes Viper for loading configuration from environment variables,
// with an optional .env file loaded first through godotenv. Defaults come from
// the `default` struct tags of each partial configuration.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Objects: bucket, credentials, endpoint, download URL expiry and storage driver options
//   - Log: Logging level and format
//
// Environment variables map onto nested keys by replacing dots with
// underscores, e.g. OBJECTS_BUCKET, OBJECTS_OPTIONS_DRIVER, LOG_LEVEL.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Objects.Bucket)
package config
