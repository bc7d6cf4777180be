// Package config reads pipeline settings from the environment.
package config

import "github.com/spf13/viper"

// Config carries the environment-sourced settings shared by the Lambda
// handlers. Empty values are allowed; the processor derives its output bucket
// from the source bucket when ProcessedBucket is unset.
type Config struct {
	ProcessedBucket string
	ReportsBucket   string
	RecipientEmail  string
	SenderEmail     string
}

// Load pulls settings from environment variables.
func Load() Config {
	v := viper.New()
	v.AutomaticEnv()
	for _, key := range []string{"PROCESSED_BUCKET", "REPORTS_BUCKET", "RECIPIENT_EMAIL", "SENDER_EMAIL"} {
		_ = v.BindEnv(key)
	}
	return Config{
		ProcessedBucket: v.GetString("PROCESSED_BUCKET"),
		ReportsBucket:   v.GetString("REPORTS_BUCKET"),
		RecipientEmail:  v.GetString("RECIPIENT_EMAIL"),
		SenderEmail:     v.GetString("SENDER_EMAIL"),
	}
}
