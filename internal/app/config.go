package app

import (
	"github.com/serp-response/serp-backend/internal/pkg/envutil"
)

type Config struct {
	ListenAddr string
	GinMode    string
}

func LoadConfig() Config {
	return Config{
		ListenAddr: envutil.String("LISTEN_ADDR", ":8000"),
		GinMode:    envutil.String("GIN_MODE", "debug"),
	}
}
