package generaterecommendations

import "time"

type Config struct {
	Timeout   time.Duration
	PoolLimit int
}

func LoadConfig() *Config {
	return &Config{
		Timeout:   15 * time.Second,
		PoolLimit: 200,
	}
}
