package calculatematchscore

import "time"

type Config struct {
	Timeout   time.Duration
	PoolLimit int
}

func LoadConfig() *Config {
	return &Config{
		Timeout:   10 * time.Second,
		PoolLimit: 100,
	}
}
