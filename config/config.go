package config

import (
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/ShettyBro/scheduling-simulator/internal/scheduler"
)

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum int64
	StarvationFactor      int64
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads config.yaml from the working directory, falling
// back to defaults when the file is absent. SCHEDSIM_* environment variables
// override file values.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./")

		viper.SetDefault("port", 9095)
		viper.SetDefault("scheduler.round_robin.time_quantum", 2)
		viper.SetDefault("scheduler.priority.starvation_factor", scheduler.DefaultStarvationFactor)

		viper.SetEnvPrefix("schedsim")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				log.Fatalln(err)
			}
		}

		config = &SchedulerConfig{}
		config.Port = viper.GetInt("port")
		config.RoundRobinTimeQuantum = viper.GetInt64("scheduler.round_robin.time_quantum")
		config.StarvationFactor = viper.GetInt64("scheduler.priority.starvation_factor")
	})

	return config
}
