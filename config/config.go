package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Game     GameConfig     `mapstructure:"game"`
}

type ServerConfig struct {
	HTTPAddress    string `mapstructure:"http_address"`
	RPCAddress     string `mapstructure:"rpc_address"`
	MetricsAddress string `mapstructure:"metrics_address"`
}

type DatabaseConfig struct {
	Postgres PostgresConfig `mapstructure:"postgres"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
}

// GameConfig 火车棋盘游戏规则配置
type GameConfig struct {
	MinPlayers           int `mapstructure:"min_players"`
	MaxPlayers           int `mapstructure:"max_players"`
	TrainsPerPlayer      int `mapstructure:"trains_per_player"`
	DisplaySize          int `mapstructure:"display_size"`
	DrawQuota            int `mapstructure:"draw_quota"`
	LongestPathBonus     int `mapstructure:"longest_path_bonus"`
	FinalRoundThreshold  int `mapstructure:"final_round_threshold"`
	InitialTicketOffer   int `mapstructure:"initial_ticket_offer"`
	InitialTicketMinKeep int `mapstructure:"initial_ticket_min_keep"`
	MidgameTicketOffer   int `mapstructure:"midgame_ticket_offer"`
	MidgameTicketMinKeep int `mapstructure:"midgame_ticket_min_keep"`
	LocomotiveFlushLimit int `mapstructure:"locomotive_flush_limit"`
	TurnTimeoutSeconds   int `mapstructure:"turn_timeout_seconds"`
}

func LoadConfig(path string) (config *Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AutomaticEnv()

	setDefaults()

	if err = viper.ReadInConfig(); err != nil {
		// 缺少配置文件时使用默认值运行
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	err = viper.Unmarshal(&config)
	return
}

// setDefaults 设置默认值，配置文件可覆盖
func setDefaults() {
	viper.SetDefault("server.http_address", ":8080")
	viper.SetDefault("server.rpc_address", ":8081")
	viper.SetDefault("server.metrics_address", ":9090")

	viper.SetDefault("database.postgres.host", "localhost")
	viper.SetDefault("database.postgres.port", 5432)
	viper.SetDefault("database.postgres.user", "postgres")
	viper.SetDefault("database.postgres.password", "postgres")
	viper.SetDefault("database.postgres.dbname", "railbound")

	viper.SetDefault("game.min_players", 2)
	viper.SetDefault("game.max_players", 5)
	viper.SetDefault("game.trains_per_player", 45)
	viper.SetDefault("game.display_size", 5)
	viper.SetDefault("game.draw_quota", 2)
	viper.SetDefault("game.longest_path_bonus", 10)
	viper.SetDefault("game.final_round_threshold", 2)
	viper.SetDefault("game.initial_ticket_offer", 3)
	viper.SetDefault("game.initial_ticket_min_keep", 2)
	viper.SetDefault("game.midgame_ticket_offer", 3)
	viper.SetDefault("game.midgame_ticket_min_keep", 1)
	viper.SetDefault("game.locomotive_flush_limit", 3)
	viper.SetDefault("game.turn_timeout_seconds", 90)
}
