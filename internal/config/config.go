package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Upstream  Upstream  `mapstructure:",squash"`
	Reporting Reporting `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Upstream descreve a API de consulta de plataformas de anúncios.
// O APIToken é o bearer global da API; os tokens por conta chegam junto
// com cada conta e nunca entram na configuração.
type Upstream struct {
	BaseURL               string  `mapstructure:"upstream_base_url"`
	APIToken              string  `mapstructure:"upstream_api_token"`
	RequestTimeoutSeconds int     `mapstructure:"upstream_request_timeout_seconds"`
	RequestsPerSecond     float64 `mapstructure:"upstream_requests_per_second"`
	RequestBurst          int     `mapstructure:"upstream_request_burst"`
}

type Reporting struct {
	MaxConcurrentFetches int `mapstructure:"reporting_max_concurrent_fetches"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("UPSTREAM_BASE_URL", "https://ads-directory.example.com/api")
	viper.SetDefault("UPSTREAM_API_TOKEN", "your_api_token") // ONLY LOCAL
	viper.SetDefault("UPSTREAM_REQUEST_TIMEOUT_SECONDS", 10)
	viper.SetDefault("UPSTREAM_REQUESTS_PER_SECOND", 10)
	viper.SetDefault("UPSTREAM_REQUEST_BURST", 5)

	// A API upstream tem limite implícito de requisições, então o fan-out
	// por conta é limitado por padrão.
	viper.SetDefault("REPORTING_MAX_CONCURRENT_FETCHES", 3)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	return config, nil
}

// RequestTimeout converte o timeout configurado para time.Duration.
func (u Upstream) RequestTimeout() time.Duration {
	if u.RequestTimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(u.RequestTimeoutSeconds) * time.Second
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
