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
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Mongo          Mongo          `mapstructure:",squash"`
	Sheets         Sheets         `mapstructure:",squash"`
	ActivationSync ActivationSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Mongo struct {
	URI        string `mapstructure:"mongo_uri"`
	Database   string `mapstructure:"mongo_database"`
	Collection string `mapstructure:"mongo_collection"`

	// Timeouts de conexão e de query. O socket timeout é alto de
	// propósito: o aggregate do período completo pode demorar.
	ServerSelectionTimeout time.Duration `mapstructure:"mongo_server_selection_timeout"`
	ConnectTimeout         time.Duration `mapstructure:"mongo_connect_timeout"`
	SocketTimeout          time.Duration `mapstructure:"mongo_socket_timeout"`
	AggregateMaxTime       time.Duration `mapstructure:"mongo_aggregate_max_time"`
}

type Sheets struct {
	SpreadsheetID   string `mapstructure:"planilha_id"`
	Worksheet       string `mapstructure:"aba_destino"`
	CredentialsFile string `mapstructure:"google_credentials_file"`
}

type ActivationSync struct {
	CronSchedule string `mapstructure:"activation_sync_cron"`
	LookbackDays int    `mapstructure:"activation_sync_lookback_days"`
	Enabled      bool   `mapstructure:"activation_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", 8000)

	// MONGO_URI não tem default: a ausência é tratada como erro de
	// configuração na primeira sincronização, nunca derruba o processo
	viper.SetDefault("MONGO_URI", "")
	viper.SetDefault("MONGO_DATABASE", "campanhas")
	viper.SetDefault("MONGO_COLLECTION", "userDailyPlays")
	viper.SetDefault("MONGO_SERVER_SELECTION_TIMEOUT", "15s")
	viper.SetDefault("MONGO_CONNECT_TIMEOUT", "15s")
	viper.SetDefault("MONGO_SOCKET_TIMEOUT", "5m")
	viper.SetDefault("MONGO_AGGREGATE_MAX_TIME", "120s")

	viper.SetDefault("PLANILHA_ID", "1PNykaHfV4V7D94zUS_qj47KHHb4hLxBuZTCmTDrb87E")
	viper.SetDefault("ABA_DESTINO", "ATIVACOES")
	viper.SetDefault("GOOGLE_CREDENTIALS_FILE", "credentials.json")

	// Defaults para a sincronização agendada de ativações
	viper.SetDefault("ACTIVATION_SYNC_CRON", "0 5 * * *") // Todos os dias às 5h da manhã
	viper.SetDefault("ACTIVATION_SYNC_LOOKBACK_DAYS", 7)  // 7 dias para buscar dados
	viper.SetDefault("ACTIVATION_SYNC_ENABLED", false)    // Habilitar sincronização agendada

	viper.SetDefault("LOG_LEVEL", "info")
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

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
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
