package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system,
// such as server settings, external search provider credentials, the daily quota,
// and the optional image-inference endpoint.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	SEARCH_API_KEY=AIza...
//	SEARCH_CX=017576662512468239146:omuauf_lfve
//	ACTOR_TOKEN=apify_api_...
//	DAILY_QUOTA=50
type Config struct {
	Server    ServerConfig    // HTTP server configuration
	Search    SearchConfig    // Custom web search credentials (general + vendor scopes)
	Actor     ActorConfig     // Actor-style visual search invocation settings
	Market    MarketConfig    // Marketplace search settings
	Quota     QuotaConfig     // Daily aggregation quota
	Inference InferenceConfig // Hosted image-classification endpoint
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// SearchConfig defines credentials for the custom web search API used by the
// general shopping provider and the two vendor-scoped providers.
//
// Fields:
//   - APIKey: API key for the custom search service.
//   - CX: scope identifier of the general shopping engine.
//   - CXVendorA / CXVendorB: scope identifiers restricted to a single
//     retailer each. Either may be empty, in which case that vendor provider
//     stays registered but always yields an empty result set.
//   - Timeout: per-request timeout applied by the HTTP client.
type SearchConfig struct {
	APIKey    string
	CX        string
	CXVendorA string
	CXVendorB string
	Timeout   time.Duration
}

// ActorConfig defines the actor-style visual search invocation.
//
// Fields:
//   - Token: API token appended to the run-sync invocation URL.
//   - ActorID: identifier of the hosted actor to run.
//   - Timeout: per-request timeout; actor runs are slow, default 30s.
type ActorConfig struct {
	Token   string
	ActorID string
	Timeout time.Duration
}

// MarketConfig defines the public marketplace search settings.
type MarketConfig struct {
	Site    string // marketplace site code, e.g. "MLB"
	Timeout time.Duration
}

// QuotaConfig holds the daily aggregation budget.
type QuotaConfig struct {
	DailyMax int // accepted aggregation calls per calendar day
}

// InferenceConfig defines the hosted model endpoint used by the
// image-classification route. Optional: when URL is empty the route
// reports the capability as unavailable.
type InferenceConfig struct {
	URL     string
	Token   string
	Timeout time.Duration
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
// All services should import this package and read from AppConfig instead of
// reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Behavior:
//   - Sets defaults for all tunable fields.
//   - Reads environment variables automatically with viper.AutomaticEnv().
//   - Calls validateConfig() to ensure required credentials are present.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() will terminate the app
//     with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("SEARCH_TIMEOUT_SECONDS", 10)
	viper.SetDefault("ACTOR_TIMEOUT_SECONDS", 30)
	viper.SetDefault("MARKETPLACE_TIMEOUT_SECONDS", 10)
	viper.SetDefault("MARKETPLACE_SITE", "MLB")
	viper.SetDefault("ACTOR_ID", "factual_biscotti~shein-visual-search-actor")
	viper.SetDefault("DAILY_QUOTA", 50)
	viper.SetDefault("INFERENCE_TIMEOUT_SECONDS", 30)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Search: SearchConfig{
			APIKey:    viper.GetString("SEARCH_API_KEY"),
			CX:        viper.GetString("SEARCH_CX"),
			CXVendorA: viper.GetString("SEARCH_CX_VENDOR_A"),
			CXVendorB: viper.GetString("SEARCH_CX_VENDOR_B"),
			Timeout:   time.Duration(viper.GetInt("SEARCH_TIMEOUT_SECONDS")) * time.Second,
		},
		Actor: ActorConfig{
			Token:   viper.GetString("ACTOR_TOKEN"),
			ActorID: viper.GetString("ACTOR_ID"),
			Timeout: time.Duration(viper.GetInt("ACTOR_TIMEOUT_SECONDS")) * time.Second,
		},
		Market: MarketConfig{
			Site:    viper.GetString("MARKETPLACE_SITE"),
			Timeout: time.Duration(viper.GetInt("MARKETPLACE_TIMEOUT_SECONDS")) * time.Second,
		},
		Quota: QuotaConfig{
			DailyMax: viper.GetInt("DAILY_QUOTA"),
		},
		Inference: InferenceConfig{
			URL:     viper.GetString("INFERENCE_URL"),
			Token:   viper.GetString("INFERENCE_TOKEN"),
			Timeout: time.Duration(viper.GetInt("INFERENCE_TIMEOUT_SECONDS")) * time.Second,
		},
	}

	// Validate critical fields
	validateConfig()
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
//
// This avoids unexpected runtime failures due to incomplete configuration.
//
// Vendor scope identifiers and the inference endpoint are intentionally NOT
// required: the providers they back are optional enrichments.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Search.APIKey == "" {
		missing = append(missing, "SEARCH_API_KEY")
	}
	if AppConfig.Search.CX == "" {
		missing = append(missing, "SEARCH_CX")
	}
	if AppConfig.Actor.Token == "" {
		missing = append(missing, "ACTOR_TOKEN")
	}
	if AppConfig.Quota.DailyMax <= 0 {
		missing = append(missing, "DAILY_QUOTA")
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}
