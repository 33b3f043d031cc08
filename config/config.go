package config

type AppConfig struct {
	// APIPort is the port the captured client expects the API on.
	APIPort string `env:"PORT" envDefault:"5000"`
	// DataDir holds the JSON fixtures exported by the OFW client.
	DataDir string `env:"OFW_DATA_DIR" envDefault:"./debug"`
	// AuthToken is served through the localstorage endpoint and, in strict
	// mode, compared against incoming bearer tokens.
	AuthToken  string `env:"OFW_AUTH_TOKEN" envDefault:"mock_auth_token_12345"`
	StrictAuth bool   `env:"OFW_STRICT_AUTH" envDefault:"false"`
	Debug      bool   `env:"OFW_DEBUG" envDefault:"false"`
}
