package constants

// DefaultEnvPath is the default path to the .env file
const DefaultEnvPath = "./.env"

// DefaultConfigPath is the default path to the TOML config file
const DefaultConfigPath = "./cronbuild.toml"
