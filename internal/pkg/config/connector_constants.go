package config

// SqliteDbType selects the SQLite driver for the key registry
const SqliteDbType = "sqlite"

// PostgresDbType selects the PostgreSQL driver for the key registry
const PostgresDbType = "postgres"

// EnvPrefix is the prefix of environment variables overriding file settings
const EnvPrefix = "SIGNER"
