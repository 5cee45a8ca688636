package config

type config struct {
	Server    server    `yaml:"server" mapstructure:"server"`
	Storage   storage   `yaml:"storage" mapstructure:"storage"`
	Mysql     mysql     `yaml:"mysql" mapstructure:"mysql"`
	Redis     redis     `yaml:"redis" mapstructure:"redis"`
	Minio     minio     `yaml:"minio" mapstructure:"minio"`
	Jwt       jwt       `yaml:"jwt" mapstructure:"jwt"`
	Jaeger    jaeger    `yaml:"jaeger" mapstructure:"jaeger"`
	Playlist  playlist  `yaml:"playlist" mapstructure:"playlist"`
	Snowflake snowflake `yaml:"snowflake" mapstructure:"snowflake"`
}

type server struct {
	Addr        string `yaml:"addr"`
	MaxBodySize int    `yaml:"max_body_size" mapstructure:"max_body_size"`
	TempDir     string `yaml:"temp_dir" mapstructure:"temp_dir"`
}

type storage struct {
	Driver string `yaml:"driver"`
}

type mysql struct {
	Addr     string `yaml:"addr"`
	Database string `yaml:"database"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Charset  string `yaml:"charset"`
}

type redis struct {
	Addr       string `yaml:"addr"`
	Password   string `yaml:"password"`
	DB         int    `yaml:"db"`
	LockExpiry string `yaml:"lock_expiry" mapstructure:"lock_expiry"`
}

type minio struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key" mapstructure:"access_key"`
	SecretKey string `yaml:"secret_key" mapstructure:"secret_key"`
	UseSSL    bool   `yaml:"use_ssl" mapstructure:"use_ssl"`
	PublicURL string `yaml:"public_url" mapstructure:"public_url"`
}

type jwt struct {
	Secret      string `yaml:"secret"`
	TokenLookup string `yaml:"token_lookup" mapstructure:"token_lookup"`
}

type jaeger struct {
	Enabled bool `yaml:"enabled"`
}

type playlist struct {
	OwnerOnlyMembership bool `yaml:"owner_only_membership" mapstructure:"owner_only_membership"`
}

type snowflake struct {
	Node int64 `yaml:"node"`
}
