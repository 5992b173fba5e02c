package config

const EnvPrefix = "NEXTLAYER"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN         = "NEXTLAYER_DB_DSN"
	EnvDBDriver      = "NEXTLAYER_DB_DRIVER"
	EnvWhatsAppPhone = "NEXTLAYER_WHATSAPP_PHONE"
)
