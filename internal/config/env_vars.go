package config

type EnvConfig interface {
	GetAppName() string
	GetCallbackAddr() string
	GetEnv() string
}

type EnvVars struct {
	AppName      string `env:"APP_NAME" env-default:"Go OAuth Client"`
	CallbackAddr string `env:"CALLBACK_ADDR" env-default:"localhost:8080"`
	Env          string `env:"ENV" env-default:"DEV"`
}

var _ EnvConfig = EnvVars{}

func (e EnvVars) GetAppName() string {
	return e.AppName
}

// GetCallbackAddr returns the host:port the local redirect listener binds.
// The registered redirect URI must point at this address.
func (e EnvVars) GetCallbackAddr() string {
	return e.CallbackAddr
}

func (e EnvVars) GetEnv() string {
	return e.Env
}
