package config

import "fmt"

const (
	EnvDevelopment = "development"
	EnvSandbox     = "sandbox"
	EnvProduction  = "production"
)

var frontendOrigins = map[string]string{
	EnvDevelopment: "http://localhost:5173",
	EnvSandbox:     "https://flasheng-sandbox.onrender.com",
	EnvProduction:  "https://flasheng-production.onrender.com",
}

// AllowedOriginsFor returns the CORS origins of the frontend deployed
// alongside env.
func AllowedOriginsFor(env string) ([]string, error) {
	origin, ok := frontendOrigins[env]
	if !ok {
		return nil, fmt.Errorf("unknown environment %q", env)
	}
	return []string{origin}, nil
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == EnvProduction
}
