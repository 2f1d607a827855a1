package auth

import (
	client "github.com/ory/client-go"
)

func GetOryAPIClient(url string) *client.APIClient {
	cfg := client.NewConfiguration()
	cfg.Servers = client.ServerConfigurations{
		{URL: url},
	}

	return client.NewAPIClient(cfg)
}
