package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"app/internal/config"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"
)

// ResolveSigningSecret picks the session signing secret: Secret Manager when
// a secret name is configured, then the environment value, then a random
// per-process secret. With a random secret, every issued session dies with
// the process.
func ResolveSigningSecret(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (string, error) {
	if cfg.JWTSecretName != "" {
		secret, err := fetchSigningSecret(ctx, cfg)
		if err != nil {
			return "", err
		}
		logger.Info().Str("secret_name", cfg.JWTSecretName).Msg("Loaded signing secret from Secret Manager")
		return secret, nil
	}
	if cfg.JWTSecret != "" {
		return cfg.JWTSecret, nil
	}

	logger.Warn().Msg("No signing secret configured; generating a random one, sessions will not survive a restart")
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating signing secret: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func fetchSigningSecret(ctx context.Context, cfg *config.Config) (string, error) {
	if cfg.GCPProjectID == "" {
		return "", fmt.Errorf("GCP project ID is not set")
	}

	var opts []option.ClientOption
	client, err := secretmanager.NewClient(ctx, opts...)
	if err != nil {
		return "", fmt.Errorf("creating Secret Manager client: %w", err)
	}
	defer client.Close()

	name := fmt.Sprintf("projects/%s/secrets/%s/versions/latest", cfg.GCPProjectID, cfg.JWTSecretName)
	result, err := client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: name,
	})
	if err != nil {
		return "", fmt.Errorf("accessing secret version %s: %w", name, err)
	}
	return string(result.Payload.Data), nil
}
