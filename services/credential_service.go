package services

import (
	"context"
	"log"

	"github.com/Voltify-Social/voltify-panel-backend/config"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CredentialService stores each customer's upstream provider key in redis.
// A missing key is a normal state (the customer has not signed in to the
// provider yet), not an error.
type CredentialService struct{}

var credentialService = &CredentialService{}

func GetCredentialService() *CredentialService {
	return credentialService
}

func credentialKey(customerID uuid.UUID) string {
	return "voltify:provider_key:" + customerID.String()
}

// ProviderKey returns the stored credential, empty when none is stored.
func (s *CredentialService) ProviderKey(ctx context.Context, customerID uuid.UUID) (string, error) {
	val, err := config.RedisClient.Get(ctx, credentialKey(customerID)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		log.Printf("[credentials] lookup failed for %s: %v", customerID, err)
		return "", err
	}
	return val, nil
}

// StoreProviderKey saves the customer's provider credential.
func (s *CredentialService) StoreProviderKey(ctx context.Context, customerID uuid.UUID, key string) error {
	return config.RedisClient.Set(ctx, credentialKey(customerID), key, 0).Err()
}

// DeleteProviderKey removes the stored credential (provider sign-out).
func (s *CredentialService) DeleteProviderKey(ctx context.Context, customerID uuid.UUID) error {
	return config.RedisClient.Del(ctx, credentialKey(customerID)).Err()
}
