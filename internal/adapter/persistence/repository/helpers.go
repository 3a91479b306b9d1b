package repository

import (
	"fmt"
	"os"
	"strings"

	"esim_bridge/internal/usecase/interfaces"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func userErrorsToErr(ownerID string, userErrors []interfaces.UserError) error {
	msgs := make([]string, 0, len(userErrors))
	for _, ue := range userErrors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", ue.Field, ue.Message))
	}
	return fmt.Errorf("metafield write rejected for %s: %s", ownerID, strings.Join(msgs, "; "))
}
