package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions
// (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

func CategoryUUID(name string) uuid.UUID {
	return UUID("go-newsroom:category:" + strings.ToLower(strings.TrimSpace(name)))
}

func TagUUID(name string) uuid.UUID {
	return UUID("go-newsroom:tag:" + strings.ToLower(strings.TrimSpace(name)))
}

// BlockUUID derives a block id from its article and its path key inside the
// block tree, ":<index>" segments from the root down to the block.
func BlockUUID(articleID uuid.UUID, pathKey string) uuid.UUID {
	return UUID("go-newsroom:block:" + articleID.String() + pathKey)
}
