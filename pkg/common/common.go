package common

import (
	"crypto/sha256"
	"encoding/hex"
	"os"

	"github.com/bwmarrin/snowflake"
)

const (
	ENABLED  = "enabled"
	DISABLED = "disabled"
)

// DefaultSecretSalt is used when no salt is configured in the environment.
const DefaultSecretSalt = "markshop-secret-salt"

var snowflakeNode *snowflake.Node

func init() {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	snowflakeNode = node
}

// UUIDint64 returns a snowflake-based unique int64 id.
func UUIDint64() int64 {
	return snowflakeNode.Generate().Int64()
}

// Sha256HashWithSalt hashes src with the given salt.
func Sha256HashWithSalt(src, salt string) string {
	h := sha256.New()
	h.Write([]byte(src + salt))
	return hex.EncodeToString(h.Sum(nil))
}

// GetSecretSalt reads the hash salt from the environment, falling back
// to the built-in default.
func GetSecretSalt() string {
	if salt := os.Getenv("MKSHOP_SECRET_SALT"); salt != "" {
		return salt
	}
	return DefaultSecretSalt
}

// FileExists reports whether path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
