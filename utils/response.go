package utils

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/gin-gonic/gin"
)

// RespondWithError writes the uniform failure envelope.
func RespondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// GenerateRandomString returns n random hex characters, used to build
// collision-free upload filenames.
func GenerateRandomString(n int) string {
	bytes := make([]byte, (n+1)/2)
	if _, err := rand.Read(bytes); err != nil {
		panic("failed to read random bytes")
	}
	return hex.EncodeToString(bytes)[:n]
}
