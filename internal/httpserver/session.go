package httpserver

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"
)

const sessionCookie = "cart_session"

// cartSessionID returns the visitor's session ID, minting and setting the
// cookie on first contact. The ID only namespaces the persisted cart blob;
// it carries no identity.
func cartSessionID(c *gin.Context) string {
	if id, err := c.Cookie(sessionCookie); err == nil && id != "" {
		return id
	}
	id := randomSessionID()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, id, 365*24*3600, "/", "", false, true)
	return id
}

func randomSessionID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand only fails when the OS entropy source is broken.
		panic(err)
	}
	return hex.EncodeToString(b)
}
