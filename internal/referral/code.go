package referral

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Generator builds referral codes of the form
// {first 4 of user id}-{first 2 of link type}-{6 random hex}-{last 4 base36 of unix millis}.
type Generator struct {
	now    func() time.Time
	random io.Reader
}

func NewGenerator() *Generator {
	return &Generator{now: time.Now, random: rand.Reader}
}

// Generate returns a candidate code. Uniqueness is not guaranteed here; the caller retries when
// the code is already taken.
func (g *Generator) Generate(userID uuid.UUID, linkType string) string {
	return fmt.Sprintf("%s-%s-%s-%s",
		prefix(userID.String(), 4),
		prefix(linkType, 2),
		g.randomHex(3),
		suffix(strconv.FormatInt(g.now().UnixMilli(), 36), 4))
}

func (g *Generator) randomHex(n int) string {
	buf := make([]byte, n)
	if _, err := io.ReadFull(g.random, buf); err != nil {
		// fall back to a fresh uuid, which is itself random
		u := uuid.New()
		copy(buf, u[:n])
	}
	return hex.EncodeToString(buf)
}

func prefix(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}

func suffix(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[len(s)-n:]
}
