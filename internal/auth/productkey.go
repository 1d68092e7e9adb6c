package auth

import (
	"fmt"

	"github.com/SamDTech/realtor-api/internal/domain"
)

// ProductKeyCodec derives and verifies the proof string that authorizes
// signup for privileged (non-buyer) roles. Nothing is persisted: the proof
// is a bcrypt hash over a canonical string tying the email, the role and a
// server-held secret together, so a proof minted for one (email, role) pair
// fails verification for any other pair.
type ProductKeyCodec struct {
	secret string
	cost   int
}

// NewProductKeyCodec builds a codec around the server secret.
func NewProductKeyCodec(secret string, cost int) *ProductKeyCodec {
	return &ProductKeyCodec{secret: secret, cost: cost}
}

// Issue derives a proof for the given email and role.
func (c *ProductKeyCodec) Issue(email string, role domain.UserRole) (string, error) {
	return HashPassword(c.canonical(email, role), c.cost)
}

// Verify recomputes the canonical string and checks it against the proof.
// Invalid or malformed proofs return false.
func (c *ProductKeyCodec) Verify(email string, role domain.UserRole, proof string) bool {
	return ComparePassword(proof, c.canonical(email, role))
}

func (c *ProductKeyCodec) canonical(email string, role domain.UserRole) string {
	return fmt.Sprintf("%s-%s-%s", email, role, c.secret)
}
